package handler

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"github.com/wichananm65/ecommerce-backend/internal/domain/entity"
	"github.com/wichananm65/ecommerce-backend/internal/infrastructure/database/inmemory"
	"github.com/wichananm65/ecommerce-backend/internal/infrastructure/token"
	"github.com/wichananm65/ecommerce-backend/internal/interface/presenter"
	"github.com/wichananm65/ecommerce-backend/internal/usecase"
)

type memoryImages struct {
	saved map[string]string
}

func (m *memoryImages) Save(ctx context.Context, filename string, r io.Reader) (string, error) {
	b, err := io.ReadAll(r)
	if err != nil {
		return "", err
	}
	m.saved[filename] = string(b)
	return "/images/" + filename, nil
}

type testEnv struct {
	app    *fiber.App
	store  *inmemory.Store
	images *memoryImages
	admin  *entity.User
	buyer  *entity.User
}

// newTestEnv builds an app with a simple "bootstrap" middleware that injects
// a jwt.Token into locals when the X-User-ID header is provided. This avoids
// pulling in the full jwtware middleware and keeps tests lightweight.
func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	ctx := context.Background()
	store := inmemory.NewStore()
	images := &memoryImages{saved: map[string]string{}}

	admin, err := store.Users().Create(ctx, &entity.User{Email: "admin@example.com", FirstName: "Admin", IsStaff: true})
	if err != nil {
		t.Fatalf("seed admin: %v", err)
	}
	buyer, err := store.Users().Create(ctx, &entity.User{Email: "buyer@example.com", FirstName: "Buyer"})
	if err != nil {
		t.Fatalf("seed buyer: %v", err)
	}

	issuer := token.NewIssuer("secret", time.Hour, 24*time.Hour)
	users := usecase.NewUserService(store.Users())
	products := usecase.NewProductService(store.Products(), store.Reviews(), images, 5)
	orders := usecase.NewOrderService(store.Orders(), store.OrderItems(), store.ShippingAddresses(), store.Products())

	userPresenter := presenter.NewUserPresenter(issuer)
	productPresenter := presenter.NewProductPresenter(store.Reviews())
	orderPresenter := presenter.NewOrderPresenter(store.OrderItems(), store.ShippingAddresses(), store.Users(), userPresenter)

	app := fiber.New()
	app.Use(func(c *fiber.Ctx) error {
		if v := c.Get("X-User-ID"); v != "" {
			id, err := strconv.Atoi(v)
			if err == nil {
				claims := jwt.MapClaims{"user_id": id}
				if tt := c.Get("X-Token-Type"); tt != "" {
					claims[token.ClaimTokenType] = tt
				}
				tok := &jwt.Token{Claims: claims}
				c.Locals("user", tok)
			}
		}
		return c.Next()
	})

	guards := Guards{
		User:  []fiber.Handler{RequireUser(users)},
		Admin: []fiber.Handler{RequireUser(users), RequireStaff},
	}
	NewUserHandler(users, userPresenter).RegisterRoutes(app, guards)
	NewProductHandler(products, productPresenter).RegisterRoutes(app, guards)
	NewOrderHandler(orders, orderPresenter).RegisterRoutes(app, guards)

	return &testEnv{app: app, store: store, images: images, admin: admin, buyer: buyer}
}

func (e *testEnv) do(t *testing.T, method, path string, userID int64, body string) (*http.Response, []byte) {
	t.Helper()
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	if userID != 0 {
		req.Header.Set("X-User-ID", strconv.FormatInt(userID, 10))
	}
	return e.send(t, req)
}

func (e *testEnv) send(t *testing.T, req *http.Request) (*http.Response, []byte) {
	t.Helper()
	res, err := e.app.Test(req, -1)
	if err != nil {
		t.Fatalf("%s %s failed: %v", req.Method, req.URL.Path, err)
	}
	b, _ := io.ReadAll(res.Body)
	return res, b
}

func expectStatus(t *testing.T, res *http.Response, body []byte, want int) {
	t.Helper()
	if res.StatusCode != want {
		t.Fatalf("expected status %d, got %d: %s", want, res.StatusCode, string(body))
	}
}

func decodeMap(t *testing.T, body []byte) map[string]any {
	t.Helper()
	var out map[string]any
	if err := json.Unmarshal(body, &out); err != nil {
		t.Fatalf("decode %s: %v", string(body), err)
	}
	return out
}

func expectDetail(t *testing.T, body []byte, want string) {
	t.Helper()
	if got := decodeMap(t, body)["detail"]; got != want {
		t.Fatalf("expected detail %q, got %v", want, got)
	}
}
