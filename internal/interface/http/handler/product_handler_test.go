package handler

import (
	"bytes"
	"context"
	"fmt"
	"mime/multipart"
	"net/http/httptest"
	"strconv"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
	"github.com/wichananm65/ecommerce-backend/internal/domain/entity"
)

func seedProduct(t *testing.T, env *testEnv, name string, stock int) *entity.Product {
	t.Helper()
	p := entity.NewProduct(nil, name)
	p.CountInStock = stock
	p.Price = decimal.RequireFromString("10.00")
	created, err := env.store.Products().Create(context.Background(), p)
	if err != nil {
		t.Fatalf("seed product: %v", err)
	}
	return created
}

func TestProductRoutes_ListAndGet(t *testing.T) {
	env := newTestEnv(t)
	for i := 0; i < 7; i++ {
		seedProduct(t, env, fmt.Sprintf("Item %d", i), 1)
	}

	res, body := env.do(t, "GET", "/api/products/?page=2", 0, "")
	expectStatus(t, res, body, fiber.StatusOK)
	got := decodeMap(t, body)
	if got["page"] != float64(2) || got["pages"] != float64(2) {
		t.Fatalf("unexpected paging %v", got)
	}
	if items, _ := got["products"].([]any); len(items) != 2 {
		t.Fatalf("expected 2 products on page 2, got %d", len(items))
	}

	res, body = env.do(t, "GET", "/api/products/1/", 0, "")
	expectStatus(t, res, body, fiber.StatusOK)
	product := decodeMap(t, body)
	if product["price"] != "10.00" || product["reviews"] == nil {
		t.Fatalf("unexpected product %v", product)
	}

	res, body = env.do(t, "GET", "/api/products/404/", 0, "")
	expectStatus(t, res, body, fiber.StatusNotFound)

	res, body = env.do(t, "GET", "/api/products/top/", 0, "")
	expectStatus(t, res, body, fiber.StatusOK)
}

func TestProductRoutes_AdminCreateUpdateDelete(t *testing.T) {
	env := newTestEnv(t)

	res, body := env.do(t, "POST", "/api/products/create/", env.buyer.ID, "")
	expectStatus(t, res, body, fiber.StatusForbidden)

	res, body = env.do(t, "POST", "/api/products/create/", env.admin.ID, "")
	expectStatus(t, res, body, fiber.StatusOK)
	created := decodeMap(t, body)
	if created["name"] != "Sample Name" || created["user"] != float64(env.admin.ID) {
		t.Fatalf("unexpected sample %v", created)
	}
	id := int64(created["_id"].(float64))

	res, body = env.do(t, "PUT", fmt.Sprintf("/api/products/update/%d/", id), env.admin.ID,
		`{"name":"Mouse","price":"1.234","brand":"Logitech","countInStock":3,"category":"Electronics","description":"d"}`)
	expectStatus(t, res, body, fiber.StatusBadRequest)

	res, body = env.do(t, "PUT", fmt.Sprintf("/api/products/update/%d/", id), env.admin.ID,
		`{"name":"Mouse","price":49.99,"brand":"Logitech","countInStock":3,"category":"Electronics","description":"d"}`)
	expectStatus(t, res, body, fiber.StatusOK)
	if got := decodeMap(t, body); got["price"] != "49.99" || got["countInStock"] != float64(3) {
		t.Fatalf("unexpected update %v", got)
	}

	res, body = env.do(t, "DELETE", fmt.Sprintf("/api/products/delete/%d/", id), env.admin.ID, "")
	expectStatus(t, res, body, fiber.StatusOK)
	if string(body) != `"Product Deleted"` {
		t.Fatalf("unexpected body %s", string(body))
	}
}

func TestProductRoutes_UploadImage(t *testing.T) {
	env := newTestEnv(t)
	p := seedProduct(t, env, "Camera", 1)

	body := new(bytes.Buffer)
	writer := multipart.NewWriter(body)
	if err := writer.WriteField("product_id", strconv.FormatInt(p.ID, 10)); err != nil {
		t.Fatalf("failed to write field: %v", err)
	}
	part, err := writer.CreateFormFile("image", "camera.jpg")
	if err != nil {
		t.Fatalf("failed to create form file: %v", err)
	}
	part.Write([]byte("JPEGDATA"))
	writer.Close()

	req := httptest.NewRequest("POST", "/api/products/upload/", body)
	req.Header.Set("X-User-ID", strconv.FormatInt(env.admin.ID, 10))
	req.Header.Set("Content-Type", writer.FormDataContentType())
	res, b := env.send(t, req)
	expectStatus(t, res, b, fiber.StatusOK)
	if string(b) != `"Image was uploaded"` {
		t.Fatalf("unexpected body %s", string(b))
	}

	if env.images.saved["camera.jpg"] != "JPEGDATA" {
		t.Fatal("image bytes were not stored")
	}
	stored, _ := env.store.Products().GetByID(context.Background(), p.ID)
	if stored.Image != "/images/camera.jpg" {
		t.Fatalf("unexpected image %q", stored.Image)
	}
}

func TestProductRoutes_Reviews(t *testing.T) {
	env := newTestEnv(t)
	p := seedProduct(t, env, "Camera", 1)
	path := fmt.Sprintf("/api/products/%d/reviews/", p.ID)

	res, body := env.do(t, "POST", path, 0, `{"rating":5,"comment":"great"}`)
	expectStatus(t, res, body, fiber.StatusUnauthorized)

	res, body = env.do(t, "POST", path, env.buyer.ID, `{"rating":0,"comment":"meh"}`)
	expectStatus(t, res, body, fiber.StatusBadRequest)
	expectDetail(t, body, "Please select a rating")

	res, body = env.do(t, "POST", path, env.buyer.ID, `{"rating":5,"comment":"great"}`)
	expectStatus(t, res, body, fiber.StatusOK)
	if string(body) != `"Review Added"` {
		t.Fatalf("unexpected body %s", string(body))
	}

	res, body = env.do(t, "POST", path, env.buyer.ID, `{"rating":4,"comment":"again"}`)
	expectStatus(t, res, body, fiber.StatusBadRequest)
	expectDetail(t, body, "Product already reviewed")

	res, body = env.do(t, "GET", fmt.Sprintf("/api/products/%d/", p.ID), 0, "")
	expectStatus(t, res, body, fiber.StatusOK)
	got := decodeMap(t, body)
	reviews, _ := got["reviews"].([]any)
	if len(reviews) != 1 || got["numReviews"] != float64(1) || got["rating"] != "5.00" {
		t.Fatalf("unexpected product after review %v", got)
	}
}
