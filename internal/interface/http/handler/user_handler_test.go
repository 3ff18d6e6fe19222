package handler

import (
	"fmt"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
)

func TestUserRoutes_RegisterAndLogin(t *testing.T) {
	env := newTestEnv(t)

	res, body := env.do(t, "POST", "/api/users/register/", 0, `{"name":"Jane","email":"jane@example.com","password":"secret"}`)
	expectStatus(t, res, body, fiber.StatusOK)
	got := decodeMap(t, body)
	if got["username"] != "jane@example.com" || got["name"] != "Jane" || got["token"] == "" {
		t.Fatalf("unexpected register response %v", got)
	}

	res, body = env.do(t, "POST", "/api/users/register/", 0, `{"name":"Other","email":"jane@example.com","password":"x"}`)
	expectStatus(t, res, body, fiber.StatusBadRequest)
	expectDetail(t, body, "User with this email already exists")

	res, body = env.do(t, "POST", "/api/users/login/", 0, `{"username":"jane@example.com","password":"wrong"}`)
	expectStatus(t, res, body, fiber.StatusUnauthorized)
	expectDetail(t, body, "No active account found with the given credentials")

	res, body = env.do(t, "POST", "/api/users/login/", 0, `{"username":"jane@example.com","password":"secret"}`)
	expectStatus(t, res, body, fiber.StatusOK)
	got = decodeMap(t, body)
	if got["refresh"] == "" || got["access"] != got["token"] {
		t.Fatalf("unexpected login response %v", got)
	}
}

func TestUserRoutes_RegisterValidation(t *testing.T) {
	env := newTestEnv(t)

	res, body := env.do(t, "POST", "/api/users/register/", 0, `{"name":"","email":"nope","password":"x"}`)
	expectStatus(t, res, body, fiber.StatusBadRequest)
	errs, ok := decodeMap(t, body)["errors"].(map[string]any)
	if !ok || errs["email"] == nil || errs["name"] == nil {
		t.Fatalf("expected field errors, got %s", string(body))
	}
}

func TestUserRoutes_ProfileAuth(t *testing.T) {
	env := newTestEnv(t)

	res, body := env.do(t, "GET", "/api/users/profile/", 0, "")
	expectStatus(t, res, body, fiber.StatusUnauthorized)

	res, body = env.do(t, "GET", "/api/users/profile/", env.buyer.ID, "")
	expectStatus(t, res, body, fiber.StatusOK)
	if got := decodeMap(t, body); got["email"] != "buyer@example.com" || got["isAdmin"] != false {
		t.Fatalf("unexpected profile %v", got)
	}

	res, body = env.do(t, "GET", "/api/users/profile/", 999, "")
	expectStatus(t, res, body, fiber.StatusUnauthorized)
}

func TestUserRoutes_RefreshTokenRejected(t *testing.T) {
	env := newTestEnv(t)

	req := httptest.NewRequest("GET", "/api/users/profile/", nil)
	req.Header.Set("X-User-ID", fmt.Sprint(env.buyer.ID))
	req.Header.Set("X-Token-Type", "refresh")
	res, body := env.send(t, req)
	expectStatus(t, res, body, fiber.StatusUnauthorized)
}

func TestUserRoutes_UpdateProfileSyncsUsername(t *testing.T) {
	env := newTestEnv(t)

	res, body := env.do(t, "PUT", "/api/users/profile/update/", env.buyer.ID, `{"name":"New","email":"new@example.com","password":""}`)
	expectStatus(t, res, body, fiber.StatusOK)
	got := decodeMap(t, body)
	if got["username"] != "new@example.com" || got["name"] != "New" || got["token"] == "" {
		t.Fatalf("unexpected response %v", got)
	}

	res, body = env.do(t, "PUT", "/api/users/profile/update/", env.buyer.ID, `{"name":"New","email":"admin@example.com"}`)
	expectStatus(t, res, body, fiber.StatusBadRequest)
}

func TestUserRoutes_AdminOnly(t *testing.T) {
	env := newTestEnv(t)

	res, body := env.do(t, "GET", "/api/users/", env.buyer.ID, "")
	expectStatus(t, res, body, fiber.StatusForbidden)

	res, body = env.do(t, "GET", "/api/users/", env.admin.ID, "")
	expectStatus(t, res, body, fiber.StatusOK)
	if !strings.Contains(string(body), "buyer@example.com") {
		t.Fatalf("expected buyer in list, got %s", string(body))
	}

	path := fmt.Sprintf("/api/users/%d/", env.buyer.ID)
	res, body = env.do(t, "GET", path, env.admin.ID, "")
	expectStatus(t, res, body, fiber.StatusOK)

	res, body = env.do(t, "PUT", fmt.Sprintf("/api/users/update/%d/", env.buyer.ID), env.admin.ID, `{"name":"B","email":"b2@example.com","isAdmin":true}`)
	expectStatus(t, res, body, fiber.StatusOK)
	if got := decodeMap(t, body); got["isAdmin"] != true || got["username"] != "b2@example.com" {
		t.Fatalf("unexpected update response %v", got)
	}

	res, body = env.do(t, "DELETE", fmt.Sprintf("/api/users/delete/%d/", env.buyer.ID), env.admin.ID, "")
	expectStatus(t, res, body, fiber.StatusOK)
	if string(body) != `"User was deleted"` {
		t.Fatalf("unexpected delete body %s", string(body))
	}

	res, body = env.do(t, "GET", path, env.admin.ID, "")
	expectStatus(t, res, body, fiber.StatusNotFound)
}
