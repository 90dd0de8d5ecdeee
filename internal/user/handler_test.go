package user

import (
	"encoding/json"
	"io"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
)

// makeApp registers the handler behind a middleware that fakes the
// jwtware claims from X-User-ID / X-User-Role headers.
func makeApp(h *Handler) *fiber.App {
	app := fiber.New()
	h.RegisterPublicRoutes(app)
	app.Use(func(c *fiber.Ctx) error {
		if v := c.Get("X-User-ID"); v != "" {
			id, err := strconv.Atoi(v)
			if err == nil {
				claims := jwt.MapClaims{"user_id": id, "role": c.Get("X-User-Role")}
				c.Locals("user", &jwt.Token{Claims: claims})
			}
		}
		return c.Next()
	})
	h.RegisterProtectedRoutes(app)
	return app
}

func TestSignUpAndSignIn(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	repo := NewInMemoryRepository(nil)
	handler := NewHandler(NewService(repo))
	app := makeApp(handler)

	body := `{"email":"jane@example.com","password":"secret123","fullName":"Jane","phone":"0812345678","role":"customer"}`
	req := httptest.NewRequest("POST", "/api/v1/sign-up", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	res, _ := app.Test(req)
	if res.StatusCode != fiber.StatusCreated {
		b, _ := io.ReadAll(res.Body)
		t.Fatalf("expected 201 for sign-up, got %d: %s", res.StatusCode, b)
	}

	// missing role is a 400
	req2 := httptest.NewRequest("POST", "/api/v1/sign-up", strings.NewReader(`{"email":"x@y.com","password":"secret123","fullName":"X"}`))
	req2.Header.Set("Content-Type", "application/json")
	res2, _ := app.Test(req2)
	if res2.StatusCode != fiber.StatusBadRequest {
		t.Fatalf("expected 400 for missing role, got %d", res2.StatusCode)
	}

	// unknown role is a 400
	req3 := httptest.NewRequest("POST", "/api/v1/sign-up", strings.NewReader(`{"email":"z@y.com","password":"secret123","fullName":"Z","role":"admin"}`))
	req3.Header.Set("Content-Type", "application/json")
	res3, _ := app.Test(req3)
	if res3.StatusCode != fiber.StatusBadRequest {
		t.Fatalf("expected 400 for unknown role, got %d", res3.StatusCode)
	}

	req4 := httptest.NewRequest("POST", "/api/v1/sign-in", strings.NewReader(`{"email":"jane@example.com","password":"secret123"}`))
	req4.Header.Set("Content-Type", "application/json")
	res4, _ := app.Test(req4)
	if res4.StatusCode != fiber.StatusOK {
		t.Fatalf("expected 200 for sign-in, got %d", res4.StatusCode)
	}

	var loginResp struct {
		Token string `json:"token"`
		User  User   `json:"user"`
	}
	b, _ := io.ReadAll(res4.Body)
	if err := json.Unmarshal(b, &loginResp); err != nil {
		t.Fatalf("invalid sign-in response: %v", err)
	}
	if loginResp.Token == "" {
		t.Error("expected a token in the sign-in response")
	}
	if loginResp.User.Role != RoleCustomer {
		t.Errorf("expected customer role in response, got %q", loginResp.User.Role)
	}
	if loginResp.User.Password != "" {
		t.Error("password must not appear in responses")
	}

	req5 := httptest.NewRequest("POST", "/api/v1/sign-in", strings.NewReader(`{"email":"jane@example.com","password":"nope"}`))
	req5.Header.Set("Content-Type", "application/json")
	res5, _ := app.Test(req5)
	if res5.StatusCode != fiber.StatusUnauthorized {
		t.Fatalf("expected 401 for bad password, got %d", res5.StatusCode)
	}
}

func TestProfileRoutes(t *testing.T) {
	repo := NewInMemoryRepository([]User{
		{ID: 7, Email: "owner@example.com", FullName: "Old Name", Role: RoleHotelOwner, IsActive: true},
	})
	handler := NewHandler(NewService(repo))
	app := makeApp(handler)

	// unauthenticated
	res, _ := app.Test(httptest.NewRequest("GET", "/api/v1/profile", nil))
	if res.StatusCode != fiber.StatusUnauthorized {
		t.Fatalf("expected 401 without claims, got %d", res.StatusCode)
	}

	req := httptest.NewRequest("GET", "/api/v1/profile", nil)
	req.Header.Set("X-User-ID", "7")
	req.Header.Set("X-User-Role", "hotel_owner")
	res2, _ := app.Test(req)
	if res2.StatusCode != fiber.StatusOK {
		t.Fatalf("expected 200 for profile, got %d", res2.StatusCode)
	}

	// partial update keeps untouched fields
	req3 := httptest.NewRequest("PATCH", "/api/v1/profile", strings.NewReader(`{"phone":"0899999999"}`))
	req3.Header.Set("Content-Type", "application/json")
	req3.Header.Set("X-User-ID", "7")
	req3.Header.Set("X-User-Role", "hotel_owner")
	res3, _ := app.Test(req3)
	if res3.StatusCode != fiber.StatusOK {
		t.Fatalf("expected 200 for profile update, got %d", res3.StatusCode)
	}
	u, err := repo.GetByID(7)
	if err != nil {
		t.Fatal(err)
	}
	if u.Phone != "0899999999" {
		t.Errorf("expected updated phone, got %q", u.Phone)
	}
	if u.FullName != "Old Name" {
		t.Errorf("partial update must not clear fullName, got %q", u.FullName)
	}
}

func TestRequireRole(t *testing.T) {
	app := fiber.New()
	app.Use(func(c *fiber.Ctx) error {
		if v := c.Get("X-User-Role"); v != "" {
			claims := jwt.MapClaims{"user_id": 1, "role": v}
			c.Locals("user", &jwt.Token{Claims: claims})
		}
		return c.Next()
	})
	app.Get("/owner-only", RequireRole(RoleHotelOwner), func(c *fiber.Ctx) error {
		return c.SendString("ok")
	})

	res, _ := app.Test(httptest.NewRequest("GET", "/owner-only", nil))
	if res.StatusCode != fiber.StatusUnauthorized {
		t.Fatalf("expected 401 without claims, got %d", res.StatusCode)
	}

	req := httptest.NewRequest("GET", "/owner-only", nil)
	req.Header.Set("X-User-Role", "customer")
	res2, _ := app.Test(req)
	if res2.StatusCode != fiber.StatusForbidden {
		t.Fatalf("expected 403 for wrong role, got %d", res2.StatusCode)
	}

	req2 := httptest.NewRequest("GET", "/owner-only", nil)
	req2.Header.Set("X-User-Role", "hotel_owner")
	res3, _ := app.Test(req2)
	if res3.StatusCode != fiber.StatusOK {
		t.Fatalf("expected 200 for owner, got %d", res3.StatusCode)
	}
}
