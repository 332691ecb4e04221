package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/xalgrow/HRMS/models"
	"github.com/xalgrow/HRMS/utils"

	"github.com/gofiber/fiber/v2"
)

func newAuthTestApp() *fiber.App {
	app := fiber.New()
	app.Get("/secure", RequireAuth(), func(c *fiber.Ctx) error {
		claims, ok := GetJWTClaims(c)
		if !ok {
			return c.SendStatus(fiber.StatusInternalServerError)
		}
		return c.JSON(fiber.Map{"user_id": claims.UserID})
	})
	return app
}

func TestRequireAuthMissingHeader(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	app := newAuthTestApp()

	req := httptest.NewRequest(http.MethodGet, "/secure", nil)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	if resp.StatusCode != fiber.StatusUnauthorized {
		t.Errorf("status = %d, want 401", resp.StatusCode)
	}
}

func TestRequireAuthMalformedHeader(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	app := newAuthTestApp()

	req := httptest.NewRequest(http.MethodGet, "/secure", nil)
	req.Header.Set("Authorization", "Token abcdef")
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	if resp.StatusCode != fiber.StatusUnauthorized {
		t.Errorf("status = %d, want 401", resp.StatusCode)
	}
}

func TestRequireAuthInvalidToken(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	app := newAuthTestApp()

	req := httptest.NewRequest(http.MethodGet, "/secure", nil)
	req.Header.Set("Authorization", "Bearer not.a.token")
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	if resp.StatusCode != fiber.StatusUnauthorized {
		t.Errorf("status = %d, want 401", resp.StatusCode)
	}
}

func TestRequireAuthValidToken(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	app := newAuthTestApp()

	token, _, err := utils.GenerateAccessToken(models.User{ID: 9, Email: "jane@example.com", RoleID: 1})
	if err != nil {
		t.Fatalf("GenerateAccessToken: %v", err)
	}

	req := httptest.NewRequest(http.MethodGet, "/secure", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	if resp.StatusCode != fiber.StatusOK {
		t.Errorf("status = %d, want 200", resp.StatusCode)
	}
}
