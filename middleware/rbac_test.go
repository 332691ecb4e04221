package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/xalgrow/HRMS/models"

	"github.com/gofiber/fiber/v2"
)

func allowSet(names ...string) map[string]struct{} {
	allowed := make(map[string]struct{}, len(names))
	for _, name := range names {
		allowed[name] = struct{}{}
	}
	return allowed
}

func TestRoleAllowedCaseSensitive(t *testing.T) {
	allowed := allowSet(models.RoleAdmin)

	admin := &models.User{ID: 1, Role: &models.Role{ID: 1, Name: "Admin"}}
	if !roleAllowed(admin, allowed) {
		t.Error("role named Admin should pass the admin gate")
	}

	lower := &models.User{ID: 2, Role: &models.Role{ID: 2, Name: "admin"}}
	if roleAllowed(lower, allowed) {
		t.Error(`role named "admin" must not pass the gate for "Admin"`)
	}

	other := &models.User{ID: 3, Role: &models.Role{ID: 3, Name: "Staff"}}
	if roleAllowed(other, allowed) {
		t.Error("non-admin role should be rejected")
	}
}

func TestRoleAllowedMissingRole(t *testing.T) {
	allowed := allowSet(models.RoleAdmin)

	if roleAllowed(nil, allowed) {
		t.Error("nil user should be rejected")
	}
	if roleAllowed(&models.User{ID: 4}, allowed) {
		t.Error("user without a loaded role should be rejected")
	}
}

func TestRoleAllowedMultipleNames(t *testing.T) {
	allowed := allowSet("HR", "Manager")

	hr := &models.User{ID: 5, Role: &models.Role{ID: 5, Name: "HR"}}
	if !roleAllowed(hr, allowed) {
		t.Error("HR should be allowed")
	}

	staff := &models.User{ID: 6, Role: &models.Role{ID: 6, Name: "Staff"}}
	if roleAllowed(staff, allowed) {
		t.Error("Staff should be rejected")
	}
}

// A request that never passed RequireAuth carries no claims; the role gate
// must answer 401, not 403 or 500.
func TestRequireRoleNameWithoutClaims(t *testing.T) {
	app := fiber.New()
	app.Get("/admin-only", RequireRoleName(models.RoleAdmin), func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/admin-only", nil)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	if resp.StatusCode != fiber.StatusUnauthorized {
		t.Errorf("status = %d, want 401", resp.StatusCode)
	}
}
