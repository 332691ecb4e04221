package middleware

import (
	"errors"

	"github.com/xalgrow/HRMS/config"
	"github.com/xalgrow/HRMS/models"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// RequireRoleName gates a route on the caller's role name. The role lives in
// the database rather than the token, so renaming a role takes effect on the
// next request, not the next login.
func RequireRoleName(allowedNames ...string) fiber.Handler {
	allowed := make(map[string]struct{}, len(allowedNames))
	for _, name := range allowedNames {
		allowed[name] = struct{}{}
	}

	return func(c *fiber.Ctx) error {
		user, err := GetUserFromContext(c)
		if err != nil {
			if errors.Is(err, fiber.ErrUnauthorized) {
				return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "authorization context missing"})
			}
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to load user"})
		}

		if !roleAllowed(user, allowed) {
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "insufficient permissions"})
		}

		return c.Next()
	}
}

func RequireAdmin() fiber.Handler {
	return RequireRoleName(models.RoleAdmin)
}

// roleAllowed compares role names exactly: "admin" does not satisfy a gate
// on "Admin".
func roleAllowed(user *models.User, allowed map[string]struct{}) bool {
	if user == nil || user.Role == nil {
		return false
	}
	_, ok := allowed[user.Role.Name]
	return ok
}

// GetUserFromContext loads the authenticated user (with its role) identified
// by the verified token claims. Missing claims or a vanished user come back
// as fiber.ErrUnauthorized; anything else is a storage failure.
func GetUserFromContext(c *fiber.Ctx) (*models.User, error) {
	claims, ok := GetJWTClaims(c)
	if !ok {
		return nil, fiber.ErrUnauthorized
	}

	var user models.User
	if err := config.DB.Preload("Role").First(&user, "id = ?", claims.UserID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fiber.ErrUnauthorized
		}
		return nil, err
	}
	return &user, nil
}
