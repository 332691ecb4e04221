package handlers

import (
	"errors"
	"strings"
	"time"

	"github.com/xalgrow/HRMS/config"
	"github.com/xalgrow/HRMS/dto"
	"github.com/xalgrow/HRMS/middleware"
	"github.com/xalgrow/HRMS/models"
	"github.com/xalgrow/HRMS/utils"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// GET /
func Home(c *fiber.Ctx) error {
	return c.SendString("Server is running!")
}

// POST /register
func Register(c *fiber.Ctx) error {
	var req dto.RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "invalid request body", err.Error())
	}

	if validationErrors := req.Validate(); len(validationErrors) > 0 {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "validation error", validationErrors)
	}

	var existing models.User
	if err := config.DB.First(&existing, "username = ?", strings.TrimSpace(req.Username)).Error; err == nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "username already exists", nil)
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "failed to check username", nil)
	}

	if err := config.DB.First(&existing, "email = ?", strings.TrimSpace(req.Email)).Error; err == nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "email already exists", nil)
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "failed to check email", nil)
	}

	passwordHash, err := utils.HashPassword(strings.TrimSpace(req.Password))
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "failed to hash password", nil)
	}

	user := models.User{
		Username:     strings.TrimSpace(req.Username),
		Email:        strings.TrimSpace(req.Email),
		PasswordHash: passwordHash,
		RoleID:       req.RoleID,
	}

	if err := config.DB.Create(&user).Error; err != nil {
		// The check above races with concurrent registrations; the unique
		// indexes are the authority.
		if utils.IsDuplicateError(err) {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, "username or email already exists", nil)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "failed to register user", nil)
	}

	return utils.SuccessResponse(c, fiber.StatusCreated, "user registered successfully", dto.NewUserSummary(user))
}

// POST /login
func Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "invalid request body", err.Error())
	}

	if validationErrors := req.Validate(); len(validationErrors) > 0 {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "validation error", validationErrors)
	}

	var user models.User
	if err := config.DB.First(&user, "email = ?", strings.TrimSpace(req.Email)).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.ErrorResponse(c, fiber.StatusUnauthorized, "invalid email or password", nil)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "failed to retrieve user", nil)
	}

	if !utils.CheckPassword(user.PasswordHash, req.Password) {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, "invalid email or password", nil)
	}

	token, claims, err := utils.GenerateAccessToken(user)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "failed to generate token", nil)
	}

	response := dto.LoginResponse{
		AccessToken: token,
		TokenType:   "Bearer",
		ExpiresAt:   claims.ExpiresAt.Time.In(time.UTC),
		User:        dto.NewUserSummary(user),
	}
	return utils.SuccessResponse(c, fiber.StatusOK, "login successful", response)
}

// GET /protected
func Protected(c *fiber.Ctx) error {
	claims, ok := middleware.GetJWTClaims(c)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, "authorization context missing", nil)
	}

	identity := fiber.Map{
		"user_id": claims.UserID,
		"email":   claims.Email,
		"role_id": claims.RoleID,
	}
	return utils.SuccessResponse(c, fiber.StatusOK, "token is valid", identity)
}

// GET /admin — the RequireAdmin middleware has already rejected non-admins.
func Admin(c *fiber.Ctx) error {
	return utils.SuccessResponse(c, fiber.StatusOK, "Welcome, Admin!", nil)
}
