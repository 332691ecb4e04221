package dto

import (
	"net/mail"
	"strings"
	"time"

	"github.com/xalgrow/HRMS/models"
)

type RegisterRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
	RoleID   uint   `json:"role_id"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginResponse struct {
	AccessToken string      `json:"access_token"`
	TokenType   string      `json:"token_type"`
	ExpiresAt   time.Time   `json:"expires_at"`
	User        UserSummary `json:"user"`
}

type UserSummary struct {
	ID       uint   `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
	RoleID   uint   `json:"role_id"`
}

func (r *RegisterRequest) Validate() map[string]string {
	errors := make(map[string]string)

	if strings.TrimSpace(r.Username) == "" {
		errors["username"] = "username is required"
	}
	if strings.TrimSpace(r.Email) == "" {
		errors["email"] = "email is required"
	} else if _, err := mail.ParseAddress(r.Email); err != nil {
		errors["email"] = "invalid email format"
	}
	if strings.TrimSpace(r.Password) == "" {
		errors["password"] = "password is required"
	} else if len(r.Password) < 8 {
		errors["password"] = "password must be at least 8 characters"
	}
	if r.RoleID == 0 {
		errors["role_id"] = "role_id is required"
	}

	return errors
}

func (r *LoginRequest) Validate() map[string]string {
	errors := make(map[string]string)

	if strings.TrimSpace(r.Email) == "" {
		errors["email"] = "email is required"
	}
	if r.Password == "" {
		errors["password"] = "password is required"
	}

	return errors
}

func NewUserSummary(user models.User) UserSummary {
	return UserSummary{
		ID:       user.ID,
		Username: user.Username,
		Email:    user.Email,
		RoleID:   user.RoleID,
	}
}
