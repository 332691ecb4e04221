package dto

import (
	"strings"

	"github.com/xalgrow/HRMS/models"
)

// UpdateUserRequest is partial: omitted fields keep their current value.
type UpdateUserRequest struct {
	Username *string `json:"username"`
	Email    *string `json:"email"`
	RoleID   *uint   `json:"role_id"`
}

type UserResponse struct {
	ID       uint   `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
	RoleID   uint   `json:"role_id"`
}

func (r *UpdateUserRequest) Validate() map[string]string {
	errors := make(map[string]string)

	if r.Username != nil && strings.TrimSpace(*r.Username) == "" {
		errors["username"] = "username must not be empty"
	}
	if r.Email != nil && strings.TrimSpace(*r.Email) == "" {
		errors["email"] = "email must not be empty"
	}
	if r.RoleID != nil && *r.RoleID == 0 {
		errors["role_id"] = "role_id must not be zero"
	}

	return errors
}

func (r *UpdateUserRequest) Apply(user *models.User) {
	if r.Username != nil {
		user.Username = strings.TrimSpace(*r.Username)
	}
	if r.Email != nil {
		user.Email = strings.TrimSpace(*r.Email)
	}
	if r.RoleID != nil {
		user.RoleID = *r.RoleID
	}
}

func NewUserResponse(user models.User) UserResponse {
	return UserResponse{
		ID:       user.ID,
		Username: user.Username,
		Email:    user.Email,
		RoleID:   user.RoleID,
	}
}
