package dto

import (
	"strings"

	"github.com/xalgrow/HRMS/models"
)

type CreateRoleRequest struct {
	Name string `json:"name"`
}

// UpdateRoleRequest is partial: a missing name leaves the role unchanged.
type UpdateRoleRequest struct {
	Name *string `json:"name"`
}

type RoleResponse struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}

func (r *CreateRoleRequest) Validate() map[string]string {
	errors := make(map[string]string)

	if strings.TrimSpace(r.Name) == "" {
		errors["name"] = "name is required"
	}

	return errors
}

func (r *UpdateRoleRequest) Validate() map[string]string {
	errors := make(map[string]string)

	if r.Name != nil && strings.TrimSpace(*r.Name) == "" {
		errors["name"] = "name must not be empty"
	}

	return errors
}

func (r *CreateRoleRequest) ToModel() models.Role {
	return models.Role{Name: strings.TrimSpace(r.Name)}
}

func NewRoleResponse(role models.Role) RoleResponse {
	return RoleResponse{ID: role.ID, Name: role.Name}
}
