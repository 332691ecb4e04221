package handlers

import (
	"errors"

	"github.com/xalgrow/HRMS/config"
	"github.com/xalgrow/HRMS/dto"
	"github.com/xalgrow/HRMS/models"
	"github.com/xalgrow/HRMS/utils"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// POST /role
func CreateRole(c *fiber.Ctx) error {
	var req dto.CreateRoleRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "invalid request body", err.Error())
	}

	if validationErrors := req.Validate(); len(validationErrors) > 0 {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "validation error", validationErrors)
	}

	role := req.ToModel()
	if err := config.DB.Create(&role).Error; err != nil {
		if utils.IsDuplicateError(err) {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, "role already exists", nil)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "failed to create role", nil)
	}
	return utils.SuccessResponse(c, fiber.StatusCreated, "role created successfully", dto.NewRoleResponse(role))
}

// GET /role
func ListRoles(c *fiber.Ctx) error {
	var roles []models.Role
	if err := config.DB.Order("id").Find(&roles).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "failed to retrieve roles", nil)
	}

	responses := make([]dto.RoleResponse, 0, len(roles))
	for i := range roles {
		responses = append(responses, dto.NewRoleResponse(roles[i]))
	}
	return utils.SuccessResponse(c, fiber.StatusOK, "roles retrieved successfully", responses)
}

// PUT /role/:id (name optional, kept when omitted)
func UpdateRole(c *fiber.Ctx) error {
	id := c.Params("id")
	var role models.Role
	if err := config.DB.First(&role, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.ErrorResponse(c, fiber.StatusNotFound, "role not found", nil)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "failed to retrieve role", nil)
	}

	var req dto.UpdateRoleRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "invalid request body", err.Error())
	}

	if validationErrors := req.Validate(); len(validationErrors) > 0 {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "validation error", validationErrors)
	}

	if req.Name != nil {
		role.Name = *req.Name
	}

	if err := config.DB.Save(&role).Error; err != nil {
		if utils.IsDuplicateError(err) {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, "role already exists", nil)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "failed to update role", nil)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, "role updated successfully", dto.NewRoleResponse(role))
}

// DELETE /role/:id
func DeleteRole(c *fiber.Ctx) error {
	id := c.Params("id")
	result := config.DB.Delete(&models.Role{}, "id = ?", id)
	if result.Error != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "failed to delete role", nil)
	}
	if result.RowsAffected == 0 {
		return utils.ErrorResponse(c, fiber.StatusNotFound, "role not found", nil)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, "role deleted successfully", nil)
}
