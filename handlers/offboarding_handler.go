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

// POST /offboarding
func CreateOffboarding(c *fiber.Ctx) error {
	var req dto.OffboardingRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "invalid request body", err.Error())
	}

	if validationErrors := req.Validate(); len(validationErrors) > 0 {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "validation error", validationErrors)
	}

	exists, err := employeeExists(req.EmployeeID)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "failed to check employee", nil)
	}
	if !exists {
		return utils.ErrorResponse(c, fiber.StatusNotFound, "employee not found", nil)
	}

	offboarding := req.ToModel()
	if err := config.DB.Create(&offboarding).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "failed to create offboarding record", nil)
	}
	return utils.SuccessResponse(c, fiber.StatusCreated, "offboarding created successfully", dto.NewOffboardingResponse(offboarding))
}

// GET /offboarding/:id
func GetOffboardingByID(c *fiber.Ctx) error {
	id := c.Params("id")
	var offboarding models.Offboarding
	if err := config.DB.First(&offboarding, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.ErrorResponse(c, fiber.StatusNotFound, "offboarding record not found", nil)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "failed to retrieve offboarding record", nil)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, "offboarding retrieved successfully", dto.NewOffboardingResponse(offboarding))
}

// PUT /offboarding/:id (full replacement)
func UpdateOffboarding(c *fiber.Ctx) error {
	id := c.Params("id")
	var offboarding models.Offboarding
	if err := config.DB.First(&offboarding, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.ErrorResponse(c, fiber.StatusNotFound, "offboarding record not found", nil)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "failed to retrieve offboarding record", nil)
	}

	var req dto.OffboardingRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "invalid request body", err.Error())
	}

	if validationErrors := req.Validate(); len(validationErrors) > 0 {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "validation error", validationErrors)
	}

	exists, err := employeeExists(req.EmployeeID)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "failed to check employee", nil)
	}
	if !exists {
		return utils.ErrorResponse(c, fiber.StatusNotFound, "employee not found", nil)
	}

	req.Apply(&offboarding)

	if err := config.DB.Save(&offboarding).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "failed to update offboarding record", nil)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, "offboarding updated successfully", dto.NewOffboardingResponse(offboarding))
}

// DELETE /offboarding/:id
func DeleteOffboarding(c *fiber.Ctx) error {
	id := c.Params("id")
	result := config.DB.Delete(&models.Offboarding{}, "id = ?", id)
	if result.Error != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "failed to delete offboarding record", nil)
	}
	if result.RowsAffected == 0 {
		return utils.ErrorResponse(c, fiber.StatusNotFound, "offboarding record not found", nil)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, "offboarding deleted successfully", nil)
}
