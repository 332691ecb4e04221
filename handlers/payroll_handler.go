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

// POST /payroll
func CreatePayroll(c *fiber.Ctx) error {
	var req dto.PayrollRequest
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

	payroll := req.ToModel()
	if err := config.DB.Create(&payroll).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "failed to create payroll record", nil)
	}
	return utils.SuccessResponse(c, fiber.StatusCreated, "payroll created successfully", dto.NewPayrollResponse(payroll))
}

// PUT /payroll/:id (full replacement)
func UpdatePayroll(c *fiber.Ctx) error {
	id := c.Params("id")
	var payroll models.Payroll
	if err := config.DB.First(&payroll, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.ErrorResponse(c, fiber.StatusNotFound, "payroll record not found", nil)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "failed to retrieve payroll record", nil)
	}

	var req dto.PayrollRequest
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

	req.Apply(&payroll)

	if err := config.DB.Save(&payroll).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "failed to update payroll record", nil)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, "payroll updated successfully", dto.NewPayrollResponse(payroll))
}

// DELETE /payroll/:id
func DeletePayroll(c *fiber.Ctx) error {
	id := c.Params("id")
	result := config.DB.Delete(&models.Payroll{}, "id = ?", id)
	if result.Error != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "failed to delete payroll record", nil)
	}
	if result.RowsAffected == 0 {
		return utils.ErrorResponse(c, fiber.StatusNotFound, "payroll record not found", nil)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, "payroll deleted successfully", nil)
}
