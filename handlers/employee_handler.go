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

// employeeExists backs the referential check on payroll, attendance,
// onboarding and offboarding creates.
func employeeExists(id uint) (bool, error) {
	var employee models.Employee
	err := config.DB.Select("id").First(&employee, "id = ?", id).Error
	if err == nil {
		return true, nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return false, nil
	}
	return false, err
}

// POST /employee
func CreateEmployee(c *fiber.Ctx) error {
	var req dto.EmployeeRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "invalid request body", err.Error())
	}

	if validationErrors := req.Validate(); len(validationErrors) > 0 {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "validation error", validationErrors)
	}

	employee := req.ToModel()
	if err := config.DB.Create(&employee).Error; err != nil {
		if utils.IsDuplicateError(err) {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, "email already exists", nil)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "failed to create employee", nil)
	}
	return utils.SuccessResponse(c, fiber.StatusCreated, "employee created successfully", dto.NewEmployeeResponse(employee))
}

// GET /employee
func ListEmployees(c *fiber.Ctx) error {
	var employees []models.Employee
	if err := config.DB.Order("id").Find(&employees).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "failed to retrieve employees", nil)
	}

	responses := make([]dto.EmployeeResponse, 0, len(employees))
	for i := range employees {
		responses = append(responses, dto.NewEmployeeResponse(employees[i]))
	}
	return utils.SuccessResponse(c, fiber.StatusOK, "employees retrieved successfully", responses)
}

// GET /employee/:id
func GetEmployeeByID(c *fiber.Ctx) error {
	id := c.Params("id")
	var employee models.Employee
	if err := config.DB.First(&employee, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.ErrorResponse(c, fiber.StatusNotFound, "employee not found", nil)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "failed to retrieve employee", nil)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, "employee retrieved successfully", dto.NewEmployeeResponse(employee))
}

// PUT /employee/:id (full replacement)
func UpdateEmployee(c *fiber.Ctx) error {
	id := c.Params("id")
	var employee models.Employee
	if err := config.DB.First(&employee, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.ErrorResponse(c, fiber.StatusNotFound, "employee not found", nil)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "failed to retrieve employee", nil)
	}

	var req dto.EmployeeRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "invalid request body", err.Error())
	}

	if validationErrors := req.Validate(); len(validationErrors) > 0 {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "validation error", validationErrors)
	}

	req.Apply(&employee)

	if err := config.DB.Save(&employee).Error; err != nil {
		if utils.IsDuplicateError(err) {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, "email already exists", nil)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "failed to update employee", nil)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, "employee updated successfully", dto.NewEmployeeResponse(employee))
}

// DELETE /employee/:id — no cascade: payroll/attendance rows referencing the
// employee stay behind.
func DeleteEmployee(c *fiber.Ctx) error {
	id := c.Params("id")
	result := config.DB.Delete(&models.Employee{}, "id = ?", id)
	if result.Error != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "failed to delete employee", nil)
	}
	if result.RowsAffected == 0 {
		return utils.ErrorResponse(c, fiber.StatusNotFound, "employee not found", nil)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, "employee deleted successfully", nil)
}
