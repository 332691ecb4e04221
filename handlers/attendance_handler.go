package handlers

import (
	"errors"
	"strings"

	"github.com/xalgrow/HRMS/config"
	"github.com/xalgrow/HRMS/dto"
	"github.com/xalgrow/HRMS/models"
	"github.com/xalgrow/HRMS/utils"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// POST /attendance
func MarkAttendance(c *fiber.Ctx) error {
	var req dto.AttendanceRequest
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

	attendance := req.ToModel()
	if err := config.DB.Create(&attendance).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "failed to mark attendance", nil)
	}
	return utils.SuccessResponse(c, fiber.StatusCreated, "attendance marked successfully", dto.NewAttendanceResponse(attendance))
}

// GET /attendance?employee_id=
func ListAttendance(c *fiber.Ctx) error {
	employeeID := strings.TrimSpace(c.Query("employee_id"))

	tx := config.DB.Order("id")
	if employeeID != "" {
		tx = tx.Where("employee_id = ?", employeeID)
	}

	var records []models.Attendance
	if err := tx.Find(&records).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "failed to retrieve attendance", nil)
	}

	responses := make([]dto.AttendanceResponse, 0, len(records))
	for i := range records {
		responses = append(responses, dto.NewAttendanceResponse(records[i]))
	}
	return utils.SuccessResponse(c, fiber.StatusOK, "attendance retrieved successfully", responses)
}

// PUT /attendance/:id (full replacement)
func UpdateAttendance(c *fiber.Ctx) error {
	id := c.Params("id")
	var attendance models.Attendance
	if err := config.DB.First(&attendance, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.ErrorResponse(c, fiber.StatusNotFound, "attendance record not found", nil)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "failed to retrieve attendance record", nil)
	}

	var req dto.AttendanceRequest
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

	req.Apply(&attendance)

	if err := config.DB.Save(&attendance).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "failed to update attendance record", nil)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, "attendance updated successfully", dto.NewAttendanceResponse(attendance))
}

// DELETE /attendance/:id
func DeleteAttendance(c *fiber.Ctx) error {
	id := c.Params("id")
	result := config.DB.Delete(&models.Attendance{}, "id = ?", id)
	if result.Error != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "failed to delete attendance record", nil)
	}
	if result.RowsAffected == 0 {
		return utils.ErrorResponse(c, fiber.StatusNotFound, "attendance record not found", nil)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, "attendance deleted successfully", nil)
}
