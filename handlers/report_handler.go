package handlers

import (
	"time"

	"github.com/xalgrow/HRMS/config"
	"github.com/xalgrow/HRMS/models"
	"github.com/xalgrow/HRMS/utils"

	"github.com/gofiber/fiber/v2"
)

// parseReportRange reads the start_date/end_date query parameters shared by
// both reports. The range is inclusive on both ends.
func parseReportRange(c *fiber.Ctx) (time.Time, time.Time, map[string]string) {
	errors := make(map[string]string)

	var start, end time.Time
	var err error

	if raw := c.Query("start_date"); raw == "" {
		errors["start_date"] = "start_date is required"
	} else if start, err = utils.ParseDate(raw); err != nil {
		errors["start_date"] = "start_date must be YYYY-MM-DD"
	}

	if raw := c.Query("end_date"); raw == "" {
		errors["end_date"] = "end_date is required"
	} else if end, err = utils.ParseDate(raw); err != nil {
		errors["end_date"] = "end_date must be YYYY-MM-DD"
	}

	if len(errors) > 0 {
		return time.Time{}, time.Time{}, errors
	}
	return start, end, nil
}

// tallyAttendance groups records by employee and counts occurrences of each
// status. Every employee's tally starts at {Present: 0, Absent: 0}; any other
// status accumulates under its own key.
func tallyAttendance(records []models.Attendance) map[uint]map[string]int {
	result := make(map[uint]map[string]int)
	for _, record := range records {
		tally, ok := result[record.EmployeeID]
		if !ok {
			tally = map[string]int{
				models.AttendancePresent: 0,
				models.AttendanceAbsent:  0,
			}
			result[record.EmployeeID] = tally
		}
		tally[record.Status]++
	}
	return result
}

// sumPayroll groups records by employee and sums the amounts. Plain float64
// addition, no currency rounding.
func sumPayroll(records []models.Payroll) map[uint]float64 {
	result := make(map[uint]float64)
	for _, record := range records {
		result[record.EmployeeID] += record.Amount
	}
	return result
}

// GET /attendance/report?start_date&end_date
func AttendanceReport(c *fiber.Ctx) error {
	start, end, validationErrors := parseReportRange(c)
	if validationErrors != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "validation error", validationErrors)
	}

	var records []models.Attendance
	if err := config.DB.Where("date >= ? AND date <= ?", start, end).Find(&records).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "failed to retrieve attendance", nil)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, "attendance report generated", tallyAttendance(records))
}

// GET /payroll/report?start_date&end_date
func PayrollReport(c *fiber.Ctx) error {
	start, end, validationErrors := parseReportRange(c)
	if validationErrors != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "validation error", validationErrors)
	}

	var records []models.Payroll
	if err := config.DB.Where("payment_date >= ? AND payment_date <= ?", start, end).Find(&records).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "failed to retrieve payroll", nil)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, "payroll report generated", sumPayroll(records))
}
