package dto

import (
	"strings"

	"github.com/xalgrow/HRMS/models"
	"github.com/xalgrow/HRMS/utils"
)

type AttendanceRequest struct {
	EmployeeID uint   `json:"employee_id"`
	Date       string `json:"date"`
	Status     string `json:"status"`
}

type AttendanceResponse struct {
	ID         uint   `json:"id"`
	EmployeeID uint   `json:"employee_id"`
	Date       string `json:"date"`
	Status     string `json:"status"`
}

func (r *AttendanceRequest) Validate() map[string]string {
	errors := make(map[string]string)

	if r.EmployeeID == 0 {
		errors["employee_id"] = "employee_id is required"
	}
	if strings.TrimSpace(r.Date) == "" {
		errors["date"] = "date is required"
	} else if _, err := utils.ParseDate(r.Date); err != nil {
		errors["date"] = "date must be YYYY-MM-DD"
	}
	if strings.TrimSpace(r.Status) == "" {
		errors["status"] = "status is required"
	}

	return errors
}

func (r *AttendanceRequest) Apply(attendance *models.Attendance) {
	date, _ := utils.ParseDate(r.Date)

	attendance.EmployeeID = r.EmployeeID
	attendance.Date = date
	attendance.Status = strings.TrimSpace(r.Status)
}

func (r *AttendanceRequest) ToModel() models.Attendance {
	var attendance models.Attendance
	r.Apply(&attendance)
	return attendance
}

func NewAttendanceResponse(attendance models.Attendance) AttendanceResponse {
	return AttendanceResponse{
		ID:         attendance.ID,
		EmployeeID: attendance.EmployeeID,
		Date:       utils.FormatDate(attendance.Date),
		Status:     attendance.Status,
	}
}
