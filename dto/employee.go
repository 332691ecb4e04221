package dto

import (
	"net/mail"
	"strings"

	"github.com/xalgrow/HRMS/models"
	"github.com/xalgrow/HRMS/utils"
)

// EmployeeRequest carries the full roster field set. Create and update both
// require every field; update is a full replacement.
type EmployeeRequest struct {
	Name        string `json:"name"`
	Email       string `json:"email"`
	PhoneNumber string `json:"phone_number"`
	Address     string `json:"address"`
	City        string `json:"city"`
	State       string `json:"state"`
	ZipCode     string `json:"zip_code"`
	StartDate   string `json:"start_date"`
}

type EmployeeResponse struct {
	ID          uint   `json:"id"`
	Name        string `json:"name"`
	Email       string `json:"email"`
	PhoneNumber string `json:"phone_number"`
	Address     string `json:"address"`
	City        string `json:"city"`
	State       string `json:"state"`
	ZipCode     string `json:"zip_code"`
	StartDate   string `json:"start_date"`
}

func (r *EmployeeRequest) Validate() map[string]string {
	errors := make(map[string]string)

	if strings.TrimSpace(r.Name) == "" {
		errors["name"] = "name is required"
	}
	if strings.TrimSpace(r.Email) == "" {
		errors["email"] = "email is required"
	} else if _, err := mail.ParseAddress(r.Email); err != nil {
		errors["email"] = "invalid email format"
	}
	if strings.TrimSpace(r.PhoneNumber) == "" {
		errors["phone_number"] = "phone_number is required"
	}
	if strings.TrimSpace(r.Address) == "" {
		errors["address"] = "address is required"
	}
	if strings.TrimSpace(r.City) == "" {
		errors["city"] = "city is required"
	}
	if strings.TrimSpace(r.State) == "" {
		errors["state"] = "state is required"
	}
	if strings.TrimSpace(r.ZipCode) == "" {
		errors["zip_code"] = "zip_code is required"
	}
	if strings.TrimSpace(r.StartDate) == "" {
		errors["start_date"] = "start_date is required"
	} else if _, err := utils.ParseDate(r.StartDate); err != nil {
		errors["start_date"] = "start_date must be YYYY-MM-DD"
	}

	return errors
}

// Apply overwrites every roster field; Validate must have passed first.
func (r *EmployeeRequest) Apply(employee *models.Employee) {
	startDate, _ := utils.ParseDate(r.StartDate)

	employee.Name = strings.TrimSpace(r.Name)
	employee.Email = strings.TrimSpace(r.Email)
	employee.PhoneNumber = strings.TrimSpace(r.PhoneNumber)
	employee.Address = strings.TrimSpace(r.Address)
	employee.City = strings.TrimSpace(r.City)
	employee.State = strings.TrimSpace(r.State)
	employee.ZipCode = strings.TrimSpace(r.ZipCode)
	employee.StartDate = startDate
}

func (r *EmployeeRequest) ToModel() models.Employee {
	var employee models.Employee
	r.Apply(&employee)
	return employee
}

func NewEmployeeResponse(employee models.Employee) EmployeeResponse {
	return EmployeeResponse{
		ID:          employee.ID,
		Name:        employee.Name,
		Email:       employee.Email,
		PhoneNumber: employee.PhoneNumber,
		Address:     employee.Address,
		City:        employee.City,
		State:       employee.State,
		ZipCode:     employee.ZipCode,
		StartDate:   utils.FormatDate(employee.StartDate),
	}
}
