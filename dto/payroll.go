package dto

import (
	"strings"

	"github.com/xalgrow/HRMS/models"
	"github.com/xalgrow/HRMS/utils"
)

type PayrollRequest struct {
	EmployeeID  uint     `json:"employee_id"`
	Amount      *float64 `json:"amount"`
	PaymentDate string   `json:"payment_date"`
}

type PayrollResponse struct {
	ID          uint    `json:"id"`
	EmployeeID  uint    `json:"employee_id"`
	Amount      float64 `json:"amount"`
	PaymentDate string  `json:"payment_date"`
}

func (r *PayrollRequest) Validate() map[string]string {
	errors := make(map[string]string)

	if r.EmployeeID == 0 {
		errors["employee_id"] = "employee_id is required"
	}
	if r.Amount == nil {
		errors["amount"] = "amount is required"
	} else if *r.Amount < 0 {
		errors["amount"] = "amount must not be negative"
	}
	if strings.TrimSpace(r.PaymentDate) == "" {
		errors["payment_date"] = "payment_date is required"
	} else if _, err := utils.ParseDate(r.PaymentDate); err != nil {
		errors["payment_date"] = "payment_date must be YYYY-MM-DD"
	}

	return errors
}

func (r *PayrollRequest) Apply(payroll *models.Payroll) {
	paymentDate, _ := utils.ParseDate(r.PaymentDate)

	payroll.EmployeeID = r.EmployeeID
	payroll.Amount = *r.Amount
	payroll.PaymentDate = paymentDate
}

func (r *PayrollRequest) ToModel() models.Payroll {
	var payroll models.Payroll
	r.Apply(&payroll)
	return payroll
}

func NewPayrollResponse(payroll models.Payroll) PayrollResponse {
	return PayrollResponse{
		ID:          payroll.ID,
		EmployeeID:  payroll.EmployeeID,
		Amount:      payroll.Amount,
		PaymentDate: utils.FormatDate(payroll.PaymentDate),
	}
}
