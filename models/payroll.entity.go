package models

import "time"

type Payroll struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	EmployeeID  uint      `gorm:"not null;index" json:"employee_id"`
	Amount      float64   `gorm:"not null" json:"amount"`
	PaymentDate time.Time `gorm:"type:date;not null;index" json:"payment_date"`
}

func (Payroll) TableName() string {
	return "payroll"
}
