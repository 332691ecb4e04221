package models

import "time"

// Employee is the roster entity that payroll, attendance, onboarding and
// offboarding rows reference. It is distinct from User: an Employee has no
// login, a User has no postal address.
type Employee struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Name        string    `gorm:"type:varchar(100);not null" json:"name"`
	Email       string    `gorm:"type:varchar(100);uniqueIndex;not null" json:"email"`
	PhoneNumber string    `gorm:"type:varchar(15);not null" json:"phone_number"`
	Address     string    `gorm:"type:varchar(200);not null" json:"address"`
	City        string    `gorm:"type:varchar(50);not null" json:"city"`
	State       string    `gorm:"type:varchar(50);not null" json:"state"`
	ZipCode     string    `gorm:"type:varchar(20);not null" json:"zip_code"`
	StartDate   time.Time `gorm:"type:date;not null" json:"start_date"`
}

func (Employee) TableName() string {
	return "employees"
}
