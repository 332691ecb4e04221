package models

import "time"

const (
	AttendancePresent = "Present"
	AttendanceAbsent  = "Absent"
)

// Attendance status is free text. "Present" and "Absent" are the values the
// report pre-seeds; anything else is still stored and tallied under its own key.
type Attendance struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	EmployeeID uint      `gorm:"not null;index" json:"employee_id"`
	Date       time.Time `gorm:"type:date;not null;index" json:"date"`
	Status     string    `gorm:"type:varchar(50);not null" json:"status"`
}

func (Attendance) TableName() string {
	return "attendance"
}
