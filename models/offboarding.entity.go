package models

import "time"

type Offboarding struct {
	ID                uint      `gorm:"primaryKey" json:"id"`
	EmployeeID        uint      `gorm:"not null;index" json:"employee_id"`
	OffboardingDate   time.Time `gorm:"type:date;not null" json:"offboarding_date"`
	Reason            string    `gorm:"type:varchar(200);not null" json:"reason"`
	ExitInterviewDone bool      `gorm:"not null" json:"exit_interview_done"`
	Status            string    `gorm:"type:varchar(50);not null" json:"status"`
}

func (Offboarding) TableName() string {
	return "offboarding"
}
