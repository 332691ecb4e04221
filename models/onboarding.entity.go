package models

import "time"

type Onboarding struct {
	ID                 uint      `gorm:"primaryKey" json:"id"`
	EmployeeID         uint      `gorm:"not null;index" json:"employee_id"`
	StartDate          time.Time `gorm:"type:date;not null" json:"start_date"`
	EndDate            time.Time `gorm:"type:date;not null" json:"end_date"`
	DocumentsSubmitted bool      `gorm:"not null" json:"documents_submitted"`
	TrainingCompleted  bool      `gorm:"not null" json:"training_completed"`
	Status             string    `gorm:"type:varchar(50);not null" json:"status"`
	// DocumentKey is the S3 object key of the uploaded paperwork, empty when
	// nothing has been uploaded yet.
	DocumentKey string `gorm:"type:varchar(255)" json:"-"`
}

func (Onboarding) TableName() string {
	return "onboarding"
}
