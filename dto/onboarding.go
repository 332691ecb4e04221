package dto

import (
	"strings"

	"github.com/xalgrow/HRMS/models"
	"github.com/xalgrow/HRMS/utils"
)

type OnboardingRequest struct {
	EmployeeID         uint   `json:"employee_id"`
	StartDate          string `json:"start_date"`
	EndDate            string `json:"end_date"`
	DocumentsSubmitted *bool  `json:"documents_submitted"`
	TrainingCompleted  *bool  `json:"training_completed"`
	Status             string `json:"status"`
}

type OnboardingResponse struct {
	ID                 uint   `json:"id"`
	EmployeeID         uint   `json:"employee_id"`
	StartDate          string `json:"start_date"`
	EndDate            string `json:"end_date"`
	DocumentsSubmitted bool   `json:"documents_submitted"`
	TrainingCompleted  bool   `json:"training_completed"`
	Status             string `json:"status"`
	// DocumentURL is a presigned link to the uploaded paperwork, omitted when
	// no document exists or storage is disabled.
	DocumentURL string `json:"document_url,omitempty"`
}

func (r *OnboardingRequest) Validate() map[string]string {
	errors := make(map[string]string)

	if r.EmployeeID == 0 {
		errors["employee_id"] = "employee_id is required"
	}
	if strings.TrimSpace(r.StartDate) == "" {
		errors["start_date"] = "start_date is required"
	} else if _, err := utils.ParseDate(r.StartDate); err != nil {
		errors["start_date"] = "start_date must be YYYY-MM-DD"
	}
	if strings.TrimSpace(r.EndDate) == "" {
		errors["end_date"] = "end_date is required"
	} else if _, err := utils.ParseDate(r.EndDate); err != nil {
		errors["end_date"] = "end_date must be YYYY-MM-DD"
	}
	if r.DocumentsSubmitted == nil {
		errors["documents_submitted"] = "documents_submitted is required"
	}
	if r.TrainingCompleted == nil {
		errors["training_completed"] = "training_completed is required"
	}
	if strings.TrimSpace(r.Status) == "" {
		errors["status"] = "status is required"
	}

	return errors
}

func (r *OnboardingRequest) Apply(onboarding *models.Onboarding) {
	startDate, _ := utils.ParseDate(r.StartDate)
	endDate, _ := utils.ParseDate(r.EndDate)

	onboarding.EmployeeID = r.EmployeeID
	onboarding.StartDate = startDate
	onboarding.EndDate = endDate
	onboarding.DocumentsSubmitted = *r.DocumentsSubmitted
	onboarding.TrainingCompleted = *r.TrainingCompleted
	onboarding.Status = strings.TrimSpace(r.Status)
}

func (r *OnboardingRequest) ToModel() models.Onboarding {
	var onboarding models.Onboarding
	r.Apply(&onboarding)
	return onboarding
}

func NewOnboardingResponse(onboarding models.Onboarding) OnboardingResponse {
	return OnboardingResponse{
		ID:                 onboarding.ID,
		EmployeeID:         onboarding.EmployeeID,
		StartDate:          utils.FormatDate(onboarding.StartDate),
		EndDate:            utils.FormatDate(onboarding.EndDate),
		DocumentsSubmitted: onboarding.DocumentsSubmitted,
		TrainingCompleted:  onboarding.TrainingCompleted,
		Status:             onboarding.Status,
	}
}
