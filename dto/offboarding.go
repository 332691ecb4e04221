package dto

import (
	"strings"

	"github.com/xalgrow/HRMS/models"
	"github.com/xalgrow/HRMS/utils"
)

type OffboardingRequest struct {
	EmployeeID        uint   `json:"employee_id"`
	OffboardingDate   string `json:"offboarding_date"`
	Reason            string `json:"reason"`
	ExitInterviewDone *bool  `json:"exit_interview_done"`
	Status            string `json:"status"`
}

type OffboardingResponse struct {
	ID                uint   `json:"id"`
	EmployeeID        uint   `json:"employee_id"`
	OffboardingDate   string `json:"offboarding_date"`
	Reason            string `json:"reason"`
	ExitInterviewDone bool   `json:"exit_interview_done"`
	Status            string `json:"status"`
}

func (r *OffboardingRequest) Validate() map[string]string {
	errors := make(map[string]string)

	if r.EmployeeID == 0 {
		errors["employee_id"] = "employee_id is required"
	}
	if strings.TrimSpace(r.OffboardingDate) == "" {
		errors["offboarding_date"] = "offboarding_date is required"
	} else if _, err := utils.ParseDate(r.OffboardingDate); err != nil {
		errors["offboarding_date"] = "offboarding_date must be YYYY-MM-DD"
	}
	if strings.TrimSpace(r.Reason) == "" {
		errors["reason"] = "reason is required"
	}
	if r.ExitInterviewDone == nil {
		errors["exit_interview_done"] = "exit_interview_done is required"
	}
	if strings.TrimSpace(r.Status) == "" {
		errors["status"] = "status is required"
	}

	return errors
}

func (r *OffboardingRequest) Apply(offboarding *models.Offboarding) {
	offboardingDate, _ := utils.ParseDate(r.OffboardingDate)

	offboarding.EmployeeID = r.EmployeeID
	offboarding.OffboardingDate = offboardingDate
	offboarding.Reason = strings.TrimSpace(r.Reason)
	offboarding.ExitInterviewDone = *r.ExitInterviewDone
	offboarding.Status = strings.TrimSpace(r.Status)
}

func (r *OffboardingRequest) ToModel() models.Offboarding {
	var offboarding models.Offboarding
	r.Apply(&offboarding)
	return offboarding
}

func NewOffboardingResponse(offboarding models.Offboarding) OffboardingResponse {
	return OffboardingResponse{
		ID:                offboarding.ID,
		EmployeeID:        offboarding.EmployeeID,
		OffboardingDate:   utils.FormatDate(offboarding.OffboardingDate),
		Reason:            offboarding.Reason,
		ExitInterviewDone: offboarding.ExitInterviewDone,
		Status:            offboarding.Status,
	}
}
