package dto

import (
	"time"

	"afrimigrate-be/pkg/visa"

	"github.com/google/uuid"
)

type EligibilityRequest struct {
	TargetCountry   string          `json:"target_country" validate:"required"`
	YearsExperience float64         `json:"years_experience" validate:"gte=0"`
	LanguageScore   float64         `json:"language_score" validate:"gte=0"`
	Degree          string          `json:"degree"`
	Documents       []visa.Document `json:"documents"`
	Step            *int            `json:"step"`
}

type EligibilityResponse struct {
	visa.Assessment
	AcceptedDocuments []visa.Document `json:"accepted_documents"`
	RejectedDocuments []string        `json:"rejected_documents"`
	Steps             []string        `json:"steps"`
	Progress          int             `json:"progress"`
}

type CreateVisaApplicationRequest struct {
	Country       string `json:"country" validate:"required"`
	VisaType      string `json:"visa_type" validate:"required"`
	ApplicantName string `json:"applicant_name"`
}

type UpdateVisaApplicationStatusRequest struct {
	Id     uuid.UUID
	Status string `json:"status" validate:"required"`
}

type VisaApplicationResponse struct {
	Id            uuid.UUID  `json:"id"`
	Country       string     `json:"country"`
	VisaType      string     `json:"visa_type"`
	ApplicantName string     `json:"applicant_name"`
	Status        string     `json:"status"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     *time.Time `json:"updated_at"`
}
