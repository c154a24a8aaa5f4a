package dto

import (
	"time"

	"afrimigrate-be/pkg/jobs"

	"github.com/google/uuid"
)

type JobSearchRequest struct {
	Query    string `query:"q"`
	Location string `query:"location"`
	Type     string `query:"type" validate:"omitempty,oneof=Full-time Part-time Contract"`
	Skills   string `query:"skills"`
	Tab      string `query:"tab" validate:"omitempty,oneof=visa nonVisa"`
	Page     int    `query:"page" validate:"gte=0,lte=1000"`
}

// JobListing hides the details of premium listings from free viewers.
type JobListing struct {
	jobs.Job
	Locked bool `json:"locked"`
}

type JobSearchResponse struct {
	Jobs    []JobListing `json:"jobs"`
	Total   int          `json:"total"`
	Page    int          `json:"page"`
	HasMore bool         `json:"has_more"`
}

type SaveJobRequest struct {
	JobId string `json:"job_id" validate:"required"`
}

type SavedJobResponse struct {
	Id        uuid.UUID `json:"id"`
	JobId     string    `json:"job_id"`
	Title     string    `json:"title"`
	Employer  string    `json:"employer"`
	Location  string    `json:"location"`
	URL       string    `json:"url"`
	CreatedAt time.Time `json:"created_at"`
}
