package visa

import (
	"fmt"
	"slices"
)

type Status string

const (
	StatusDraft     Status = "Draft"
	StatusSubmitted Status = "Submitted"
	StatusInReview  Status = "In Review"
	StatusApproved  Status = "Approved"
	StatusRejected  Status = "Rejected"
)

var Statuses = []Status{StatusDraft, StatusSubmitted, StatusInReview, StatusApproved, StatusRejected}

func ValidStatus(s Status) bool {
	return slices.Contains(Statuses, s)
}

const (
	MaxDocumentBytes = 5 * 1024 * 1024

	DefaultApplicantName = "Applicant"
)

var AllowedDocumentTypes = []string{
	"application/pdf",
	"image/png",
	"image/jpeg",
	"application/msword",
	"application/vnd.openxmlformats-officedocument.wordprocessingml.document",
}

type Document struct {
	Name        string `json:"name"`
	ContentType string `json:"content_type"`
	Size        int64  `json:"size"`
}

// FilterDocuments splits uploads into accepted ones and per-file rejection
// reasons. Rejected files do not fail the whole batch.
func FilterDocuments(docs []Document) (accepted []Document, rejected []string) {
	accepted = make([]Document, 0, len(docs))
	for _, d := range docs {
		switch {
		case !slices.Contains(AllowedDocumentTypes, d.ContentType):
			rejected = append(rejected, fmt.Sprintf("%s: unsupported type", d.Name))
		case d.Size > MaxDocumentBytes:
			rejected = append(rejected, fmt.Sprintf("%s: exceeds 5MB", d.Name))
		default:
			accepted = append(accepted, d)
		}
	}
	return accepted, rejected
}
