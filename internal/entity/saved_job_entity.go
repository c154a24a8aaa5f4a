package entity

import (
	"time"

	"github.com/google/uuid"
)

// SavedJob snapshots the listing so the saved list survives catalog changes.
type SavedJob struct {
	Id        uuid.UUID
	UserId    uuid.UUID
	JobId     string
	Title     string
	Employer  string
	Location  string
	URL       string
	CreatedAt time.Time
}
