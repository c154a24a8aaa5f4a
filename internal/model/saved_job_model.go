package model

import (
	"time"

	"github.com/google/uuid"
)

type SavedJob struct {
	Id        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	UserId    uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_saved_jobs_user_job"`
	JobId     string    `gorm:"type:varchar(64);not null;uniqueIndex:idx_saved_jobs_user_job"`
	Title     string    `gorm:"type:varchar(255);not null"`
	Employer  string    `gorm:"type:varchar(255)"`
	Location  string    `gorm:"type:varchar(255)"`
	URL       string    `gorm:"type:text"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
}

func (SavedJob) TableName() string {
	return "saved_jobs"
}
