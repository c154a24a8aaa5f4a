package entity

import (
	"time"

	"afrimigrate-be/pkg/profile"

	"github.com/google/uuid"
)

type Profile struct {
	Id             uuid.UUID
	UserId         uuid.UUID
	Personal       profile.Personal
	Skills         []string
	Certifications []profile.Certification
	Experience     []profile.Experience
	Languages      []profile.Language
	Documents      []profile.Document
	CreatedAt      time.Time
	UpdatedAt      *time.Time
}
