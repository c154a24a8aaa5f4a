package dto

import (
	"time"

	"afrimigrate-be/pkg/profile"

	"github.com/google/uuid"
)

type SaveProfileRequest struct {
	profile.Profile
}

type ProfileResponse struct {
	Id uuid.UUID `json:"id"`
	profile.Profile
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt *time.Time `json:"updated_at"`
}

type AddProfileDocumentRequest struct {
	Name string `json:"name" validate:"required"`
	Type string `json:"type"`
	Size int64  `json:"size" validate:"gte=0"`
}
