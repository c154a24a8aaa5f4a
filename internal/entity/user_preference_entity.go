package entity

import (
	"time"

	"github.com/google/uuid"
)

type UserPreference struct {
	UserId                 uuid.UUID
	OriginCountryCode      *string
	DestinationCountryCode *string
	Locale                 string
	UpdatedAt              time.Time
}
