package model

import (
	"time"

	"github.com/google/uuid"
)

type UserPreference struct {
	UserId                 uuid.UUID `gorm:"type:uuid;primaryKey"`
	OriginCountryCode      *string   `gorm:"type:varchar(2)"`
	DestinationCountryCode *string   `gorm:"type:varchar(2)"`
	Locale                 string    `gorm:"type:varchar(5);not null;default:'en'"`
	UpdatedAt              time.Time `gorm:"autoUpdateTime"`
}

func (UserPreference) TableName() string {
	return "user_preferences"
}
