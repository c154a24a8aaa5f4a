package model

import (
	"time"

	"afrimigrate-be/pkg/profile"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type Profile struct {
	Id                    uuid.UUID                                  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	UserId                uuid.UUID                                  `gorm:"type:uuid;not null;uniqueIndex"`
	Name                  string                                     `gorm:"type:varchar(255);not null"`
	Email                 string                                     `gorm:"type:varchar(255)"`
	Phone                 string                                     `gorm:"type:varchar(50)"`
	CountryOfOrigin       string                                     `gorm:"type:varchar(100)"`
	DestinationPreference string                                     `gorm:"type:varchar(100)"`
	Skills                datatypes.JSONSlice[string]                `gorm:"type:jsonb"`
	Certifications        datatypes.JSONSlice[profile.Certification] `gorm:"type:jsonb"`
	Experience            datatypes.JSONSlice[profile.Experience]    `gorm:"type:jsonb"`
	Languages             datatypes.JSONSlice[profile.Language]      `gorm:"type:jsonb"`
	Documents             datatypes.JSONSlice[profile.Document]      `gorm:"type:jsonb"`
	CreatedAt             time.Time                                  `gorm:"autoCreateTime"`
	UpdatedAt             time.Time                                  `gorm:"autoUpdateTime"`
	DeletedAt             gorm.DeletedAt                             `gorm:"index"`
}

func (Profile) TableName() string {
	return "profiles"
}
