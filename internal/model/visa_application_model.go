package model

import (
	"time"

	"github.com/google/uuid"
)

type VisaApplication struct {
	Id            uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	UserId        uuid.UUID `gorm:"type:uuid;not null;index"`
	Country       string    `gorm:"type:varchar(100);not null"`
	VisaType      string    `gorm:"type:varchar(100);not null"`
	ApplicantName string    `gorm:"type:varchar(255);not null"`
	Status        string    `gorm:"type:varchar(20);not null"`
	CreatedAt     time.Time `gorm:"autoCreateTime;index"`
	UpdatedAt     time.Time `gorm:"autoUpdateTime"`
}

func (VisaApplication) TableName() string {
	return "visa_applications"
}
