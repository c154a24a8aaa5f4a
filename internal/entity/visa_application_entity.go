package entity

import (
	"time"

	"github.com/google/uuid"
)

type VisaApplication struct {
	Id            uuid.UUID
	UserId        uuid.UUID
	Country       string
	VisaType      string
	ApplicantName string
	Status        string
	CreatedAt     time.Time
	UpdatedAt     *time.Time
}
