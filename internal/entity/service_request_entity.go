package entity

import (
	"time"

	"github.com/google/uuid"
)

type ServiceRequest struct {
	Id         uuid.UUID
	UserId     uuid.UUID
	Type       string
	Title      string
	PriceCents *int64
	Status     string
	Details    map[string]interface{}
	CreatedAt  time.Time
	UpdatedAt  *time.Time
}
