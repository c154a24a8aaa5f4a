package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type ServiceRequest struct {
	Id         uuid.UUID      `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	UserId     uuid.UUID      `gorm:"type:uuid;not null;index"`
	Type       string         `gorm:"type:varchar(20);not null"`
	Title      string         `gorm:"type:varchar(255);not null"`
	PriceCents *int64         `gorm:"type:bigint"`
	Status     string         `gorm:"type:varchar(20);not null;index"`
	Details    datatypes.JSON `gorm:"type:jsonb"`
	CreatedAt  time.Time      `gorm:"autoCreateTime;index"`
	UpdatedAt  time.Time      `gorm:"autoUpdateTime"`
}

func (ServiceRequest) TableName() string {
	return "service_requests"
}
