package dto

import (
	"time"

	"afrimigrate-be/pkg/addons"

	"github.com/google/uuid"
)

type CreateServiceRequestRequest struct {
	Type string `json:"type" validate:"required,oneof=document consultation language support referral"`

	DocumentType string              `json:"document_type"`
	Description  string              `json:"description"`
	Files        []addons.Attachment `json:"files"`

	Datetime        time.Time `json:"datetime"`
	DurationMinutes int       `json:"duration_minutes"`

	PackageName string `json:"package_name"`
	Level       string `json:"level"`

	Channel string `json:"channel"`

	Provider string `json:"provider"`
}

type UpdateServiceRequestStatusRequest struct {
	Id     uuid.UUID
	Status string `json:"status" validate:"required,oneof=pending in_progress completed cancelled payment_pending"`
}

type ServiceRequestResponse struct {
	Id         uuid.UUID              `json:"id"`
	Type       string                 `json:"type"`
	Title      string                 `json:"title"`
	PriceCents *int64                 `json:"price_cents"`
	Price      string                 `json:"price"`
	Status     string                 `json:"status"`
	Details    map[string]interface{} `json:"details"`
	CreatedAt  time.Time              `json:"created_at"`
	UpdatedAt  *time.Time             `json:"updated_at"`
}

type AddonCatalogItem struct {
	Type        string `json:"type"`
	PriceCents  *int64 `json:"price_cents"`
	Price       string `json:"price"`
	PremiumOnly bool   `json:"premium_only"`
}
