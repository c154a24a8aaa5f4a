package dto

import (
	"time"

	"afrimigrate-be/internal/constant"
)

// UpdatePreferenceRequest is a partial update: nil fields are left alone and
// an empty string clears a country.
type UpdatePreferenceRequest struct {
	OriginCountryCode      *string `json:"origin_country_code"`
	DestinationCountryCode *string `json:"destination_country_code"`
	Locale                 *string `json:"locale" validate:"omitempty,oneof=en fr"`
}

type PreferenceResponse struct {
	OriginCountry      *constant.Country `json:"origin_country"`
	DestinationCountry *constant.Country `json:"destination_country"`
	Locale             string            `json:"locale"`
	Labels             map[string]string `json:"labels"`
	UpdatedAt          *time.Time        `json:"updated_at"`
}

// PreferenceSnapshot is the fast-store and sync message shape.
type PreferenceSnapshot struct {
	UserId                 string    `json:"user_id"`
	OriginCountryCode      *string   `json:"origin_country_code"`
	DestinationCountryCode *string   `json:"destination_country_code"`
	Locale                 string    `json:"locale"`
	UpdatedAt              time.Time `json:"updated_at"`
}

type CountryCatalogResponse struct {
	Origins      []constant.Country `json:"origins"`
	Destinations []constant.Country `json:"destinations"`
	Locales      []string           `json:"locales"`
}
