package mapper

import (
	"afrimigrate-be/internal/entity"
	"afrimigrate-be/internal/model"
)

type PreferenceMapper struct{}

func NewPreferenceMapper() *PreferenceMapper {
	return &PreferenceMapper{}
}

func (m *PreferenceMapper) ToEntity(p *model.UserPreference) *entity.UserPreference {
	if p == nil {
		return nil
	}
	return &entity.UserPreference{
		UserId:                 p.UserId,
		OriginCountryCode:      p.OriginCountryCode,
		DestinationCountryCode: p.DestinationCountryCode,
		Locale:                 p.Locale,
		UpdatedAt:              p.UpdatedAt,
	}
}

func (m *PreferenceMapper) ToModel(p *entity.UserPreference) *model.UserPreference {
	if p == nil {
		return nil
	}
	return &model.UserPreference{
		UserId:                 p.UserId,
		OriginCountryCode:      p.OriginCountryCode,
		DestinationCountryCode: p.DestinationCountryCode,
		Locale:                 p.Locale,
		UpdatedAt:              p.UpdatedAt,
	}
}
