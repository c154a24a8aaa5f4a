package mapper

import (
	"time"

	"afrimigrate-be/internal/entity"
	"afrimigrate-be/internal/model"
	"afrimigrate-be/pkg/profile"

	"gorm.io/datatypes"
)

type ProfileMapper struct{}

func NewProfileMapper() *ProfileMapper {
	return &ProfileMapper{}
}

func (m *ProfileMapper) ToEntity(p *model.Profile) *entity.Profile {
	if p == nil {
		return nil
	}

	var updatedAt *time.Time
	if !p.UpdatedAt.IsZero() {
		t := p.UpdatedAt
		updatedAt = &t
	}

	return &entity.Profile{
		Id:     p.Id,
		UserId: p.UserId,
		Personal: profile.Personal{
			Name:                  p.Name,
			Email:                 p.Email,
			Phone:                 p.Phone,
			CountryOfOrigin:       p.CountryOfOrigin,
			DestinationPreference: p.DestinationPreference,
		},
		Skills:         nonNil(p.Skills),
		Certifications: nonNil(p.Certifications),
		Experience:     nonNil(p.Experience),
		Languages:      nonNil(p.Languages),
		Documents:      nonNil(p.Documents),
		CreatedAt:      p.CreatedAt,
		UpdatedAt:      updatedAt,
	}
}

func (m *ProfileMapper) ToModel(p *entity.Profile) *model.Profile {
	if p == nil {
		return nil
	}

	var updatedAt time.Time
	if p.UpdatedAt != nil {
		updatedAt = *p.UpdatedAt
	}

	return &model.Profile{
		Id:                    p.Id,
		UserId:                p.UserId,
		Name:                  p.Personal.Name,
		Email:                 p.Personal.Email,
		Phone:                 p.Personal.Phone,
		CountryOfOrigin:       p.Personal.CountryOfOrigin,
		DestinationPreference: p.Personal.DestinationPreference,
		Skills:                datatypes.NewJSONSlice(nonNil(p.Skills)),
		Certifications:        datatypes.NewJSONSlice(nonNil(p.Certifications)),
		Experience:            datatypes.NewJSONSlice(nonNil(p.Experience)),
		Languages:             datatypes.NewJSONSlice(nonNil(p.Languages)),
		Documents:             datatypes.NewJSONSlice(nonNil(p.Documents)),
		CreatedAt:             p.CreatedAt,
		UpdatedAt:             updatedAt,
	}
}

// nonNil keeps JSON columns as [] rather than null.
func nonNil[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}
