package mapper

import (
	"time"

	"afrimigrate-be/internal/entity"
	"afrimigrate-be/internal/model"
)

type VisaApplicationMapper struct{}

func NewVisaApplicationMapper() *VisaApplicationMapper {
	return &VisaApplicationMapper{}
}

func (m *VisaApplicationMapper) ToEntity(a *model.VisaApplication) *entity.VisaApplication {
	if a == nil {
		return nil
	}
	var updatedAt *time.Time
	if !a.UpdatedAt.IsZero() {
		t := a.UpdatedAt
		updatedAt = &t
	}
	return &entity.VisaApplication{
		Id:            a.Id,
		UserId:        a.UserId,
		Country:       a.Country,
		VisaType:      a.VisaType,
		ApplicantName: a.ApplicantName,
		Status:        a.Status,
		CreatedAt:     a.CreatedAt,
		UpdatedAt:     updatedAt,
	}
}

func (m *VisaApplicationMapper) ToModel(a *entity.VisaApplication) *model.VisaApplication {
	if a == nil {
		return nil
	}
	var updatedAt time.Time
	if a.UpdatedAt != nil {
		updatedAt = *a.UpdatedAt
	}
	return &model.VisaApplication{
		Id:            a.Id,
		UserId:        a.UserId,
		Country:       a.Country,
		VisaType:      a.VisaType,
		ApplicantName: a.ApplicantName,
		Status:        a.Status,
		CreatedAt:     a.CreatedAt,
		UpdatedAt:     updatedAt,
	}
}

func (m *VisaApplicationMapper) ToEntities(as []*model.VisaApplication) []*entity.VisaApplication {
	entities := make([]*entity.VisaApplication, len(as))
	for i, a := range as {
		entities[i] = m.ToEntity(a)
	}
	return entities
}
