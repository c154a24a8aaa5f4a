package mapper

import (
	"encoding/json"
	"time"

	"afrimigrate-be/internal/entity"
	"afrimigrate-be/internal/model"

	"gorm.io/datatypes"
)

type ServiceRequestMapper struct{}

func NewServiceRequestMapper() *ServiceRequestMapper {
	return &ServiceRequestMapper{}
}

func (m *ServiceRequestMapper) ToEntity(r *model.ServiceRequest) *entity.ServiceRequest {
	if r == nil {
		return nil
	}

	details := map[string]interface{}{}
	if len(r.Details) > 0 {
		_ = json.Unmarshal(r.Details, &details)
	}

	var updatedAt *time.Time
	if !r.UpdatedAt.IsZero() {
		t := r.UpdatedAt
		updatedAt = &t
	}

	return &entity.ServiceRequest{
		Id:         r.Id,
		UserId:     r.UserId,
		Type:       r.Type,
		Title:      r.Title,
		PriceCents: r.PriceCents,
		Status:     r.Status,
		Details:    details,
		CreatedAt:  r.CreatedAt,
		UpdatedAt:  updatedAt,
	}
}

func (m *ServiceRequestMapper) ToModel(r *entity.ServiceRequest) *model.ServiceRequest {
	if r == nil {
		return nil
	}

	var details datatypes.JSON
	if r.Details != nil {
		raw, _ := json.Marshal(r.Details)
		details = datatypes.JSON(raw)
	}

	var updatedAt time.Time
	if r.UpdatedAt != nil {
		updatedAt = *r.UpdatedAt
	}

	return &model.ServiceRequest{
		Id:         r.Id,
		UserId:     r.UserId,
		Type:       r.Type,
		Title:      r.Title,
		PriceCents: r.PriceCents,
		Status:     r.Status,
		Details:    details,
		CreatedAt:  r.CreatedAt,
		UpdatedAt:  updatedAt,
	}
}

func (m *ServiceRequestMapper) ToEntities(rs []*model.ServiceRequest) []*entity.ServiceRequest {
	entities := make([]*entity.ServiceRequest, len(rs))
	for i, r := range rs {
		entities[i] = m.ToEntity(r)
	}
	return entities
}
