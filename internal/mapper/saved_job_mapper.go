package mapper

import (
	"afrimigrate-be/internal/entity"
	"afrimigrate-be/internal/model"
)

type SavedJobMapper struct{}

func NewSavedJobMapper() *SavedJobMapper {
	return &SavedJobMapper{}
}

func (m *SavedJobMapper) ToEntity(j *model.SavedJob) *entity.SavedJob {
	if j == nil {
		return nil
	}
	return &entity.SavedJob{
		Id:        j.Id,
		UserId:    j.UserId,
		JobId:     j.JobId,
		Title:     j.Title,
		Employer:  j.Employer,
		Location:  j.Location,
		URL:       j.URL,
		CreatedAt: j.CreatedAt,
	}
}

func (m *SavedJobMapper) ToModel(j *entity.SavedJob) *model.SavedJob {
	if j == nil {
		return nil
	}
	return &model.SavedJob{
		Id:        j.Id,
		UserId:    j.UserId,
		JobId:     j.JobId,
		Title:     j.Title,
		Employer:  j.Employer,
		Location:  j.Location,
		URL:       j.URL,
		CreatedAt: j.CreatedAt,
	}
}

func (m *SavedJobMapper) ToEntities(js []*model.SavedJob) []*entity.SavedJob {
	entities := make([]*entity.SavedJob, len(js))
	for i, j := range js {
		entities[i] = m.ToEntity(j)
	}
	return entities
}
