package implementation

import (
	"context"

	"afrimigrate-be/internal/entity"
	"afrimigrate-be/internal/mapper"
	"afrimigrate-be/internal/model"
	"afrimigrate-be/internal/repository/contract"
	"afrimigrate-be/internal/repository/specification"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type SavedJobRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.SavedJobMapper
}

func NewSavedJobRepository(db *gorm.DB) contract.SavedJobRepository {
	return &SavedJobRepositoryImpl{
		db:     db,
		mapper: mapper.NewSavedJobMapper(),
	}
}

func (r *SavedJobRepositoryImpl) Create(ctx context.Context, job *entity.SavedJob) error {
	m := r.mapper.ToModel(job)
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}, {Name: "job_id"}},
		DoNothing: true,
	}).Create(m).Error
}

func (r *SavedJobRepositoryImpl) Delete(ctx context.Context, specs ...specification.Specification) (int64, error) {
	query := applySpecifications(r.db.WithContext(ctx), specs...)
	res := query.Delete(&model.SavedJob{})
	return res.RowsAffected, res.Error
}

func (r *SavedJobRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.SavedJob, error) {
	var models []*model.SavedJob
	query := applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(models), nil
}
