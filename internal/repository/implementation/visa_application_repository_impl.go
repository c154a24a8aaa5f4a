package implementation

import (
	"context"
	"errors"

	"afrimigrate-be/internal/entity"
	"afrimigrate-be/internal/mapper"
	"afrimigrate-be/internal/model"
	"afrimigrate-be/internal/repository/contract"
	"afrimigrate-be/internal/repository/specification"

	"gorm.io/gorm"
)

type VisaApplicationRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.VisaApplicationMapper
}

func NewVisaApplicationRepository(db *gorm.DB) contract.VisaApplicationRepository {
	return &VisaApplicationRepositoryImpl{
		db:     db,
		mapper: mapper.NewVisaApplicationMapper(),
	}
}

func (r *VisaApplicationRepositoryImpl) Create(ctx context.Context, app *entity.VisaApplication) error {
	m := r.mapper.ToModel(app)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*app = *r.mapper.ToEntity(m)
	return nil
}

func (r *VisaApplicationRepositoryImpl) Update(ctx context.Context, app *entity.VisaApplication) error {
	m := r.mapper.ToModel(app)
	if err := r.db.WithContext(ctx).Save(m).Error; err != nil {
		return err
	}
	*app = *r.mapper.ToEntity(m)
	return nil
}

func (r *VisaApplicationRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.VisaApplication, error) {
	var m model.VisaApplication
	query := applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *VisaApplicationRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.VisaApplication, error) {
	var models []*model.VisaApplication
	query := applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(models), nil
}
