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

type ServiceRequestRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.ServiceRequestMapper
}

func NewServiceRequestRepository(db *gorm.DB) contract.ServiceRequestRepository {
	return &ServiceRequestRepositoryImpl{
		db:     db,
		mapper: mapper.NewServiceRequestMapper(),
	}
}

func (r *ServiceRequestRepositoryImpl) Create(ctx context.Context, req *entity.ServiceRequest) error {
	m := r.mapper.ToModel(req)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*req = *r.mapper.ToEntity(m)
	return nil
}

func (r *ServiceRequestRepositoryImpl) Update(ctx context.Context, req *entity.ServiceRequest) error {
	m := r.mapper.ToModel(req)
	if err := r.db.WithContext(ctx).Save(m).Error; err != nil {
		return err
	}
	*req = *r.mapper.ToEntity(m)
	return nil
}

func (r *ServiceRequestRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.ServiceRequest, error) {
	var m model.ServiceRequest
	query := applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *ServiceRequestRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.ServiceRequest, error) {
	var models []*model.ServiceRequest
	query := applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(models), nil
}
