package contract

import (
	"context"

	"afrimigrate-be/internal/entity"
	"afrimigrate-be/internal/repository/specification"
)

type ServiceRequestRepository interface {
	Create(ctx context.Context, req *entity.ServiceRequest) error
	Update(ctx context.Context, req *entity.ServiceRequest) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.ServiceRequest, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.ServiceRequest, error)
}
