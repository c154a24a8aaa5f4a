package contract

import (
	"context"

	"afrimigrate-be/internal/entity"
	"afrimigrate-be/internal/repository/specification"
)

type VisaApplicationRepository interface {
	Create(ctx context.Context, app *entity.VisaApplication) error
	Update(ctx context.Context, app *entity.VisaApplication) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.VisaApplication, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.VisaApplication, error)
}
