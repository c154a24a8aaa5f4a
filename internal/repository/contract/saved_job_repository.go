package contract

import (
	"context"

	"afrimigrate-be/internal/entity"
	"afrimigrate-be/internal/repository/specification"
)

type SavedJobRepository interface {
	// Create is a no-op when the user already saved the job.
	Create(ctx context.Context, job *entity.SavedJob) error
	Delete(ctx context.Context, specs ...specification.Specification) (int64, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.SavedJob, error)
}
