package contract

import (
	"context"

	"afrimigrate-be/internal/entity"

	"github.com/google/uuid"
)

type ProfileRepository interface {
	FindByUserId(ctx context.Context, userId uuid.UUID) (*entity.Profile, error)
	Save(ctx context.Context, profile *entity.Profile) error
}
