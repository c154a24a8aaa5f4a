package contract

import (
	"context"

	"afrimigrate-be/internal/entity"

	"github.com/google/uuid"
)

type PreferenceRepository interface {
	FindByUserId(ctx context.Context, userId uuid.UUID) (*entity.UserPreference, error)
	// Upsert inserts or replaces the row keyed by user id.
	Upsert(ctx context.Context, pref *entity.UserPreference) error
}
