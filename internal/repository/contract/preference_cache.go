package contract

import (
	"context"

	"afrimigrate-be/internal/dto"

	"github.com/google/uuid"
)

// PreferenceCache is the fast store the UI reads before the database row
// has been synced.
type PreferenceCache interface {
	Get(ctx context.Context, userId uuid.UUID) (*dto.PreferenceSnapshot, error)
	Set(ctx context.Context, snapshot *dto.PreferenceSnapshot) error
}
