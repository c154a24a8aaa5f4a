package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"afrimigrate-be/internal/constant"
	"afrimigrate-be/internal/dto"
	"afrimigrate-be/internal/repository/contract"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

type PreferenceCacheImpl struct {
	rdb *redis.Client
}

func NewPreferenceCache(rdb *redis.Client) contract.PreferenceCache {
	return &PreferenceCacheImpl{rdb: rdb}
}

func Key(userId uuid.UUID) string {
	return constant.PreferenceCacheKeyPrefix + userId.String()
}

// Get returns nil, nil when nothing is cached for the user.
func (c *PreferenceCacheImpl) Get(ctx context.Context, userId uuid.UUID) (*dto.PreferenceSnapshot, error) {
	raw, err := c.rdb.Get(ctx, Key(userId)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, err
	}

	var snap dto.PreferenceSnapshot
	if err := json.Unmarshal(raw, &snap); err != nil {
		return nil, fmt.Errorf("corrupt preference cache entry: %w", err)
	}
	return &snap, nil
}

// Set stores the snapshot without expiry, like the browser storage it
// replaces.
func (c *PreferenceCacheImpl) Set(ctx context.Context, snapshot *dto.PreferenceSnapshot) error {
	userId, err := uuid.Parse(snapshot.UserId)
	if err != nil {
		return err
	}
	payload, err := json.Marshal(snapshot)
	if err != nil {
		return err
	}
	return c.rdb.Set(ctx, Key(userId), payload, 0).Err()
}
