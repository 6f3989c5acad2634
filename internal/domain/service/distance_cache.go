package service

import (
	"context"
	"time"

	"jobsearch/internal/domain/entity"
)

// DistanceCache is a key/value store with per-entry expiry for distance
// results. Concurrent writers of the same key are tolerated; last write wins
// and staleness is bounded by the TTL.
type DistanceCache interface {
	// GetDistance returns the cached result for key, or (nil, nil) on a miss.
	GetDistance(ctx context.Context, key string) (*entity.DistanceResult, error)

	// SetDistance stores the result under key for the given TTL.
	SetDistance(ctx context.Context, key string, result *entity.DistanceResult, ttl time.Duration) error
}
