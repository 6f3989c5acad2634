// Package cache implements the Redis-backed distance cache.
package cache

import (
	"context"
	"encoding/json"
	"time"

	"jobsearch/config"
	"jobsearch/internal/domain/entity"
	"jobsearch/internal/domain/service"

	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
)

// NewRedisClient creates the Redis connection and verifies it with a ping.
func NewRedisClient(cfg *config.Config) (*redis.Client, error) {
	if cfg == nil || cfg.Redis == nil {
		return nil, errors.New("redis config is required")
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, errors.Wrap(err, "ping redis")
	}

	return client, nil
}

type distanceCache struct {
	client *redis.Client
}

// NewDistanceCache creates the Redis-backed distance cache. Values are stored
// as JSON so cached entries survive deployments and stay inspectable.
func NewDistanceCache(client *redis.Client) service.DistanceCache {
	return &distanceCache{client: client}
}

func (c *distanceCache) GetDistance(ctx context.Context, key string) (*entity.DistanceResult, error) {
	raw, err := c.client.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}

		return nil, errors.Wrap(err, "get cached distance")
	}

	var result entity.DistanceResult
	if err := json.Unmarshal(raw, &result); err != nil {
		// A corrupt entry is treated as a miss; it will be overwritten.
		return nil, nil
	}

	return &result, nil
}

func (c *distanceCache) SetDistance(ctx context.Context, key string, result *entity.DistanceResult, ttl time.Duration) error {
	raw, err := json.Marshal(result)
	if err != nil {
		return errors.Wrap(err, "marshal distance result")
	}

	if err := c.client.Set(ctx, key, raw, ttl).Err(); err != nil {
		return errors.Wrap(err, "set cached distance")
	}

	return nil
}
