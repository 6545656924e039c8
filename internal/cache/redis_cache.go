package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/aaravmahajanofficial/supplements-storefront/internal/config"
	"github.com/redis/go-redis/v9"
)

// redisCache stores cart documents and product reads as JSON strings.
// The client is owned by main, so Close does not close it.
type redisCache struct {
	rdb        redis.Cmdable
	defaultTTL time.Duration
}

func NewRedisCache(rdb redis.Cmdable, cfg *config.CacheConfig) Cache {
	return &redisCache{rdb: rdb, defaultTTL: cfg.DefaultTTL}
}

func (c *redisCache) Get(ctx context.Context, key string, value any) (bool, error) {
	raw, err := c.rdb.Get(ctx, key).Bytes()

	switch {
	case errors.Is(err, redis.Nil):
		return false, nil
	case err != nil:
		return false, fmt.Errorf("redis get %s: %w", key, err)
	}

	if err := json.Unmarshal(raw, value); err != nil {
		return false, fmt.Errorf("decoding cached %s: %w", key, err)
	}

	return true, nil
}

func (c *redisCache) Set(ctx context.Context, key string, value any, ttl time.Duration) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("encoding %s for cache: %w", key, err)
	}

	if ttl <= 0 {
		ttl = c.defaultTTL
	}

	if err := c.rdb.Set(ctx, key, raw, ttl).Err(); err != nil {
		return fmt.Errorf("redis set %s: %w", key, err)
	}

	return nil
}

func (c *redisCache) Delete(ctx context.Context, key string) error {
	if err := c.rdb.Del(ctx, key).Err(); err != nil {
		return fmt.Errorf("redis del %s: %w", key, err)
	}

	return nil
}

func (c *redisCache) Close() error { return nil }
