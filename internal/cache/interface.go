package cache

import (
	"context"
	"time"
)

// Cache stores JSON-encoded values by key. Get reports false on a miss.
type Cache interface {
	Get(ctx context.Context, key string, value any) (bool, error)
	Set(ctx context.Context, key string, value any, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
	Close() error
}

func Key(prefix string, id string) string {
	return prefix + ":" + id
}

const (
	CartStorageKeyPrefix = "cart-storage"
	ProductKeyPrefix     = "product"
)
