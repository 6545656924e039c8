package utils

import (
	"context"
	"time"
)

// DBTimeout bounds a single MongoDB round trip issued by a repository.
const DBTimeout = 5 * time.Second

func WithDBTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, DBTimeout)
}
