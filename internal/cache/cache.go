package cache

import (
	"context"
	"time"
)

// Cache stores JSON-encodable values under string keys with a TTL.
// Implementations treat an unavailable backend as a miss rather than an error
// where they can, so the marketplace API is always the source of truth.
type Cache interface {
	GetJSON(ctx context.Context, key string, out any) (bool, error)
	SetJSON(ctx context.Context, key string, value any, ttl time.Duration) error
	Delete(ctx context.Context, keys ...string) error
	Close() error
}
