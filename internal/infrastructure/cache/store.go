// Package cache caches per-date lifelog fetch results so repeated exports
// of the same day skip the rate-limited upstream API.
package cache

import (
	"context"
	"time"
)

// Store is the per-date fetch cache. Implementations must degrade rather
// than fail: a cache miss or backend error just means a fresh fetch.
type Store interface {
	Get(ctx context.Context, key string) (string, bool)
	Set(ctx context.Context, key string, value string, ttl time.Duration)
	Delete(ctx context.Context, key string)
}
