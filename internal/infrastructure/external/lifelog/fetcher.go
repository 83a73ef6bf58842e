package lifelog

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/lifelogkit/lifelog-exporter/internal/domain/entities"
	"github.com/lifelogkit/lifelog-exporter/internal/infrastructure/cache"
)

// CachedFetcher wraps the client with a per-date cache so repeated exports
// of the same day skip the rate-limited upstream API. Cache failures
// degrade to a fresh fetch.
type CachedFetcher struct {
	client *Client
	store  cache.Store
	ttl    time.Duration
	logger *zap.Logger
}

// NewCachedFetcher builds a fetcher over the given client and store.
func NewCachedFetcher(client *Client, store cache.Store, ttl time.Duration, logger *zap.Logger) *CachedFetcher {
	return &CachedFetcher{client: client, store: store, ttl: ttl, logger: logger}
}

// FetchByDate returns the cached entries for the date when present,
// otherwise fetches and caches them.
func (f *CachedFetcher) FetchByDate(ctx context.Context, apiKey, date string) ([]entities.LogEntry, error) {
	key := cacheKey(apiKey, date)

	if f.store != nil {
		if raw, ok := f.store.Get(ctx, key); ok {
			var entries []entities.LogEntry
			if err := json.Unmarshal([]byte(raw), &entries); err == nil {
				if f.logger != nil {
					f.logger.Debug("lifelog cache hit", zap.String("date", date))
				}
				return entries, nil
			}
			// Corrupt cache entry: evict and refetch.
			f.store.Delete(ctx, key)
		}
	}

	entries, err := f.client.FetchByDate(ctx, apiKey, date)
	if err != nil {
		return nil, err
	}

	if f.store != nil {
		if raw, err := json.Marshal(entries); err == nil {
			f.store.Set(ctx, key, string(raw), f.ttl)
		}
	}
	return entries, nil
}

// cacheKey scopes cached days to the API key so one user's lifelogs are
// never served to another.
func cacheKey(apiKey, date string) string {
	sum := sha256.Sum256([]byte(apiKey))
	return fmt.Sprintf("lifelogs:%s:%s", date, hex.EncodeToString(sum[:8]))
}
