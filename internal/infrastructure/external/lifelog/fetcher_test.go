package lifelog

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/lifelogkit/lifelog-exporter/internal/domain/entities"
	"github.com/lifelogkit/lifelog-exporter/internal/infrastructure/cache"
)

func TestCachedFetcher_SecondFetchServedFromCache(t *testing.T) {
	calls := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		writeEnvelope(t, w, []entities.LogEntry{{ID: "a", Title: "Morning walk"}}, "")
	}))
	defer srv.Close()

	fetcher := NewCachedFetcher(newTestClient(srv.URL), cache.NewMemoryStore(), time.Minute, nil)
	ctx := context.Background()

	first, err := fetcher.FetchByDate(ctx, "secret", "2024-03-15")
	if err != nil {
		t.Fatalf("first fetch failed: %v", err)
	}
	second, err := fetcher.FetchByDate(ctx, "secret", "2024-03-15")
	if err != nil {
		t.Fatalf("second fetch failed: %v", err)
	}

	if calls != 1 {
		t.Fatalf("expected one upstream call, got %d", calls)
	}
	if len(first) != 1 || len(second) != 1 || second[0].Title != "Morning walk" {
		t.Fatalf("cached entries differ: %+v vs %+v", first, second)
	}
}

func TestCachedFetcher_KeysScopedToAPIKey(t *testing.T) {
	calls := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		writeEnvelope(t, w, []entities.LogEntry{{ID: "a"}}, "")
	}))
	defer srv.Close()

	fetcher := NewCachedFetcher(newTestClient(srv.URL), cache.NewMemoryStore(), time.Minute, nil)
	ctx := context.Background()

	if _, err := fetcher.FetchByDate(ctx, "alice", "2024-03-15"); err != nil {
		t.Fatalf("fetch failed: %v", err)
	}
	if _, err := fetcher.FetchByDate(ctx, "bob", "2024-03-15"); err != nil {
		t.Fatalf("fetch failed: %v", err)
	}

	if calls != 2 {
		t.Fatalf("different api keys must not share cache entries, got %d calls", calls)
	}
}

func TestCachedFetcher_CorruptEntryEvictedAndRefetched(t *testing.T) {
	calls := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		writeEnvelope(t, w, []entities.LogEntry{{ID: "fresh"}}, "")
	}))
	defer srv.Close()

	store := cache.NewMemoryStore()
	ctx := context.Background()
	store.Set(ctx, cacheKey("secret", "2024-03-15"), "{not json", time.Minute)

	fetcher := NewCachedFetcher(newTestClient(srv.URL), store, time.Minute, nil)

	entries, err := fetcher.FetchByDate(ctx, "secret", "2024-03-15")
	if err != nil {
		t.Fatalf("fetch failed: %v", err)
	}
	if calls != 1 {
		t.Fatalf("expected refetch after corrupt cache entry, got %d calls", calls)
	}
	if len(entries) != 1 || entries[0].ID != "fresh" {
		t.Fatalf("expected fresh entries, got %+v", entries)
	}
}

func TestCachedFetcher_NilStoreFetchesDirectly(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeEnvelope(t, w, []entities.LogEntry{{ID: "a"}}, "")
	}))
	defer srv.Close()

	fetcher := NewCachedFetcher(newTestClient(srv.URL), nil, time.Minute, nil)

	entries, err := fetcher.FetchByDate(context.Background(), "secret", "2024-03-15")
	if err != nil {
		t.Fatalf("fetch failed: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(entries))
	}
}
