// Package lifelog is the upstream fetch collaborator: it pulls speaker
// attributed lifelog entries for a date from the vendor API, following
// cursor pagination and backing off on rate limits.
package lifelog

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	backoff "github.com/cenkalti/backoff/v4"
	"go.uber.org/zap"

	apperrors "github.com/lifelogkit/lifelog-exporter/errors"
	"github.com/lifelogkit/lifelog-exporter/internal/domain/entities"
	"github.com/lifelogkit/lifelog-exporter/pkg/config"
)

// Client is a minimal client for the lifelog API.
type Client struct {
	baseURL    string
	pageSize   int
	timezone   string
	maxRetries uint64
	client     *http.Client
	logger     *zap.Logger
}

// NewClient creates a lifelog client using values from the provided
// config. Pass a nil config to use defaults.
func NewClient(cfg *config.LifelogConfig, logger *zap.Logger) *Client {
	base := "https://api.limitless.ai"
	pageSize := 10
	timezone := "UTC"
	timeout := 30 * time.Second
	maxRetries := uint64(3)

	if cfg != nil {
		if cfg.BaseURL != "" {
			base = cfg.BaseURL
		}
		if cfg.PageSize > 0 {
			pageSize = cfg.PageSize
		}
		if cfg.Timezone != "" {
			timezone = cfg.Timezone
		}
		if cfg.Timeout > 0 {
			timeout = cfg.Timeout
		}
		if cfg.MaxRetries > 0 {
			maxRetries = uint64(cfg.MaxRetries)
		}
	}

	return &Client{
		baseURL:    base,
		pageSize:   pageSize,
		timezone:   timezone,
		maxRetries: maxRetries,
		client:     &http.Client{Timeout: timeout},
		logger:     logger,
	}
}

// envelope is the wire shape of a lifelog listing response.
type envelope struct {
	Data struct {
		Lifelogs []entities.LogEntry `json:"lifelogs"`
	} `json:"data"`
	Meta struct {
		Lifelogs struct {
			NextCursor string `json:"nextCursor"`
			Count      int    `json:"count"`
		} `json:"lifelogs"`
	} `json:"meta"`
}

// FetchByDate returns every entry for the given date in upstream order,
// following nextCursor pages until exhausted. Rate-limited pages are
// retried with exponential backoff; auth failures are permanent.
func (c *Client) FetchByDate(ctx context.Context, apiKey, date string) ([]entities.LogEntry, error) {
	if apiKey == "" {
		return nil, apperrors.ErrUnauthenticated()
	}

	var entries []entities.LogEntry
	cursor := ""

	for {
		page, err := c.fetchPage(ctx, apiKey, date, cursor)
		if err != nil {
			return nil, err
		}

		entries = append(entries, page.Data.Lifelogs...)

		cursor = page.Meta.Lifelogs.NextCursor
		if cursor == "" {
			break
		}
	}

	if c.logger != nil {
		c.logger.Info("fetched lifelog entries",
			zap.String("date", date),
			zap.Int("entries", len(entries)),
		)
	}
	return entries, nil
}

// fetchPage requests one page, retrying transient failures.
func (c *Client) fetchPage(ctx context.Context, apiKey, date, cursor string) (*envelope, error) {
	var page *envelope

	fetchFn := func() error {
		req, err := c.newListRequest(ctx, apiKey, date, cursor)
		if err != nil {
			return backoff.Permanent(err)
		}

		resp, err := c.client.Do(req)
		if err != nil {
			return fmt.Errorf("lifelog request failed: %w", err)
		}
		defer resp.Body.Close()

		switch {
		case resp.StatusCode == http.StatusTooManyRequests:
			if c.logger != nil {
				c.logger.Warn("lifelog API rate limited, backing off", zap.String("date", date))
			}
			return apperrors.ErrUpstreamRateLimited()
		case resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden:
			return backoff.Permanent(apperrors.ErrUpstreamUnauthorized())
		case resp.StatusCode >= 500:
			return fmt.Errorf("lifelog API returned status %d", resp.StatusCode)
		case resp.StatusCode >= 400:
			return backoff.Permanent(fmt.Errorf("lifelog API returned status %d", resp.StatusCode))
		}

		var env envelope
		if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
			return fmt.Errorf("failed to decode lifelog response: %w", err)
		}
		page = &env
		return nil
	}

	// Retry logic with exponential backoff
	bo := backoff.NewExponentialBackOff()
	bo.InitialInterval = 2 * time.Second
	bo.MaxInterval = 10 * time.Second
	bo.MaxElapsedTime = 30 * time.Second

	policy := backoff.WithMaxRetries(backoff.WithContext(bo, ctx), c.maxRetries)
	if err := backoff.Retry(fetchFn, policy); err != nil {
		return nil, fmt.Errorf("fetch lifelogs for %s: %w", date, err)
	}
	return page, nil
}

func (c *Client) newListRequest(ctx context.Context, apiKey, date, cursor string) (*http.Request, error) {
	endpoint := c.baseURL + "/v1/lifelogs"

	q := url.Values{}
	q.Set("date", date)
	q.Set("timezone", c.timezone)
	q.Set("limit", fmt.Sprintf("%d", c.pageSize))
	q.Set("includeMarkdown", "true")
	q.Set("direction", "asc")
	if cursor != "" {
		q.Set("cursor", cursor)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint+"?"+q.Encode(), nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("X-API-Key", apiKey)
	req.Header.Set("Accept", "application/json")
	return req, nil
}
