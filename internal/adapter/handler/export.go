package handler

import (
	"context"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	apperrors "github.com/lifelogkit/lifelog-exporter/errors"
	dto "github.com/lifelogkit/lifelog-exporter/internal/adapter/dto/export"
	"github.com/lifelogkit/lifelog-exporter/internal/adapter/presenter"
	"github.com/lifelogkit/lifelog-exporter/internal/domain/entities"
	httpmw "github.com/lifelogkit/lifelog-exporter/internal/infrastructure/http/middleware"
	"github.com/lifelogkit/lifelog-exporter/internal/usecase/optimizer"
	"github.com/lifelogkit/lifelog-exporter/pkg/config"
	"github.com/lifelogkit/lifelog-exporter/pkg/dateutil"
)

// Fetcher supplies the ordered entries for one date from the upstream
// lifelog API.
type Fetcher interface {
	FetchByDate(ctx context.Context, apiKey, date string) ([]entities.LogEntry, error)
}

// ExportHandler serves the export endpoints.
type ExportHandler struct {
	svc     *optimizer.Service
	fetcher Fetcher
	cfg     *config.Config
	logger  *zap.Logger
}

// NewExportHandler constructs an ExportHandler.
func NewExportHandler(svc *optimizer.Service, fetcher Fetcher, cfg *config.Config, logger *zap.Logger) *ExportHandler {
	return &ExportHandler{svc: svc, fetcher: fetcher, cfg: cfg, logger: logger}
}

// Optimize handles POST /v1/exports/optimize: the per-day multi-segment
// view of one date.
func (h *ExportHandler) Optimize(c echo.Context) error {
	var req dto.OptimizeRequest
	if err := c.Bind(&req); err != nil {
		return respondAppError(c, apperrors.ErrInvalidPayload())
	}
	if err := c.Validate(&req); err != nil {
		return respondAppError(c, apperrors.ErrInvalidArgument(err.Error()))
	}

	entries, err := h.fetcher.FetchByDate(c.Request().Context(), httpmw.APIKeyFromContext(c), req.Date)
	if err != nil {
		return respondAppError(c, err)
	}

	result := h.svc.OptimizeForChatGPT(entries, h.optimizeConfig(req.Options))
	return c.JSON(http.StatusOK, presenter.ToOptimizeResponse(result))
}

// Consolidated handles POST /v1/exports/consolidated: the single
// prioritized artifact over a date range.
func (h *ExportHandler) Consolidated(c echo.Context) error {
	var req dto.ConsolidatedRequest
	if err := c.Bind(&req); err != nil {
		return respondAppError(c, apperrors.ErrInvalidPayload())
	}
	if err := c.Validate(&req); err != nil {
		return respondAppError(c, apperrors.ErrInvalidArgument(err.Error()))
	}

	dates, err := dateutil.ExpandRange(req.StartDate, req.EndDate)
	if err != nil {
		return respondAppError(c, apperrors.ErrInvalidDateRange(req.StartDate, req.EndDate))
	}

	apiKey := httpmw.APIKeyFromContext(c)
	var entries []entities.LogEntry
	for _, date := range dates {
		dayEntries, err := h.fetcher.FetchByDate(c.Request().Context(), apiKey, date)
		if err != nil {
			return respondAppError(c, err)
		}
		entries = append(entries, dayEntries...)
	}

	export := h.svc.CreateConsolidatedExport(entries, h.optimizeConfig(req.Options))
	return c.JSON(http.StatusOK, presenter.ToConsolidatedResponse(export))
}

// Batch handles POST /v1/exports/batch: sequential per-day optimization of
// every date in the range, with per-date failure isolation.
func (h *ExportHandler) Batch(c echo.Context) error {
	var req dto.BatchRequest
	if err := c.Bind(&req); err != nil {
		return respondAppError(c, apperrors.ErrInvalidPayload())
	}
	if err := c.Validate(&req); err != nil {
		return respondAppError(c, apperrors.ErrInvalidArgument(err.Error()))
	}

	dates, err := dateutil.ExpandRange(req.StartDate, req.EndDate)
	if err != nil {
		return respondAppError(c, apperrors.ErrInvalidDateRange(req.StartDate, req.EndDate))
	}

	apiKey := httpmw.APIKeyFromContext(c)
	fetch := func(ctx context.Context, date string) ([]entities.LogEntry, error) {
		return h.fetcher.FetchByDate(ctx, apiKey, date)
	}

	results := h.svc.OptimizeBatch(c.Request().Context(), fetch, dates, h.optimizeConfig(req.Options))
	return c.JSON(http.StatusOK, presenter.ToBatchResponse(results))
}

// Download handles GET /v1/exports/:date/download?format=markdown|text and
// streams the rendered document as an attachment.
func (h *ExportHandler) Download(c echo.Context) error {
	date := c.Param("date")
	if _, err := dateutil.Parse(date); err != nil {
		return respondAppError(c, apperrors.ErrInvalidDate(date, err))
	}

	entries, err := h.fetcher.FetchByDate(c.Request().Context(), httpmw.APIKeyFromContext(c), date)
	if err != nil {
		return respondAppError(c, err)
	}
	if len(entries) == 0 {
		return respondAppError(c, apperrors.ErrNoEntries(date))
	}

	result := h.svc.OptimizeForChatGPT(entries, h.optimizeConfig(dto.Options{}))

	var body, contentType, extension string
	switch c.QueryParam("format") {
	case "text", "txt", "plain":
		body = optimizer.FormatAsPlainText(result)
		contentType = "text/plain; charset=utf-8"
		extension = "txt"
	default:
		body = optimizer.FormatAsMarkdown(result)
		contentType = "text/markdown; charset=utf-8"
		extension = "md"
	}

	filename := fmt.Sprintf("lifelog-export-%s.%s", date, extension)
	c.Response().Header().Set(echo.HeaderContentDisposition, fmt.Sprintf(`attachment; filename=%q`, filename))
	return c.Blob(http.StatusOK, contentType, []byte(body))
}

// optimizeConfig merges request options over the server defaults.
func (h *ExportHandler) optimizeConfig(opts dto.Options) optimizer.Config {
	cfg := optimizer.Config{
		MaxTokens:         h.cfg.Export.MaxTokens,
		IncludeTimestamps: true,
		IncludeSpeakers:   true,
		SummarizeLevel:    h.cfg.Export.SummarizeLevel,
		ChunkStrategy:     h.cfg.Export.ChunkStrategy,
		PrioritizeTopics:  opts.PrioritizeTopics,
	}

	if opts.MaxTokens > 0 {
		cfg.MaxTokens = opts.MaxTokens
	}
	if opts.IncludeTimestamps != nil {
		cfg.IncludeTimestamps = *opts.IncludeTimestamps
	}
	if opts.IncludeSpeakers != nil {
		cfg.IncludeSpeakers = *opts.IncludeSpeakers
	}
	if opts.SummarizeLevel != "" {
		cfg.SummarizeLevel = opts.SummarizeLevel
	}
	if opts.ChunkStrategy != "" {
		cfg.ChunkStrategy = opts.ChunkStrategy
	}
	return cfg
}
