// Package optimizer is the content-optimization engine: it reduces
// variable-length daily lifelog transcripts into artifacts that fit a
// consumer's fixed token budget. All transforms are synchronous, CPU-bound
// string processing over locally owned data; the only shared resource is
// the immutable tokenizer model injected at construction.
package optimizer

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/lifelogkit/lifelog-exporter/internal/domain/entities"
	"github.com/lifelogkit/lifelog-exporter/pkg/tokenizer"
)

// DefaultMaxTokens matches a typical consumer context window.
const DefaultMaxTokens = 8000

// Config carries the per-request optimization options.
type Config struct {
	MaxTokens         int
	IncludeTimestamps bool
	IncludeSpeakers   bool
	SummarizeLevel    string // low, medium, high
	ChunkStrategy     string // fixed, semantic, temporal
	PrioritizeTopics  bool
}

// withDefaults fills unset options so the core never has to fail on a
// partially specified config.
func (c Config) withDefaults() Config {
	if c.MaxTokens <= 0 {
		c.MaxTokens = DefaultMaxTokens
	}
	if c.SummarizeLevel == "" {
		c.SummarizeLevel = SummarizeMedium
	}
	if c.ChunkStrategy == "" {
		c.ChunkStrategy = StrategySemantic
	}
	return c
}

// FetchFunc supplies the ordered entries for one date. The upstream data
// source (pagination, rate limiting, retries) lives behind it.
type FetchFunc func(ctx context.Context, date string) ([]entities.LogEntry, error)

// Service is the facade over the optimization engine.
type Service struct {
	counter    *tokenizer.Model
	extractor  *Extractor
	summarizer *Summarizer
	chunker    *Chunker
	grouper    *PriorityGrouper
	exporter   *ConsolidatedExporter
	logger     *zap.Logger
}

// NewService constructs the engine around one shared tokenizer model.
func NewService(counter *tokenizer.Model, logger *zap.Logger) *Service {
	summarizer := NewSummarizer()
	return &Service{
		counter:    counter,
		extractor:  NewExtractor(),
		summarizer: summarizer,
		chunker:    NewChunker(counter),
		grouper:    NewPriorityGrouper(),
		exporter:   NewConsolidatedExporter(counter, summarizer),
		logger:     logger,
	}
}

// OptimizeForChatGPT produces the per-day view. Content within budget
// passes through unchanged as a "complete" result; over-budget content is
// summarized at the configured level and split with the configured chunk
// strategy. The result's chunk token counts always sum to the optimized
// total.
func (s *Service) OptimizeForChatGPT(entries []entities.LogEntry, cfg Config) *entities.OptimizeResult {
	cfg = cfg.withDefaults()

	extracted := s.extractor.Extract(entries, ExtractOptions{
		IncludeTimestamps: cfg.IncludeTimestamps,
		IncludeSpeakers:   cfg.IncludeSpeakers,
	})
	original := s.counter.CountTokens(extracted.FullText)

	if original <= cfg.MaxTokens {
		return &entities.OptimizeResult{
			Strategy:        StrategyComplete,
			Content:         extracted.FullText,
			TokenCount:      original,
			OriginalTokens:  original,
			OptimizedTokens: original,
			Metadata:        extracted.Metadata,
		}
	}

	summarized := s.summarizer.Summarize(extracted.FullText, cfg.SummarizeLevel, cfg.IncludeSpeakers)
	chunks := s.chunker.Split(summarized, cfg.ChunkStrategy, cfg.MaxTokens)

	optimized := 0
	for _, ch := range chunks {
		optimized += ch.TokenCount
	}

	ratio := 0.0
	if original > 0 {
		ratio = float64(original-optimized) / float64(original)
	}

	if s.logger != nil {
		s.logger.Info("content reduced to fit token budget",
			zap.String("strategy", cfg.ChunkStrategy),
			zap.Int("original_tokens", original),
			zap.Int("optimized_tokens", optimized),
			zap.Int("chunks", len(chunks)),
			zap.Float64("compression_ratio", ratio),
		)
	}

	return &entities.OptimizeResult{
		Strategy:         cfg.ChunkStrategy,
		OriginalTokens:   original,
		OptimizedTokens:  optimized,
		CompressionRatio: ratio,
		Chunks:           chunks,
		Metadata:         extracted.Metadata,
	}
}

// CreateConsolidatedExport produces the single-artifact prioritized view.
func (s *Service) CreateConsolidatedExport(entries []entities.LogEntry, cfg Config) *entities.ConsolidatedExport {
	cfg = cfg.withDefaults()
	groups := s.grouper.Group(entries)
	export := s.exporter.Export(groups, cfg)

	if s.logger != nil {
		s.logger.Info("consolidated export built",
			zap.Int("entries", export.OriginalEntries),
			zap.Int("token_count", export.TokenCount),
			zap.Int("topics", len(export.Topics)),
		)
	}
	return &export
}

// OptimizeBatch processes dates strictly sequentially with per-date error
// isolation: a failed fetch or optimization is recorded on its result item
// and never aborts the remaining dates.
func (s *Service) OptimizeBatch(ctx context.Context, fetch FetchFunc, dates []string, cfg Config) []entities.DayResult {
	results := make([]entities.DayResult, 0, len(dates))

	for _, date := range dates {
		item := entities.DayResult{JobID: uuid.New(), Date: date}

		entries, err := fetch(ctx, date)
		if err != nil {
			item.Err = err.Error()
			if s.logger != nil {
				s.logger.Warn("batch date failed",
					zap.String("date", date),
					zap.String("job_id", item.JobID.String()),
					zap.Error(err),
				)
			}
			results = append(results, item)
			continue
		}

		item.Result = s.OptimizeForChatGPT(entries, cfg)
		results = append(results, item)
	}

	return results
}
