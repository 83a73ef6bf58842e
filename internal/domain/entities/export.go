package entities

import "github.com/google/uuid"

// ExtractionMetadata aggregates what the extractor learned while
// flattening a set of entries.
type ExtractionMetadata struct {
	EntryCount      int      `json:"entry_count"`
	DateRange       string   `json:"date_range"`
	Speakers        []string `json:"speakers"`
	Topics          []string `json:"topics"`
	StarredCount    int      `json:"starred_count"`
	DurationMinutes float64  `json:"duration_minutes"`
}

// ExtractedContent is the flattened view of a list of entries: the
// concatenated text in entry order plus aggregate metadata.
type ExtractedContent struct {
	FullText string
	Metadata ExtractionMetadata
}

// Chunk is one ordered, token-bounded segment of an over-budget export.
// Indices are 0-based and contiguous across the whole result in source
// order; the sum of TokenCount over all chunks equals the optimized total.
type Chunk struct {
	Index      int      `json:"index"`
	Content    string   `json:"content"`
	TokenCount int      `json:"token_count"`
	Strategy   string   `json:"strategy"`
	Topics     []string `json:"topics,omitempty"`
}

// PriorityBand is the importance tier an entry is classified into for
// consolidated export ordering.
type PriorityBand string

const (
	PriorityHigh   PriorityBand = "high"
	PriorityMedium PriorityBand = "medium"
	PriorityLow    PriorityBand = "low"
)

// PrioritizedEntry is a LogEntry plus its derived classification.
type PrioritizedEntry struct {
	Entry     LogEntry
	Topics    []string
	Band      PriorityBand
	WordCount int
}

// PriorityGroups holds the three bands, each ordered ascending by entry
// start time.
type PriorityGroups struct {
	High   []PrioritizedEntry
	Medium []PrioritizedEntry
	Low    []PrioritizedEntry
}

// Total returns the number of entries across all bands.
func (g PriorityGroups) Total() int {
	return len(g.High) + len(g.Medium) + len(g.Low)
}

// OptimizeResult is the outcome of a per-day optimization pass. For a
// "complete" result Content holds the pass-through text and Chunks is nil;
// for a chunked result the token accounting triple is populated instead of
// TokenCount.
type OptimizeResult struct {
	Strategy         string
	Content          string
	TokenCount       int
	OriginalTokens   int
	OptimizedTokens  int
	CompressionRatio float64
	Chunks           []Chunk
	Metadata         ExtractionMetadata
}

// ConsolidatedExport is a single token-bounded artifact assembled from
// prioritized bands.
type ConsolidatedExport struct {
	Content         string
	TokenCount      int
	Strategy        string
	Topics          []string
	OriginalEntries int
}

// DayResult is one item of a batch export. A failed date carries the error
// message and a nil Result; failures never abort the remaining dates.
type DayResult struct {
	JobID  uuid.UUID
	Date   string
	Result *OptimizeResult
	Err    string
}
