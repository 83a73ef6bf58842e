package export

// Options are the optimization knobs shared by all export requests.
// Unset fields fall back to the server's configured defaults.
type Options struct {
	MaxTokens         int    `json:"max_tokens,omitempty" validate:"omitempty,gt=0"`
	IncludeTimestamps *bool  `json:"include_timestamps,omitempty"`
	IncludeSpeakers   *bool  `json:"include_speakers,omitempty"`
	SummarizeLevel    string `json:"summarize_level,omitempty" validate:"omitempty,oneof=low medium high"`
	ChunkStrategy     string `json:"chunk_strategy,omitempty" validate:"omitempty,oneof=fixed semantic temporal"`
	PrioritizeTopics  bool   `json:"prioritize_topics,omitempty"`
}

// OptimizeRequest asks for the per-day multi-segment view of one date.
type OptimizeRequest struct {
	Date    string `json:"date" validate:"required,datetime=2006-01-02"`
	Options `json:"options"`
}

// ConsolidatedRequest asks for the single prioritized artifact covering a
// date range.
type ConsolidatedRequest struct {
	StartDate string `json:"start_date" validate:"required,datetime=2006-01-02"`
	EndDate   string `json:"end_date" validate:"required,datetime=2006-01-02"`
	Options   `json:"options"`
}

// BatchRequest asks for per-day optimization of every date in the range.
type BatchRequest struct {
	StartDate string `json:"start_date" validate:"required,datetime=2006-01-02"`
	EndDate   string `json:"end_date" validate:"required,datetime=2006-01-02"`
	Options   `json:"options"`
}
