package export

// MetadataResponse mirrors the extraction metadata on the wire.
type MetadataResponse struct {
	EntryCount      int      `json:"entry_count"`
	DateRange       string   `json:"date_range"`
	Speakers        []string `json:"speakers"`
	Topics          []string `json:"topics"`
	StarredCount    int      `json:"starred_count"`
	DurationMinutes float64  `json:"duration_minutes"`
}

// ChunkResponse is one ordered segment of a chunked result.
type ChunkResponse struct {
	Index      int      `json:"index"`
	Content    string   `json:"content"`
	TokenCount int      `json:"token_count"`
	Strategy   string   `json:"strategy"`
	Topics     []string `json:"topics,omitempty"`
}

// OptimizeResponse is the per-day optimization result. A "complete"
// strategy carries content and token_count with chunks null; any other
// strategy carries the token accounting triple and the chunk list.
type OptimizeResponse struct {
	Strategy         string           `json:"strategy"`
	Content          string           `json:"content,omitempty"`
	TokenCount       int              `json:"token_count,omitempty"`
	OriginalTokens   int              `json:"original_tokens,omitempty"`
	OptimizedTokens  int              `json:"optimized_tokens,omitempty"`
	CompressionRatio float64          `json:"compression_ratio,omitempty"`
	Chunks           []ChunkResponse  `json:"chunks"`
	Metadata         MetadataResponse `json:"metadata"`
}

// ConsolidatedResponse is the single-artifact prioritized export.
type ConsolidatedResponse struct {
	Content         string   `json:"content"`
	TokenCount      int      `json:"token_count"`
	Strategy        string   `json:"strategy"`
	Topics          []string `json:"topics"`
	OriginalEntries int      `json:"original_entries"`
}

// BatchItemResponse is one date of a batch export. Failed dates carry an
// error message and a null result.
type BatchItemResponse struct {
	JobID  string            `json:"job_id"`
	Date   string            `json:"date"`
	Result *OptimizeResponse `json:"result,omitempty"`
	Error  string            `json:"error,omitempty"`
}

// BatchResponse reports the whole batch with success accounting.
type BatchResponse struct {
	Results   []BatchItemResponse `json:"results"`
	Succeeded int                 `json:"succeeded"`
	Failed    int                 `json:"failed"`
}
