package optimizer

import (
	"sort"
	"strings"
)

// Summarize levels accepted by the service config.
const (
	SummarizeLow    = "low"
	SummarizeMedium = "medium"
	SummarizeHigh   = "high"
)

const (
	minLineLength       = 15
	minSentenceLength   = 20
	longSentenceLength  = 50
	aggressiveMinLength = 30
	keptRatioFloor      = 0.3
	longestKeepRatio    = 0.7
	aggressiveFallback  = 3
)

// Summarizer applies tiered lossy compression to extracted text. Tiers are
// strictly increasing in compression and independently callable; each
// operates on raw markdown-like text.
type Summarizer struct{}

// NewSummarizer creates a new Summarizer instance
func NewSummarizer() *Summarizer {
	return &Summarizer{}
}

// Summarize dispatches to the tier matching the configured level. Unknown
// levels fall back to Light.
func (s *Summarizer) Summarize(text, level string, includeSpeakers bool) string {
	switch level {
	case SummarizeHigh:
		return s.Aggressive(text, includeSpeakers)
	case SummarizeMedium:
		return s.Moderate(text, includeSpeakers)
	default:
		return s.Light(text, includeSpeakers)
	}
}

// Light collapses runs of blank lines, strips "[speaker]: " prefixes when
// speakers are excluded, and drops any line whose trimmed length is under
// 15 characters, including short but meaningful statements.
func (s *Summarizer) Light(text string, includeSpeakers bool) string {
	text = blankLines.ReplaceAllString(text, "\n\n")
	if !includeSpeakers {
		text = speakerPrefix.ReplaceAllString(text, "")
	}

	var kept []string
	for _, line := range strings.Split(text, "\n") {
		if len(strings.TrimSpace(line)) >= minLineLength {
			kept = append(kept, line)
		}
	}
	return strings.Join(kept, "\n")
}

// Moderate applies Light, then keeps sentences longer than 20 characters
// that either contain a summary keyword or exceed 50 characters. If that
// filter retains fewer than 30% of the candidates it is abandoned and the
// longest 70% of candidates are kept instead, in document order.
func (s *Summarizer) Moderate(text string, includeSpeakers bool) string {
	text = s.Light(text, includeSpeakers)

	var candidates []string
	for _, sent := range splitSentences(text) {
		if len(sent) > minSentenceLength {
			candidates = append(candidates, sent)
		}
	}
	if len(candidates) == 0 {
		return ""
	}

	var kept []string
	for _, sent := range candidates {
		if containsAny(sent, summaryKeywords) || len(sent) > longSentenceLength {
			kept = append(kept, sent)
		}
	}

	if float64(len(kept)) < keptRatioFloor*float64(len(candidates)) {
		kept = longestOf(candidates, int(longestKeepRatio*float64(len(candidates))))
	}
	return strings.Join(kept, " ")
}

// Aggressive applies Moderate, then from its sentences longer than 30
// characters keeps only those matching the high-priority keyword list,
// falling back to the 3 longest sentences when none match.
func (s *Summarizer) Aggressive(text string, includeSpeakers bool) string {
	text = s.Moderate(text, includeSpeakers)

	var candidates []string
	for _, sent := range splitSentences(text) {
		if len(sent) > aggressiveMinLength {
			candidates = append(candidates, sent)
		}
	}
	if len(candidates) == 0 {
		return ""
	}

	var kept []string
	for _, sent := range candidates {
		if containsAny(sent, aggressiveKeywords) {
			kept = append(kept, sent)
		}
	}
	if len(kept) == 0 {
		kept = longestOf(candidates, aggressiveFallback)
	}
	return strings.Join(kept, " ")
}

// longestOf returns the n longest sentences by character length, preserving
// their original order in the output.
func longestOf(sentences []string, n int) []string {
	if n <= 0 {
		n = 1
	}
	if n >= len(sentences) {
		return sentences
	}

	idx := make([]int, len(sentences))
	for i := range idx {
		idx[i] = i
	}
	sort.SliceStable(idx, func(a, b int) bool {
		return len(sentences[idx[a]]) > len(sentences[idx[b]])
	})

	chosen := make(map[int]struct{}, n)
	for _, i := range idx[:n] {
		chosen[i] = struct{}{}
	}

	kept := make([]string, 0, n)
	for i, sent := range sentences {
		if _, ok := chosen[i]; ok {
			kept = append(kept, sent)
		}
	}
	return kept
}
