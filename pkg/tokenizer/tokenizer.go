// Package tokenizer estimates LLM token costs for export budgeting.
//
// Counts are approximate: known common words cost one token,
// everything else is priced at ~4 characters per token, which tracks GPT
// tokenization closely enough for threshold decisions. Exact tokenizer
// fidelity is out of scope.
package tokenizer

import (
	"strings"
	"sync"
	"unicode"
	"unicode/utf8"
)

// Model is a fixed vocabulary token cost model. It is immutable after
// construction and safe for unsynchronized concurrent reads.
type Model struct {
	vocab map[string]struct{}
}

var (
	defaultModel *Model
	defaultOnce  sync.Once
)

// Default returns the process-wide model built from the builtin
// vocabulary. It is constructed once and shared; callers inject it rather
// than building models ad hoc.
func Default() *Model {
	defaultOnce.Do(func() {
		defaultModel = New(defaultVocabulary)
	})
	return defaultModel
}

// New builds a model from the given vocabulary words. Words are matched
// case-insensitively.
func New(vocabulary []string) *Model {
	vocab := make(map[string]struct{}, len(vocabulary))
	for _, w := range vocabulary {
		vocab[strings.ToLower(w)] = struct{}{}
	}
	return &Model{vocab: vocab}
}

// CountTokens estimates the token cost of text. It returns 0 for empty
// input and never fails: a nil or empty model, or any counting error,
// degrades to the character-based Estimate so budget decisions stay
// monotonic in text length.
func (m *Model) CountTokens(text string) (n int) {
	if text == "" {
		return 0
	}
	if m == nil || len(m.vocab) == 0 {
		return Estimate(text)
	}

	defer func() {
		if recover() != nil {
			n = Estimate(text)
		}
	}()

	total := 0
	for _, field := range strings.Fields(text) {
		core := strings.TrimFunc(field, func(r rune) bool {
			return !unicode.IsLetter(r) && !unicode.IsNumber(r)
		})

		// Stripped punctuation runes cost roughly one token each.
		total += utf8.RuneCountInString(field) - utf8.RuneCountInString(core)

		if core == "" {
			continue
		}
		if _, ok := m.vocab[strings.ToLower(core)]; ok {
			total++
			continue
		}
		total += pieces(core)
	}

	if total == 0 {
		// Whitespace-only input still occupies at least one token.
		total = 1
	}
	return total
}

// Estimate is the deterministic fallback estimator: ceil(runes / 4). It is
// used whenever the vocabulary model is unavailable, and is exported so
// collaborators price text the same way the counter degrades.
func Estimate(text string) int {
	if text == "" {
		return 0
	}
	return (utf8.RuneCountInString(text) + 3) / 4
}

// pieces prices an out-of-vocabulary word as ~4-character sub-word pieces.
func pieces(word string) int {
	return (utf8.RuneCountInString(word) + 3) / 4
}
