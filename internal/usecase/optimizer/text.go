package optimizer

import (
	"regexp"
	"strings"

	"github.com/lifelogkit/lifelog-exporter/internal/domain/entities"
)

var (
	blankLines    = regexp.MustCompile(`\n{3,}`)
	speakerPrefix = regexp.MustCompile(`\[[^\]]+\]:\s*`)
	headingMarks  = regexp.MustCompile(`(?m)^#{1,6}\s*`)
	boldMarks     = regexp.MustCompile(`\*\*([^*]*)\*\*`)
	italicMarks   = regexp.MustCompile(`\*([^*]*)\*`)
)

// splitSentences splits text on sentence terminators (". ! ?"), keeping
// the terminator attached to its sentence. Newlines inside a sentence are
// treated as spaces.
func splitSentences(text string) []string {
	var sentences []string
	var b strings.Builder

	flush := func() {
		s := strings.TrimSpace(b.String())
		if s != "" {
			sentences = append(sentences, s)
		}
		b.Reset()
	}

	for _, r := range text {
		switch r {
		case '\n':
			b.WriteRune(' ')
		case '.', '!', '?':
			b.WriteRune(r)
			flush()
		default:
			b.WriteRune(r)
		}
	}
	flush()
	return sentences
}

// containsAny reports whether the lower-cased text contains any keyword.
func containsAny(text string, keywords []string) bool {
	lower := strings.ToLower(text)
	for _, kw := range keywords {
		if strings.Contains(lower, kw) {
			return true
		}
	}
	return false
}

// entryPlainText renders an entry's text for classification: markdown body
// when present, otherwise the bare content tree.
func entryPlainText(entry entities.LogEntry) string {
	if entry.Markdown != "" {
		return entry.Title + "\n" + entry.Markdown
	}
	body := renderBody(entry, false)
	return strings.TrimSpace(entry.Title + "\n" + body.text)
}

// stripMarkdown removes the markdown decorations the extractor and
// formatter emit, for plain-text rendering.
func stripMarkdown(text string) string {
	text = headingMarks.ReplaceAllString(text, "")
	text = boldMarks.ReplaceAllString(text, "$1")
	text = italicMarks.ReplaceAllString(text, "$1")
	return text
}
