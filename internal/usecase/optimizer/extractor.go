package optimizer

import (
	"fmt"
	"sort"
	"strings"

	"github.com/lifelogkit/lifelog-exporter/internal/domain/entities"
)

// ExtractOptions controls how entries are rendered into text.
type ExtractOptions struct {
	IncludeTimestamps bool
	IncludeSpeakers   bool
}

// Extractor flattens a list of lifelog entries into plain text plus
// aggregate metadata.
type Extractor struct{}

// NewExtractor creates a new Extractor instance
func NewExtractor() *Extractor {
	return &Extractor{}
}

// timestampLayout renders entry start times for humans.
const timestampLayout = "Monday, Jan 2 2006, 3:04 PM"

// Extract walks entries in input order and produces the concatenated text
// and metadata. An empty entry list yields sentinel "no data" metadata,
// never an error.
func (e *Extractor) Extract(entries []entities.LogEntry, opts ExtractOptions) entities.ExtractedContent {
	if len(entries) == 0 {
		return entities.ExtractedContent{
			Metadata: entities.ExtractionMetadata{
				DateRange: "no data",
				Speakers:  []string{},
				Topics:    []string{},
			},
		}
	}

	var b strings.Builder
	speakerSet := make(map[string]struct{})
	var topics []string
	starred := 0
	duration := 0.0

	for _, entry := range entries {
		if opts.IncludeTimestamps && entry.StartTime != nil {
			fmt.Fprintf(&b, "[%s]\n", entry.StartTime.Format(timestampLayout))
		}
		if entry.Title != "" {
			fmt.Fprintf(&b, "## %s\n", entry.Title)
			topics = append(topics, entry.Title)
		}

		body := renderBody(entry, opts.IncludeSpeakers)
		b.WriteString(body.text)
		for _, sp := range body.speakers {
			speakerSet[sp] = struct{}{}
		}

		b.WriteString("\n")

		if entry.IsStarred {
			starred++
		}
		duration += entry.DurationMinutes()
	}

	return entities.ExtractedContent{
		FullText: strings.TrimSpace(b.String()),
		Metadata: entities.ExtractionMetadata{
			EntryCount:      len(entries),
			DateRange:       dateRangeOf(entries),
			Speakers:        sortedKeys(speakerSet),
			Topics:          topics,
			StarredCount:    starred,
			DurationMinutes: duration,
		},
	}
}

// nodeResult is the contribution of one content subtree. Each traversal
// returns its own text and speakers; callers fold sibling results instead
// of sharing a mutable accumulator across subtrees.
type nodeResult struct {
	text     string
	speakers []string
}

// renderBody produces an entry's body text from its markdown when present,
// otherwise from its content tree.
func renderBody(entry entities.LogEntry, includeSpeakers bool) nodeResult {
	if len(entry.Contents) == 0 {
		if entry.Markdown == "" {
			return nodeResult{}
		}
		return nodeResult{text: entry.Markdown + "\n"}
	}

	var merged nodeResult
	var b strings.Builder
	for _, node := range entry.Contents {
		r := renderNode(node, includeSpeakers)
		b.WriteString(r.text)
		merged.speakers = append(merged.speakers, r.speakers...)
	}
	merged.text = b.String()
	return merged
}

// renderNode walks one node depth-first, preserving child order. A node
// with a speaker label emits "[speaker]: content"; the speaker is reported
// in the result even when the prefix is suppressed.
func renderNode(node entities.ContentNode, includeSpeakers bool) nodeResult {
	var b strings.Builder
	var speakers []string

	if node.Content != "" {
		switch {
		case node.Speaker != "" && includeSpeakers:
			fmt.Fprintf(&b, "[%s]: %s\n", node.Speaker, node.Content)
			speakers = append(speakers, node.Speaker)
		case node.Speaker != "":
			b.WriteString(node.Content + "\n")
			speakers = append(speakers, node.Speaker)
		default:
			b.WriteString(node.Content + "\n")
		}
	}

	for _, child := range node.Children {
		r := renderNode(child, includeSpeakers)
		b.WriteString(r.text)
		speakers = append(speakers, r.speakers...)
	}

	return nodeResult{text: b.String(), speakers: speakers}
}

// dateRangeOf formats the covered dates from the first and last entry that
// carry a start time.
func dateRangeOf(entries []entities.LogEntry) string {
	var first, last string
	for _, e := range entries {
		if e.StartTime == nil {
			continue
		}
		d := e.StartTime.Format("2006-01-02")
		if first == "" {
			first = d
		}
		last = d
	}
	switch {
	case first == "":
		return "unknown"
	case first == last:
		return first
	default:
		return first + " to " + last
	}
}

func sortedKeys(set map[string]struct{}) []string {
	keys := make([]string, 0, len(set))
	for k := range set {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
