package optimizer

import (
	"strings"
	"testing"
	"time"

	"github.com/lifelogkit/lifelog-exporter/internal/domain/entities"
)

func timePtr(t time.Time) *time.Time { return &t }

func TestExtract_EmptyEntries(t *testing.T) {
	e := NewExtractor()
	got := e.Extract(nil, ExtractOptions{})

	if got.FullText != "" {
		t.Fatalf("expected empty text, got %q", got.FullText)
	}
	if got.Metadata.DateRange != "no data" {
		t.Fatalf("expected sentinel date range, got %q", got.Metadata.DateRange)
	}
	if got.Metadata.EntryCount != 0 {
		t.Fatalf("expected 0 entries, got %d", got.Metadata.EntryCount)
	}
}

func TestExtract_TitleBecomesHeadingAndTopic(t *testing.T) {
	e := NewExtractor()
	entries := []entities.LogEntry{
		{ID: "1", Title: "Standup", Markdown: "Discussed the quarterly deadline."},
	}

	got := e.Extract(entries, ExtractOptions{})
	if !strings.Contains(got.FullText, "## Standup") {
		t.Fatalf("expected heading line, got %q", got.FullText)
	}
	if len(got.Metadata.Topics) != 1 || got.Metadata.Topics[0] != "Standup" {
		t.Fatalf("expected topic [Standup], got %v", got.Metadata.Topics)
	}
}

func TestExtract_SpeakerFoldAcrossSubtrees(t *testing.T) {
	e := NewExtractor()
	entries := []entities.LogEntry{
		{
			ID: "1",
			Contents: []entities.ContentNode{
				{
					Content: "Let's get started on the roadmap.",
					Speaker: "Alice",
					Children: []entities.ContentNode{
						{Content: "Sounds good to me, I'll take notes.", Speaker: "Bob"},
					},
				},
				{Content: "Next item is the budget review.", Speaker: "Carol"},
			},
		},
	}

	got := e.Extract(entries, ExtractOptions{IncludeSpeakers: true})

	for _, want := range []string{"[Alice]: Let's get started", "[Bob]: Sounds good", "[Carol]: Next item"} {
		if !strings.Contains(got.FullText, want) {
			t.Fatalf("expected %q in output, got %q", want, got.FullText)
		}
	}
	if len(got.Metadata.Speakers) != 3 {
		t.Fatalf("expected 3 distinct speakers, got %v", got.Metadata.Speakers)
	}
	// Child before next sibling: depth-first order preserved.
	if strings.Index(got.FullText, "[Bob]") > strings.Index(got.FullText, "[Carol]") {
		t.Fatal("expected depth-first child order before next sibling")
	}
}

func TestExtract_SpeakersCollectedEvenWhenExcluded(t *testing.T) {
	e := NewExtractor()
	entries := []entities.LogEntry{
		{ID: "1", Contents: []entities.ContentNode{
			{Content: "We agreed on the launch date.", Speaker: "Alice"},
		}},
	}

	got := e.Extract(entries, ExtractOptions{IncludeSpeakers: false})
	if strings.Contains(got.FullText, "[Alice]") {
		t.Fatalf("speaker prefix should be suppressed, got %q", got.FullText)
	}
	if len(got.Metadata.Speakers) != 1 || got.Metadata.Speakers[0] != "Alice" {
		t.Fatalf("speaker should still be recorded in metadata, got %v", got.Metadata.Speakers)
	}
}

func TestExtract_TimestampsAndDuration(t *testing.T) {
	e := NewExtractor()
	start := time.Date(2024, 1, 1, 9, 30, 0, 0, time.UTC)
	end := start.Add(45 * time.Minute)
	entries := []entities.LogEntry{
		{ID: "1", Title: "Morning walk", StartTime: timePtr(start), EndTime: timePtr(end), IsStarred: true},
		{ID: "2", Title: "Untimed note", Markdown: "No timestamps on this one."},
	}

	got := e.Extract(entries, ExtractOptions{IncludeTimestamps: true})
	if !strings.Contains(got.FullText, "9:30 AM") {
		t.Fatalf("expected human-readable timestamp, got %q", got.FullText)
	}
	if got.Metadata.DurationMinutes != 45 {
		t.Fatalf("expected 45 minutes of duration, got %v", got.Metadata.DurationMinutes)
	}
	if got.Metadata.StarredCount != 1 {
		t.Fatalf("expected 1 starred entry, got %d", got.Metadata.StarredCount)
	}
	if got.Metadata.DateRange != "2024-01-01" {
		t.Fatalf("expected single-day range, got %q", got.Metadata.DateRange)
	}
}

func TestExtract_EntryOrderPreserved(t *testing.T) {
	e := NewExtractor()
	entries := []entities.LogEntry{
		{ID: "1", Title: "First"},
		{ID: "2", Title: "Second"},
		{ID: "3", Title: "Third"},
	}

	got := e.Extract(entries, ExtractOptions{})
	first := strings.Index(got.FullText, "First")
	second := strings.Index(got.FullText, "Second")
	third := strings.Index(got.FullText, "Third")
	if !(first < second && second < third) {
		t.Fatalf("expected input order in output, got %q", got.FullText)
	}
}
