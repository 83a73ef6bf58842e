package optimizer

import (
	"strings"
	"testing"
	"time"

	"github.com/lifelogkit/lifelog-exporter/internal/domain/entities"
)

func words(n int) string {
	parts := make([]string, n)
	for i := range parts {
		parts[i] = "filler"
	}
	return strings.Join(parts, " ")
}

func TestGroup_BandsByWordCountAndKeywords(t *testing.T) {
	g := NewPriorityGrouper()
	entries := []entities.LogEntry{
		{ID: "low", Markdown: words(9)},                                // 9 words, no keywords
		{ID: "medium", Markdown: words(30)},                            // >20 words
		{ID: "high", Markdown: words(59) + " meeting"},                 // >50 words and a keyword
		{ID: "kw-high", Markdown: "Short but the deadline is urgent."}, // keyword promotion
	}

	groups := g.Group(entries)

	if len(groups.High) != 2 {
		t.Fatalf("expected 2 high entries, got %d", len(groups.High))
	}
	if len(groups.Medium) != 1 || groups.Medium[0].Entry.ID != "medium" {
		t.Fatalf("expected medium band to hold the 30-word entry, got %+v", groups.Medium)
	}
	if len(groups.Low) != 1 || groups.Low[0].Entry.ID != "low" {
		t.Fatalf("expected low band to hold the 9-word entry, got %+v", groups.Low)
	}
	if groups.Low[0].WordCount != 9 {
		t.Fatalf("expected word count 9, got %d", groups.Low[0].WordCount)
	}
}

func TestGroup_TopicDetection(t *testing.T) {
	g := NewPriorityGrouper()
	entries := []entities.LogEntry{
		{ID: "1", Markdown: "Caught a flight to the hotel, then reviewed some code at the gym."},
		{ID: "2", Markdown: words(5)},
	}

	groups := g.Group(entries)

	var tagged *entities.PrioritizedEntry
	for i := range groups.High {
		if groups.High[i].Entry.ID == "1" {
			tagged = &groups.High[i]
		}
	}
	for i := range groups.Medium {
		if groups.Medium[i].Entry.ID == "1" {
			tagged = &groups.Medium[i]
		}
	}
	for i := range groups.Low {
		if groups.Low[i].Entry.ID == "1" {
			tagged = &groups.Low[i]
		}
	}
	if tagged == nil {
		t.Fatal("entry 1 missing from all bands")
	}

	want := map[string]bool{"health": true, "technology": true, "travel": true}
	for _, topic := range tagged.Topics {
		if !want[topic] {
			t.Fatalf("unexpected topic %q in %v", topic, tagged.Topics)
		}
		delete(want, topic)
	}
	if len(want) != 0 {
		t.Fatalf("missing topics %v, got %v", want, tagged.Topics)
	}
}

func TestGroup_BandsSortedByStartTime(t *testing.T) {
	g := NewPriorityGrouper()
	later := time.Date(2024, 1, 1, 15, 0, 0, 0, time.UTC)
	earlier := time.Date(2024, 1, 1, 9, 0, 0, 0, time.UTC)
	entries := []entities.LogEntry{
		{ID: "pm", Markdown: words(30), StartTime: timePtr(later)},
		{ID: "am", Markdown: words(30), StartTime: timePtr(earlier)},
	}

	groups := g.Group(entries)
	if len(groups.Medium) != 2 {
		t.Fatalf("expected both entries in medium, got %d", len(groups.Medium))
	}
	if groups.Medium[0].Entry.ID != "am" {
		t.Fatalf("expected ascending start-time order, got %s first", groups.Medium[0].Entry.ID)
	}
}
