package optimizer

import (
	"sort"
	"strings"

	"github.com/lifelogkit/lifelog-exporter/internal/domain/entities"
)

const (
	highWordCount   = 50
	mediumWordCount = 20
)

// PriorityGrouper classifies entries into importance bands for
// consolidated export.
type PriorityGrouper struct{}

// NewPriorityGrouper creates a new PriorityGrouper instance
func NewPriorityGrouper() *PriorityGrouper {
	return &PriorityGrouper{}
}

// Group bands every entry and sorts each band ascending by start time.
// Classification: high when the entry exceeds 50 words or contains a
// high-importance keyword; else medium when it exceeds 20 words or
// contains a medium-importance keyword; else low.
func (g *PriorityGrouper) Group(entries []entities.LogEntry) entities.PriorityGroups {
	var groups entities.PriorityGroups

	for _, entry := range entries {
		text := entryPlainText(entry)
		lower := strings.ToLower(text)
		words := len(strings.Fields(text))

		pe := entities.PrioritizedEntry{
			Entry:     entry,
			Topics:    detectTopics(lower),
			WordCount: words,
		}

		switch {
		case words > highWordCount || containsAny(lower, highPriorityKeywords):
			pe.Band = entities.PriorityHigh
			groups.High = append(groups.High, pe)
		case words > mediumWordCount || containsAny(lower, mediumPriorityKeywords):
			pe.Band = entities.PriorityMedium
			groups.Medium = append(groups.Medium, pe)
		default:
			pe.Band = entities.PriorityLow
			groups.Low = append(groups.Low, pe)
		}
	}

	sortByStartTime(groups.High)
	sortByStartTime(groups.Medium)
	sortByStartTime(groups.Low)
	return groups
}

// detectTopics matches the lower-cased entry text against the fixed
// topic keyword table. An entry may match zero or multiple topics.
func detectTopics(lower string) []string {
	var topics []string
	for _, topic := range topicOrder {
		if containsAny(lower, topicKeywords[topic]) {
			topics = append(topics, topic)
		}
	}
	return topics
}

// sortByStartTime orders entries ascending by start time; entries without
// a start time sink to the end.
func sortByStartTime(entries []entities.PrioritizedEntry) {
	sort.SliceStable(entries, func(a, b int) bool {
		ta, tb := entries[a].Entry.StartTime, entries[b].Entry.StartTime
		switch {
		case ta == nil:
			return false
		case tb == nil:
			return true
		default:
			return ta.Before(*tb)
		}
	})
}
