package optimizer

import (
	"fmt"
	"strings"

	"github.com/lifelogkit/lifelog-exporter/internal/domain/entities"
	"github.com/lifelogkit/lifelog-exporter/pkg/tokenizer"
)

// Cumulative token ceilings per band, as fractions of MaxTokens. The
// ceilings are cumulative, not per-band-exclusive: a medium entry is
// skipped once the running total reaches 95% of the budget no matter which
// band consumed it.
const (
	highCeiling   = 0.85
	mediumCeiling = 0.95
	lowCeiling    = 0.98
)

// Weights for the approximate omitted-entry estimate in the truncation
// footer.
const (
	mediumOmitWeight = 0.8
	lowOmitWeight    = 0.3
)

// ConsolidatedExporter assembles a single token-bounded document from
// prioritized bands. Every export is a pure function of its inputs; no
// state persists across calls.
type ConsolidatedExporter struct {
	counter    *tokenizer.Model
	summarizer *Summarizer
}

// NewConsolidatedExporter creates an exporter pricing content with the
// given model.
func NewConsolidatedExporter(counter *tokenizer.Model, summarizer *Summarizer) *ConsolidatedExporter {
	return &ConsolidatedExporter{counter: counter, summarizer: summarizer}
}

// Export renders the three labeled band sections from high priority down,
// greedily appending entries while the running token total stays
// under each band's cumulative ceiling. Low-band entries pass through the
// Light summarizer to save space.
func (x *ConsolidatedExporter) Export(groups entities.PriorityGroups, cfg Config) entities.ConsolidatedExport {
	header := "# Consolidated Lifelog Export\n\n"
	total := x.counter.CountTokens(header)

	var topics []string
	topicSeen := make(map[string]struct{})
	var omittedHigh, omittedMedium, omittedLow int

	appendBand := func(b *strings.Builder, title string, entries []entities.PrioritizedEntry, ceiling float64, light bool) int {
		if len(entries) == 0 {
			return 0
		}
		heading := fmt.Sprintf("## %s\n\n", title)
		b.WriteString(heading)
		total += x.counter.CountTokens(heading)

		budget := int(ceiling * float64(cfg.MaxTokens))
		omitted := 0
		for _, pe := range entries {
			formatted := x.formatEntry(pe, cfg, light)
			cost := x.counter.CountTokens(formatted)
			if total+cost > budget {
				omitted++
				continue
			}
			b.WriteString(formatted)
			total += cost
			for _, t := range pe.Topics {
				if _, ok := topicSeen[t]; !ok {
					topicSeen[t] = struct{}{}
					topics = append(topics, t)
				}
			}
		}
		return omitted
	}

	var body strings.Builder
	omittedHigh = appendBand(&body, "High Priority", groups.High, highCeiling, false)
	omittedMedium = appendBand(&body, "Medium Priority", groups.Medium, mediumCeiling, false)
	omittedLow = appendBand(&body, "Low Priority", groups.Low, lowCeiling, true)

	var doc strings.Builder
	doc.WriteString(header)
	if cfg.PrioritizeTopics && len(topics) > 0 {
		fmt.Fprintf(&doc, "**Topics:** %s\n\n", strings.Join(topics, ", "))
	}
	doc.WriteString(body.String())

	if omittedHigh+omittedMedium+omittedLow > 0 {
		estimate := omittedHigh +
			int(mediumOmitWeight*float64(omittedMedium)) +
			int(lowOmitWeight*float64(omittedLow))
		fmt.Fprintf(&doc, "---\n*Note: approximately %d additional entries were omitted to fit the token budget.*\n", estimate)
	}

	content := strings.TrimSpace(doc.String())
	return entities.ConsolidatedExport{
		Content:         content,
		TokenCount:      x.counter.CountTokens(content),
		Strategy:        "consolidated",
		Topics:          topics,
		OriginalEntries: groups.Total(),
	}
}

// formatEntry renders one entry as a titled markdown block.
func (x *ConsolidatedExporter) formatEntry(pe entities.PrioritizedEntry, cfg Config, light bool) string {
	title := pe.Entry.Title
	if title == "" {
		title = "Untitled"
	}

	var b strings.Builder
	if cfg.IncludeTimestamps && pe.Entry.StartTime != nil {
		fmt.Fprintf(&b, "### %s (%s)\n", title, pe.Entry.StartTime.Format("3:04 PM"))
	} else {
		fmt.Fprintf(&b, "### %s\n", title)
	}

	text := renderBody(pe.Entry, cfg.IncludeSpeakers).text
	if light {
		text = x.summarizer.Light(text, cfg.IncludeSpeakers)
	}
	if strings.TrimSpace(text) != "" {
		b.WriteString(strings.TrimSpace(text))
		b.WriteString("\n")
	}
	b.WriteString("\n")
	return b.String()
}
