package optimizer

import (
	"fmt"
	"strings"

	"github.com/lifelogkit/lifelog-exporter/internal/domain/entities"
)

// FormatAsMarkdown renders an optimization result as a single markdown
// document with a metadata header. Chunked results get one section per
// chunk in source order.
func FormatAsMarkdown(res *entities.OptimizeResult) string {
	if res == nil {
		return ""
	}

	var b strings.Builder
	fmt.Fprintf(&b, "# Lifelog Export: %s\n\n", res.Metadata.DateRange)
	fmt.Fprintf(&b, "**Entries:** %d  \n", res.Metadata.EntryCount)
	if len(res.Metadata.Speakers) > 0 {
		fmt.Fprintf(&b, "**Speakers:** %s  \n", strings.Join(res.Metadata.Speakers, ", "))
	}
	if res.Metadata.DurationMinutes > 0 {
		fmt.Fprintf(&b, "**Duration:** %.0f minutes  \n", res.Metadata.DurationMinutes)
	}
	if res.Metadata.StarredCount > 0 {
		fmt.Fprintf(&b, "**Starred:** %d  \n", res.Metadata.StarredCount)
	}

	if res.Strategy == StrategyComplete {
		fmt.Fprintf(&b, "**Tokens:** %d\n\n", res.TokenCount)
		b.WriteString(res.Content)
		b.WriteString("\n")
		return b.String()
	}

	fmt.Fprintf(&b, "**Tokens:** %d to %d (%.1f%% reduction, %s strategy)\n\n",
		res.OriginalTokens, res.OptimizedTokens, res.CompressionRatio*100, res.Strategy)

	for _, ch := range res.Chunks {
		fmt.Fprintf(&b, "## Chunk %d of %d (%d tokens)\n\n", ch.Index+1, len(res.Chunks), ch.TokenCount)
		if len(ch.Topics) > 0 {
			fmt.Fprintf(&b, "_Topics: %s_\n\n", strings.Join(ch.Topics, ", "))
		}
		b.WriteString(ch.Content)
		b.WriteString("\n\n")
	}
	return b.String()
}

// FormatAsPlainText renders the same document with markdown decorations
// stripped.
func FormatAsPlainText(res *entities.OptimizeResult) string {
	return stripMarkdown(FormatAsMarkdown(res))
}
