package optimizer

import (
	"strings"

	"github.com/lifelogkit/lifelog-exporter/internal/domain/entities"
	"github.com/lifelogkit/lifelog-exporter/pkg/tokenizer"
)

// Chunk strategies. Temporal aliases semantic: entries arrive in
// chronological order, so section boundaries double as time boundaries.
const (
	StrategyComplete = "complete"
	StrategyFixed    = "fixed"
	StrategySemantic = "semantic"
	StrategyTemporal = "temporal"
)

// chunkFillRatio bounds each chunk at 90% of the token budget, leaving
// headroom for the consumer's own prompt text.
const chunkFillRatio = 0.9

// Chunker splits over-budget text into ordered, token-bounded segments.
type Chunker struct {
	counter *tokenizer.Model
}

// NewChunker creates a Chunker pricing chunks with the given model.
func NewChunker(counter *tokenizer.Model) *Chunker {
	return &Chunker{counter: counter}
}

// Split divides the extracted text using the requested strategy and
// assigns contiguous 0-based indices across the whole output, regardless
// of which sub-path produced each chunk.
func (c *Chunker) Split(text, strategy string, maxTokens int) []entities.Chunk {
	var chunks []entities.Chunk
	switch strategy {
	case StrategySemantic, StrategyTemporal:
		chunks = c.splitSemantic(text, strategy, maxTokens)
	default:
		chunks = c.splitFixed(text, StrategyFixed, maxTokens)
	}

	for i := range chunks {
		chunks[i].Index = i
	}
	return chunks
}

// splitFixed greedily packs sentences until adding the next one would
// exceed 90% of maxTokens. The final partial chunk is always emitted when
// non-empty.
func (c *Chunker) splitFixed(text, tag string, maxTokens int) []entities.Chunk {
	limit := int(chunkFillRatio * float64(maxTokens))

	var chunks []entities.Chunk
	var b strings.Builder
	current := 0

	flush := func() {
		content := strings.TrimSpace(b.String())
		if content == "" {
			return
		}
		chunks = append(chunks, entities.Chunk{
			Content:    content,
			TokenCount: c.counter.CountTokens(content),
			Strategy:   tag,
		})
		b.Reset()
		current = 0
	}

	for _, sent := range splitSentences(text) {
		cost := c.counter.CountTokens(sent)
		if current > 0 && current+cost > limit {
			flush()
		}
		b.WriteString(sent)
		b.WriteString(" ")
		current += cost
	}
	flush()

	return chunks
}

// section is a titled slice of the document used by semantic chunking.
type section struct {
	text   string
	topics []string
}

// splitSemantic packs whole titled sections greedily. A single section
// exceeding the budget on its own is re-split with the fixed strategy and
// its sub-chunks are tagged "<strategy>-split".
func (c *Chunker) splitSemantic(text, strategy string, maxTokens int) []entities.Chunk {
	limit := int(chunkFillRatio * float64(maxTokens))
	sections := splitSections(text)

	var chunks []entities.Chunk
	var b strings.Builder
	var topics []string
	current := 0

	flush := func() {
		content := strings.TrimSpace(b.String())
		if content == "" {
			return
		}
		chunks = append(chunks, entities.Chunk{
			Content:    content,
			TokenCount: c.counter.CountTokens(content),
			Strategy:   strategy,
			Topics:     topics,
		})
		b.Reset()
		topics = nil
		current = 0
	}

	for _, sec := range sections {
		cost := c.counter.CountTokens(sec.text)

		if cost > limit {
			flush()
			for _, sub := range c.splitFixed(sec.text, strategy+"-split", maxTokens) {
				sub.Topics = sec.topics
				chunks = append(chunks, sub)
			}
			continue
		}

		if current > 0 && current+cost > limit {
			flush()
		}
		b.WriteString(sec.text)
		b.WriteString("\n")
		topics = append(topics, sec.topics...)
		current += cost
	}
	flush()

	return chunks
}

// splitSections cuts the document at heading lines. Text before the first
// heading forms its own untitled section.
func splitSections(text string) []section {
	var sections []section
	var b strings.Builder
	var topics []string

	flush := func() {
		t := strings.TrimSpace(b.String())
		if t != "" {
			sections = append(sections, section{text: t, topics: topics})
		}
		b.Reset()
		topics = nil
	}

	for _, line := range strings.Split(text, "\n") {
		if strings.HasPrefix(line, "#") {
			flush()
			topics = append(topics, strings.TrimSpace(strings.TrimLeft(line, "# ")))
		}
		b.WriteString(line)
		b.WriteString("\n")
	}
	flush()

	return sections
}
