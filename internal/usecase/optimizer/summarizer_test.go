package optimizer

import (
	"strings"
	"testing"
)

const fixtureText = "We decided on the deadline tomorrow.\nok yes.\n"

func TestLight_DropsShortLines(t *testing.T) {
	s := NewSummarizer()
	got := s.Light(fixtureText, true)

	if !strings.Contains(got, "We decided on the deadline tomorrow.") {
		t.Fatalf("expected keyword sentence kept, got %q", got)
	}
	if strings.Contains(got, "ok yes.") {
		t.Fatalf("expected short filler dropped, got %q", got)
	}
}

func TestLight_CollapsesBlankRuns(t *testing.T) {
	s := NewSummarizer()
	text := "A first line long enough to stay.\n\n\n\n\nA second line long enough to stay."
	got := s.Light(text, true)
	if strings.Contains(got, "\n\n\n") {
		t.Fatalf("expected blank runs collapsed, got %q", got)
	}
}

func TestLight_StripsSpeakerPrefixesWhenExcluded(t *testing.T) {
	s := NewSummarizer()
	text := "[Alice]: We agreed on the launch date for next month.\n"

	withSpeakers := s.Light(text, true)
	if !strings.Contains(withSpeakers, "[Alice]:") {
		t.Fatalf("expected prefix kept when speakers included, got %q", withSpeakers)
	}

	withoutSpeakers := s.Light(text, false)
	if strings.Contains(withoutSpeakers, "[Alice]:") {
		t.Fatalf("expected prefix stripped when speakers excluded, got %q", withoutSpeakers)
	}
	if !strings.Contains(withoutSpeakers, "We agreed on the launch date") {
		t.Fatalf("expected content preserved, got %q", withoutSpeakers)
	}
}

func TestModerate_KeepsKeywordSentences(t *testing.T) {
	s := NewSummarizer()
	got := s.Moderate(fixtureText, true)

	if !strings.Contains(got, "We decided on the deadline tomorrow.") {
		t.Fatalf("expected keyword sentence kept, got %q", got)
	}
	if strings.Contains(got, "ok yes") {
		t.Fatalf("expected filler dropped, got %q", got)
	}
}

func TestModerate_OverFilteringSafeguard(t *testing.T) {
	s := NewSummarizer()
	// Ten sentences, none with keywords, all 21-50 chars: the keyword
	// filter would keep nothing, so the longest 70% win instead.
	var b strings.Builder
	for i := 0; i < 10; i++ {
		b.WriteString("A bland sentence with no signal here.\n")
	}
	got := s.Moderate(b.String(), true)

	kept := strings.Count(got, "A bland sentence")
	if kept != 7 {
		t.Fatalf("expected longest 70%% (7 of 10) kept, got %d in %q", kept, got)
	}
}

func TestAggressive_KeepsOnlyKeywordSentences(t *testing.T) {
	s := NewSummarizer()
	text := "We decided on the deadline tomorrow.\n" +
		"The weather outside was surprisingly pleasant for the season of it.\n"
	got := s.Aggressive(text, true)

	if !strings.Contains(got, "We decided on the deadline tomorrow.") {
		t.Fatalf("expected keyword sentence kept, got %q", got)
	}
	if strings.Contains(got, "weather") {
		t.Fatalf("expected non-keyword sentence dropped, got %q", got)
	}
}

func TestAggressive_FallbackToLongest(t *testing.T) {
	s := NewSummarizer()
	// No aggressive keywords anywhere: fall back to the 3 longest.
	var b strings.Builder
	sentences := []string{
		"A reasonably verbose remark about nothing in particular today here.",
		"Another observation of little consequence that still runs long enough.",
		"The third sentence keeps rambling onward with plenty of extra words inside.",
		"A fourth filler statement that also occupies a fair number of characters.",
		"Shortish but over thirty characters anyway, fine.",
	}
	for _, sent := range sentences {
		b.WriteString(sent + "\n")
	}
	got := s.Aggressive(b.String(), true)

	count := strings.Count(got, ".")
	if count != 3 {
		t.Fatalf("expected 3 fallback sentences, got %d in %q", count, got)
	}
}

func TestSummarize_LevelsAreIncreasinglyLossy(t *testing.T) {
	s := NewSummarizer()
	var b strings.Builder
	for i := 0; i < 20; i++ {
		b.WriteString("We discussed the project and agreed on several action items today.\n")
		b.WriteString("hm.\n")
		b.WriteString("A mild aside of medium length without key terms.\n")
	}
	text := b.String()

	light := s.Summarize(text, SummarizeLow, true)
	moderate := s.Summarize(text, SummarizeMedium, true)
	aggressive := s.Summarize(text, SummarizeHigh, true)

	if !(len(light) <= len(text)) {
		t.Fatal("light output should never grow")
	}
	if len(moderate) > len(light) {
		t.Fatalf("moderate (%d) should not exceed light (%d)", len(moderate), len(light))
	}
	if len(aggressive) > len(moderate) {
		t.Fatalf("aggressive (%d) should not exceed moderate (%d)", len(aggressive), len(moderate))
	}
}

func TestAggressive_IndependentOfModeratePipeline(t *testing.T) {
	s := NewSummarizer()
	// Aggressive is callable on fresh input directly; it composes its own
	// Moderate pass rather than assuming pre-summarized text.
	fresh := s.Aggressive(fixtureText, true)
	piped := s.Aggressive(s.Moderate(fixtureText, true), true)

	if !strings.Contains(fresh, "decided") {
		t.Fatalf("fresh-input path lost the keyword sentence: %q", fresh)
	}
	if !strings.Contains(piped, "decided") {
		t.Fatalf("piped path lost the keyword sentence: %q", piped)
	}
}
