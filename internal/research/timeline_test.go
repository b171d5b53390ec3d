package research

import (
	"strings"
	"testing"
)

func TestBuildTimelineCapturesDateContext(t *testing.T) {
	t.Parallel()

	articles := []article{
		{
			Domain: "example.com",
			Content: "Negotiations stalled for weeks before the breakthrough. " +
				"On March 12, 2024 the delegations signed the framework agreement in Geneva, " +
				"ending a dispute that had dragged on since the previous spring and summer.",
		},
	}

	events := BuildTimeline(articles)
	if len(events) == 0 {
		t.Fatal("expected at least one event")
	}

	first := events[0]
	if !strings.Contains(first.Date, "March 12") {
		t.Fatalf("unexpected date: %q", first.Date)
	}
	if !strings.Contains(first.Description, "signed the framework agreement") {
		t.Fatalf("description missing trailing context: %q", first.Description)
	}
	if first.Source != "example.com" {
		t.Fatalf("unexpected source: %q", first.Source)
	}
}

func TestBuildTimelineDeduplicatesOverlappingContexts(t *testing.T) {
	t.Parallel()

	// "yesterday" and "today" sit close enough that their context windows
	// share a 50-char prefix; only the first survives.
	content := "Officials met yesterday and today to finalize the extended funding package for the region, " +
		"with additional sessions planned through the remainder of the legislative calendar."

	events := BuildTimeline([]article{{Domain: "example.com", Content: content}})
	for i, e := range events {
		for j := i + 1; j < len(events); j++ {
			a, b := e.Description, events[j].Description
			if len(a) > 50 {
				a = a[:50]
			}
			if len(b) > 50 {
				b = b[:50]
			}
			if a == b {
				t.Fatalf("duplicate context survived: %q", a)
			}
		}
	}
}

func TestBuildTimelineCapsEvents(t *testing.T) {
	t.Parallel()

	var sb strings.Builder
	for i := 0; i < 15; i++ {
		sb.WriteString(strings.Repeat("x", 10))
		sb.WriteString(" distinct filler block number ")
		sb.WriteString(strings.Repeat("word ", i+1))
		sb.WriteString("happened on January 1, 2020 and mattered a great deal to everyone involved in the region. ")
	}

	events := BuildTimeline([]article{{Domain: "example.com", Content: sb.String()}})
	if len(events) > maxTimelineEvents {
		t.Fatalf("expected at most %d events, got %d", maxTimelineEvents, len(events))
	}
}
