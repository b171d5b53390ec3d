package research

import (
	"regexp"
	"strings"

	"github.com/harshvardhanraju/video-content-creator/internal/domain"
)

const (
	maxTimelineEvents = 8
	contextBefore     = 50
	contextAfter      = 150
)

// datePatterns match absolute dates, weekday references, and relative
// terms. The raw match is kept as the event date; no parsing is attempted.
var datePatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)(on\s+)?(\w+\s+\d{1,2},?\s+\d{4})`),
	regexp.MustCompile(`(?i)(on\s+)?(\d{1,2}/\d{1,2}/\d{4})`),
	regexp.MustCompile(`(?i)(last\s+)?(monday|tuesday|wednesday|thursday|friday|saturday|sunday)`),
	regexp.MustCompile(`(?i)(yesterday|today|this week|last week)`),
}

// BuildTimeline scans article content for date-like mentions and captures
// the surrounding text as the event description. Events keep
// source-encounter order rather than chronological order: the matched
// dates are free text and are deliberately not parsed or sorted.
func BuildTimeline(articles []article) []domain.TimelineEvent {
	var events []domain.TimelineEvent
	seen := map[string]struct{}{}

	for _, art := range articles {
		content := art.Content
		if content == "" {
			content = art.Snippet
		}

		for _, pattern := range datePatterns {
			for _, loc := range pattern.FindAllStringIndex(content, -1) {
				start := loc[0] - contextBefore
				if start < 0 {
					start = 0
				}
				end := loc[1] + contextAfter
				if end > len(content) {
					end = len(content)
				}
				context := strings.TrimSpace(content[start:end])
				if len(context) <= 50 {
					continue
				}

				key := context
				if len(key) > 50 {
					key = key[:50]
				}
				if _, ok := seen[key]; ok {
					continue
				}
				seen[key] = struct{}{}

				events = append(events, domain.TimelineEvent{
					Date:        content[loc[0]:loc[1]],
					Description: context,
					Source:      art.Domain,
				})
			}
		}
	}

	if len(events) > maxTimelineEvents {
		events = events[:maxTimelineEvents]
	}
	return events
}
