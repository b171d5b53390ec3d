package domain

import "time"

// SearchResult is one raw tuple returned by a search provider.
type SearchResult struct {
	Title   string `json:"title"`
	URL     string `json:"url"`
	Snippet string `json:"snippet"`
}

// Source describes one distinct retrieved URL. Sources are deduplicated
// by URL and immutable once created.
type Source struct {
	Title         string `json:"title"`
	URL           string `json:"url"`
	Snippet       string `json:"snippet"`
	PublishedDate string `json:"published_date,omitempty"`
	Domain        string `json:"domain"`
}

// TimelineEvent is a dated event captured from source text. Events keep
// source-encounter order; the date field is the raw matched text, not a
// parsed timestamp.
type TimelineEvent struct {
	Date        string `json:"date"`
	Description string `json:"description"`
	Source      string `json:"source"`
}

// ResearchResult contains all findings for one research call. It is built
// once and never mutated afterwards.
type ResearchResult struct {
	Topic         string          `json:"topic"`
	Category      string          `json:"category"`
	Summary       string          `json:"summary"`
	KeyFacts      []string        `json:"key_facts"`
	Timeline      []TimelineEvent `json:"timeline"`
	Sources       []Source        `json:"sources"`
	RelatedTopics []string        `json:"related_topics"`
	ImageKeywords []string        `json:"image_keywords"`
	Timestamp     time.Time       `json:"timestamp"`
}

// ParsedInput is the normalized record for the non-research path.
type ParsedInput struct {
	Title        string   `json:"title"`
	KeyPoints    []string `json:"key_points"`
	Context      string   `json:"context"`
	TargetLength int      `json:"target_length"`
}
