package research

import (
	"regexp"
	"sort"
	"strings"
)

const (
	minFactLen  = 40
	maxFactLen  = 300
	maxFacts    = 15
	dedupPrefix = 100
)

var sentenceSplitExpr = regexp.MustCompile(`[.!?]+`)

// factIndicators mark a sentence as fact-like: a year, a percentage, a
// dollar amount, a large-number phrase, or an attribution verb. Matching
// any one of them is enough.
var factIndicators = []*regexp.Regexp{
	regexp.MustCompile(`\d{4}`),
	regexp.MustCompile(`\d+%`),
	regexp.MustCompile(`\$\d+`),
	regexp.MustCompile(`(?i)\d+ (million|billion|thousand)`),
	regexp.MustCompile(`(?i)\b(said|announced|reported|confirmed|stated|declared)\b`),
	regexp.MustCompile(`(?i)according to`),
}

// ExtractFacts splits article content into sentences, keeps the ones that
// look factual, deduplicates them by a normalized prefix, and returns the
// top sentences ranked by topic-word overlap. The result is deterministic
// for identical input: ties keep first-seen order.
func ExtractFacts(articles []article, topic string) []string {
	var facts []string
	seen := map[string]struct{}{}

	for _, art := range articles {
		content := art.Content
		if content == "" {
			content = art.Snippet
		}

		for _, raw := range sentenceSplitExpr.Split(content, -1) {
			sentence := strings.TrimSpace(raw)
			if len(sentence) <= minFactLen || len(sentence) >= maxFactLen {
				continue
			}
			if !looksFactual(sentence) {
				continue
			}

			fact := whitespaceExpr.ReplaceAllString(sentence, " ")
			key := strings.ToLower(fact)
			if len(key) > dedupPrefix {
				key = key[:dedupPrefix]
			}
			if _, ok := seen[key]; ok {
				continue
			}
			seen[key] = struct{}{}
			facts = append(facts, fact)
		}
	}

	ranked := rankByTopicOverlap(facts, topic)
	if len(ranked) > maxFacts {
		ranked = ranked[:maxFacts]
	}
	return ranked
}

func looksFactual(sentence string) bool {
	for _, expr := range factIndicators {
		if expr.MatchString(sentence) {
			return true
		}
	}
	return false
}

// rankByTopicOverlap orders facts by how many topic words they mention,
// descending, with a stable sort so equal scores keep extraction order.
func rankByTopicOverlap(facts []string, topic string) []string {
	topicWords := strings.Fields(strings.ToLower(topic))

	type scored struct {
		fact  string
		score int
	}
	items := make([]scored, 0, len(facts))
	for _, fact := range facts {
		lower := strings.ToLower(fact)
		score := 0
		for _, word := range topicWords {
			if strings.Contains(lower, word) {
				score++
			}
		}
		items = append(items, scored{fact: fact, score: score})
	}

	sort.SliceStable(items, func(i, j int) bool {
		return items[i].score > items[j].score
	})

	ranked := make([]string, 0, len(items))
	for _, it := range items {
		ranked = append(ranked, it.fact)
	}
	return ranked
}

// Summarize concatenates the top three ranked facts and hard-truncates to
// 500 characters with an ellipsis.
func Summarize(topic string, facts []string) string {
	if len(facts) == 0 {
		return "Research on: " + topic
	}

	top := facts
	if len(top) > 3 {
		top = top[:3]
	}
	summary := strings.Join(top, " ")
	if len(summary) > 500 {
		summary = summary[:497] + "..."
	}
	return summary
}
