package research

import (
	"regexp"
	"sort"
	"strings"
)

const (
	maxImageKeywords = 15
	maxRelatedTopics = 5
)

var (
	properNounExpr    = regexp.MustCompile(`\b[A-Z][a-z]+(?:\s+[A-Z][a-z]+)*\b`)
	relatedPhraseExpr = regexp.MustCompile(`\b[A-Z][a-z]+(?:\s+[A-Z][a-z]+){1,2}\b`)
)

// categoryVisuals maps a category to generic, searchable visual keywords.
var categoryVisuals = map[string][]string{
	"politics":      {"government building", "press conference", "podium speech", "capitol"},
	"economy":       {"stock market", "money", "financial chart", "business"},
	"technology":    {"technology", "digital", "computer", "innovation"},
	"military":      {"military", "soldiers", "defense", "security"},
	"human_rights":  {"protest", "people", "crowd", "justice"},
	"international": {"world map", "diplomacy", "flags", "summit"},
	"health":        {"hospital", "medical", "healthcare", "doctor"},
	"environment":   {"nature", "climate", "earth", "green"},
}

// ImageKeywords builds a search keyword set from the topic words, the
// category's visual vocabulary, and capitalized spans found in the top
// facts. Deduplicated case-insensitively, capped at 15.
func ImageKeywords(topic string, facts []string, category string) []string {
	var keywords []string

	for _, word := range strings.Fields(topic) {
		if len(word) > 3 {
			keywords = append(keywords, word)
		}
	}

	keywords = append(keywords, categoryVisuals[category]...)

	topFacts := facts
	if len(topFacts) > 5 {
		topFacts = topFacts[:5]
	}
	for _, fact := range topFacts {
		nouns := properNounExpr.FindAllString(fact, -1)
		if len(nouns) > 2 {
			nouns = nouns[:2]
		}
		keywords = append(keywords, nouns...)
	}

	seen := map[string]struct{}{}
	unique := make([]string, 0, len(keywords))
	for _, kw := range keywords {
		lower := strings.ToLower(kw)
		if len(kw) <= 2 {
			continue
		}
		if _, ok := seen[lower]; ok {
			continue
		}
		seen[lower] = struct{}{}
		unique = append(unique, kw)
	}

	if len(unique) > maxImageKeywords {
		unique = unique[:maxImageKeywords]
	}
	return unique
}

// RelatedTopics extracts capitalized two-to-three-word phrases that share
// no word with the topic, ranked by how often they appear. Frequency ties
// keep first-seen order so the result is deterministic.
func RelatedTopics(articles []article, topic string) []string {
	topicWords := map[string]struct{}{}
	for _, w := range strings.Fields(strings.ToLower(topic)) {
		topicWords[w] = struct{}{}
	}

	counts := map[string]int{}
	var order []string

	for _, art := range articles {
		content := art.Content
		if content == "" {
			content = art.Snippet
		}

		for _, phrase := range relatedPhraseExpr.FindAllString(content, -1) {
			if sharesWord(phrase, topicWords) {
				continue
			}
			if _, ok := counts[phrase]; !ok {
				order = append(order, phrase)
			}
			counts[phrase]++
		}
	}

	sort.SliceStable(order, func(i, j int) bool {
		return counts[order[i]] > counts[order[j]]
	})

	if len(order) > maxRelatedTopics {
		order = order[:maxRelatedTopics]
	}
	return order
}

func sharesWord(phrase string, topicWords map[string]struct{}) bool {
	for _, w := range strings.Fields(strings.ToLower(phrase)) {
		if _, ok := topicWords[w]; ok {
			return true
		}
	}
	return false
}
