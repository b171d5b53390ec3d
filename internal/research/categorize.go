package research

import "strings"

// CategoryGeneral is returned when no category keyword scores any hits.
const CategoryGeneral = "general"

// categoryOrder fixes iteration order so tie-breaking is deterministic.
var categoryOrder = []string{
	"politics",
	"economy",
	"technology",
	"human_rights",
	"international",
	"military",
	"health",
	"environment",
}

var categoryKeywords = map[string][]string{
	"politics": {
		"president", "government", "election", "congress", "senate",
		"minister", "diplomatic", "policy", "legislation", "vote",
	},
	"economy": {
		"economy", "market", "stock", "gdp", "inflation", "trade",
		"tariff", "financial", "investment", "dollar", "currency",
	},
	"technology": {
		"ai", "artificial intelligence", "tech", "software", "app",
		"startup", "innovation", "digital", "data", "algorithm",
	},
	"human_rights": {
		"human rights", "refugee", "asylum", "immigration",
		"detention", "humanitarian", "abuse", "freedom", "justice",
	},
	"international": {
		"international", "foreign", "relations", "treaty",
		"alliance", "nato", "un", "sanctions", "diplomacy",
	},
	"military": {
		"military", "army", "navy", "defense", "war", "troops",
		"weapons", "attack", "conflict", "security",
	},
	"health": {
		"health", "medical", "vaccine", "disease", "hospital",
		"treatment", "pandemic", "healthcare",
	},
	"environment": {
		"climate", "environment", "pollution", "carbon",
		"renewable", "sustainability", "emissions",
	},
}

// Categorize scores every category by counting keyword hits across the
// topic string and fetched content, and returns the arg-max label. Ties
// and an all-zero board resolve to "general". A keyword scores one point
// whether it appears in the topic, the content, or both.
func Categorize(topic, content string) string {
	topicLower := strings.ToLower(topic)
	contentLower := strings.ToLower(content)

	best := CategoryGeneral
	bestScore := 0
	tied := false
	for _, category := range categoryOrder {
		score := 0
		for _, kw := range categoryKeywords[category] {
			if strings.Contains(topicLower, kw) || strings.Contains(contentLower, kw) {
				score++
			}
		}
		switch {
		case score > bestScore:
			bestScore = score
			best = category
			tied = false
		case score == bestScore && score > 0:
			tied = true
		}
	}
	if bestScore == 0 || tied {
		return CategoryGeneral
	}
	return best
}
