package compose

import (
	"strings"

	"github.com/harshvardhanraju/video-content-creator/internal/domain"
)

const maxSceneKeywords = 5

// categorySearchTerms supplement scene keywords with generic, searchable
// terms for the category.
var categorySearchTerms = map[string][]string{
	"politics":      {"government", "politics", "official"},
	"economy":       {"finance", "business", "economy"},
	"military":      {"military", "defense", "security"},
	"international": {"diplomacy", "international", "world"},
}

// enrichKeywords attaches image search keywords to the hook and every
// scene, and prefixes each scene's visual prompt with a rotating research
// keyword when it is not already mentioned.
func enrichKeywords(script *domain.Script, research domain.ResearchResult) {
	keywords := research.ImageKeywords

	for i := range script.Scenes {
		scene := &script.Scenes[i]

		if len(keywords) > 0 {
			kw := keywords[i%len(keywords)]
			if !strings.Contains(strings.ToLower(scene.VisualPrompt), strings.ToLower(kw)) {
				scene.VisualPrompt = kw + ", " + scene.VisualPrompt
			}
		}

		scene.ImageSearchKeywords = searchTerms(scene.VisualPrompt, research)
	}

	script.Hook.ImageSearchKeywords = searchTerms(script.Hook.VisualPrompt, research)
}

// searchTerms extracts search-friendly terms from a visual prompt plus
// the research keyword pool, deduplicated in first-seen order, capped.
func searchTerms(visualPrompt string, research domain.ResearchResult) []string {
	var terms []string

	for _, word := range strings.Fields(strings.ReplaceAll(visualPrompt, ",", " ")) {
		if len(word) > 3 && word[0] >= 'A' && word[0] <= 'Z' {
			terms = append(terms, word)
		}
	}

	pool := research.ImageKeywords
	if len(pool) > 3 {
		pool = pool[:3]
	}
	terms = append(terms, pool...)

	if extra, ok := categorySearchTerms[research.Category]; ok {
		terms = append(terms, extra...)
	} else {
		terms = append(terms, "news")
	}

	seen := map[string]struct{}{}
	unique := make([]string, 0, len(terms))
	for _, t := range terms {
		lower := strings.ToLower(t)
		if _, ok := seen[lower]; ok {
			continue
		}
		seen[lower] = struct{}{}
		unique = append(unique, t)
	}

	if len(unique) > maxSceneKeywords {
		unique = unique[:maxSceneKeywords]
	}
	return unique
}
