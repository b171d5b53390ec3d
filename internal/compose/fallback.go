package compose

import (
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/harshvardhanraju/video-content-creator/internal/domain"
)

var (
	percentExpr    = regexp.MustCompile(`\d+%`)
	moneyExpr      = regexp.MustCompile(`(?i)\$[\d,]+(?:\s*(?:million|billion))?`)
	yearExpr       = regexp.MustCompile(`\b20\d{2}\b`)
	properNounExpr = regexp.MustCompile(`\b[A-Z][a-z]+(?:\s+[A-Z][a-z]+)*\b`)
)

// impactMarkers flag a fact as hook material.
var impactMarkers = []string{"%", "$", "million", "billion", "first", "breaking"}

// categorySceneVisuals supply the generic half of a scene's visual prompt.
var categorySceneVisuals = map[string]string{
	"politics":      "government building, official setting, press conference",
	"economy":       "financial charts, money, business meeting",
	"military":      "military personnel, defense equipment, security",
	"human_rights":  "people gathering, protest, community",
	"international": "world map, diplomatic meeting, flags",
	"technology":    "modern technology, digital interface, innovation",
}

// buildFromFacts is the deterministic research-path builder: hook from the
// most impactful fact, one scene per top fact, and a closing
// call-to-action scene. Scene durations split the remaining target length
// equally.
func buildFromFacts(research domain.ResearchResult, targetLength int) domain.Script {
	numScenes := clamp(targetLength/6, 5, 10)
	timePerScene := float64(targetLength-3) / float64(numScenes)

	script := domain.Script{Hook: buildHook(research)}

	facts := research.KeyFacts
	if len(facts) > numScenes-1 {
		facts = facts[:numScenes-1]
	}

	for i, fact := range facts {
		script.Scenes = append(script.Scenes, domain.Scene{
			Narration:    factToNarration(fact),
			Duration:     timePerScene,
			VisualPrompt: factToVisual(fact, research),
			TextOverlay:  factToOverlay(fact),
			FactSource:   fmt.Sprintf("Research fact #%d", i+1),
		})
	}

	script.Scenes = append(script.Scenes, ctaScene(research.Topic))
	script.RecalcTotal()
	return script
}

func buildHook(research domain.ResearchResult) domain.Hook {
	var hookText string
	if len(research.KeyFacts) > 0 {
		best := research.KeyFacts[0]
		limit := len(research.KeyFacts)
		if limit > 5 {
			limit = 5
		}
		for _, fact := range research.KeyFacts[:limit] {
			if containsAny(fact, impactMarkers) {
				best = fact
				break
			}
		}
		hookText = engagingHook(best, research.Topic)
	} else {
		hookText = fmt.Sprintf("What's really happening with %s?", research.Topic)
	}

	visual := research.Topic
	if len(research.ImageKeywords) > 0 {
		visual = research.ImageKeywords[0]
	}

	return domain.Hook{
		Text:         hookText,
		Duration:     researchHookDuration,
		VisualPrompt: fmt.Sprintf("Breaking news style, %s, dramatic lighting, news graphic", visual),
		TextOverlay:  strings.ToUpper(truncate(hookText, 30)),
	}
}

// engagingHook renders the fact through a small set of templates and
// returns the shortest candidate; ties favor the earlier, denser pattern.
func engagingHook(fact, topic string) string {
	if utf8.RuneCountInString(fact) > 100 {
		fact = truncate(fact, 97) + "..."
	}

	short := fact
	if utf8.RuneCountInString(short) >= 60 {
		short = truncate(short, 57) + "..."
	}

	firstWord := topic
	if fields := strings.Fields(topic); len(fields) > 0 {
		firstWord = fields[0]
	}

	candidates := []string{
		"Breaking: " + truncate(fact, 60),
		fmt.Sprintf("You won't believe this about %s...", firstWord),
		"This changes everything: " + truncate(fact, 50),
		short,
	}

	best := candidates[0]
	for _, c := range candidates[1:] {
		if len(c) < len(best) {
			best = c
		}
	}
	return best
}

// factToNarration strips trailing attribution clauses and shortens the
// fact at a natural punctuation break.
func factToNarration(fact string) string {
	for _, marker := range []string{" according to", " reported", " said "} {
		if idx := strings.Index(fact, marker); idx >= 0 {
			fact = fact[:idx]
		}
	}

	if utf8.RuneCountInString(fact) > 100 {
		// Cut positions come from ASCII punctuation, so the byte index
		// always lands on a rune boundary.
		window := truncate(fact, 80)
		cut := -1
		for _, punct := range []string{".", ",", ";", "-"} {
			if idx := strings.LastIndex(window, punct); idx > 40 && idx > cut {
				cut = idx
			}
		}
		if cut > 40 {
			fact = fact[:cut]
		} else {
			fact = truncate(fact, 97) + "..."
		}
	}

	return strings.TrimSpace(fact)
}

func factToVisual(fact string, research domain.ResearchResult) string {
	base, ok := categorySceneVisuals[research.Category]
	if !ok {
		base = "news broadcast, professional"
	}

	if noun := properNounExpr.FindString(fact); noun != "" {
		return fmt.Sprintf("%s related imagery, %s, high quality photo", noun, base)
	}
	if len(research.ImageKeywords) > 0 {
		return fmt.Sprintf("%s, %s, professional photo", research.ImageKeywords[0], base)
	}
	return fmt.Sprintf("%s, news style, high quality", base)
}

// factToOverlay picks the most display-worthy fragment of a fact, in
// priority order: percentage, currency amount, year, else the leading
// words uppercased.
func factToOverlay(fact string) string {
	if m := percentExpr.FindString(fact); m != "" {
		return m
	}
	if m := moneyExpr.FindString(fact); m != "" {
		return m
	}
	if m := yearExpr.FindString(fact); m != "" {
		return m
	}

	words := strings.Fields(fact)
	if len(words) > 4 {
		words = words[:4]
	}
	return strings.ToUpper(strings.Join(words, " "))
}

func ctaScene(topic string) domain.Scene {
	subject := topic
	if fields := strings.Fields(topic); len(fields) > 0 {
		subject = fields[0]
	}
	return domain.Scene{
		Narration:    fmt.Sprintf("Follow for more updates on %s!", subject),
		Duration:     ctaDuration,
		VisualPrompt: "Social media engagement, follow button, notification bell, colorful",
		TextOverlay:  "FOLLOW FOR MORE!",
		FactSource:   "Call to action",
	}
}

// buildFromInput is the simple-path builder. Content scenes cycle through
// the key points so the scene count stays within presentable bounds even
// with very few points, then a call-to-action closes the script.
func buildFromInput(parsed domain.ParsedInput, targetLength int) domain.Script {
	numScenes := clamp(targetLength/5, 5, 8)

	hook := domain.Hook{
		Text:         fmt.Sprintf("Wait... did you know about %s?", parsed.Title),
		Duration:     simpleHookDuration,
		VisualPrompt: fmt.Sprintf("Eye-catching visual related to %s, vibrant colors, high contrast", parsed.Title),
		TextOverlay:  "WAIT!",
	}

	points := parsed.KeyPoints
	if len(points) == 0 {
		points = []string{parsed.Title}
	}

	divisor := len(points)
	if divisor < 5 {
		divisor = 5
	}
	timePerScene := float64(max(4, (targetLength-2)/divisor))

	script := domain.Script{Hook: hook}
	for i := 0; i < numScenes-1; i++ {
		point := points[i%len(points)]
		script.Scenes = append(script.Scenes, domain.Scene{
			Narration:    truncate(point, 80),
			Duration:     timePerScene,
			VisualPrompt: fmt.Sprintf("Visual representation of: %s, cinematic, vibrant", point),
			TextOverlay:  truncate(point, 50),
		})
	}

	script.Scenes = append(script.Scenes, domain.Scene{
		Narration:    "Follow for more insights!",
		Duration:     ctaDuration,
		VisualPrompt: "Call to action visual, engaging, colorful",
		TextOverlay:  "FOLLOW FOR MORE!",
	})

	script.RecalcTotal()
	return script
}

func containsAny(s string, markers []string) bool {
	for _, m := range markers {
		if strings.Contains(s, m) {
			return true
		}
	}
	return false
}

// truncate limits s to n runes so multibyte text is never cut
// mid-sequence.
func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}
