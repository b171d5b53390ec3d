package safety

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/harshvardhanraju/video-content-creator/internal/domain"
)

// blockingKeywords fail a text unit outright unless an allowed-context
// term is co-present in the same unit.
var blockingKeywords = []string{
	// Violence
	"kill", "murder", "assault", "attack", "weapon", "gun", "bomb",
	"terror", "violence", "blood", "gore", "death", "suicide",

	// Sexual content
	"sex", "porn", "nude", "naked", "explicit", "nsfw",

	// Hate speech
	"hate", "racist", "discrimination", "slur",

	// Illegal activities
	"drug", "illegal", "crime", "steal", "hack", "fraud",

	// Self-harm
	"self-harm", "cutting", "anorexia", "bulimia",
}

// warningKeywords flag sensitive-but-not-blocking topics; the unit stays
// safe but carries a warning message under strict mode.
var warningKeywords = []string{
	"controversial", "sensitive", "political", "religion",
	"conspiracy", "unverified", "misinformation",
}

// allowedContexts suppress a blocking match when present in the same
// unit: medical, educational, news, and government reporting vocabulary.
var allowedContexts = []string{
	"medical", "educational", "healthcare", "science",
	"history", "documentary", "awareness", "prevention",
	"news", "report", "military", "operation", "president",
	"government", "official", "announced", "capture", "arrest",
}

// sanitizeReplacements soften blocking words when a caller asks for a
// cleaned-up rendition instead of a hard rejection.
var sanitizeReplacements = map[string]string{
	"kill":   "stop",
	"murder": "harm",
	"attack": "confront",
	"weapon": "tool",
	"bomb":   "explosive device",
}

var keywordExprs = buildKeywordExprs()

func buildKeywordExprs() map[string]*regexp.Regexp {
	exprs := make(map[string]*regexp.Regexp, len(blockingKeywords)+len(warningKeywords)+len(sanitizeReplacements))
	for _, kw := range blockingKeywords {
		exprs[kw] = wholeWordExpr(kw)
	}
	for _, kw := range warningKeywords {
		exprs[kw] = wholeWordExpr(kw)
	}
	for kw := range sanitizeReplacements {
		if _, ok := exprs[kw]; !ok {
			exprs[kw] = wholeWordExpr(kw)
		}
	}
	return exprs
}

func wholeWordExpr(keyword string) *regexp.Regexp {
	return regexp.MustCompile(`\b` + regexp.QuoteMeta(keyword) + `\b`)
}

// Checker is the content safety gate: a pure keyword matcher with no
// side effects and no external calls. It runs exactly once per script,
// before any rendering resource is consumed.
type Checker struct {
	strictMode bool
}

// NewChecker builds a checker. Strict mode surfaces warning-keyword
// matches in the unit's reason.
func NewChecker(strictMode bool) *Checker {
	return &Checker{strictMode: strictMode}
}

// CheckText evaluates one text unit and returns its verdict.
func (c *Checker) CheckText(text string) domain.SectionReport {
	lower := strings.ToLower(text)

	var flagged []string
	for _, kw := range blockingKeywords {
		if keywordExprs[kw].MatchString(lower) && !inAllowedContext(lower) {
			flagged = append(flagged, kw)
		}
	}

	if len(flagged) > 0 {
		return domain.SectionReport{
			Safe:         false,
			Reason:       "Content contains potentially inappropriate keywords: " + strings.Join(flagged, ", "),
			FlaggedWords: flagged,
		}
	}

	var warnings []string
	for _, kw := range warningKeywords {
		if keywordExprs[kw].MatchString(lower) {
			warnings = append(warnings, kw)
		}
	}

	if len(warnings) > 0 && c.strictMode {
		return domain.SectionReport{
			Safe:         true,
			Reason:       "Warning: Content contains sensitive topics: " + strings.Join(warnings, ", "),
			FlaggedWords: warnings,
		}
	}

	return domain.SectionReport{
		Safe:         true,
		Reason:       "Content passed safety check",
		FlaggedWords: []string{},
	}
}

// Check evaluates the whole script: the hook text, then each scene's
// narration and text overlay as one combined unit. OverallSafe is the
// AND over every unit.
func (c *Checker) Check(script domain.Script) domain.SafetyReport {
	report := domain.SafetyReport{OverallSafe: true}

	report.Hook = c.CheckText(script.Hook.Text)
	if !report.Hook.Safe {
		report.OverallSafe = false
	}

	for i, scene := range script.Scenes {
		combined := scene.Narration + " " + scene.TextOverlay
		section := c.CheckText(combined)
		report.Scenes = append(report.Scenes, domain.SceneReport{
			SceneNum:     i + 1,
			Safe:         section.Safe,
			Reason:       section.Reason,
			FlaggedWords: section.FlaggedWords,
		})
		if !section.Safe {
			report.OverallSafe = false
		}
	}

	return report
}

// Sanitize replaces blocking words with softer alternatives. It does not
// guarantee the result passes Check; it is a best-effort cleanup.
func Sanitize(text string) string {
	for bad, replacement := range sanitizeReplacements {
		expr := regexp.MustCompile(`(?i)\b` + regexp.QuoteMeta(bad) + `\b`)
		text = expr.ReplaceAllString(text, replacement)
	}
	return text
}

func inAllowedContext(lower string) bool {
	for _, context := range allowedContexts {
		if strings.Contains(lower, context) {
			return true
		}
	}
	return false
}

// FormatReport renders a human-readable report from the structured
// result. Pure formatting; no re-evaluation happens here.
func FormatReport(report domain.SafetyReport) string {
	var sb strings.Builder
	divider := strings.Repeat("=", 60)

	sb.WriteString(divider + "\n")
	sb.WriteString("CONTENT SAFETY REPORT\n")
	sb.WriteString(divider + "\n\n")

	if report.OverallSafe {
		sb.WriteString("Overall Status: script passed all safety checks\n\n")
	} else {
		flagged := 0
		if !report.Hook.Safe {
			flagged++
		}
		for _, s := range report.Scenes {
			if !s.Safe {
				flagged++
			}
		}
		fmt.Fprintf(&sb, "Overall Status: script failed safety check: %d section(s) flagged\n\n", flagged)
	}

	sb.WriteString("Hook:\n")
	fmt.Fprintf(&sb, "  Status: %s\n", statusLabel(report.Hook.Safe))
	if len(report.Hook.FlaggedWords) > 0 {
		fmt.Fprintf(&sb, "  Flagged words: %s\n", strings.Join(report.Hook.FlaggedWords, ", "))
	}
	fmt.Fprintf(&sb, "  Reason: %s\n", report.Hook.Reason)

	sb.WriteString("\nScenes:\n")
	for _, scene := range report.Scenes {
		fmt.Fprintf(&sb, "  Scene %d: %s\n", scene.SceneNum, statusLabel(scene.Safe))
		if len(scene.FlaggedWords) > 0 {
			fmt.Fprintf(&sb, "    Flagged: %s\n", strings.Join(scene.FlaggedWords, ", "))
		}
	}

	sb.WriteString("\n" + divider + "\n")
	return sb.String()
}

func statusLabel(safe bool) string {
	if safe {
		return "safe"
	}
	return "flagged"
}
