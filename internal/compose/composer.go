package compose

import (
	"context"
	"log/slog"

	"github.com/harshvardhanraju/video-content-creator/internal/domain"
	"github.com/harshvardhanraju/video-content-creator/internal/ports"
)

const (
	researchHookDuration = 3.0
	simpleHookDuration   = 2.0
	ctaDuration          = 3.0
)

// Composer turns research findings (or a plain parsed input) into a timed
// script. When a text generator is wired and available it drafts the
// script; any malformed or failed generation falls back to the
// deterministic fact-driven builder, so a well-formed Script always comes
// out.
type Composer struct {
	gen    ports.TextGenerator
	logger *slog.Logger
}

// New wires an optional text generator. A nil generator means the
// deterministic path only.
func New(gen ports.TextGenerator, logger *slog.Logger) *Composer {
	return &Composer{gen: gen, logger: logger}
}

// FromResearch composes a script from a research result.
func (c *Composer) FromResearch(ctx context.Context, research domain.ResearchResult, targetLength int, style string) domain.Script {
	if targetLength <= 0 {
		targetLength = 45
	}

	var script domain.Script
	built := false

	if c.gen != nil && c.gen.Available() {
		prompt := researchPrompt(research, targetLength, style)
		raw, err := c.gen.GenerateScript(ctx, prompt)
		if err != nil {
			c.debug("generation failed, using fact-driven builder", "error", err)
		} else if parsed, ok := parseScriptJSON(raw); ok {
			script = parsed
			built = true
		} else {
			c.debug("generated script malformed, using fact-driven builder")
		}
	}

	if !built {
		script = buildFromFacts(research, targetLength)
	}

	script.Topic = research.Topic
	script.Category = research.Category
	script.Sources = research.Sources
	script.ResearchSummary = research.Summary

	enrichKeywords(&script, research)
	script.RecalcTotal()
	return script
}

// FromInput composes a script on the non-research path from a parsed
// input record. This path is fully deterministic.
func (c *Composer) FromInput(parsed domain.ParsedInput) domain.Script {
	targetLength := parsed.TargetLength
	if targetLength <= 0 {
		targetLength = 45
	}

	script := buildFromInput(parsed, targetLength)
	script.Topic = parsed.Title
	script.RecalcTotal()
	return script
}

func (c *Composer) debug(msg string, args ...any) {
	if c.logger != nil {
		c.logger.Debug(msg, args...)
	}
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
