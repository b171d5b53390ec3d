package compose

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/harshvardhanraju/video-content-creator/internal/domain"
)

// researchPrompt renders the instruction block handed to the text
// generator on the research path.
func researchPrompt(research domain.ResearchResult, targetLength int, style string) string {
	numScenes := clamp(targetLength/6, 5, 10)

	var sb strings.Builder
	fmt.Fprintf(&sb, "You are creating a script for a short video about: %q\n\n", research.Topic)

	sb.WriteString("RESEARCHED FACTS (use these, don't make up information):\n")
	facts := research.KeyFacts
	if len(facts) > 10 {
		facts = facts[:10]
	}
	for _, fact := range facts {
		sb.WriteString("- " + fact + "\n")
	}

	if len(research.Timeline) > 0 {
		sb.WriteString("\nTimeline:\n")
		events := research.Timeline
		if len(events) > 5 {
			events = events[:5]
		}
		for _, e := range events {
			fmt.Fprintf(&sb, "- %s: %s\n", e.Date, truncate(e.Description, 100))
		}
	}

	fmt.Fprintf(&sb, "\nTopic Category: %s\n", research.Category)
	fmt.Fprintf(&sb, "Style: %s\n", style)
	fmt.Fprintf(&sb, "Target Duration: %d seconds\n", targetLength)
	fmt.Fprintf(&sb, "Number of Scenes: %d\n\n", numScenes)

	sb.WriteString(`RULES:
1. ONLY use facts from the research above - do NOT invent information
2. Start with a HOOK that creates curiosity (2-3 seconds)
3. Each scene needs a clear, searchable visual description
4. Keep narration punchy - short video, not a lecture
5. Include relevant numbers, dates, and names from the research
6. End with engagement (question or call-to-action)

Output ONLY valid JSON in this exact format:
{
    "hook": {"text": "...", "duration": 3.0, "visual_prompt": "...", "text_overlay": "..."},
    "scenes": [{"narration": "...", "duration": 5.0, "visual_prompt": "...", "text_overlay": "...", "fact_source": "..."}]
}

Generate the script now (JSON only, no other text):`)

	return sb.String()
}

// parseScriptJSON extracts the JSON object from a generator response and
// validates its shape. A response lacking a hook or with fewer than three
// scenes is malformed; callers then fall back to the fact-driven builder.
func parseScriptJSON(response string) (domain.Script, bool) {
	start := strings.Index(response, "{")
	end := strings.LastIndex(response, "}")
	if start < 0 || end <= start {
		return domain.Script{}, false
	}

	var script domain.Script
	if err := json.Unmarshal([]byte(response[start:end+1]), &script); err != nil {
		return domain.Script{}, false
	}

	if strings.TrimSpace(script.Hook.Text) == "" || len(script.Scenes) < 3 {
		return domain.Script{}, false
	}

	if script.Hook.Duration <= 0 {
		script.Hook.Duration = researchHookDuration
	}
	for i := range script.Scenes {
		if script.Scenes[i].Duration <= 0 {
			script.Scenes[i].Duration = 5.0
		}
	}

	script.RecalcTotal()
	return script, true
}
