package domain

// Hook is the first, attention-grabbing unit of a script, styled
// distinctly from body scenes.
type Hook struct {
	Text                string   `json:"text"`
	Duration            float64  `json:"duration"`
	VisualPrompt        string   `json:"visual_prompt"`
	TextOverlay         string   `json:"text_overlay"`
	ImageSearchKeywords []string `json:"image_search_keywords,omitempty"`
}

// Scene is one timed unit of the output script. Order within a script is
// rendering order.
type Scene struct {
	Narration           string   `json:"narration"`
	Duration            float64  `json:"duration"`
	VisualPrompt        string   `json:"visual_prompt"`
	TextOverlay         string   `json:"text_overlay"`
	ImageSearchKeywords []string `json:"image_search_keywords,omitempty"`
	FactSource          string   `json:"fact_source,omitempty"`
}

// Script is the durable artifact the pipeline produces: a hook plus
// ordered scenes with duration accounting.
type Script struct {
	Hook            Hook     `json:"hook"`
	Scenes          []Scene  `json:"scenes"`
	TotalDuration   float64  `json:"total_duration"`
	Topic           string   `json:"topic,omitempty"`
	Category        string   `json:"category,omitempty"`
	Sources         []Source `json:"sources,omitempty"`
	ResearchSummary string   `json:"research_summary,omitempty"`
}

// RecalcTotal re-derives TotalDuration from the hook and scene durations.
// TotalDuration is never set independently; every mutation of durations
// must go through this.
func (s *Script) RecalcTotal() {
	total := s.Hook.Duration
	for _, scene := range s.Scenes {
		total += scene.Duration
	}
	s.TotalDuration = total
}

// NarrationSegments returns hook text plus each scene narration in
// rendering order, the segment sequence handed to a narration renderer.
func (s *Script) NarrationSegments() []string {
	segments := make([]string, 0, len(s.Scenes)+1)
	segments = append(segments, s.Hook.Text)
	for _, scene := range s.Scenes {
		segments = append(segments, scene.Narration)
	}
	return segments
}

// SectionReport is the safety verdict for one text unit.
type SectionReport struct {
	Safe         bool     `json:"safe"`
	Reason       string   `json:"reason"`
	FlaggedWords []string `json:"flagged_words"`
}

// SceneReport is a SectionReport bound to a scene position.
type SceneReport struct {
	SceneNum     int      `json:"scene_num"`
	Safe         bool     `json:"safe"`
	Reason       string   `json:"reason"`
	FlaggedWords []string `json:"flagged_words"`
}

// SafetyReport is the structured result of the content safety gate.
// OverallSafe is the logical AND of every section's Safe flag.
type SafetyReport struct {
	Hook        SectionReport `json:"hook"`
	Scenes      []SceneReport `json:"scenes"`
	OverallSafe bool          `json:"overall_safe"`
}

// TimingSpan is a half-open render interval for one script unit.
// For a script with N scenes the spans form a contiguous, non-overlapping
// partition of [0, total] in scene order.
type TimingSpan struct {
	Start float64 `json:"start"`
	End   float64 `json:"end"`
}

// Caption is one styled subtitle entry derived from a script and its
// timing spans.
type Caption struct {
	Text  string  `json:"text"`
	Start float64 `json:"start"`
	End   float64 `json:"end"`
	Style string  `json:"style"`
}
