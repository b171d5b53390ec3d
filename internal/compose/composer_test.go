package compose

import (
	"context"
	"fmt"
	"math"
	"testing"

	"github.com/harshvardhanraju/video-content-creator/internal/domain"
)

type stubGenerator struct {
	available bool
	response  string
	err       error
	calls     int
}

func (g *stubGenerator) Available() bool { return g.available }

func (g *stubGenerator) GenerateScript(context.Context, string) (string, error) {
	g.calls++
	return g.response, g.err
}

func sampleResearch() domain.ResearchResult {
	return domain.ResearchResult{
		Topic:    "port expansion",
		Category: "economy",
		KeyFacts: []string{
			"The port authority announced a $2 million expansion of the container terminal",
			"Shipping volume grew 30% over the previous year at the facility",
			"Construction is expected to finish in 2027 according to planners",
			"Local officials said the project would create hundreds of jobs",
		},
		ImageKeywords: []string{"port", "container terminal", "cranes"},
	}
}

func TestFromInputMatchesTargetLength(t *testing.T) {
	t.Parallel()

	parsed := domain.ParsedInput{
		Title:        "Coffee history",
		KeyPoints:    []string{"Point one about origins and trade", "Point two about roasting techniques", "Point three about modern culture"},
		TargetLength: 30,
	}

	c := New(nil, nil)
	script := c.FromInput(parsed)

	if len(script.Scenes) != 6 {
		t.Fatalf("expected 6 scenes, got %d", len(script.Scenes))
	}
	if script.Hook.Duration != 2.0 {
		t.Fatalf("expected 2.0s hook, got %.1f", script.Hook.Duration)
	}
	for i, scene := range script.Scenes[:len(script.Scenes)-1] {
		if scene.Duration != 5.0 {
			t.Fatalf("scene %d: expected 5.0s, got %.1f", i, scene.Duration)
		}
	}
	if script.TotalDuration != 30.0 {
		t.Fatalf("expected 30.0s total, got %.1f", script.TotalDuration)
	}
}

func TestFromInputCyclesKeyPoints(t *testing.T) {
	t.Parallel()

	parsed := domain.ParsedInput{
		Title:        "Single point",
		KeyPoints:    []string{"Only one point exists here"},
		TargetLength: 30,
	}

	script := New(nil, nil).FromInput(parsed)

	content := script.Scenes[:len(script.Scenes)-1]
	for i, scene := range content {
		if scene.Narration != "Only one point exists here" {
			t.Fatalf("scene %d: expected the point cycled, got %q", i, scene.Narration)
		}
	}
}

func TestFromInputWithoutPointsUsesTitle(t *testing.T) {
	t.Parallel()

	script := New(nil, nil).FromInput(domain.ParsedInput{Title: "Bare title", TargetLength: 45})
	if len(script.Scenes) < 2 {
		t.Fatalf("expected scenes, got %d", len(script.Scenes))
	}
	if script.Scenes[0].Narration != "Bare title" {
		t.Fatalf("unexpected narration: %q", script.Scenes[0].Narration)
	}
}

func TestFromResearchFallbackPath(t *testing.T) {
	t.Parallel()

	c := New(nil, nil)
	script := c.FromResearch(context.Background(), sampleResearch(), 45, "informational")

	if script.Topic != "port expansion" {
		t.Fatalf("unexpected topic: %q", script.Topic)
	}
	if script.Category != "economy" {
		t.Fatalf("unexpected category: %q", script.Category)
	}
	if script.Hook.Duration != 3.0 {
		t.Fatalf("expected 3.0s hook, got %.1f", script.Hook.Duration)
	}

	// 4 fact scenes and a CTA: fewer facts than the scene cap.
	if len(script.Scenes) != 5 {
		t.Fatalf("expected 5 scenes, got %d", len(script.Scenes))
	}
	last := script.Scenes[len(script.Scenes)-1]
	if last.FactSource != "Call to action" {
		t.Fatalf("expected CTA scene last, got %q", last.FactSource)
	}
}

func TestFromResearchTotalDurationInvariant(t *testing.T) {
	t.Parallel()

	for _, target := range []int{20, 30, 45, 60, 90} {
		script := New(nil, nil).FromResearch(context.Background(), sampleResearch(), target, "informational")

		sum := script.Hook.Duration
		for _, scene := range script.Scenes {
			sum += scene.Duration
		}
		if math.Abs(script.TotalDuration-sum) > 1e-9 {
			t.Fatalf("target %d: total %.4f != sum %.4f", target, script.TotalDuration, sum)
		}
	}
}

func TestFromResearchUsesGeneratorWhenValid(t *testing.T) {
	t.Parallel()

	gen := &stubGenerator{
		available: true,
		response: `{"hook": {"text": "Generated hook", "duration": 3.0, "visual_prompt": "v", "text_overlay": "o"},
            "scenes": [
                {"narration": "a", "duration": 5.0, "visual_prompt": "v", "text_overlay": "o"},
                {"narration": "b", "duration": 5.0, "visual_prompt": "v", "text_overlay": "o"},
                {"narration": "c", "duration": 5.0, "visual_prompt": "v", "text_overlay": "o"}
            ]}`,
	}

	script := New(gen, nil).FromResearch(context.Background(), sampleResearch(), 45, "informational")

	if script.Hook.Text != "Generated hook" {
		t.Fatalf("expected generated hook, got %q", script.Hook.Text)
	}
	if gen.calls != 1 {
		t.Fatalf("expected 1 generator call, got %d", gen.calls)
	}
}

func TestFromResearchFallsBackOnGeneratorError(t *testing.T) {
	t.Parallel()

	gen := &stubGenerator{available: true, err: fmt.Errorf("model offline")}
	script := New(gen, nil).FromResearch(context.Background(), sampleResearch(), 45, "informational")

	if len(script.Scenes) == 0 {
		t.Fatal("expected fallback script")
	}
	if script.Hook.Text == "" {
		t.Fatal("expected fallback hook text")
	}
}

func TestFromResearchFallsBackOnMalformedResponse(t *testing.T) {
	t.Parallel()

	gen := &stubGenerator{available: true, response: "I cannot produce JSON today."}
	script := New(gen, nil).FromResearch(context.Background(), sampleResearch(), 45, "informational")

	if len(script.Scenes) == 0 {
		t.Fatal("expected fallback script")
	}
}

func TestFromResearchSkipsUnavailableGenerator(t *testing.T) {
	t.Parallel()

	gen := &stubGenerator{available: false, response: "unused"}
	New(gen, nil).FromResearch(context.Background(), sampleResearch(), 45, "informational")

	if gen.calls != 0 {
		t.Fatalf("expected no generator calls, got %d", gen.calls)
	}
}
