package timing

import (
	"math"
	"testing"

	"github.com/harshvardhanraju/video-content-creator/internal/domain"
)

func sampleScript() domain.Script {
	s := domain.Script{
		Hook: domain.Hook{Text: "A short hook", Duration: 3.0},
		Scenes: []domain.Scene{
			{Narration: "First scene narration text", Duration: 6.0},
			{Narration: "Second one", Duration: 6.0},
			{Narration: "Third scene with a longer narration than the others", Duration: 3.0},
		},
	}
	s.RecalcTotal()
	return s
}

func TestEstimatePartitionsDeclaredDurations(t *testing.T) {
	t.Parallel()

	spans := Estimate(sampleScript())

	if len(spans) != 4 {
		t.Fatalf("expected 4 spans, got %d", len(spans))
	}
	if spans[0].Start != 0 || spans[0].End != 3.0 {
		t.Fatalf("unexpected hook span: %+v", spans[0])
	}
	for i := 1; i < len(spans); i++ {
		if spans[i].Start != spans[i-1].End {
			t.Fatalf("gap between span %d and %d: %+v %+v", i-1, i, spans[i-1], spans[i])
		}
	}
	if spans[len(spans)-1].End != 18.0 {
		t.Fatalf("expected last end 18.0, got %.2f", spans[len(spans)-1].End)
	}
}

func TestReconcileScalesToActual(t *testing.T) {
	t.Parallel()

	spans := Reconcile(sampleScript(), 24.0)

	// Declared total is 18; everything scales by 4/3.
	if math.Abs(spans[0].End-4.0) > 1e-9 {
		t.Fatalf("expected hook end 4.0, got %.4f", spans[0].End)
	}
	if math.Abs(spans[len(spans)-1].End-24.0) > 1e-9 {
		t.Fatalf("expected last end 24.0, got %.4f", spans[len(spans)-1].End)
	}
	for i := 1; i < len(spans); i++ {
		if math.Abs(spans[i].Start-spans[i-1].End) > 1e-9 {
			t.Fatalf("spans not contiguous after scaling: %+v %+v", spans[i-1], spans[i])
		}
	}
}

func TestReconcileZeroDeclaredLeavesSpansUnscaled(t *testing.T) {
	t.Parallel()

	script := domain.Script{Hook: domain.Hook{Text: "x"}}
	spans := Reconcile(script, 10.0)

	if len(spans) != 1 {
		t.Fatalf("expected 1 span, got %d", len(spans))
	}
	if spans[0].Start != 0 || spans[0].End != 0 {
		t.Fatalf("expected zero span without declared durations, got %+v", spans[0])
	}
}

func TestReconcileByChars(t *testing.T) {
	t.Parallel()

	spans := ReconcileByChars(sampleScript(), 30.0)

	if len(spans) != 4 {
		t.Fatalf("expected 4 spans, got %d", len(spans))
	}
	if spans[0].Start != 0 {
		t.Fatal("expected first span at 0")
	}
	if spans[len(spans)-1].End != 30.0 {
		t.Fatalf("expected exact last end 30.0, got %.6f", spans[len(spans)-1].End)
	}
	for i := 1; i < len(spans); i++ {
		if spans[i].Start != spans[i-1].End {
			t.Fatalf("spans not contiguous: %+v %+v", spans[i-1], spans[i])
		}
	}

	// The longest narration gets the longest span.
	longest := 0
	for i, span := range spans {
		if span.End-span.Start > spans[longest].End-spans[longest].Start {
			longest = i
		}
	}
	if longest != 3 {
		t.Fatalf("expected span 3 longest, got %d", longest)
	}
}
