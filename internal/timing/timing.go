// Package timing maps a script's declared durations onto render
// intervals, and reconciles those intervals against the true audio
// duration reported by the narration renderer so captions always line up
// with what was actually rendered.
package timing

import "github.com/harshvardhanraju/video-content-creator/internal/domain"

// Estimate returns the pre-render spans: the cumulative-sum partition of
// the declared durations, hook first, accumulated in scene order from 0.
func Estimate(script domain.Script) []domain.TimingSpan {
	spans := make([]domain.TimingSpan, 0, len(script.Scenes)+1)

	current := 0.0
	spans = append(spans, domain.TimingSpan{Start: current, End: current + script.Hook.Duration})
	current += script.Hook.Duration

	for _, scene := range script.Scenes {
		spans = append(spans, domain.TimingSpan{Start: current, End: current + scene.Duration})
		current += scene.Duration
	}

	return spans
}

// Reconcile rescales the estimated spans so they partition [0, actual]
// exactly, where actual is the renderer-reported audio duration. Every
// span is multiplied by actual/declared-total; a non-positive declared
// total leaves the spans unscaled.
func Reconcile(script domain.Script, actual float64) []domain.TimingSpan {
	spans := Estimate(script)

	declared := script.Hook.Duration
	for _, scene := range script.Scenes {
		declared += scene.Duration
	}

	scale := 1.0
	if declared > 0 {
		scale = actual / declared
	}

	for i := range spans {
		spans[i].Start *= scale
		spans[i].End *= scale
	}
	return spans
}

// ReconcileByChars distributes the actual audio duration proportionally
// to each unit's narration character length instead of its declared
// duration. The two policies are not interchangeable bit-for-bit: this
// one tracks speech length, Reconcile tracks the composer's pacing.
func ReconcileByChars(script domain.Script, actual float64) []domain.TimingSpan {
	lengths := make([]int, 0, len(script.Scenes)+1)
	lengths = append(lengths, max(len(script.Hook.Text), 1))
	for _, scene := range script.Scenes {
		lengths = append(lengths, max(len(scene.Narration), 1))
	}

	total := 0
	for _, l := range lengths {
		total += l
	}

	spans := make([]domain.TimingSpan, 0, len(lengths))
	current := 0.0
	for i, l := range lengths {
		d := actual * float64(l) / float64(total)
		end := current + d
		if i == len(lengths)-1 {
			end = actual
		}
		spans = append(spans, domain.TimingSpan{Start: current, End: end})
		current = end
	}
	return spans
}
