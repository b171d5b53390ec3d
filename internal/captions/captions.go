// Package captions formats a script and its timing spans into styled
// caption entries and SRT subtitle files. Everything here is pure
// formatting over already-decided timings.
package captions

import (
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/harshvardhanraju/video-content-creator/internal/domain"
)

const maxCaptionLen = 50

// FromScript pairs each script unit with its timing span. The span slice
// must come from the timing package: hook first, then scenes in order.
// Caption text prefers the unit's overlay, falling back to its narration.
func FromScript(script domain.Script, spans []domain.TimingSpan) []domain.Caption {
	if len(spans) != len(script.Scenes)+1 {
		return nil
	}

	captions := make([]domain.Caption, 0, len(spans))

	hookText := script.Hook.TextOverlay
	if hookText == "" {
		hookText = script.Hook.Text
	}
	captions = append(captions, domain.Caption{
		Text:  FormatText(hookText),
		Start: spans[0].Start,
		End:   spans[0].End,
		Style: "hook",
	})

	for i, scene := range script.Scenes {
		text := scene.TextOverlay
		if text == "" {
			text = scene.Narration
		}
		captions = append(captions, domain.Caption{
			Text:  FormatText(text),
			Start: spans[i+1].Start,
			End:   spans[i+1].End,
			Style: "normal",
		})
	}

	return captions
}

// FormatText uppercases the caption, caps its length, and breaks long
// captions into two lines.
func FormatText(text string) string {
	text = strings.ToUpper(text)

	if utf8.RuneCountInString(text) > maxCaptionLen {
		runes := []rune(text)
		text = string(runes[:maxCaptionLen-3]) + "..."
	}

	words := strings.Fields(text)
	if len(words) > 6 {
		mid := len(words) / 2
		text = strings.Join(words[:mid], " ") + "\n" + strings.Join(words[mid:], " ")
	}

	return text
}

// WriteSRT renders the captions as an SRT subtitle stream.
func WriteSRT(w io.Writer, captions []domain.Caption) error {
	for i, caption := range captions {
		_, err := fmt.Fprintf(w, "%d\n%s --> %s\n%s\n\n",
			i+1,
			srtTime(caption.Start),
			srtTime(caption.End),
			caption.Text,
		)
		if err != nil {
			return fmt.Errorf("write caption %d: %w", i+1, err)
		}
	}
	return nil
}

func srtTime(seconds float64) string {
	if seconds < 0 {
		seconds = 0
	}
	totalMillis := int64(seconds * 1000)
	hours := totalMillis / 3600000
	minutes := (totalMillis % 3600000) / 60000
	secs := (totalMillis % 60000) / 1000
	millis := totalMillis % 1000
	return fmt.Sprintf("%02d:%02d:%02d,%03d", hours, minutes, secs, millis)
}
