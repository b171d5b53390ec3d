// Package video implements the assembler port by driving ffmpeg.
package video

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/harshvardhanraju/video-content-creator/internal/config"
	"github.com/harshvardhanraju/video-content-creator/internal/domain"
	"github.com/harshvardhanraju/video-content-creator/internal/ports"
)

const (
	ffmpegBinary  = "ffmpeg"
	ffprobeBinary = "ffprobe"
)

// FFmpegAssembler concatenates still images over the narration track and
// burns captions in with drawtext.
type FFmpegAssembler struct {
	width  int
	height int
	fps    int
}

var _ ports.VideoAssembler = (*FFmpegAssembler)(nil)

// NewFFmpegAssembler builds an assembler from configuration.
func NewFFmpegAssembler(cfg config.VideoConfig) *FFmpegAssembler {
	return &FFmpegAssembler{width: cfg.Width, height: cfg.Height, fps: cfg.FPS}
}

// Available reports whether ffmpeg and ffprobe are both on PATH.
func (a *FFmpegAssembler) Available() bool {
	if a == nil {
		return false
	}
	if _, err := exec.LookPath(ffmpegBinary); err != nil {
		return false
	}
	_, err := exec.LookPath(ffprobeBinary)
	return err == nil
}

// Compose renders the final video. Image display times come from the
// caption spans when they line up one-to-one; otherwise the audio length
// is split evenly.
func (a *FFmpegAssembler) Compose(ctx context.Context, images []string, audioPath string, captions []domain.Caption, outPath string) (string, error) {
	if !a.Available() {
		return "", fmt.Errorf("ffmpeg not found")
	}
	if len(images) == 0 {
		return "", fmt.Errorf("no scene images to assemble")
	}

	durations, err := a.imageDurations(ctx, images, audioPath, captions)
	if err != nil {
		return "", err
	}

	listPath, err := writeConcatList(images, durations)
	if err != nil {
		return "", err
	}
	defer os.Remove(listPath)

	args := []string{
		"-y",
		"-f", "concat", "-safe", "0", "-i", listPath,
		"-i", audioPath,
		"-vf", a.videoFilter(captions),
		"-c:v", "libx264", "-pix_fmt", "yuv420p",
		"-c:a", "aac",
		"-shortest",
		outPath,
	}
	cmd := exec.CommandContext(ctx, ffmpegBinary, args...)
	if out, err := cmd.CombinedOutput(); err != nil {
		return "", fmt.Errorf("ffmpeg: %w: %s", err, lastLine(string(out)))
	}
	return outPath, nil
}

func (a *FFmpegAssembler) imageDurations(ctx context.Context, images []string, audioPath string, captions []domain.Caption) ([]float64, error) {
	if len(captions) == len(images) {
		durations := make([]float64, len(captions))
		for i, c := range captions {
			durations[i] = c.End - c.Start
		}
		return durations, nil
	}

	total, err := probeDuration(ctx, audioPath)
	if err != nil {
		return nil, err
	}
	per := total / float64(len(images))
	durations := make([]float64, len(images))
	for i := range durations {
		durations[i] = per
	}
	return durations, nil
}

func (a *FFmpegAssembler) videoFilter(captions []domain.Caption) string {
	filters := []string{
		fmt.Sprintf("scale=%d:%d:force_original_aspect_ratio=increase,crop=%d:%d", a.width, a.height, a.width, a.height),
		fmt.Sprintf("fps=%d", a.fps),
	}
	for _, c := range captions {
		size := 48
		if c.Style == "hook" {
			size = 64
		}
		filters = append(filters, fmt.Sprintf(
			"drawtext=text='%s':fontsize=%d:fontcolor=white:borderw=3:bordercolor=black:x=(w-text_w)/2:y=h*0.75:enable='between(t,%.2f,%.2f)'",
			escapeDrawtext(c.Text), size, c.Start, c.End,
		))
	}
	return strings.Join(filters, ",")
}

func writeConcatList(images []string, durations []float64) (string, error) {
	var b strings.Builder
	for i, img := range images {
		abs, err := filepath.Abs(img)
		if err != nil {
			return "", fmt.Errorf("resolve %s: %w", img, err)
		}
		fmt.Fprintf(&b, "file '%s'\n", abs)
		fmt.Fprintf(&b, "duration %.3f\n", durations[i])
	}
	// Concat demuxer ignores the last duration unless the final file repeats.
	if abs, err := filepath.Abs(images[len(images)-1]); err == nil {
		fmt.Fprintf(&b, "file '%s'\n", abs)
	}

	f, err := os.CreateTemp("", "scenes-*.txt")
	if err != nil {
		return "", fmt.Errorf("create concat list: %w", err)
	}
	if _, err := f.WriteString(b.String()); err != nil {
		f.Close()
		os.Remove(f.Name())
		return "", fmt.Errorf("write concat list: %w", err)
	}
	if err := f.Close(); err != nil {
		return "", fmt.Errorf("close concat list: %w", err)
	}
	return f.Name(), nil
}

func probeDuration(ctx context.Context, path string) (float64, error) {
	cmd := exec.CommandContext(ctx, ffprobeBinary,
		"-v", "error",
		"-show_entries", "format=duration",
		"-of", "default=noprint_wrappers=1:nokey=1",
		path,
	)
	out, err := cmd.Output()
	if err != nil {
		return 0, fmt.Errorf("ffprobe %s: %w", path, err)
	}
	dur, err := strconv.ParseFloat(strings.TrimSpace(string(out)), 64)
	if err != nil {
		return 0, fmt.Errorf("parse duration of %s: %w", path, err)
	}
	return dur, nil
}

func escapeDrawtext(text string) string {
	r := strings.NewReplacer(`\`, `\\`, `'`, `\'`, `:`, `\:`, `%`, `\%`)
	return r.Replace(text)
}

func lastLine(out string) string {
	lines := strings.Split(strings.TrimSpace(out), "\n")
	if len(lines) == 0 {
		return ""
	}
	return strings.TrimSpace(lines[len(lines)-1])
}
