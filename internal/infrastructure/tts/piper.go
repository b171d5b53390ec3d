// Package tts implements the narration renderer port by shelling out to
// the piper speech synthesizer.
package tts

import (
	"context"
	"encoding/binary"
	"fmt"
	"os"
	"os/exec"
	"strings"

	"github.com/harshvardhanraju/video-content-creator/internal/config"
	"github.com/harshvardhanraju/video-content-creator/internal/ports"
)

// PiperRenderer synthesizes narration into a single WAV file.
type PiperRenderer struct {
	binary string
	voice  string
	speed  float64
}

var _ ports.NarrationRenderer = (*PiperRenderer)(nil)

// NewPiperRenderer builds a renderer from configuration.
func NewPiperRenderer(cfg config.TTSConfig) *PiperRenderer {
	return &PiperRenderer{
		binary: cfg.Binary,
		voice:  cfg.Voice,
		speed:  cfg.Speed,
	}
}

// Available reports whether the piper binary can be found on PATH.
func (r *PiperRenderer) Available() bool {
	if r == nil || r.binary == "" {
		return false
	}
	_, err := exec.LookPath(r.binary)
	return err == nil
}

// Synthesize joins the narration segments with sentence pauses, renders
// them through piper, and returns the output path together with the
// measured audio duration in seconds.
func (r *PiperRenderer) Synthesize(ctx context.Context, segments []string, outPath string) (string, float64, error) {
	if !r.Available() {
		return "", 0, fmt.Errorf("tts binary %q not found", r.binary)
	}
	text := strings.TrimSpace(strings.Join(segments, " "))
	if text == "" {
		return "", 0, fmt.Errorf("nothing to synthesize")
	}

	args := []string{"--output_file", outPath}
	if r.voice != "" {
		args = append(args, "--model", r.voice)
	}
	if r.speed > 0 {
		// Piper expresses speed as a length scale, the inverse of rate.
		args = append(args, "--length_scale", fmt.Sprintf("%.2f", 1.0/r.speed))
	}

	cmd := exec.CommandContext(ctx, r.binary, args...)
	cmd.Stdin = strings.NewReader(text)
	if out, err := cmd.CombinedOutput(); err != nil {
		return "", 0, fmt.Errorf("piper: %w: %s", err, strings.TrimSpace(string(out)))
	}

	duration, err := wavDuration(outPath)
	if err != nil {
		return "", 0, fmt.Errorf("probe %s: %w", outPath, err)
	}
	return outPath, duration, nil
}

// wavDuration reads the RIFF header and computes duration from the data
// chunk size and byte rate.
func wavDuration(path string) (float64, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, err
	}
	defer f.Close()

	header := make([]byte, 44)
	if _, err := f.Read(header); err != nil {
		return 0, fmt.Errorf("read header: %w", err)
	}
	if string(header[0:4]) != "RIFF" || string(header[8:12]) != "WAVE" {
		return 0, fmt.Errorf("not a wav file")
	}

	byteRate := binary.LittleEndian.Uint32(header[28:32])
	if byteRate == 0 {
		return 0, fmt.Errorf("zero byte rate")
	}

	info, err := f.Stat()
	if err != nil {
		return 0, err
	}
	dataSize := info.Size() - 44
	if dataSize < 0 {
		dataSize = 0
	}

	return float64(dataSize) / float64(byteRate), nil
}
