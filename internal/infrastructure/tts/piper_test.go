package tts

import (
	"encoding/binary"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/harshvardhanraju/video-content-creator/internal/config"
)

// writeWAV builds a minimal PCM WAV file with the given byte rate and
// data size.
func writeWAV(t *testing.T, byteRate uint32, dataSize int) string {
	t.Helper()

	header := make([]byte, 44)
	copy(header[0:4], "RIFF")
	binary.LittleEndian.PutUint32(header[4:8], uint32(36+dataSize))
	copy(header[8:12], "WAVE")
	copy(header[12:16], "fmt ")
	binary.LittleEndian.PutUint32(header[16:20], 16)
	binary.LittleEndian.PutUint16(header[20:22], 1)
	binary.LittleEndian.PutUint16(header[22:24], 1)
	binary.LittleEndian.PutUint32(header[24:28], byteRate/2)
	binary.LittleEndian.PutUint32(header[28:32], byteRate)
	binary.LittleEndian.PutUint16(header[32:34], 2)
	binary.LittleEndian.PutUint16(header[34:36], 16)
	copy(header[36:40], "data")
	binary.LittleEndian.PutUint32(header[40:44], uint32(dataSize))

	path := filepath.Join(t.TempDir(), "test.wav")
	payload := append(header, make([]byte, dataSize)...)
	if err := os.WriteFile(path, payload, 0o644); err != nil {
		t.Fatalf("write wav: %v", err)
	}
	return path
}

func TestWavDuration(t *testing.T) {
	t.Parallel()

	// 44100 bytes/s and 88200 bytes of data is exactly two seconds.
	path := writeWAV(t, 44100, 88200)

	got, err := wavDuration(path)
	if err != nil {
		t.Fatalf("wavDuration: %v", err)
	}
	if math.Abs(got-2.0) > 1e-9 {
		t.Fatalf("expected 2.0s, got %.4f", got)
	}
}

func TestWavDurationRejectsNonWav(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "not.wav")
	if err := os.WriteFile(path, []byte("this is definitely not a riff file at all"), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}

	if _, err := wavDuration(path); err == nil {
		t.Fatal("expected error for non-wav file")
	}
}

func TestAvailable(t *testing.T) {
	t.Parallel()

	missing := NewPiperRenderer(config.TTSConfig{Binary: "definitely-not-a-real-binary-name"})
	if missing.Available() {
		t.Fatal("expected unavailable for missing binary")
	}

	empty := NewPiperRenderer(config.TTSConfig{})
	if empty.Available() {
		t.Fatal("expected unavailable for empty binary name")
	}
}
