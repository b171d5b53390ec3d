// Package image implements the scene image renderer port with stock
// photo downloads. Prompts select stable image seeds so repeated runs of
// the same script fetch the same pictures.
package image

import (
	"context"
	"fmt"
	"hash/fnv"
	"io"
	"math/rand"
	"net/http"
	"os"
	"time"

	"github.com/harshvardhanraju/video-content-creator/internal/config"
	"github.com/harshvardhanraju/video-content-creator/internal/ports"
)

// StockRenderer fetches placeholder stock photos keyed by prompt.
type StockRenderer struct {
	baseURL string
	width   int
	height  int
	rng     *rand.Rand
	client  *http.Client
}

var _ ports.SceneImageRenderer = (*StockRenderer)(nil)

// NewStockRenderer builds a renderer from configuration; a zero seed
// falls back to the clock.
func NewStockRenderer(cfg config.ImageConfig, client *http.Client) *StockRenderer {
	if client == nil {
		client = &http.Client{Timeout: 30 * time.Second}
	}
	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &StockRenderer{
		baseURL: cfg.BaseURL,
		width:   cfg.Width,
		height:  cfg.Height,
		rng:     rand.New(rand.NewSource(seed)),
		client:  client,
	}
}

// Available reports whether the renderer is configured with a source URL.
func (r *StockRenderer) Available() bool {
	return r != nil && r.baseURL != "" && r.width > 0 && r.height > 0
}

// Render downloads one image for the prompt into outPath. The negative
// prompt is accepted for interface parity and ignored by stock sources.
func (r *StockRenderer) Render(ctx context.Context, prompt, _ string, outPath string) (string, error) {
	if !r.Available() {
		return "", fmt.Errorf("stock renderer misconfigured")
	}

	imageURL := fmt.Sprintf("%s/seed/%d/%d/%d", r.baseURL, r.imageSeed(prompt), r.width, r.height)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, imageURL, nil)
	if err != nil {
		return "", fmt.Errorf("build request: %w", err)
	}

	resp, err := r.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("download image: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("download image: unexpected status %s", resp.Status)
	}

	out, err := os.Create(outPath)
	if err != nil {
		return "", fmt.Errorf("create %s: %w", outPath, err)
	}
	defer out.Close()

	if _, err := io.Copy(out, resp.Body); err != nil {
		return "", fmt.Errorf("write %s: %w", outPath, err)
	}
	return outPath, nil
}

// imageSeed hashes the prompt so one prompt always maps to the same
// picture. Empty prompts draw from the run's random stream instead.
func (r *StockRenderer) imageSeed(prompt string) uint32 {
	if prompt == "" {
		return uint32(r.rng.Intn(1000))
	}
	h := fnv.New32a()
	h.Write([]byte(prompt))
	return h.Sum32() % 1000
}
