package ports

import (
	"context"

	"github.com/harshvardhanraju/video-content-creator/internal/domain"
)

// SearchProvider issues a query against an upstream search engine.
// Implementations return an empty slice for "no results", never an error.
type SearchProvider interface {
	Search(ctx context.Context, query string, limit int) ([]domain.SearchResult, error)
}

// Fetcher retrieves raw page markup for a URL. Callers catch fetch errors
// and substitute the search snippet.
type Fetcher interface {
	Fetch(ctx context.Context, url string) (string, error)
}

// TextGenerator is an optional external model that drafts script JSON.
// The composer must work correctly with it entirely absent.
type TextGenerator interface {
	Available() bool
	GenerateScript(ctx context.Context, prompt string) (string, error)
}

// NarrationRenderer synthesizes speech for the script's narration segments
// and reports the true rendered duration in seconds.
type NarrationRenderer interface {
	Available() bool
	Synthesize(ctx context.Context, segments []string, outPath string) (audioPath string, totalDuration float64, err error)
}

// SceneImageRenderer produces one image per scene from its visual prompt.
type SceneImageRenderer interface {
	Available() bool
	Render(ctx context.Context, prompt, negativePrompt, outPath string) (string, error)
}

// VideoAssembler muxes ordered scene images, the narration audio track,
// and optional captions into the output video.
type VideoAssembler interface {
	Available() bool
	Compose(ctx context.Context, images []string, audioPath string, captions []domain.Caption, outPath string) (string, error)
}

// ScriptRepository persists run snapshots for history and audit.
type ScriptRepository interface {
	SaveRun(ctx context.Context, run domain.RunRecord) error
	ListRuns(ctx context.Context, limit int) ([]domain.RunRecord, error)
}
