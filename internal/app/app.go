// Package app wires configuration to adapters and the pipeline.
package app

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/harshvardhanraju/video-content-creator/internal/compose"
	"github.com/harshvardhanraju/video-content-creator/internal/config"
	"github.com/harshvardhanraju/video-content-creator/internal/domain"
	"github.com/harshvardhanraju/video-content-creator/internal/infrastructure/fetch"
	"github.com/harshvardhanraju/video-content-creator/internal/infrastructure/image"
	"github.com/harshvardhanraju/video-content-creator/internal/infrastructure/llm"
	"github.com/harshvardhanraju/video-content-creator/internal/infrastructure/search"
	"github.com/harshvardhanraju/video-content-creator/internal/infrastructure/storage"
	"github.com/harshvardhanraju/video-content-creator/internal/infrastructure/tts"
	"github.com/harshvardhanraju/video-content-creator/internal/infrastructure/video"
	"github.com/harshvardhanraju/video-content-creator/internal/input"
	"github.com/harshvardhanraju/video-content-creator/internal/logging"
	"github.com/harshvardhanraju/video-content-creator/internal/ports"
	"github.com/harshvardhanraju/video-content-creator/internal/research"
	"github.com/harshvardhanraju/video-content-creator/internal/safety"
	"github.com/harshvardhanraju/video-content-creator/internal/usecase"
)

// Application wires configs to use cases and owns adapter lifecycles.
type Application struct {
	cfg        config.Config
	pipeline   *usecase.Pipeline
	repository *storage.SQLiteRepository
	logger     *slog.Logger
}

// New builds a runnable application instance. Storage failures are
// logged and degrade to a run without history rather than aborting.
func New(cfg config.Config, baseLogger *slog.Logger) *Application {
	if baseLogger == nil {
		baseLogger = logging.New(cfg.Logging.Level)
	}

	engine := research.NewEngine(
		search.NewDuckDuckGoProvider(nil),
		fetch.NewHTTPFetcher(&http.Client{Timeout: time.Duration(cfg.Research.FetchTimeoutSec) * time.Second}),
		research.Options{
			FetchLimit:      cfg.Research.FetchLimit,
			MaxContentChars: cfg.Research.MaxContentChars,
			NewsDomains:     cfg.Research.NewsDomains,
			FetchDelay:      time.Duration(cfg.Research.FetchDelayMs) * time.Millisecond,
		},
		baseLogger.With("component", "research"),
	)

	var generator ports.TextGenerator
	if cfg.LLM.APIKey != "" {
		generator = llm.NewOpenAIClient(cfg.LLM)
	}

	repository, err := storage.Open(cfg.Storage.Path)
	if err != nil {
		baseLogger.Warn("run history disabled", "error", err)
		repository = nil
	}

	var repoPort ports.ScriptRepository
	if repository != nil {
		repoPort = repository
	}

	pipeline := usecase.NewPipeline(usecase.PipelineDeps{
		Research:   engine,
		Composer:   compose.New(generator, baseLogger.With("component", "composer")),
		Safety:     safety.NewChecker(cfg.Safety.StrictMode),
		Narrator:   tts.NewPiperRenderer(cfg.TTS),
		Images:     image.NewStockRenderer(cfg.Images, nil),
		Assembler:  video.NewFFmpegAssembler(cfg.Video),
		Repository: repoPort,
		Logger:     baseLogger.With("component", "pipeline"),
	})

	return &Application{
		cfg:        cfg,
		pipeline:   pipeline,
		repository: repository,
		logger:     baseLogger,
	}
}

// Close releases adapter resources.
func (a *Application) Close() error {
	if a.repository != nil {
		return a.repository.Close()
	}
	return nil
}

// GenerateFromTopic runs the research path end to end.
func (a *Application) GenerateFromTopic(ctx context.Context, topic string, scriptOnly bool) (usecase.Result, error) {
	if a.pipeline == nil {
		return usecase.Result{}, fmt.Errorf("pipeline not configured")
	}
	return a.pipeline.GenerateFromTopic(ctx, topic, a.runOptions(scriptOnly))
}

// GenerateFromText parses raw text or a file path and runs the simple path.
func (a *Application) GenerateFromText(ctx context.Context, raw string, scriptOnly bool) (usecase.Result, error) {
	if a.pipeline == nil {
		return usecase.Result{}, fmt.Errorf("pipeline not configured")
	}

	parsed, err := input.Parse(raw, a.cfg.Script.TargetLength)
	if err != nil {
		return usecase.Result{}, err
	}
	return a.pipeline.GenerateFromInput(ctx, parsed, a.runOptions(scriptOnly))
}

// ListRuns returns recent run history, newest first.
func (a *Application) ListRuns(ctx context.Context, limit int) ([]domain.RunRecord, error) {
	if a.repository == nil {
		return nil, fmt.Errorf("run history unavailable")
	}
	return a.repository.ListRuns(ctx, limit)
}

func (a *Application) runOptions(scriptOnly bool) usecase.Options {
	return usecase.Options{
		TargetLength: a.cfg.Script.TargetLength,
		Style:        a.cfg.Script.Style,
		MaxSources:   a.cfg.Research.MaxSources,
		ScriptOnly:   scriptOnly,
		OutputDir:    a.cfg.Output.Dir,
	}
}
