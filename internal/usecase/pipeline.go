package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"github.com/harshvardhanraju/video-content-creator/internal/captions"
	"github.com/harshvardhanraju/video-content-creator/internal/compose"
	"github.com/harshvardhanraju/video-content-creator/internal/domain"
	"github.com/harshvardhanraju/video-content-creator/internal/ports"
	"github.com/harshvardhanraju/video-content-creator/internal/research"
	"github.com/harshvardhanraju/video-content-creator/internal/safety"
	"github.com/harshvardhanraju/video-content-creator/internal/timing"
)

// ErrBlocked is returned when the safety gate stops a run. The result
// still carries the report so callers can show it.
var ErrBlocked = fmt.Errorf("script blocked by safety check")

// PipelineDeps wires all collaborators into the orchestration pipeline.
// Media adapters are optional; a nil or unavailable adapter ends the run
// at the last stage it could complete.
type PipelineDeps struct {
	Research   *research.Engine
	Composer   *compose.Composer
	Safety     *safety.Checker
	Narrator   ports.NarrationRenderer
	Images     ports.SceneImageRenderer
	Assembler  ports.VideoAssembler
	Repository ports.ScriptRepository
	Logger     *slog.Logger
}

// Options controls a single run.
type Options struct {
	TargetLength int
	Style        string
	MaxSources   int
	// ScriptOnly stops after the script and safety report are written,
	// even when media adapters are available.
	ScriptOnly bool
	OutputDir  string
}

// Result collects every artifact a run produced.
type Result struct {
	RunID      string
	Script     domain.Script
	Safety     domain.SafetyReport
	Spans      []domain.TimingSpan
	Status     domain.RunStatus
	ScriptPath string
	AudioPath  string
	SRTPath    string
	ImagePaths []string
	VideoPath  string
}

// Pipeline implements the topic-to-video workflow.
type Pipeline struct {
	research   *research.Engine
	composer   *compose.Composer
	safety     *safety.Checker
	narrator   ports.NarrationRenderer
	images     ports.SceneImageRenderer
	assembler  ports.VideoAssembler
	repository ports.ScriptRepository
	logger     *slog.Logger
}

// NewPipeline constructs the orchestration component.
func NewPipeline(deps PipelineDeps) *Pipeline {
	return &Pipeline{
		research:   deps.Research,
		composer:   deps.Composer,
		safety:     deps.Safety,
		narrator:   deps.Narrator,
		images:     deps.Images,
		assembler:  deps.Assembler,
		repository: deps.Repository,
		logger:     deps.Logger,
	}
}

// GenerateFromTopic researches the topic and runs the full workflow.
func (p *Pipeline) GenerateFromTopic(ctx context.Context, topic string, opts Options) (Result, error) {
	if p.composer == nil {
		return Result{}, fmt.Errorf("composer not configured")
	}

	var script domain.Script
	if p.research != nil {
		result := p.research.Research(ctx, topic, opts.MaxSources)
		script = p.composer.FromResearch(ctx, result, opts.TargetLength, opts.Style)
	} else {
		script = p.composer.FromInput(domain.ParsedInput{
			Title:        topic,
			Context:      topic,
			TargetLength: opts.TargetLength,
		})
		script.Topic = topic
	}

	return p.finish(ctx, topic, script, opts)
}

// GenerateFromInput skips research and builds the script from parsed text.
func (p *Pipeline) GenerateFromInput(ctx context.Context, parsed domain.ParsedInput, opts Options) (Result, error) {
	if p.composer == nil {
		return Result{}, fmt.Errorf("composer not configured")
	}
	if opts.TargetLength > 0 {
		parsed.TargetLength = opts.TargetLength
	}

	script := p.composer.FromInput(parsed)
	script.Topic = parsed.Title
	return p.finish(ctx, parsed.Title, script, opts)
}

// finish runs the stages shared by both entry points: safety gate,
// persistence, narration, timing, captions, images, and assembly.
func (p *Pipeline) finish(ctx context.Context, topic string, script domain.Script, opts Options) (Result, error) {
	res := Result{
		RunID:  uuid.NewString(),
		Script: script,
		Status: domain.StatusScripted,
	}

	if p.safety != nil {
		res.Safety = p.safety.Check(script)
		if !res.Safety.OverallSafe {
			res.Status = domain.StatusBlocked
			p.persist(ctx, topic, &res)
			return res, ErrBlocked
		}
	} else {
		res.Safety = domain.SafetyReport{OverallSafe: true}
	}

	runDir := filepath.Join(opts.OutputDir, res.RunID)
	if err := os.MkdirAll(runDir, 0o755); err != nil {
		return res, fmt.Errorf("create run dir: %w", err)
	}

	scriptPath, err := writeScript(runDir, script)
	if err != nil {
		return res, err
	}
	res.ScriptPath = scriptPath
	res.Spans = timing.Estimate(script)
	p.persist(ctx, topic, &res)

	if opts.ScriptOnly || p.narrator == nil || !p.narrator.Available() {
		p.info("run finished at script stage", "run", res.RunID, "scenes", len(script.Scenes))
		return res, nil
	}

	audioPath, actual, err := p.narrator.Synthesize(ctx, script.NarrationSegments(), filepath.Join(runDir, "narration.wav"))
	if err != nil {
		return res, fmt.Errorf("synthesize narration: %w", err)
	}
	res.AudioPath = audioPath
	res.Spans = timing.Reconcile(script, actual)
	res.Status = domain.StatusRendered
	p.persist(ctx, topic, &res)

	caps := captions.FromScript(script, res.Spans)
	if srtPath, err := writeSRT(runDir, caps); err != nil {
		p.warn("write captions", "error", err)
	} else {
		res.SRTPath = srtPath
	}

	if p.images == nil || !p.images.Available() || p.assembler == nil || !p.assembler.Available() {
		p.info("run finished at narration stage", "run", res.RunID)
		return res, nil
	}

	imagePaths, err := p.renderImages(ctx, script, runDir)
	if err != nil {
		// Narration and captions are already on disk; a failed image
		// download degrades the run instead of discarding them.
		p.warn("image rendering failed, stopping before assembly", "run", res.RunID, "error", err)
		return res, nil
	}
	res.ImagePaths = imagePaths

	videoPath, err := p.assembler.Compose(ctx, imagePaths, audioPath, caps, filepath.Join(runDir, "final.mp4"))
	if err != nil {
		return res, fmt.Errorf("assemble video: %w", err)
	}
	res.VideoPath = videoPath
	res.Status = domain.StatusAssembled
	p.persist(ctx, topic, &res)

	p.info("run finished", "run", res.RunID, "video", videoPath)
	return res, nil
}

// renderImages produces one image for the hook and one per scene, in
// rendering order.
func (p *Pipeline) renderImages(ctx context.Context, script domain.Script, runDir string) ([]string, error) {
	prompts := make([]string, 0, len(script.Scenes)+1)
	prompts = append(prompts, script.Hook.VisualPrompt)
	for _, scene := range script.Scenes {
		prompts = append(prompts, scene.VisualPrompt)
	}

	paths := make([]string, 0, len(prompts))
	for i, prompt := range prompts {
		outPath := filepath.Join(runDir, fmt.Sprintf("scene_%02d.jpg", i))
		path, err := p.images.Render(ctx, prompt, "text, watermark, logo", outPath)
		if err != nil {
			return nil, fmt.Errorf("render image %d: %w", i, err)
		}
		paths = append(paths, path)
	}
	return paths, nil
}

func (p *Pipeline) persist(ctx context.Context, topic string, res *Result) {
	if p.repository == nil {
		return
	}

	scriptJSON, err := json.Marshal(res.Script)
	if err != nil {
		p.warn("marshal script for storage", "error", err)
		return
	}

	err = p.repository.SaveRun(ctx, domain.RunRecord{
		ID:         res.RunID,
		Topic:      topic,
		Category:   res.Script.Category,
		SceneCount: len(res.Script.Scenes),
		Duration:   res.Script.TotalDuration,
		Status:     res.Status,
		ScriptJSON: string(scriptJSON),
		VideoPath:  res.VideoPath,
		CreatedAt:  time.Now().UTC(),
	})
	if err != nil {
		p.warn("persist run", "run", res.RunID, "error", err)
	}
}

func writeScript(runDir string, script domain.Script) (string, error) {
	payload, err := json.MarshalIndent(script, "", "  ")
	if err != nil {
		return "", fmt.Errorf("marshal script: %w", err)
	}
	path := filepath.Join(runDir, "script.json")
	if err := os.WriteFile(path, payload, 0o644); err != nil {
		return "", fmt.Errorf("write script: %w", err)
	}
	return path, nil
}

func writeSRT(runDir string, caps []domain.Caption) (string, error) {
	path := filepath.Join(runDir, "captions.srt")
	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("create captions: %w", err)
	}
	defer f.Close()

	if err := captions.WriteSRT(f, caps); err != nil {
		return "", fmt.Errorf("write captions: %w", err)
	}
	return path, nil
}

func (p *Pipeline) info(msg string, args ...any) {
	if p.logger != nil {
		p.logger.Info(msg, args...)
	}
}

func (p *Pipeline) warn(msg string, args ...any) {
	if p.logger != nil {
		p.logger.Warn(msg, args...)
	}
}
