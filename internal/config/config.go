package config

import (
	"log"
	"os"

	"gopkg.in/yaml.v3"
)

const (
	configPathEnv   = "REELFORGE_CONFIG"
	llmAPIKeyEnv    = "REELFORGE_LLM_API_KEY"
	llmModelEnv     = "REELFORGE_LLM_MODEL"
	databasePathEnv = "REELFORGE_DB_PATH"
	outputDirEnv    = "REELFORGE_OUTPUT_DIR"
)

// Config holds high-level settings required across the application.
type Config struct {
	Logging  LoggingConfig  `yaml:"logging"`
	Research ResearchConfig `yaml:"research"`
	Script   ScriptConfig   `yaml:"script"`
	Safety   SafetyConfig   `yaml:"safety"`
	LLM      LLMConfig      `yaml:"llm"`
	TTS      TTSConfig      `yaml:"tts"`
	Images   ImageConfig    `yaml:"images"`
	Video    VideoConfig    `yaml:"video"`
	Storage  StorageConfig  `yaml:"storage"`
	Output   OutputConfig   `yaml:"output"`
}

// LoggingConfig controls the console log level.
type LoggingConfig struct {
	Level string `yaml:"level"`
}

// ResearchConfig bounds how much the research engine pulls in.
type ResearchConfig struct {
	MaxSources      int      `yaml:"maxSources"`
	FetchLimit      int      `yaml:"fetchLimit"`
	MaxContentChars int      `yaml:"maxContentChars"`
	NewsDomains     []string `yaml:"newsDomains"`
	FetchTimeoutSec int      `yaml:"fetchTimeoutSec"`
	FetchDelayMs    int      `yaml:"fetchDelayMs"`
}

// ScriptConfig defines composer defaults.
type ScriptConfig struct {
	TargetLength int    `yaml:"targetLength"`
	Style        string `yaml:"style"`
}

// SafetyConfig controls the content safety gate.
type SafetyConfig struct {
	StrictMode bool `yaml:"strictMode"`
}

// LLMConfig defines how to contact an OpenAI-compatible completion API.
// An empty API key disables the model path entirely; the composer then
// uses its deterministic fact-driven builder.
type LLMConfig struct {
	Endpoint string `yaml:"endpoint"`
	Model    string `yaml:"model"`
	APIKey   string `yaml:"apiKey"`
}

// TTSConfig selects the narration renderer.
type TTSConfig struct {
	Binary string  `yaml:"binary"`
	Voice  string  `yaml:"voice"`
	Speed  float64 `yaml:"speed"`
}

// ImageConfig selects the scene image backend.
type ImageConfig struct {
	Source  string `yaml:"source"`
	BaseURL string `yaml:"baseUrl"`
	Width   int    `yaml:"width"`
	Height  int    `yaml:"height"`
	Seed    int64  `yaml:"seed"`
}

// VideoConfig describes the assembled output format.
type VideoConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
	FPS    int `yaml:"fps"`
}

// StorageConfig describes the run-history database.
type StorageConfig struct {
	Path string `yaml:"path"`
}

// OutputConfig describes where artifacts land.
type OutputConfig struct {
	Dir              string `yaml:"dir"`
	SaveIntermediate bool   `yaml:"saveIntermediate"`
}

// Load reads YAML configuration (if present) and applies environment overrides.
func Load() Config {
	cfg := defaultConfig()

	if path := os.Getenv(configPathEnv); path != "" {
		if raw, err := os.ReadFile(path); err != nil {
			log.Printf("config: cannot read %s: %v (falling back to defaults)", path, err)
		} else {
			var fileCfg Config
			if err := yaml.Unmarshal(raw, &fileCfg); err != nil {
				log.Printf("config: cannot parse %s: %v (falling back to defaults)", path, err)
			} else {
				cfg = mergeConfig(cfg, fileCfg)
			}
		}
	}

	cfg.applyEnvOverrides()
	return cfg
}

func (c *Config) applyEnvOverrides() {
	if v := os.Getenv(llmAPIKeyEnv); v != "" {
		c.LLM.APIKey = v
	}

	if v := os.Getenv(llmModelEnv); v != "" {
		c.LLM.Model = v
	}

	if v := os.Getenv(databasePathEnv); v != "" {
		c.Storage.Path = v
	}

	if v := os.Getenv(outputDirEnv); v != "" {
		c.Output.Dir = v
	}
}

func mergeConfig(base, override Config) Config {
	if override.Logging.Level != "" {
		base.Logging.Level = override.Logging.Level
	}

	if override.Research.MaxSources > 0 {
		base.Research.MaxSources = override.Research.MaxSources
	}
	if override.Research.FetchLimit > 0 {
		base.Research.FetchLimit = override.Research.FetchLimit
	}
	if override.Research.MaxContentChars > 0 {
		base.Research.MaxContentChars = override.Research.MaxContentChars
	}
	if len(override.Research.NewsDomains) > 0 {
		base.Research.NewsDomains = override.Research.NewsDomains
	}
	if override.Research.FetchTimeoutSec > 0 {
		base.Research.FetchTimeoutSec = override.Research.FetchTimeoutSec
	}
	if override.Research.FetchDelayMs > 0 {
		base.Research.FetchDelayMs = override.Research.FetchDelayMs
	}

	if override.Script.TargetLength > 0 {
		base.Script.TargetLength = override.Script.TargetLength
	}
	if override.Script.Style != "" {
		base.Script.Style = override.Script.Style
	}

	base.Safety.StrictMode = base.Safety.StrictMode || override.Safety.StrictMode

	if override.LLM.Endpoint != "" {
		base.LLM.Endpoint = override.LLM.Endpoint
	}
	if override.LLM.Model != "" {
		base.LLM.Model = override.LLM.Model
	}
	if override.LLM.APIKey != "" {
		base.LLM.APIKey = override.LLM.APIKey
	}

	if override.TTS.Binary != "" {
		base.TTS.Binary = override.TTS.Binary
	}
	if override.TTS.Voice != "" {
		base.TTS.Voice = override.TTS.Voice
	}
	if override.TTS.Speed > 0 {
		base.TTS.Speed = override.TTS.Speed
	}

	if override.Images.Source != "" {
		base.Images.Source = override.Images.Source
	}
	if override.Images.BaseURL != "" {
		base.Images.BaseURL = override.Images.BaseURL
	}
	if override.Images.Width > 0 {
		base.Images.Width = override.Images.Width
	}
	if override.Images.Height > 0 {
		base.Images.Height = override.Images.Height
	}
	if override.Images.Seed != 0 {
		base.Images.Seed = override.Images.Seed
	}

	if override.Video.Width > 0 {
		base.Video.Width = override.Video.Width
	}
	if override.Video.Height > 0 {
		base.Video.Height = override.Video.Height
	}
	if override.Video.FPS > 0 {
		base.Video.FPS = override.Video.FPS
	}

	if override.Storage.Path != "" {
		base.Storage.Path = override.Storage.Path
	}

	if override.Output.Dir != "" {
		base.Output.Dir = override.Output.Dir
	}
	base.Output.SaveIntermediate = base.Output.SaveIntermediate || override.Output.SaveIntermediate

	return base
}

func defaultConfig() Config {
	return Config{
		Logging: LoggingConfig{Level: "info"},
		Research: ResearchConfig{
			MaxSources:      8,
			FetchLimit:      6,
			MaxContentChars: 5000,
			NewsDomains:     []string{"reuters.com", "apnews.com", "bbc.com"},
			FetchTimeoutSec: 10,
			FetchDelayMs:    500,
		},
		Script: ScriptConfig{
			TargetLength: 45,
			Style:        "informational",
		},
		Safety: SafetyConfig{StrictMode: true},
		LLM: LLMConfig{
			Endpoint: "https://api.openai.com/v1/chat/completions",
			Model:    "gpt-4o-mini",
			APIKey:   "",
		},
		TTS: TTSConfig{
			Binary: "piper",
			Voice:  "en_US-lessac-medium",
			Speed:  1.2,
		},
		Images: ImageConfig{
			Source:  "stock",
			BaseURL: "https://picsum.photos",
			Width:   1080,
			Height:  1920,
		},
		Video: VideoConfig{
			Width:  1080,
			Height: 1920,
			FPS:    30,
		},
		Storage: StorageConfig{Path: "reelforge.db"},
		Output:  OutputConfig{Dir: "outputs"},
	}
}
