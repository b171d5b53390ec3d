package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv(configPathEnv, "")
	t.Setenv(llmAPIKeyEnv, "")

	cfg := Load()

	if cfg.Logging.Level != "info" {
		t.Fatalf("unexpected log level: %q", cfg.Logging.Level)
	}
	if cfg.Research.MaxSources != 8 {
		t.Fatalf("unexpected max sources: %d", cfg.Research.MaxSources)
	}
	if cfg.Script.TargetLength != 45 {
		t.Fatalf("unexpected target length: %d", cfg.Script.TargetLength)
	}
	if !cfg.Safety.StrictMode {
		t.Fatal("expected strict mode on by default")
	}
	if cfg.LLM.APIKey != "" {
		t.Fatalf("expected model path disabled by default, got key %q", cfg.LLM.APIKey)
	}
}

func TestLoadYAMLFileOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	raw := `
logging:
  level: debug
research:
  maxSources: 3
script:
  targetLength: 60
  style: dramatic
storage:
  path: /tmp/other.db
`
	if err := os.WriteFile(path, []byte(raw), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	t.Setenv(configPathEnv, path)

	cfg := Load()

	if cfg.Logging.Level != "debug" {
		t.Fatalf("unexpected log level: %q", cfg.Logging.Level)
	}
	if cfg.Research.MaxSources != 3 {
		t.Fatalf("unexpected max sources: %d", cfg.Research.MaxSources)
	}
	if cfg.Script.Style != "dramatic" {
		t.Fatalf("unexpected style: %q", cfg.Script.Style)
	}
	// Fields absent from the file keep their defaults.
	if cfg.Research.FetchLimit != 6 {
		t.Fatalf("unexpected fetch limit: %d", cfg.Research.FetchLimit)
	}
	if cfg.Video.FPS != 30 {
		t.Fatalf("unexpected fps: %d", cfg.Video.FPS)
	}
}

func TestLoadEnvOverridesWinOverFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	raw := `
llm:
  apiKey: from-file
  model: file-model
`
	if err := os.WriteFile(path, []byte(raw), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	t.Setenv(configPathEnv, path)
	t.Setenv(llmAPIKeyEnv, "from-env")
	t.Setenv(databasePathEnv, "/tmp/env.db")

	cfg := Load()

	if cfg.LLM.APIKey != "from-env" {
		t.Fatalf("expected env key to win, got %q", cfg.LLM.APIKey)
	}
	if cfg.LLM.Model != "file-model" {
		t.Fatalf("expected file model kept, got %q", cfg.LLM.Model)
	}
	if cfg.Storage.Path != "/tmp/env.db" {
		t.Fatalf("expected env db path, got %q", cfg.Storage.Path)
	}
}

func TestLoadUnreadableFileFallsBack(t *testing.T) {
	t.Setenv(configPathEnv, filepath.Join(t.TempDir(), "missing.yaml"))

	cfg := Load()
	if cfg.Script.TargetLength != 45 {
		t.Fatalf("expected defaults on missing file, got %d", cfg.Script.TargetLength)
	}
}
