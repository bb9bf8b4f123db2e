package config

import (
	"os"
	"path/filepath"
	"testing"
)

func clearEnv(t *testing.T) {
	t.Helper()
	t.Setenv("PHRASEKIT_PROMPT", "")
	t.Setenv("PHRASEKIT_FORMAT", "")
	t.Setenv("PHRASEKIT_LOG_LEVEL", "")
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.Prompt != "Enter a phrase" {
		t.Errorf("expected Prompt=Enter a phrase, got %s", cfg.Prompt)
	}
	if cfg.Output.Format != "text" {
		t.Errorf("expected Format=text, got %s", cfg.Output.Format)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config should validate: %v", err)
	}
}

func TestConfig_SaveLoad(t *testing.T) {
	clearEnv(t)

	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "nested", "phrasekit.yaml")

	cfg := DefaultConfig()
	cfg.Prompt = "Phrase please"
	cfg.Output.Format = "json"

	if err := cfg.Save(path); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if loaded.Prompt != "Phrase please" {
		t.Errorf("expected Prompt=Phrase please, got %s", loaded.Prompt)
	}
	if loaded.Output.Format != "json" {
		t.Errorf("expected Format=json, got %s", loaded.Output.Format)
	}
}

func TestLoad_MissingFileReturnsDefaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Prompt != DefaultPrompt {
		t.Errorf("expected default prompt, got %s", cfg.Prompt)
	}
}

func TestLoad_PartialFileKeepsDefaults(t *testing.T) {
	clearEnv(t)

	path := filepath.Join(t.TempDir(), "phrasekit.yaml")
	if err := os.WriteFile(path, []byte("output:\n  format: yaml\n"), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Output.Format != "yaml" {
		t.Errorf("expected Format=yaml, got %s", cfg.Output.Format)
	}
	if cfg.Prompt != DefaultPrompt {
		t.Errorf("expected default prompt, got %s", cfg.Prompt)
	}
	if cfg.Logging.Level != "warn" {
		t.Errorf("expected default log level, got %s", cfg.Logging.Level)
	}
}

func TestLoad_InvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "phrasekit.yaml")
	if err := os.WriteFile(path, []byte("prompt: [unterminated"), 0644); err != nil {
		t.Fatal(err)
	}

	if _, err := Load(path); err == nil {
		t.Error("expected parse error")
	}
}

func TestConfig_Validate(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Output.Format = "xml"
	if err := cfg.Validate(); err == nil {
		t.Error("expected validation error for invalid format")
	}

	cfg = DefaultConfig()
	cfg.Prompt = "  "
	if err := cfg.Validate(); err == nil {
		t.Error("expected validation error for blank prompt")
	}

	cfg = DefaultConfig()
	cfg.Logging.Level = "trace"
	if err := cfg.Validate(); err == nil {
		t.Error("expected validation error for invalid log level")
	}

	cfg = DefaultConfig()
	cfg.Logging.Format = "xml"
	if err := cfg.Validate(); err == nil {
		t.Error("expected validation error for invalid log format")
	}
}
