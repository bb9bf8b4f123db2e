package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"phrasekit/internal/tokenize"

	"gopkg.in/yaml.v3"
)

// DefaultPath is the config file looked up when --config is not given.
const DefaultPath = "phrasekit.yaml"

// DefaultPrompt is the label shown when no phrase is supplied.
const DefaultPrompt = "Enter a phrase"

// Config holds all phrasekit configuration.
type Config struct {
	// Prompt label for the interactive fallback
	Prompt string `yaml:"prompt"`

	// Output rendering
	Output OutputConfig `yaml:"output"`

	// Logging
	Logging LoggingConfig `yaml:"logging"`
}

// OutputConfig configures how tokenized phrases are written.
type OutputConfig struct {
	Format string `yaml:"format"` // text, json, yaml
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Prompt: DefaultPrompt,
		Output: OutputConfig{
			Format: tokenize.FormatText,
		},
		Logging: LoggingConfig{
			Level:  "warn",
			Format: "json",
		},
	}
}

// Load loads configuration from a YAML file.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			// Defaults still honor the environment
			cfg.applyEnvOverrides()
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	cfg.applyEnvOverrides()

	return cfg, nil
}

// Save saves configuration to a YAML file.
func (c *Config) Save(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	return nil
}

// applyEnvOverrides applies environment variable overrides.
func (c *Config) applyEnvOverrides() {
	if prompt := os.Getenv("PHRASEKIT_PROMPT"); prompt != "" {
		c.Prompt = prompt
	}
	if format := os.Getenv("PHRASEKIT_FORMAT"); format != "" {
		c.Output.Format = strings.ToLower(format)
	}
	if level := os.Getenv("PHRASEKIT_LOG_LEVEL"); level != "" {
		c.Logging.Level = strings.ToLower(level)
	}
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.Prompt) == "" {
		return fmt.Errorf("prompt must not be empty")
	}

	validFormat := false
	for _, f := range tokenize.ValidFormats {
		if c.Output.Format == f {
			validFormat = true
			break
		}
	}
	if !validFormat {
		return fmt.Errorf("invalid output format: %s (valid: %v)", c.Output.Format, tokenize.ValidFormats)
	}

	return c.Logging.Validate()
}
