// Package logging builds the zap loggers used by phrasekit commands.
// Logs always go to stderr so stdout carries only command output.
package logging

import (
	"fmt"

	"phrasekit/internal/config"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Category represents a log category/system
type Category string

const (
	CategoryBoot     Category = "boot"     // Startup, config resolution
	CategoryPrompt   Category = "prompt"   // Interactive phrase prompt
	CategoryTokenize Category = "tokenize" // Splitting and rendering
)

// New builds a logger from cfg. verbose forces debug level.
func New(cfg config.LoggingConfig, verbose bool) (*zap.Logger, error) {
	zcfg := zap.NewProductionConfig()

	level, err := zapcore.ParseLevel(cfg.Level)
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", cfg.Level, err)
	}
	if verbose {
		level = zapcore.DebugLevel
	}
	zcfg.Level = zap.NewAtomicLevelAt(level)

	switch cfg.Format {
	case "", "json":
		zcfg.Encoding = "json"
	case "console":
		zcfg.Encoding = "console"
		zcfg.EncoderConfig = zap.NewDevelopmentEncoderConfig()
	default:
		return nil, fmt.Errorf("invalid log format: %s", cfg.Format)
	}

	zcfg.OutputPaths = []string{"stderr"}
	zcfg.ErrorOutputPaths = []string{"stderr"}

	logger, err := zcfg.Build()
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}
	return logger, nil
}

// Get returns a child of logger named after category.
// A nil logger yields a no-op logger.
func Get(logger *zap.Logger, category Category) *zap.Logger {
	if logger == nil {
		return zap.NewNop()
	}
	return logger.Named(string(category))
}
