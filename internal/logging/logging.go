// Package logging builds the zap logger from configuration. Core
// packages accept a *zap.Logger and default to a nop logger, so tests
// stay quiet.
package logging

import (
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"caselog/internal/config"
)

// New constructs a logger per the logging config, writing to the
// configured file under the data directory. An empty file path returns
// a nop logger: this is a terminal tool and stray log lines would
// corrupt the clipboard-oriented output.
func New(cfg *config.Config) (*zap.Logger, error) {
	path := cfg.LogPath()
	if path == "" {
		return zap.NewNop(), nil
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("failed to create log directory: %w", err)
	}

	level, err := zapcore.ParseLevel(cfg.Logging.Level)
	if err != nil {
		level = zapcore.InfoLevel
	}

	zc := zap.NewProductionConfig()
	zc.Level = zap.NewAtomicLevelAt(level)
	zc.OutputPaths = []string{path}
	zc.ErrorOutputPaths = []string{path}
	if cfg.Logging.Format == "text" {
		zc.Encoding = "console"
		zc.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	}

	logger, err := zc.Build()
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}
	return logger, nil
}
