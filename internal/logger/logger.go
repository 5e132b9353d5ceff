// Package logger wraps zap construction so callers share one configuration.
package logger

import (
	"fmt"

	"go.uber.org/zap"
)

// Logger holds the application-wide zap logger.
type Logger struct {
	// Log is the underlying zap logger. Nil until Init is called.
	Log *zap.Logger
}

// New returns a Logger with a no-op zap logger so it is safe to use
// before Init.
func New() *Logger {
	return &Logger{Log: zap.NewNop()}
}

// Init builds a production zap logger at the given level ("Debug", "Info",
// "Warn", "Error") and installs it on l.
func (l *Logger) Init(level string) error {
	lvl, err := zap.ParseAtomicLevel(level)
	if err != nil {
		return fmt.Errorf("parse log level %q: %w", level, err)
	}

	cfg := zap.NewProductionConfig()
	cfg.Level = lvl

	logger, err := cfg.Build()
	if err != nil {
		return fmt.Errorf("build logger: %w", err)
	}

	l.Log = logger
	return nil
}
