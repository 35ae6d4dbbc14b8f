// Package telemetry configures structured logging for algoview.
package telemetry

import (
	"context"
	"io"
	"log/slog"
	"os"
	"strings"
)

const (
	EnvLogLevel  = "ALGOVIEW_LOG_LEVEL"
	EnvLogFormat = "ALGOVIEW_LOG_FORMAT"
)

// ParseLevel maps DEBUG, INFO, WARN and ERROR to slog levels. Anything
// else is INFO.
func ParseLevel(s string) slog.Level {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "DEBUG":
		return slog.LevelDebug
	case "WARN", "WARNING":
		return slog.LevelWarn
	case "ERROR":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// LogLevel reads the level from ALGOVIEW_LOG_LEVEL.
func LogLevel() slog.Level {
	return ParseLevel(os.Getenv(EnvLogLevel))
}

// NewLogger builds a text or JSON logger writing to w. The format comes
// from ALGOVIEW_LOG_FORMAT ("json" or "text", default text).
func NewLogger(w io.Writer, level slog.Level) *slog.Logger {
	opts := &slog.HandlerOptions{
		Level:     level,
		AddSource: level == slog.LevelDebug,
	}

	var handler slog.Handler
	if strings.EqualFold(os.Getenv(EnvLogFormat), "json") {
		handler = slog.NewJSONHandler(w, opts)
	} else {
		handler = slog.NewTextHandler(w, opts)
	}
	return slog.New(handler)
}

// SetupLogger installs a logger as the slog default and returns it.
func SetupLogger(w io.Writer, level slog.Level) *slog.Logger {
	logger := NewLogger(w, level)
	slog.SetDefault(logger)
	return logger
}

func Discard() *slog.Logger { return slog.New(slog.DiscardHandler) }

type ctxKey string

const ctxLogger ctxKey = "logger"

func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, ctxLogger, logger)
}

// FromContext returns the logger stored in ctx, or the slog default.
func FromContext(ctx context.Context) *slog.Logger {
	if logger, ok := ctx.Value(ctxLogger).(*slog.Logger); ok {
		return logger
	}
	return slog.Default()
}

func WithAlgorithm(logger *slog.Logger, algorithm string) *slog.Logger {
	return logger.With("algorithm", algorithm)
}

func WithRunID(logger *slog.Logger, runID string) *slog.Logger {
	return logger.With("run_id", runID)
}
