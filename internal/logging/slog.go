// Package logging provides types.Logger adapters over log/slog and zap.
package logging

import (
	"context"
	"log/slog"
	"os"

	"github.com/arloliu/hostelmatch/types"
)

// LevelFatal sits above slog.LevelError and is rendered as "FATAL" by
// handlers built with HandlerOptions.
const LevelFatal = slog.LevelError + 4

// SlogLogger implements types.Logger on top of log/slog.
type SlogLogger struct {
	logger *slog.Logger
	exit   func(code int)
}

var _ types.Logger = (*SlogLogger)(nil)

// NewSlog creates a new slog-based logger.
//
// Parameters:
//   - logger: The underlying slog.Logger instance to use
//
// Returns:
//   - *SlogLogger: A new logger instance that wraps the provided slog.Logger
//
// Example:
//
//	handler := slog.NewTextHandler(os.Stderr, logging.HandlerOptions(slog.LevelDebug))
//	logger := NewSlog(slog.New(handler))
//	logger.Info("allocation finished", "rooms", 30)
func NewSlog(logger *slog.Logger) *SlogLogger {
	return &SlogLogger{logger: logger, exit: os.Exit}
}

// NewSlogDefault wraps slog.Default().
func NewSlogDefault() *SlogLogger {
	return NewSlog(slog.Default())
}

// HandlerOptions returns handler options filtering below level and naming
// LevelFatal records "FATAL" instead of "ERROR+4".
func HandlerOptions(level slog.Leveler) *slog.HandlerOptions {
	return &slog.HandlerOptions{
		Level: level,
		ReplaceAttr: func(_ []string, a slog.Attr) slog.Attr {
			if a.Key != slog.LevelKey {
				return a
			}
			if lvl, ok := a.Value.Any().(slog.Level); ok && lvl == LevelFatal {
				return slog.String(slog.LevelKey, "FATAL")
			}

			return a
		},
	}
}

// With returns a logger that adds keysAndValues to every entry, e.g. the
// strategy of an allocation run.
func (l *SlogLogger) With(keysAndValues ...any) *SlogLogger {
	return &SlogLogger{logger: l.logger.With(keysAndValues...), exit: l.exit}
}

func (l *SlogLogger) Debug(msg string, keysAndValues ...any) {
	l.log(slog.LevelDebug, msg, keysAndValues)
}

func (l *SlogLogger) Info(msg string, keysAndValues ...any) {
	l.log(slog.LevelInfo, msg, keysAndValues)
}

func (l *SlogLogger) Warn(msg string, keysAndValues ...any) {
	l.log(slog.LevelWarn, msg, keysAndValues)
}

func (l *SlogLogger) Error(msg string, keysAndValues ...any) {
	l.log(slog.LevelError, msg, keysAndValues)
}

// Fatal logs at LevelFatal and exits with status 1.
func (l *SlogLogger) Fatal(msg string, keysAndValues ...any) {
	l.log(LevelFatal, msg, keysAndValues)
	l.exit(1)
}

// log drops records below the handler level before building attributes.
func (l *SlogLogger) log(level slog.Level, msg string, keysAndValues []any) {
	ctx := context.Background()
	if !l.logger.Enabled(ctx, level) {
		return
	}
	l.logger.Log(ctx, level, msg, keysAndValues...)
}
