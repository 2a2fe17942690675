package logging

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestSlog(level slog.Level) (*SlogLogger, *bytes.Buffer) {
	buf := &bytes.Buffer{}
	handler := slog.NewTextHandler(buf, HandlerOptions(level))

	return NewSlog(slog.New(handler)), buf
}

func TestNewSlog(t *testing.T) {
	logger, _ := newTestSlog(slog.LevelDebug)

	require.NotNil(t, logger)
	require.NotNil(t, logger.logger)
	require.NotNil(t, NewSlogDefault().logger)
}

func TestSlogLogger_Levels(t *testing.T) {
	logger, buf := newTestSlog(slog.LevelDebug)

	logger.Debug("rule resolved", "field", "student_id")
	logger.Info("allocation finished", "strategy", "greedy")
	logger.Warn("room limit ignored", "room_limit", 3)
	logger.Error("run failed", "error", "schema error")

	output := buf.String()
	assert.Contains(t, output, "level=DEBUG")
	assert.Contains(t, output, "field=student_id")
	assert.Contains(t, output, "level=INFO")
	assert.Contains(t, output, "strategy=greedy")
	assert.Contains(t, output, "level=WARN")
	assert.Contains(t, output, "room_limit=3")
	assert.Contains(t, output, "level=ERROR")
	assert.Contains(t, output, `error="schema error"`)
}

func TestSlogLogger_LevelFiltering(t *testing.T) {
	logger, buf := newTestSlog(slog.LevelWarn)

	logger.Debug("debug message")
	logger.Info("info message")

	output := buf.String()
	assert.NotContains(t, output, "debug message")
	assert.NotContains(t, output, "info message")

	logger.Warn("warn message")
	logger.Error("error message")

	output = buf.String()
	assert.Contains(t, output, "warn message")
	assert.Contains(t, output, "error message")
}

func TestSlogLogger_With(t *testing.T) {
	logger, buf := newTestSlog(slog.LevelInfo)

	logger.With("run_id", "r-1").Info("allocation finished", "rooms", 4, "unallocated", 0)

	output := buf.String()
	assert.Contains(t, output, "run_id=r-1")
	assert.Contains(t, output, "rooms=4")
	assert.Contains(t, output, "unallocated=0")
}

func TestSlogLogger_Fatal(t *testing.T) {
	logger, buf := newTestSlog(slog.LevelInfo)
	var code int
	logger.exit = func(c int) { code = c }

	logger.With("strategy", "greedy").Fatal("cannot write report", "path", "out.csv")

	output := buf.String()
	assert.Equal(t, 1, code)
	assert.Contains(t, output, "level=FATAL")
	assert.Contains(t, output, "strategy=greedy")
	assert.Contains(t, output, "path=out.csv")
}
