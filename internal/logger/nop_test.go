package logger

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/hostelmatch/types"
)

func TestNopLogger(t *testing.T) {
	logger := NewNop()

	// Verify it implements the interface
	var _ types.Logger = logger

	// All methods should be callable without panicking
	require.NotPanics(t, func() {
		logger.Debug("test message", "key", "value")
		logger.Info("test message", "key", "value")
		logger.Warn("test message", "key", "value")
		logger.Error("test message", "key", "value")
		logger.Fatal("test message", "key", "value") // Should NOT exit
	})
}

func TestNopLogger_NoSideEffects(t *testing.T) {
	logger := NewNop()

	// Should handle nil and empty arguments
	require.NotPanics(t, func() {
		logger.Debug("")
		logger.Info("", nil)
		logger.Warn("message")
		logger.Error("message", "single")
		logger.Fatal("message", "k1", "v1", "k2", "v2")
	})
}

func TestNopLoggerImplementsLogger(_ *testing.T) {
	var _ types.Logger = (*NopLogger)(nil)
}

func TestNewNop(t *testing.T) {
	logger := NewNop()

	require.NotNil(t, logger)
	require.IsType(t, &NopLogger{}, logger)
	require.Same(t, logger, NewNop())
	require.Same(t, logger, logger.With("strategy", "greedy"))
}

func TestFormatKeyValues(t *testing.T) {
	require.Empty(t, FormatKeyValues(nil))
	require.Equal(t, "rooms=3 strategy=greedy", FormatKeyValues([]any{"rooms", 3, "strategy", "greedy"}))
	require.Equal(t, "rooms=3 orphan=<missing>", FormatKeyValues([]any{"rooms", 3, "orphan"}))
}

func TestTestLogger(t *testing.T) {
	var _ types.Logger = NewTest(t)

	require.NotPanics(t, func() {
		l := NewTest(t)
		l.Debug("debug", "k", 1)
		l.Info("info")
		l.Warn("warn", "k")
		l.Error("error", "k", "v")
	})
}

func TestRecorder(t *testing.T) {
	r := NewRecorder()
	r.Info("allocation finished", "rooms", 4, "strategy", "greedy")
	r.Warn("room limit ignored")
	r.Fatal("fatal but recorded")

	require.Len(t, r.Entries(), 3)
	info := r.Find("info")
	require.Len(t, info, 1)
	require.Equal(t, 4, info[0].Value("rooms"))
	require.Equal(t, "greedy", info[0].Value("strategy"))
	require.Nil(t, info[0].Value("missing"))
	require.Len(t, r.Find("warn"), 1)
	require.Len(t, r.Find(""), 3)
}

func BenchmarkNopLogger(b *testing.B) {
	logger := NewNop()

	for b.Loop() {
		logger.Debug("benchmark message", "key1", "value1", "key2", 42)
	}
}
