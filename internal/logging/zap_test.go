package logging

import (
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestZapLogger(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	logger := NewZap(zap.New(core))

	logger.Debug("rule resolved", "field", "gender", "tier", "exact")
	logger.Info("allocation finished", "rooms", 3)
	logger.Warn("room limit ignored", "strategy", "cluster")
	logger.Error("run failed", "reason", "no_data")
	require.NoError(t, logger.Sync())

	entries := logs.AllUntimed()
	require.Len(t, entries, 4)

	require.Equal(t, zapcore.DebugLevel, entries[0].Level)
	require.Equal(t, "rule resolved", entries[0].Message)
	require.Equal(t, map[string]any{"field": "gender", "tier": "exact"}, entries[0].ContextMap())

	require.Equal(t, zapcore.InfoLevel, entries[1].Level)
	require.Equal(t, int64(3), entries[1].ContextMap()["rooms"])

	require.Equal(t, zapcore.WarnLevel, entries[2].Level)
	require.Equal(t, zapcore.ErrorLevel, entries[3].Level)
}

func TestZapLogger_LevelFiltering(t *testing.T) {
	core, logs := observer.New(zapcore.WarnLevel)
	logger := NewZap(zap.New(core))

	logger.Debug("hidden")
	logger.Info("hidden")
	logger.Warn("shown")

	require.Equal(t, 1, logs.Len())
	require.Equal(t, "shown", logs.All()[0].Message)
}
