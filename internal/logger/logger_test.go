package logger

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func observe(t *testing.T) *observer.ObservedLogs {
	t.Helper()
	core, logs := observer.New(zapcore.DebugLevel)
	previous := log
	log = zap.New(core)
	t.Cleanup(func() {
		log = previous
	})
	return logs
}

func TestWithFields(t *testing.T) {
	logs := observe(t)

	ctx := WithFields(context.Background(), zap.Uint64("run_deploy_id", 7))
	ctx = WithFields(ctx, zap.String("step", "ingest"))
	InfoCtx(ctx, "Ingested videos", zap.Int("ingested", 3))

	// The parent context is unchanged
	InfoCtx(context.Background(), "No fields")

	entries := logs.All()
	require.Len(t, entries, 2)
	fields := entries[0].ContextMap()
	assert.Equal(t, uint64(7), fields["run_deploy_id"])
	assert.Equal(t, "ingest", fields["step"])
	assert.Equal(t, int64(3), fields["ingested"])
	assert.NotContains(t, entries[1].ContextMap(), "run_deploy_id")
}

func TestErrorCtx(t *testing.T) {
	logs := observe(t)

	ErrorCtx(context.Background(), errors.New("lease held"), zap.String("pass", "popularity"))
	ErrorCtx(context.Background(), nil)

	entries := logs.All()
	require.Len(t, entries, 2)
	assert.Equal(t, "lease held", entries[0].Message)
	assert.Equal(t, zapcore.ErrorLevel, entries[0].Level)
	assert.Equal(t, "error occurred", entries[1].Message)
}

func TestLevels(t *testing.T) {
	logs := observe(t)

	Debug("debug")
	Info("info")
	Warn("warn")
	WarnCtx(context.Background(), "warn ctx")
	DebugCtx(context.Background(), "debug ctx")

	assert.Equal(t, 5, logs.Len())
	assert.Equal(t, 2, logs.FilterLevelExact(zapcore.WarnLevel).Len())
}

func TestInitialize_WithoutSentry(t *testing.T) {
	previous := log
	t.Cleanup(func() {
		log = previous
	})

	require.NoError(t, Initialize(Config{Debug: true, Tags: map[string]string{"service": "test"}}))
	assert.NotNil(t, Default())
	assert.True(t, Default().Core().Enabled(zapcore.DebugLevel))
}
