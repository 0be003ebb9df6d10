package temporal

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.temporal.io/sdk/activity"
	"go.temporal.io/sdk/workflow"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestKeyvalFields(t *testing.T) {
	stepErr := errors.New("lease held")

	fields := keyvalFields([]interface{}{"WorkflowID", "ingestion-run", 42, "dropped", "Error", stepErr, "dangling"})
	require.Len(t, fields, 3)

	assert.Equal(t, "WorkflowID", fields[0].Key)
	assert.Equal(t, zap.String("WorkflowID", "ingestion-run"), fields[0])
	assert.Equal(t, "Error", fields[1].Key)
	assert.Equal(t, zapcore.ErrorType, fields[1].Type)
	assert.Equal(t, "extra", fields[2].Key)

	assert.Empty(t, keyvalFields(nil))
}

func TestZapLoggerAdapter(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	l := NewZapLoggerAdapter(zap.New(core))

	l.Info("Started workflow", "WorkflowType", "IngestionRun")
	withLogger := l.(*ZapLoggerAdapter).With("ActivityID", "7")
	withLogger.Warn("Activity retrying", "Attempt", 2)
	l.Error("Activity failed", "Error", errors.New("boom"))

	entries := logs.All()
	require.Len(t, entries, 3)
	assert.Equal(t, "Started workflow", entries[0].Message)
	assert.Equal(t, "IngestionRun", entries[0].ContextMap()["WorkflowType"])
	assert.Equal(t, zapcore.WarnLevel, entries[1].Level)
	assert.Equal(t, "7", entries[1].ContextMap()["ActivityID"])
	assert.Equal(t, int64(2), entries[1].ContextMap()["Attempt"])
	assert.Equal(t, "boom", entries[2].ContextMap()["Error"])
}

func TestActivityTags(t *testing.T) {
	tags := activityTags(activity.Info{
		ActivityType:      activity.Type{Name: "IngestVideos"},
		WorkflowType:      &workflow.Type{Name: "IngestionRun"},
		WorkflowExecution: workflow.Execution{ID: "ingestion-run", RunID: "r1"},
		TaskQueue:         "video-warehouse",
		Attempt:           1,
	})

	assert.Equal(t, map[string]string{
		"activity_type": "IngestVideos",
		"workflow_type": "IngestionRun",
		"workflow_id":   "ingestion-run",
		"task_queue":    "video-warehouse",
		"attempt":       "1",
	}, tags)

	assert.NotContains(t, activityTags(activity.Info{}), "workflow_type")
}
