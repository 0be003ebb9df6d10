package workflows_test

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.temporal.io/api/enums/v1"
	"go.temporal.io/api/serviceerror"
	"go.temporal.io/sdk/client"

	"github.com/feral-file/ff-video-warehouse/internal/mocks"
	"github.com/feral-file/ff-video-warehouse/internal/workflows"
)

func TestStartIngestionRun(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	orchestrator := mocks.NewMockTemporalOrchestrator(ctrl)
	worker := workflows.NewWorker(mocks.NewMockExecutor(ctrl), workflows.WorkerConfig{TaskQueue: "video-warehouse"})

	t.Run("uses the fixed workflow id", func(t *testing.T) {
		orchestrator.EXPECT().
			ExecuteWorkflow(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, options client.StartWorkflowOptions, _ interface{}, _ ...interface{}) (client.WorkflowRun, error) {
				assert.Equal(t, workflows.IngestionRunWorkflowID, options.ID)
				assert.Equal(t, "video-warehouse", options.TaskQueue)
				assert.Equal(t, "0 */6 * * *", options.CronSchedule)
				assert.Equal(t, enums.WORKFLOW_ID_CONFLICT_POLICY_FAIL, options.WorkflowIDConflictPolicy)
				return nil, nil
			})

		_, err := workflows.StartIngestionRun(context.Background(), orchestrator, worker, workflows.TriggerOptions{
			TaskQueue:    "video-warehouse",
			CronSchedule: "0 */6 * * *",
		})
		require.NoError(t, err)
	})

	t.Run("already running", func(t *testing.T) {
		orchestrator.EXPECT().
			ExecuteWorkflow(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, errors.New("workflow execution already started"))

		run, err := workflows.StartIngestionRun(context.Background(), orchestrator, worker, workflows.TriggerOptions{TaskQueue: "video-warehouse"})
		require.Error(t, err)
		assert.Nil(t, run)
	})

	t.Run("attaches to the open execution", func(t *testing.T) {
		orchestrator.EXPECT().
			ExecuteWorkflow(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, serviceerror.NewWorkflowExecutionAlreadyStarted("already started", "", "run-1"))
		orchestrator.EXPECT().
			GetWorkflow(gomock.Any(), workflows.IngestionRunWorkflowID, "run-1").
			Return(nil)

		_, err := workflows.StartIngestionRun(context.Background(), orchestrator, worker, workflows.TriggerOptions{
			TaskQueue:       "video-warehouse",
			AttachIfRunning: true,
		})
		require.NoError(t, err)
	})

	t.Run("already started without attach", func(t *testing.T) {
		orchestrator.EXPECT().
			ExecuteWorkflow(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, serviceerror.NewWorkflowExecutionAlreadyStarted("already started", "", "run-1"))

		_, err := workflows.StartIngestionRun(context.Background(), orchestrator, worker, workflows.TriggerOptions{TaskQueue: "video-warehouse"})
		var started *serviceerror.WorkflowExecutionAlreadyStarted
		assert.ErrorAs(t, err, &started)
	})
}
