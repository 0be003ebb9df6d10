package workflows

import (
	"context"
	"errors"
	"fmt"

	"go.temporal.io/api/enums/v1"
	"go.temporal.io/api/serviceerror"
	"go.temporal.io/sdk/client"

	"github.com/feral-file/ff-video-warehouse/internal/providers/temporal"
)

// TriggerOptions configures how the ingestion run is started
type TriggerOptions struct {
	TaskQueue string
	// CronSchedule registers a recurring run instead of a single execution
	CronSchedule string
	// AttachIfRunning returns the open execution instead of failing when one exists
	AttachIfRunning bool
}

// StartIngestionRun starts the ingestion-run workflow under its fixed workflow ID.
// Temporal fails the start while another execution with that ID is still open.
func StartIngestionRun(ctx context.Context, orchestrator temporal.TemporalOrchestrator, w Worker, opts TriggerOptions) (client.WorkflowRun, error) {
	options := client.StartWorkflowOptions{
		ID:                       IngestionRunWorkflowID,
		TaskQueue:                opts.TaskQueue,
		CronSchedule:             opts.CronSchedule,
		WorkflowIDConflictPolicy: enums.WORKFLOW_ID_CONFLICT_POLICY_FAIL,
		WorkflowIDReusePolicy:    enums.WORKFLOW_ID_REUSE_POLICY_ALLOW_DUPLICATE,
	}

	run, err := orchestrator.ExecuteWorkflow(ctx, options, w.IngestionRun)
	if err != nil {
		var started *serviceerror.WorkflowExecutionAlreadyStarted
		if opts.AttachIfRunning && errors.As(err, &started) {
			return orchestrator.GetWorkflow(ctx, IngestionRunWorkflowID, started.RunId), nil
		}
		return nil, fmt.Errorf("failed to start ingestion run: %w", err)
	}
	return run, nil
}
