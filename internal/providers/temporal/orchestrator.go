package temporal

import (
	"context"

	"go.temporal.io/sdk/client"
)

// TemporalOrchestrator starts workflow executions and attaches to open ones.
// client.Client satisfies it.
//
//go:generate mockgen -source=orchestrator.go -destination=../../mocks/temporal_orchestrator.go -package=mocks -mock_names=TemporalOrchestrator=MockTemporalOrchestrator
type TemporalOrchestrator interface {
	ExecuteWorkflow(ctx context.Context, options client.StartWorkflowOptions, workflow interface{}, args ...interface{}) (client.WorkflowRun, error)
	// GetWorkflow returns a handle on an execution; an empty runID selects the latest run
	GetWorkflow(ctx context.Context, workflowID string, runID string) client.WorkflowRun
}
