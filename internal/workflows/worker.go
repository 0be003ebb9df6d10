package workflows

import (
	"time"

	"go.temporal.io/sdk/temporal"
	"go.temporal.io/sdk/workflow"

	"github.com/feral-file/ff-video-warehouse/internal/domain"
)

// IngestionRunWorkflowID is the fixed workflow ID of the ingestion run.
// Temporal rejects a second execution while one is open.
const IngestionRunWorkflowID = "ingestion-run"

// Worker defines the warehouse workflows
type Worker interface {
	// IngestionRun runs open → ingest → trend deltas → prune → release, then both enrichment passes
	IngestionRun(ctx workflow.Context) (*domain.RunSummary, error)

	// PopularityPass runs the popularity enrichment pass
	PopularityPass(ctx workflow.Context) (*domain.PassReport, error)

	// SentimentPass runs the sentiment enrichment pass
	SentimentPass(ctx workflow.Context) (*domain.PassReport, error)
}

// WorkerConfig holds workflow settings
type WorkerConfig struct {
	// TaskQueue is used for the enrichment child workflows
	TaskQueue string
	// StepTimeout bounds each activity
	StepTimeout time.Duration
	// EnrichAfterRun starts both enrichment passes once a run completes
	EnrichAfterRun bool
}

// workerCore is the concrete implementation of Worker
type workerCore struct {
	config   WorkerConfig
	executor Executor
}

// NewWorker creates a new worker instance
func NewWorker(executor Executor, config WorkerConfig) Worker {
	if config.StepTimeout <= 0 {
		config.StepTimeout = 30 * time.Minute
	}
	return &workerCore{
		config:   config,
		executor: executor,
	}
}

// stepOptions runs every activity exactly once; the schedule is the retry
func (w *workerCore) stepOptions() workflow.ActivityOptions {
	return workflow.ActivityOptions{
		StartToCloseTimeout: w.config.StepTimeout,
		RetryPolicy: &temporal.RetryPolicy{
			MaximumAttempts: 1,
		},
	}
}
