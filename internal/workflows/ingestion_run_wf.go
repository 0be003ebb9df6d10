package workflows

import (
	"fmt"

	"go.temporal.io/api/enums/v1"
	"go.temporal.io/sdk/workflow"
	"go.uber.org/zap"

	"github.com/feral-file/ff-video-warehouse/internal/domain"
	"github.com/feral-file/ff-video-warehouse/internal/logger"
)

// IngestionRun is the scheduled warehouse run. Each step is its own activity and
// commits on its own; the run lease is released on every exit path.
func (w *workerCore) IngestionRun(ctx workflow.Context) (*domain.RunSummary, error) {
	ctx = workflow.WithActivityOptions(ctx, w.stepOptions())

	var deploy *domain.DeployRef
	if err := workflow.ExecuteActivity(ctx, w.executor.OpenRun).Get(ctx, &deploy); err != nil {
		logger.ErrorWf(ctx, fmt.Errorf("failed to open run: %w", err))
		return nil, err
	}
	logger.InfoWf(ctx, "Opened run", zap.Uint64("deploy_id", deploy.DeployID))

	released := false
	defer func() {
		if released {
			return
		}
		// The workflow context may already be canceled
		dctx, _ := workflow.NewDisconnectedContext(ctx)
		if err := workflow.ExecuteActivity(dctx, w.executor.ReleaseRun, deploy.DeployID).Get(dctx, nil); err != nil {
			logger.ErrorWf(dctx, fmt.Errorf("failed to release run lease: %w", err), zap.Uint64("deploy_id", deploy.DeployID))
		}
	}()

	summary := &domain.RunSummary{Deploy: *deploy}

	var ingest domain.IngestReport
	if err := workflow.ExecuteActivity(ctx, w.executor.IngestVideos, *deploy).Get(ctx, &ingest); err != nil {
		logger.ErrorWf(ctx, fmt.Errorf("failed to ingest videos: %w", err), zap.Uint64("deploy_id", deploy.DeployID))
		return nil, err
	}
	summary.Ingest = ingest

	var trendReport domain.TrendReport
	if err := workflow.ExecuteActivity(ctx, w.executor.ComputeTrendDeltas, *deploy).Get(ctx, &trendReport); err != nil {
		logger.ErrorWf(ctx, fmt.Errorf("failed to compute trend deltas: %w", err), zap.Uint64("deploy_id", deploy.DeployID))
		return nil, err
	}
	summary.Trend = trendReport

	if err := workflow.ExecuteActivity(ctx, w.executor.PruneExpiredFacts).Get(ctx, &summary.FactsPruned); err != nil {
		logger.ErrorWf(ctx, fmt.Errorf("failed to prune expired facts: %w", err), zap.Uint64("deploy_id", deploy.DeployID))
		return nil, err
	}

	if err := workflow.ExecuteActivity(ctx, w.executor.ReleaseRun, deploy.DeployID).Get(ctx, nil); err != nil {
		logger.ErrorWf(ctx, fmt.Errorf("failed to release run lease: %w", err), zap.Uint64("deploy_id", deploy.DeployID))
		return nil, err
	}
	released = true

	if err := workflow.ExecuteActivity(ctx, w.executor.PublishRunCompleted, summary).Get(ctx, nil); err != nil {
		logger.WarnWf(ctx, "Failed to publish run completed event",
			zap.Uint64("deploy_id", deploy.DeployID),
			zap.Error(err),
		)
	}

	logger.InfoWf(ctx, "Ingestion run completed",
		zap.Uint64("deploy_id", deploy.DeployID),
		zap.Int("ingested", summary.Ingest.Ingested),
		zap.Int64("baselines_set", summary.Trend.BaselinesSet),
		zap.Int64("facts_pruned", summary.FactsPruned),
	)

	if w.config.EnrichAfterRun {
		w.runEnrichment(ctx, deploy.DeployID)
	}

	return summary, nil
}

// runEnrichment starts both passes as child workflows and waits for them.
// Pass failures are logged; the run itself has already succeeded.
func (w *workerCore) runEnrichment(ctx workflow.Context, deployID uint64) {
	children := []struct {
		pass domain.PassKind
		fn   func(workflow.Context) (*domain.PassReport, error)
	}{
		{pass: domain.PassPopularity, fn: w.PopularityPass},
		{pass: domain.PassSentiment, fn: w.SentimentPass},
	}

	futures := make([]workflow.ChildWorkflowFuture, len(children))
	for i, child := range children {
		cctx := workflow.WithChildOptions(ctx, workflow.ChildWorkflowOptions{
			WorkflowID:        fmt.Sprintf("enrichment-%s-%d", child.pass, deployID),
			TaskQueue:         w.config.TaskQueue,
			ParentClosePolicy: enums.PARENT_CLOSE_POLICY_ABANDON,
		})
		futures[i] = workflow.ExecuteChildWorkflow(cctx, child.fn)
	}

	for i, future := range futures {
		var report domain.PassReport
		if err := future.Get(ctx, &report); err != nil {
			logger.WarnWf(ctx, "Enrichment pass failed",
				zap.String("pass", string(children[i].pass)),
				zap.Error(err),
			)
			continue
		}
		logger.InfoWf(ctx, "Enrichment pass completed",
			zap.String("pass", string(report.Pass)),
			zap.Int64("written", report.Written),
		)
	}
}
