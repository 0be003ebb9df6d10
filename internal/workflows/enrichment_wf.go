package workflows

import (
	"fmt"

	"go.temporal.io/sdk/workflow"
	"go.uber.org/zap"

	"github.com/feral-file/ff-video-warehouse/internal/domain"
	"github.com/feral-file/ff-video-warehouse/internal/logger"
)

// PopularityPass labels every fact lacking a popularity class
func (w *workerCore) PopularityPass(ctx workflow.Context) (*domain.PassReport, error) {
	return w.runPass(ctx, domain.PassPopularity, w.executor.RunPopularityPass)
}

// SentimentPass labels every video lacking a sentiment class
func (w *workerCore) SentimentPass(ctx workflow.Context) (*domain.PassReport, error) {
	return w.runPass(ctx, domain.PassSentiment, w.executor.RunSentimentPass)
}

func (w *workerCore) runPass(ctx workflow.Context, pass domain.PassKind, activity any) (*domain.PassReport, error) {
	ctx = workflow.WithActivityOptions(ctx, w.stepOptions())

	var report domain.PassReport
	if err := workflow.ExecuteActivity(ctx, activity).Get(ctx, &report); err != nil {
		logger.ErrorWf(ctx, fmt.Errorf("%s pass failed: %w", pass, err))
		return nil, err
	}

	logger.InfoWf(ctx, "Enrichment pass finished",
		zap.String("pass", string(pass)),
		zap.String("batch_id", report.BatchID),
		zap.Int("selected", report.Selected),
		zap.Int64("written", report.Written),
		zap.Int("skipped", len(report.Skipped)),
	)

	return &report, nil
}
