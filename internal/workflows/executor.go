package workflows

import (
	"context"
	"errors"

	"go.temporal.io/sdk/temporal"

	"github.com/feral-file/ff-video-warehouse/internal/adapter"
	"github.com/feral-file/ff-video-warehouse/internal/domain"
	"github.com/feral-file/ff-video-warehouse/internal/enrichment"
	"github.com/feral-file/ff-video-warehouse/internal/ingestion"
	"github.com/feral-file/ff-video-warehouse/internal/store"
)

// Error types carried by non-retryable application errors
const (
	ErrTypeRunInProgress = "RunInProgress"
	ErrTypeValidation    = "Validation"
)

// Executor defines the activities of the warehouse workflows
//
//go:generate mockgen -source=executor.go -destination=../mocks/executor.go -package=mocks -mock_names=Executor=MockExecutor
type Executor interface {
	// OpenRun appends a ledger entry and takes the run lease
	OpenRun(ctx context.Context) (*domain.DeployRef, error)

	// IngestVideos collects and persists the inventory for the deploy
	IngestVideos(ctx context.Context, deploy domain.DeployRef) (*domain.IngestReport, error)

	// ComputeTrendDeltas fills week-ago baselines on the deploy's facts
	ComputeTrendDeltas(ctx context.Context, deploy domain.DeployRef) (*domain.TrendReport, error)

	// PruneExpiredFacts deletes the facts of expired deploys
	PruneExpiredFacts(ctx context.Context) (int64, error)

	// ReleaseRun releases the run lease held by the deploy
	ReleaseRun(ctx context.Context, deployID uint64) error

	// PublishRunCompleted emits the deploy.completed event
	PublishRunCompleted(ctx context.Context, summary *domain.RunSummary) error

	// RunPopularityPass scores facts lacking a popularity class
	RunPopularityPass(ctx context.Context) (*domain.PassReport, error)

	// RunSentimentPass scores videos lacking a sentiment class
	RunSentimentPass(ctx context.Context) (*domain.PassReport, error)
}

type executor struct {
	driver     *ingestion.Driver
	popularity enrichment.Pass
	sentiment  enrichment.Pass
	store      store.Store
	clock      adapter.Clock
}

// NewExecutor creates a new executor instance
func NewExecutor(
	driver *ingestion.Driver,
	popularity enrichment.Pass,
	sentiment enrichment.Pass,
	st store.Store,
	clock adapter.Clock,
) Executor {
	return &executor{
		driver:     driver,
		popularity: popularity,
		sentiment:  sentiment,
		store:      st,
		clock:      clock,
	}
}

// activityError marks errors that a retry cannot fix as non-retryable
func activityError(err error) error {
	if err == nil {
		return nil
	}
	switch {
	case errors.Is(err, domain.ErrRunInProgress):
		return temporal.NewNonRetryableApplicationError(err.Error(), ErrTypeRunInProgress, err)
	case errors.Is(err, domain.ErrUnknownModelCode), domain.Classify(err) == domain.ErrorKindValidation:
		return temporal.NewNonRetryableApplicationError(err.Error(), ErrTypeValidation, err)
	default:
		return err
	}
}

func (e *executor) OpenRun(ctx context.Context) (*domain.DeployRef, error) {
	deploy, err := e.driver.OpenRun(ctx)
	return deploy, activityError(err)
}

func (e *executor) IngestVideos(ctx context.Context, deploy domain.DeployRef) (*domain.IngestReport, error) {
	report, err := e.driver.Ingest(ctx, deploy)
	return report, activityError(err)
}

func (e *executor) ComputeTrendDeltas(ctx context.Context, deploy domain.DeployRef) (*domain.TrendReport, error) {
	report, err := e.driver.ComputeTrends(ctx, deploy)
	return report, activityError(err)
}

func (e *executor) PruneExpiredFacts(ctx context.Context) (int64, error) {
	deleted, err := e.driver.Prune(ctx)
	return deleted, activityError(err)
}

func (e *executor) ReleaseRun(ctx context.Context, deployID uint64) error {
	return activityError(e.driver.Release(ctx, deployID))
}

func (e *executor) PublishRunCompleted(ctx context.Context, summary *domain.RunSummary) error {
	ingestion.LogSummary(ctx, summary)
	return activityError(e.driver.PublishRunCompleted(ctx, summary))
}

func (e *executor) RunPopularityPass(ctx context.Context) (*domain.PassReport, error) {
	return e.runPass(ctx, e.popularity)
}

func (e *executor) RunSentimentPass(ctx context.Context) (*domain.PassReport, error) {
	return e.runPass(ctx, e.sentiment)
}

// runPass refuses to score while an ingestion run holds the lease
func (e *executor) runPass(ctx context.Context, pass enrichment.Pass) (*domain.PassReport, error) {
	if err := enrichment.EnsureNoActiveRun(ctx, e.store, e.clock); err != nil {
		return nil, activityError(err)
	}
	report, err := pass.Run(ctx)
	return report, activityError(err)
}
