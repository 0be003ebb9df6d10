package ingestion

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/oklog/ulid/v2"
	"go.uber.org/zap"

	"github.com/feral-file/ff-video-warehouse/internal/adapter"
	"github.com/feral-file/ff-video-warehouse/internal/domain"
	"github.com/feral-file/ff-video-warehouse/internal/logger"
	"github.com/feral-file/ff-video-warehouse/internal/messaging"
	"github.com/feral-file/ff-video-warehouse/internal/providers/inventory"
	"github.com/feral-file/ff-video-warehouse/internal/providers/transcript"
	"github.com/feral-file/ff-video-warehouse/internal/providers/youtube"
	"github.com/feral-file/ff-video-warehouse/internal/store"
	"github.com/feral-file/ff-video-warehouse/internal/store/schema"
	"github.com/feral-file/ff-video-warehouse/internal/sweeper"
	"github.com/feral-file/ff-video-warehouse/internal/trend"
)

// Config holds the ingestion driver settings
type Config struct {
	// Pattern filters inventory names before identifier validation
	Pattern string
	// LeaseTTL bounds how long an unfinished run blocks the next one
	LeaseTTL time.Duration
}

// Driver coordinates a single ingestion run
type Driver struct {
	config      Config
	store       store.Store
	inventory   inventory.Lister
	metadata    youtube.MetadataFetcher
	transcripts transcript.Fetcher
	trend       *trend.Engine
	retention   *sweeper.Retention
	publisher   messaging.Publisher
	clock       adapter.Clock
}

// NewDriver creates a new ingestion driver
func NewDriver(
	config Config,
	st store.Store,
	inventoryLister inventory.Lister,
	metadataFetcher youtube.MetadataFetcher,
	transcriptFetcher transcript.Fetcher,
	trendEngine *trend.Engine,
	retention *sweeper.Retention,
	publisher messaging.Publisher,
	clock adapter.Clock,
) *Driver {
	if config.LeaseTTL <= 0 {
		config.LeaseTTL = domain.DefaultRunLeaseTTL
	}
	if publisher == nil {
		publisher = messaging.NewNoopPublisher()
	}
	return &Driver{
		config:      config,
		store:       st,
		inventory:   inventoryLister,
		metadata:    metadataFetcher,
		transcripts: transcriptFetcher,
		trend:       trendEngine,
		retention:   retention,
		publisher:   publisher,
		clock:       clock,
	}
}

// OpenRun appends a ledger entry for a new run and takes the run lease
func (d *Driver) OpenRun(ctx context.Context) (*domain.DeployRef, error) {
	entry, err := d.store.OpenRun(ctx, d.clock.Now(), d.config.LeaseTTL)
	if err != nil {
		return nil, fmt.Errorf("failed to open run: %w", err)
	}

	logger.InfoCtx(ctx, "Opened ingestion run",
		zap.Uint64("deploy_id", entry.DeployID),
		zap.Time("timestamp", entry.Timestamp),
	)
	return &domain.DeployRef{DeployID: entry.DeployID, Timestamp: entry.Timestamp.UTC()}, nil
}

// Ingest collects every candidate and persists the collected items in one transaction.
// Per-item failures are recorded in the report; an inventory or store failure aborts the step.
func (d *Driver) Ingest(ctx context.Context, deploy domain.DeployRef) (*domain.IngestReport, error) {
	report := &domain.IngestReport{DeployID: deploy.DeployID, Skipped: []domain.SkippedItem{}}

	names, err := d.inventory.List(ctx, d.config.Pattern)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrUnavailable, err)
	}

	// 1. Collect external data outside any transaction
	var items []*Item
	for outcome := range d.Candidates(ctx, names) {
		report.Candidates++
		if outcome.Err != nil {
			d.recordSkip(ctx, report, outcome.Raw, outcome.Err)
			continue
		}
		items = append(items, outcome.Item)
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	// 2. Persist all items atomically; each item runs in its own savepoint so a
	// validation failure discards only that video
	err = d.store.WithinTransaction(ctx, func(tx store.Store) error {
		for _, item := range items {
			err := tx.WithinTransaction(ctx, func(itemTx store.Store) error {
				return persist(ctx, itemTx, deploy.DeployID, item)
			})
			if err != nil {
				if domain.Classify(err) == domain.ErrorKindConnectivity {
					return err
				}
				d.recordSkip(ctx, report, item.Metadata.VideoID.String(), err)
				continue
			}
			report.Ingested++
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to persist ingested videos: %w", err)
	}

	logger.InfoCtx(ctx, "Ingested videos",
		zap.Uint64("deploy_id", deploy.DeployID),
		zap.Int("candidates", report.Candidates),
		zap.Int("ingested", report.Ingested),
		zap.Int("skipped", len(report.Skipped)),
	)
	return report, nil
}

// persist upserts the video dimension row and appends the run's fact
func persist(ctx context.Context, tx store.Store, deployID uint64, item *Item) error {
	md := item.Metadata

	err := tx.UpsertVideo(ctx, store.UpsertVideoInput{
		VideoID:     md.VideoID,
		Title:       md.Title,
		PublishedAt: item.PublishedAt,
		Tags:        md.Tags,
		Duration:    md.Duration,
		Transcript:  item.Transcript,
	})
	if err != nil {
		return err
	}

	_, err = tx.AppendFact(ctx, store.AppendFactInput{
		VideoID:     md.VideoID,
		DeployID:    deployID,
		PublishedAt: item.PublishedAt,
		CategoryID:  md.CategoryID,
		Counters: domain.Counters{
			Views:    md.Views,
			Likes:    md.Likes,
			Comments: md.Comments,
		},
	})
	return err
}

func (d *Driver) recordSkip(ctx context.Context, report *domain.IngestReport, raw string, err error) {
	kind := domain.Classify(err)
	report.Skipped = append(report.Skipped, domain.SkippedItem{VideoID: raw, Kind: kind, Reason: err.Error()})
	logger.WarnCtx(ctx, "Skipping candidate",
		zap.Uint64("deploy_id", report.DeployID),
		zap.String("video_id", raw),
		zap.String("kind", string(kind)),
		zap.Error(err),
	)
}

// ComputeTrends fills the week-ago baselines of the run's facts
func (d *Driver) ComputeTrends(ctx context.Context, deploy domain.DeployRef) (*domain.TrendReport, error) {
	return d.trend.Compute(ctx, schema.DeployEntry{DeployID: deploy.DeployID, Timestamp: deploy.Timestamp})
}

// Prune deletes the facts of every expired deploy
func (d *Driver) Prune(ctx context.Context) (int64, error) {
	return d.retention.Prune(ctx)
}

// Release releases the run lease held by the deploy
func (d *Driver) Release(ctx context.Context, deployID uint64) error {
	if err := d.store.ReleaseRun(ctx, deployID); err != nil {
		return fmt.Errorf("failed to release run lease: %w", err)
	}
	logger.InfoCtx(ctx, "Released run lease", zap.Uint64("deploy_id", deployID))
	return nil
}

// PublishRunCompleted emits the deploy.completed event for a finished run
func (d *Driver) PublishRunCompleted(ctx context.Context, summary *domain.RunSummary) error {
	event := &domain.WarehouseEvent{
		EventID:    ulid.MustNewDefault(d.clock.Now()).String(),
		Type:       domain.EventDeployCompleted,
		OccurredAt: d.clock.Now(),
		Run:        summary,
	}
	if err := d.publisher.PublishEvent(ctx, event); err != nil {
		return fmt.Errorf("failed to publish run completed event: %w", err)
	}
	return nil
}

// Run executes open → ingest → trend deltas → prune → release in order.
// Each step commits on its own; the lease is released on every exit path.
func (d *Driver) Run(ctx context.Context) (*domain.RunSummary, error) {
	deploy, err := d.OpenRun(ctx)
	if err != nil {
		return nil, err
	}
	ctx = logger.WithFields(ctx, zap.Uint64("run_deploy_id", deploy.DeployID))

	released := false
	defer func() {
		if released {
			return
		}
		if err := d.Release(context.WithoutCancel(ctx), deploy.DeployID); err != nil {
			logger.ErrorCtx(ctx, err, zap.Uint64("deploy_id", deploy.DeployID))
		}
	}()

	summary := &domain.RunSummary{Deploy: *deploy}

	ingest, err := d.Ingest(ctx, *deploy)
	if err != nil {
		return nil, stepError("ingest", deploy.DeployID, err)
	}
	summary.Ingest = *ingest

	trendReport, err := d.ComputeTrends(ctx, *deploy)
	if err != nil {
		return nil, stepError("trend", deploy.DeployID, err)
	}
	summary.Trend = *trendReport

	summary.FactsPruned, err = d.Prune(ctx)
	if err != nil {
		return nil, stepError("prune", deploy.DeployID, err)
	}

	if err := d.Release(ctx, deploy.DeployID); err != nil {
		return nil, stepError("release", deploy.DeployID, err)
	}
	released = true

	LogSummary(ctx, summary)

	if err := d.PublishRunCompleted(ctx, summary); err != nil {
		logger.ErrorCtx(ctx, err, zap.Uint64("deploy_id", deploy.DeployID))
	}

	return summary, nil
}

// LogSummary logs a finished run
func LogSummary(ctx context.Context, summary *domain.RunSummary) {
	fields := []zap.Field{
		zap.Uint64("deploy_id", summary.Deploy.DeployID),
		zap.Time("timestamp", summary.Deploy.Timestamp),
		zap.Int("candidates", summary.Ingest.Candidates),
		zap.Int("ingested", summary.Ingest.Ingested),
		zap.Int64("baselines_set", summary.Trend.BaselinesSet),
		zap.Int64("facts_pruned", summary.FactsPruned),
	}
	for kind, n := range summary.Ingest.SkippedByKind() {
		fields = append(fields, zap.Int("skipped_"+string(kind), n))
	}
	logger.InfoCtx(ctx, "Ingestion run completed", fields...)
}

// StepError reports which step of a run failed
type StepError struct {
	Step     string
	DeployID uint64
	Err      error
}

func (e *StepError) Error() string {
	return fmt.Sprintf("%s step failed for deploy %d: %v", e.Step, e.DeployID, e.Err)
}

func (e *StepError) Unwrap() error {
	return e.Err
}

func stepError(step string, deployID uint64, err error) error {
	var se *StepError
	if errors.As(err, &se) {
		return err
	}
	return &StepError{Step: step, DeployID: deployID, Err: err}
}
