package sweeper

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"
	"time"

	"go.uber.org/zap"

	"github.com/feral-file/ff-video-warehouse/internal/adapter"
	"github.com/feral-file/ff-video-warehouse/internal/domain"
	"github.com/feral-file/ff-video-warehouse/internal/logger"
	"github.com/feral-file/ff-video-warehouse/internal/store"
)

const (
	// DEFAULT_RETENTION_INTERVAL is the sleep between retention cycles when run as a sweeper
	DEFAULT_RETENTION_INTERVAL = time.Hour
)

// RetentionConfig holds configuration for the retention sweeper
type RetentionConfig struct {
	Window   time.Duration // Facts older than this, measured from their deploy timestamp, are pruned
	Interval time.Duration // Sleep between cycles in sweeper mode
}

// Retention prunes statistics facts by whole deploy once the deploy falls out of the window.
// Ledger entries and videos are never deleted.
type Retention struct {
	config    RetentionConfig
	store     store.Store
	clock     adapter.Clock
	running   atomic.Bool
	stopChan  chan struct{}
	stoppedCh chan struct{}
}

// NewRetention creates a new retention sweeper
func NewRetention(config RetentionConfig, st store.Store, clock adapter.Clock) *Retention {
	if config.Window <= 0 {
		config.Window = domain.RetentionWindow
	}
	if config.Interval <= 0 {
		config.Interval = DEFAULT_RETENTION_INTERVAL
	}
	return &Retention{
		config:    config,
		store:     st,
		clock:     clock,
		stopChan:  make(chan struct{}),
		stoppedCh: make(chan struct{}),
	}
}

// Name returns the sweeper's name
func (r *Retention) Name() string {
	return "retention-sweeper"
}

// ExpiredDeploys returns the deploy IDs whose timestamp is older than the window as of now
func (r *Retention) ExpiredDeploys(ctx context.Context, now time.Time) ([]uint64, error) {
	ledger, err := r.store.ListDeploys(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load deploy ledger: %w", err)
	}

	cutoff := now.Add(-r.config.Window)
	var expired []uint64
	for _, d := range ledger {
		if d.Timestamp.Before(cutoff) {
			expired = append(expired, d.DeployID)
		}
	}
	return expired, nil
}

// Prune deletes every fact owned by an expired deploy and returns the number of deleted facts
func (r *Retention) Prune(ctx context.Context) (int64, error) {
	now := r.clock.Now()

	expired, err := r.ExpiredDeploys(ctx, now)
	if err != nil {
		return 0, err
	}
	if len(expired) == 0 {
		logger.DebugCtx(ctx, "No expired deploys to prune")
		return 0, nil
	}

	deleted, err := r.store.DeleteFactsByDeploys(ctx, expired)
	if err != nil {
		return 0, fmt.Errorf("failed to prune expired facts: %w", err)
	}

	logger.InfoCtx(ctx, "Pruned expired facts",
		zap.Int("expired_deploys", len(expired)),
		zap.Int64("facts_deleted", deleted),
		zap.Duration("window", r.config.Window),
	)

	return deleted, nil
}

// sweep runs one daemon cycle. It prunes nothing while an ingestion run holds
// the lease, so facts of a live run are never pruned ahead of its trend step.
func (r *Retention) sweep(ctx context.Context) (int64, error) {
	active, err := r.store.ActiveRun(ctx, r.clock.Now())
	if err != nil {
		return 0, fmt.Errorf("failed to check run lease: %w", err)
	}
	if active != nil {
		logger.InfoCtx(ctx, "Skipping retention cycle while a run is active", zap.Uint64("deploy_id", *active))
		return 0, nil
	}
	return r.Prune(ctx)
}

// Start runs Prune every interval until the context is canceled or Stop is called
func (r *Retention) Start(ctx context.Context) error {
	if !r.running.CompareAndSwap(false, true) {
		return fmt.Errorf("sweeper already running")
	}
	defer func() {
		r.running.Store(false)
		close(r.stoppedCh)
	}()

	logger.InfoCtx(ctx, "Starting retention sweeper",
		zap.Duration("window", r.config.Window),
		zap.Duration("interval", r.config.Interval),
	)

	for {
		if _, err := r.sweep(ctx); err != nil && !errors.Is(err, context.Canceled) {
			logger.ErrorCtx(ctx, err)
		}

		select {
		case <-ctx.Done():
			logger.InfoCtx(ctx, "Retention sweeper stopping due to context cancellation", zap.Error(ctx.Err()))
			return nil
		case <-r.stopChan:
			logger.InfoCtx(ctx, "Retention sweeper stop requested")
			return nil
		case <-r.clock.After(r.config.Interval):
		}
	}
}

// Stop gracefully stops the sweeper, waiting for the current cycle to finish
func (r *Retention) Stop(ctx context.Context) error {
	if !r.running.CompareAndSwap(true, false) {
		return nil // Already stopped
	}

	logger.InfoCtx(ctx, "Stopping retention sweeper")
	close(r.stopChan)

	select {
	case <-r.stoppedCh:
		logger.InfoCtx(ctx, "Retention sweeper stopped gracefully")
		return nil
	case <-ctx.Done():
		logger.WarnCtx(ctx, "Retention sweeper stop interrupted by context timeout")
		return ctx.Err()
	}
}
