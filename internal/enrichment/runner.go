package enrichment

import (
	"context"
	"fmt"

	"github.com/alitto/pond/v2"
	"go.uber.org/zap"

	"github.com/feral-file/ff-video-warehouse/internal/adapter"
	"github.com/feral-file/ff-video-warehouse/internal/domain"
	"github.com/feral-file/ff-video-warehouse/internal/logger"
	"github.com/feral-file/ff-video-warehouse/internal/store"
)

// PassOutcome is the result of one pass run by the Runner
type PassOutcome struct {
	Kind   domain.PassKind
	Report *domain.PassReport
	Err    error
}

// Runner executes enrichment passes concurrently on a worker pool.
// Passes touch disjoint columns, so they never contend with each other,
// but none may start while an ingestion run holds the run lease.
type Runner struct {
	store    store.Store
	clock    adapter.Clock
	passes   []Pass
	poolSize int
}

// NewRunner creates a runner for the given passes
func NewRunner(st store.Store, clock adapter.Clock, poolSize int, passes ...Pass) *Runner {
	if poolSize <= 0 {
		poolSize = len(passes)
	}
	return &Runner{store: st, clock: clock, passes: passes, poolSize: max(poolSize, 1)}
}

// EnsureNoActiveRun returns domain.ErrRunInProgress if an ingestion run holds a live lease
func EnsureNoActiveRun(ctx context.Context, st store.Store, clock adapter.Clock) error {
	active, err := st.ActiveRun(ctx, clock.Now())
	if err != nil {
		return fmt.Errorf("failed to check run lease: %w", err)
	}
	if active != nil {
		return fmt.Errorf("deploy %d is still ingesting: %w", *active, domain.ErrRunInProgress)
	}
	return nil
}

// Run executes every pass and returns one outcome per pass, in pass order.
// A failed pass does not stop the others.
func (r *Runner) Run(ctx context.Context) ([]PassOutcome, error) {
	if err := EnsureNoActiveRun(ctx, r.store, r.clock); err != nil {
		return nil, err
	}

	pool := pond.NewResultPool[*domain.PassReport](r.poolSize, pond.WithContext(ctx))
	defer pool.StopAndWait()

	tasks := make([]pond.Result[*domain.PassReport], len(r.passes))
	for i, p := range r.passes {
		tasks[i] = pool.SubmitErr(func() (*domain.PassReport, error) {
			return p.Run(ctx)
		})
	}

	outcomes := make([]PassOutcome, len(r.passes))
	for i, task := range tasks {
		report, err := task.Wait()
		outcomes[i] = PassOutcome{Kind: r.passes[i].Kind(), Report: report, Err: err}
		if err != nil {
			logger.ErrorCtx(ctx, fmt.Errorf("enrichment pass failed: %w", err),
				zap.String("pass", string(r.passes[i].Kind())))
		}
	}

	return outcomes, nil
}
