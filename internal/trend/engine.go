package trend

import (
	"context"
	"fmt"
	"sort"
	"time"

	"go.uber.org/zap"

	"github.com/feral-file/ff-video-warehouse/internal/domain"
	"github.com/feral-file/ff-video-warehouse/internal/logger"
	"github.com/feral-file/ff-video-warehouse/internal/store"
	"github.com/feral-file/ff-video-warehouse/internal/store/schema"
)

// Engine fills week-over-week baselines on the facts of a deploy
type Engine struct {
	store     store.Store
	windowMin time.Duration
	windowMax time.Duration
}

// NewEngine creates a trend engine with the default [6d, 7d) window
func NewEngine(st store.Store) *Engine {
	return &Engine{
		store:     st,
		windowMin: domain.TrendWindowMin,
		windowMax: domain.TrendWindowMax,
	}
}

// ResolveBaselineDeploys returns the prior deploys whose age relative to current
// falls in [windowMin, windowMax), most preferred first: latest timestamp wins,
// ties go to the higher deploy ID.
func ResolveBaselineDeploys(ledger []schema.DeployEntry, current schema.DeployEntry, windowMin, windowMax time.Duration) []schema.DeployEntry {
	var candidates []schema.DeployEntry
	for _, d := range ledger {
		if d.DeployID == current.DeployID {
			continue
		}
		age := current.Timestamp.Sub(d.Timestamp)
		if age >= windowMin && age < windowMax {
			candidates = append(candidates, d)
		}
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		if !candidates[i].Timestamp.Equal(candidates[j].Timestamp) {
			return candidates[i].Timestamp.After(candidates[j].Timestamp)
		}
		return candidates[i].DeployID > candidates[j].DeployID
	})

	return candidates
}

// Compute copies the counters of the week-ago fact of each video onto the facts
// of the given deploy. Facts that already carry a baseline are never recomputed,
// and a video with no week-ago fact keeps zero previous-week counters.
func (e *Engine) Compute(ctx context.Context, deploy schema.DeployEntry) (*domain.TrendReport, error) {
	report := &domain.TrendReport{DeployID: deploy.DeployID, BaselineDeploys: []uint64{}}

	ledger, err := e.store.ListDeploys(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load deploy ledger: %w", err)
	}

	baselines := ResolveBaselineDeploys(ledger, deploy, e.windowMin, e.windowMax)
	if len(baselines) == 0 {
		logger.InfoCtx(ctx, "No deploy in the week-ago window, previous-week counters stay at zero",
			zap.Uint64("deploy_id", deploy.DeployID))
		return report, nil
	}

	rank := make(map[uint64]int, len(baselines))
	for i, b := range baselines {
		rank[b.DeployID] = i
		report.BaselineDeploys = append(report.BaselineDeploys, b.DeployID)
	}

	currentFacts, err := e.store.ListFactsByDeploys(ctx, []uint64{deploy.DeployID})
	if err != nil {
		return nil, fmt.Errorf("failed to load current facts: %w", err)
	}
	report.FactsConsidered = len(currentFacts)

	baselineFacts, err := e.store.ListFactsByDeploys(ctx, report.BaselineDeploys)
	if err != nil {
		return nil, fmt.Errorf("failed to load baseline facts: %w", err)
	}

	// Most preferred baseline fact per video
	best := make(map[domain.VideoID]schema.StatisticsFact, len(baselineFacts))
	for _, f := range baselineFacts {
		existing, ok := best[f.VideoID]
		if !ok || rank[f.DeployID] < rank[existing.DeployID] {
			best[f.VideoID] = f
		}
	}

	var updates []store.TrendBaseline
	for _, f := range currentFacts {
		if f.BaselineDeployID != nil {
			continue
		}
		b, ok := best[f.VideoID]
		if !ok {
			continue
		}
		updates = append(updates, store.TrendBaseline{
			FactID:           f.FactID,
			BaselineDeployID: b.DeployID,
			Views:            b.TotalViews,
			Likes:            b.TotalLikes,
		})
	}

	report.BaselinesSet, err = e.store.SetTrendBaselines(ctx, updates)
	if err != nil {
		return nil, fmt.Errorf("failed to write trend baselines: %w", err)
	}

	logger.InfoCtx(ctx, "Computed trend baselines",
		zap.Uint64("deploy_id", deploy.DeployID),
		zap.Uint64s("baseline_deploys", report.BaselineDeploys),
		zap.Int("facts_considered", report.FactsConsidered),
		zap.Int64("baselines_set", report.BaselinesSet),
	)

	return report, nil
}
