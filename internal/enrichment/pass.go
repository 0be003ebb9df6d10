package enrichment

import (
	"context"
	"errors"
	"fmt"

	"github.com/oklog/ulid/v2"
	"go.uber.org/zap"

	"github.com/feral-file/ff-video-warehouse/internal/adapter"
	"github.com/feral-file/ff-video-warehouse/internal/domain"
	"github.com/feral-file/ff-video-warehouse/internal/logger"
	"github.com/feral-file/ff-video-warehouse/internal/model"
	"github.com/feral-file/ff-video-warehouse/internal/store"
)

// Pass is one enrichment pass: select unset rows, prepare features, score, write back
type Pass interface {
	Kind() domain.PassKind
	Run(ctx context.Context) (*domain.PassReport, error)
}

// ErrModelOutputMismatch is returned when a model returns a different number of codes than inputs
var ErrModelOutputMismatch = errors.New("model output length mismatch")

func newReport(kind domain.PassKind, clock adapter.Clock) *domain.PassReport {
	return &domain.PassReport{
		Pass:    kind,
		BatchID: ulid.MustNewDefault(clock.Now()).String(),
		Skipped: []domain.SkippedItem{},
	}
}

func skip(ctx context.Context, report *domain.PassReport, id string, err error) {
	report.Skipped = append(report.Skipped, domain.SkippedItem{
		VideoID: id,
		Kind:    domain.Classify(err),
		Reason:  err.Error(),
	})
	logger.WarnCtx(ctx, "Skipping row with undefined features",
		zap.String("pass", string(report.Pass)),
		zap.String("batch_id", report.BatchID),
		zap.String("video_id", id),
		zap.Error(err),
	)
}

func logReport(ctx context.Context, report *domain.PassReport) {
	logger.InfoCtx(ctx, "Enrichment pass completed",
		zap.String("pass", string(report.Pass)),
		zap.String("batch_id", report.BatchID),
		zap.Int("selected", report.Selected),
		zap.Int("scored", report.Scored),
		zap.Int64("written", report.Written),
		zap.Int("skipped", len(report.Skipped)),
	)
}

// PopularityPass scores statistics facts with the popularity clusterer
type PopularityPass struct {
	store store.Store
	model model.PopularityModel
	clock adapter.Clock
}

// NewPopularityPass creates a popularity pass
func NewPopularityPass(st store.Store, m model.PopularityModel, clock adapter.Clock) *PopularityPass {
	return &PopularityPass{store: st, model: m, clock: clock}
}

func (p *PopularityPass) Kind() domain.PassKind {
	return domain.PassPopularity
}

// Run scores every fact whose popularity class is unset.
// Rows with undefined features stay unset; a store or model contract failure
// aborts the pass before anything is written.
func (p *PopularityPass) Run(ctx context.Context) (*domain.PassReport, error) {
	report := newReport(domain.PassPopularity, p.clock)

	candidates, err := p.store.ListPopularityCandidates(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to select popularity candidates: %w", err)
	}
	report.Selected = len(candidates)

	now := p.clock.Now()
	var (
		rows   [][]float64
		scored []store.PopularityCandidate
	)
	for _, c := range candidates {
		features, err := PopularityFeatures(c, now)
		if err != nil {
			skip(ctx, report, c.VideoID.String(), err)
			continue
		}
		rows = append(rows, features)
		scored = append(scored, c)
	}

	if len(rows) == 0 {
		logReport(ctx, report)
		return report, nil
	}

	codes, err := p.model.Predict(rows)
	if err != nil {
		return nil, fmt.Errorf("failed to predict popularity: %w", err)
	}
	if len(codes) != len(rows) {
		return nil, fmt.Errorf("%w: %d codes for %d rows", ErrModelOutputMismatch, len(codes), len(rows))
	}

	scores := make([]store.PopularityScore, 0, len(codes))
	for i, code := range codes {
		class, err := domain.PopularityFromCode(code)
		if err != nil {
			return nil, fmt.Errorf("fact %d: %w", scored[i].FactID, err)
		}
		scores = append(scores, store.PopularityScore{FactID: scored[i].FactID, Class: class})
	}
	report.Scored = len(scores)

	report.Written, err = p.store.SetPopularityClasses(ctx, scores)
	if err != nil {
		return nil, fmt.Errorf("failed to write popularity classes: %w", err)
	}

	logReport(ctx, report)
	return report, nil
}

// SentimentPass scores videos with the sentiment classifier
type SentimentPass struct {
	store store.Store
	model model.SentimentModel
	clock adapter.Clock
}

// NewSentimentPass creates a sentiment pass
func NewSentimentPass(st store.Store, m model.SentimentModel, clock adapter.Clock) *SentimentPass {
	return &SentimentPass{store: st, model: m, clock: clock}
}

func (p *SentimentPass) Kind() domain.PassKind {
	return domain.PassSentiment
}

// Run scores every video whose sentiment class is unset and that has a transcript
func (p *SentimentPass) Run(ctx context.Context) (*domain.PassReport, error) {
	report := newReport(domain.PassSentiment, p.clock)

	candidates, err := p.store.ListSentimentCandidates(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to select sentiment candidates: %w", err)
	}
	report.Selected = len(candidates)

	var (
		texts  []string
		scored []store.SentimentCandidate
	)
	for _, c := range candidates {
		text, err := SentimentFeatures(c)
		if err != nil {
			skip(ctx, report, c.VideoID.String(), err)
			continue
		}
		texts = append(texts, text)
		scored = append(scored, c)
	}

	if len(texts) == 0 {
		logReport(ctx, report)
		return report, nil
	}

	codes, err := p.model.Predict(texts)
	if err != nil {
		return nil, fmt.Errorf("failed to predict sentiment: %w", err)
	}
	if len(codes) != len(texts) {
		return nil, fmt.Errorf("%w: %d codes for %d texts", ErrModelOutputMismatch, len(codes), len(texts))
	}

	scores := make([]store.SentimentScore, 0, len(codes))
	for i, code := range codes {
		class, err := domain.SentimentFromCode(code)
		if err != nil {
			return nil, fmt.Errorf("video %s: %w", scored[i].VideoID, err)
		}
		scores = append(scores, store.SentimentScore{VideoID: scored[i].VideoID, Class: class})
	}
	report.Scored = len(scores)

	report.Written, err = p.store.SetSentimentClasses(ctx, scores)
	if err != nil {
		return nil, fmt.Errorf("failed to write sentiment classes: %w", err)
	}

	logReport(ctx, report)
	return report, nil
}
