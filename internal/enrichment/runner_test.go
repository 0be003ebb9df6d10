package enrichment

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/feral-file/ff-video-warehouse/internal/domain"
)

func TestEnsureNoActiveRun(t *testing.T) {
	ctx := context.Background()

	t.Run("no lease", func(t *testing.T) {
		m := newPassMocks(t)
		m.store.EXPECT().ActiveRun(ctx, testNow).Return(nil, nil)
		assert.NoError(t, EnsureNoActiveRun(ctx, m.store, m.clock))
	})

	t.Run("live lease", func(t *testing.T) {
		m := newPassMocks(t)
		deployID := uint64(42)
		m.store.EXPECT().ActiveRun(ctx, testNow).Return(&deployID, nil)
		assert.ErrorIs(t, EnsureNoActiveRun(ctx, m.store, m.clock), domain.ErrRunInProgress)
	})

	t.Run("store error", func(t *testing.T) {
		m := newPassMocks(t)
		m.store.EXPECT().ActiveRun(ctx, testNow).Return(nil, errors.New("refused"))
		err := EnsureNoActiveRun(ctx, m.store, m.clock)
		assert.Error(t, err)
		assert.NotErrorIs(t, err, domain.ErrRunInProgress)
	})
}

func TestRunner_Run(t *testing.T) {
	ctx := context.Background()

	t.Run("runs every pass and keeps going after a failure", func(t *testing.T) {
		m := newPassMocks(t)
		m.store.EXPECT().ActiveRun(ctx, testNow).Return(nil, nil)
		m.store.EXPECT().ListPopularityCandidates(ctx).Return(popularityCandidates()[:1], nil)
		m.popularity.EXPECT().Predict(gomock.Any()).Return([]int{1}, nil)
		m.store.EXPECT().SetPopularityClasses(ctx, gomock.Any()).Return(int64(1), nil)
		m.store.EXPECT().ListSentimentCandidates(ctx).Return(nil, errors.New("connection reset"))

		runner := NewRunner(m.store, m.clock, 2,
			NewPopularityPass(m.store, m.popularity, m.clock),
			NewSentimentPass(m.store, m.sentiment, m.clock),
		)

		outcomes, err := runner.Run(ctx)
		require.NoError(t, err)
		require.Len(t, outcomes, 2)

		assert.Equal(t, domain.PassPopularity, outcomes[0].Kind)
		require.NoError(t, outcomes[0].Err)
		assert.Equal(t, int64(1), outcomes[0].Report.Written)

		assert.Equal(t, domain.PassSentiment, outcomes[1].Kind)
		assert.Error(t, outcomes[1].Err)
		assert.Nil(t, outcomes[1].Report)
	})

	t.Run("refuses while a run holds the lease", func(t *testing.T) {
		m := newPassMocks(t)
		deployID := uint64(7)
		m.store.EXPECT().ActiveRun(ctx, testNow).Return(&deployID, nil)

		runner := NewRunner(m.store, m.clock, 0, NewSentimentPass(m.store, m.sentiment, m.clock))
		outcomes, err := runner.Run(ctx)
		assert.ErrorIs(t, err, domain.ErrRunInProgress)
		assert.Nil(t, outcomes)
	})

	t.Run("no passes", func(t *testing.T) {
		m := newPassMocks(t)
		m.store.EXPECT().ActiveRun(ctx, testNow).Return(nil, nil)

		outcomes, err := NewRunner(m.store, m.clock, 0).Run(ctx)
		require.NoError(t, err)
		assert.Empty(t, outcomes)
	})
}
