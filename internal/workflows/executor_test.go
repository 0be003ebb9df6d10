package workflows_test

import (
	"context"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.temporal.io/sdk/temporal"

	"github.com/feral-file/ff-video-warehouse/internal/domain"
	"github.com/feral-file/ff-video-warehouse/internal/mocks"
	"github.com/feral-file/ff-video-warehouse/internal/workflows"
)

type stubPass struct {
	kind   domain.PassKind
	report *domain.PassReport
	calls  int
}

func (p *stubPass) Kind() domain.PassKind { return p.kind }

func (p *stubPass) Run(_ context.Context) (*domain.PassReport, error) {
	p.calls++
	return p.report, nil
}

func TestExecutor_RunPopularityPass(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	now := time.Date(2024, 3, 10, 12, 0, 0, 0, time.UTC)
	st := mocks.NewMockStore(ctrl)
	clock := mocks.NewMockClock(ctrl)
	clock.EXPECT().Now().Return(now).AnyTimes()

	popularity := &stubPass{kind: domain.PassPopularity, report: &domain.PassReport{Pass: domain.PassPopularity, Written: 3}}
	sentiment := &stubPass{kind: domain.PassSentiment}
	exec := workflows.NewExecutor(nil, popularity, sentiment, st, clock)

	t.Run("no active run", func(t *testing.T) {
		st.EXPECT().ActiveRun(gomock.Any(), now).Return(nil, nil)

		report, err := exec.RunPopularityPass(context.Background())
		require.NoError(t, err)
		assert.Equal(t, int64(3), report.Written)
		assert.Equal(t, 1, popularity.calls)
	})

	t.Run("run in progress", func(t *testing.T) {
		active := uint64(9)
		st.EXPECT().ActiveRun(gomock.Any(), now).Return(&active, nil)

		report, err := exec.RunSentimentPass(context.Background())
		require.Error(t, err)
		assert.Nil(t, report)
		assert.ErrorIs(t, err, domain.ErrRunInProgress)
		assert.Equal(t, 0, sentiment.calls)

		var appErr *temporal.ApplicationError
		require.ErrorAs(t, err, &appErr)
		assert.True(t, appErr.NonRetryable())
		assert.Equal(t, workflows.ErrTypeRunInProgress, appErr.Type())
	})
}
