package store

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/feral-file/ff-video-warehouse/internal/domain"
)

// Calendar range seeded by the store test databases
var (
	testCalendarStart = time.Date(2020, time.January, 1, 0, 0, 0, 0, time.UTC)
	testCalendarEnd   = time.Date(2026, time.December, 31, 0, 0, 0, 0, time.UTC)
)

// =============================================================================
// Test Data Builders
// =============================================================================

var testT0 = time.Date(2024, time.March, 10, 12, 0, 0, 0, time.UTC)

func stringPtr(s string) *string {
	return &s
}

func intPtr(i int) *int {
	return &i
}

// buildTestVideo creates a test video input
func buildTestVideo(id string) UpsertVideoInput {
	return UpsertVideoInput{
		VideoID:     domain.VideoID(id),
		Title:       "Video " + id,
		PublishedAt: time.Date(2023, time.June, 1, 15, 30, 0, 0, time.UTC),
		Tags:        []string{"music", "live"},
		Duration:    "PT4M13S",
		Transcript:  stringPtr("what a great song"),
	}
}

// buildTestFact creates a test fact input
func buildTestFact(id string, deployID uint64, views, likes int64) AppendFactInput {
	return AppendFactInput{
		VideoID:     domain.VideoID(id),
		DeployID:    deployID,
		PublishedAt: time.Date(2023, time.June, 1, 15, 30, 0, 0, time.UTC),
		CategoryID:  intPtr(10),
		Counters:    domain.Counters{Views: views, Likes: likes, Comments: 1},
	}
}

// openReleasedRun appends a ledger entry and releases its lease right away
func openReleasedRun(t *testing.T, store Store, at time.Time) uint64 {
	t.Helper()
	ctx := context.Background()
	entry, err := store.OpenRun(ctx, at, time.Hour)
	require.NoError(t, err)
	require.NoError(t, store.ReleaseRun(ctx, entry.DeployID))
	return entry.DeployID
}

// =============================================================================
// Deploy Ledger
// =============================================================================

func testRunLease(t *testing.T, store Store) {
	ctx := context.Background()

	t.Run("open takes the lease", func(t *testing.T) {
		first, err := store.OpenRun(ctx, testT0, time.Hour)
		require.NoError(t, err)
		require.NotNil(t, first)
		assert.True(t, first.Timestamp.Equal(testT0))

		active, err := store.ActiveRun(ctx, testT0.Add(time.Minute))
		require.NoError(t, err)
		require.NotNil(t, active)
		assert.Equal(t, first.DeployID, *active)

		// A second run is refused while the lease is live
		second, err := store.OpenRun(ctx, testT0.Add(10*time.Minute), time.Hour)
		assert.ErrorIs(t, err, domain.ErrRunInProgress)
		assert.Nil(t, second)

		// Releasing with another deploy ID is a no-op
		require.NoError(t, store.ReleaseRun(ctx, first.DeployID+100))
		active, err = store.ActiveRun(ctx, testT0.Add(time.Minute))
		require.NoError(t, err)
		require.NotNil(t, active)

		require.NoError(t, store.ReleaseRun(ctx, first.DeployID))
		active, err = store.ActiveRun(ctx, testT0.Add(time.Minute))
		require.NoError(t, err)
		assert.Nil(t, active)

		next, err := store.OpenRun(ctx, testT0.Add(2*time.Hour), time.Hour)
		require.NoError(t, err)
		assert.Greater(t, next.DeployID, first.DeployID)
		require.NoError(t, store.ReleaseRun(ctx, next.DeployID))
	})

	t.Run("expired lease is taken over", func(t *testing.T) {
		stale, err := store.OpenRun(ctx, testT0.Add(3*time.Hour), time.Minute)
		require.NoError(t, err)

		active, err := store.ActiveRun(ctx, testT0.Add(3*time.Hour+2*time.Minute))
		require.NoError(t, err)
		assert.Nil(t, active)

		fresh, err := store.OpenRun(ctx, testT0.Add(3*time.Hour+2*time.Minute), time.Hour)
		require.NoError(t, err)
		assert.Greater(t, fresh.DeployID, stale.DeployID)

		// The stale run can no longer release the new lease
		require.NoError(t, store.ReleaseRun(ctx, stale.DeployID))
		active, err = store.ActiveRun(ctx, testT0.Add(3*time.Hour+3*time.Minute))
		require.NoError(t, err)
		require.NotNil(t, active)
		assert.Equal(t, fresh.DeployID, *active)
		require.NoError(t, store.ReleaseRun(ctx, fresh.DeployID))
	})

	t.Run("timestamps never move backwards", func(t *testing.T) {
		entry, err := store.OpenRun(ctx, testT0.Add(-24*time.Hour), time.Hour)
		assert.Error(t, err)
		assert.Nil(t, entry)
	})

	t.Run("ledger is ordered and readable", func(t *testing.T) {
		ledger, err := store.ListDeploys(ctx)
		require.NoError(t, err)
		require.Len(t, ledger, 4)
		for i := 1; i < len(ledger); i++ {
			assert.Greater(t, ledger[i].DeployID, ledger[i-1].DeployID)
			assert.False(t, ledger[i].Timestamp.Before(ledger[i-1].Timestamp))
		}

		entry, err := store.GetDeploy(ctx, ledger[0].DeployID)
		require.NoError(t, err)
		require.NotNil(t, entry)
		assert.True(t, entry.Timestamp.Equal(testT0))

		missing, err := store.GetDeploy(ctx, ledger[len(ledger)-1].DeployID+1000)
		require.NoError(t, err)
		assert.Nil(t, missing)
	})
}

// =============================================================================
// Video Dimension
// =============================================================================

func testUpsertVideo(t *testing.T, store Store) {
	ctx := context.Background()

	t.Run("insert", func(t *testing.T) {
		require.NoError(t, store.UpsertVideo(ctx, buildTestVideo("abc12345678")))

		video, err := store.GetVideo(ctx, "abc12345678")
		require.NoError(t, err)
		require.NotNil(t, video)
		assert.Equal(t, "Video abc12345678", video.Title)
		assert.Equal(t, []string{"music", "live"}, []string(video.Tags))
		assert.Equal(t, "PT4M13S", video.Duration)
		require.NotNil(t, video.Transcript)
		assert.Equal(t, "what a great song", *video.Transcript)
		assert.Nil(t, video.SentimentClass)
	})

	t.Run("identical upsert keeps one unchanged row", func(t *testing.T) {
		before, err := store.GetVideo(ctx, "abc12345678")
		require.NoError(t, err)
		require.NotNil(t, before)

		require.NoError(t, store.UpsertVideo(ctx, buildTestVideo("abc12345678")))

		after, err := store.GetVideo(ctx, "abc12345678")
		require.NoError(t, err)
		require.NotNil(t, after)
		assert.Equal(t, before.Title, after.Title)
		assert.True(t, before.PublishedAt.Equal(after.PublishedAt))
		assert.Equal(t, before.Tags, after.Tags)
		assert.Equal(t, before.Duration, after.Duration)
		assert.Equal(t, before.Transcript, after.Transcript)
		assert.Equal(t, before.SentimentClass, after.SentimentClass)

		count, err := store.CountVideos(ctx)
		require.NoError(t, err)
		assert.Equal(t, int64(1), count)
	})

	t.Run("missing tags are stored as an empty list", func(t *testing.T) {
		input := buildTestVideo("notags00001")
		input.Tags = nil
		input.Transcript = nil
		require.NoError(t, store.UpsertVideo(ctx, input))

		video, err := store.GetVideo(ctx, "notags00001")
		require.NoError(t, err)
		require.NotNil(t, video)
		assert.NotNil(t, video.Tags)
		assert.Empty(t, video.Tags)
		assert.Nil(t, video.Transcript)
	})

	t.Run("upsert overwrites descriptive fields and keeps sentiment", func(t *testing.T) {
		written, err := store.SetSentimentClasses(ctx, []SentimentScore{{VideoID: "abc12345678", Class: domain.SentimentPositive}})
		require.NoError(t, err)
		assert.Equal(t, int64(1), written)

		input := buildTestVideo("abc12345678")
		input.Title = "Renamed"
		input.Tags = []string{"remaster"}
		require.NoError(t, store.UpsertVideo(ctx, input))

		video, err := store.GetVideo(ctx, "abc12345678")
		require.NoError(t, err)
		assert.Equal(t, "Renamed", video.Title)
		assert.Equal(t, []string{"remaster"}, []string(video.Tags))
		require.NotNil(t, video.SentimentClass)
		assert.Equal(t, domain.SentimentPositive, *video.SentimentClass)

		count, err := store.CountVideos(ctx)
		require.NoError(t, err)
		assert.Equal(t, int64(2), count)
	})

	t.Run("invalid video id", func(t *testing.T) {
		err := store.UpsertVideo(ctx, buildTestVideo("short"))
		assert.ErrorIs(t, err, domain.ErrInvalidVideoID)
	})

	t.Run("unknown video", func(t *testing.T) {
		video, err := store.GetVideo(ctx, "zzzzzzzzzzz")
		require.NoError(t, err)
		assert.Nil(t, video)
	})
}

// =============================================================================
// Statistics Fact
// =============================================================================

func testAppendFact(t *testing.T, store Store) {
	ctx := context.Background()
	deployID := openReleasedRun(t, store, testT0)
	require.NoError(t, store.UpsertVideo(ctx, buildTestVideo("abc12345678")))

	t.Run("append", func(t *testing.T) {
		factID, err := store.AppendFact(ctx, buildTestFact("abc12345678", deployID, 100, 10))
		require.NoError(t, err)
		assert.NotZero(t, factID)

		fact, err := store.GetFact(ctx, "abc12345678", deployID)
		require.NoError(t, err)
		require.NotNil(t, fact)
		assert.Equal(t, factID, fact.FactID)
		assert.Equal(t, int64(100), fact.TotalViews)
		assert.Equal(t, int64(10), fact.TotalLikes)
		assert.Equal(t, int64(1), fact.TotalComments)
		require.NotNil(t, fact.CategoryID)
		assert.Equal(t, 10, *fact.CategoryID)
		assert.Equal(t, int64(0), fact.PreviousWeekViews)
		assert.Nil(t, fact.BaselineDeployID)
		assert.Nil(t, fact.PopularityClass)

		dateID, err := store.FindDateID(ctx, 2023, 6, 1)
		require.NoError(t, err)
		assert.Equal(t, dateID, fact.DateID)
	})

	t.Run("one fact per video and deploy", func(t *testing.T) {
		_, err := store.AppendFact(ctx, buildTestFact("abc12345678", deployID, 200, 20))
		assert.Error(t, err)
	})

	t.Run("unknown category is stored as null", func(t *testing.T) {
		input := buildTestFact("def12345678", deployID, 5, 1)
		input.CategoryID = intPtr(999)
		_, err := store.AppendFact(ctx, input)
		require.NoError(t, err)

		fact, err := store.GetFact(ctx, "def12345678", deployID)
		require.NoError(t, err)
		require.NotNil(t, fact)
		assert.Nil(t, fact.CategoryID)
	})

	t.Run("publish date outside the calendar", func(t *testing.T) {
		input := buildTestFact("ghi12345678", deployID, 5, 1)
		input.PublishedAt = time.Date(1999, time.January, 1, 0, 0, 0, 0, time.UTC)
		_, err := store.AppendFact(ctx, input)
		assert.ErrorIs(t, err, domain.ErrCalendarKeyNotFound)
	})

	t.Run("deploy must exist", func(t *testing.T) {
		_, err := store.AppendFact(ctx, buildTestFact("jkl12345678", deployID+1000, 5, 1))
		assert.Error(t, err)
	})

	t.Run("invalid video id", func(t *testing.T) {
		_, err := store.AppendFact(ctx, buildTestFact("bad", deployID, 5, 1))
		assert.ErrorIs(t, err, domain.ErrInvalidVideoID)
	})
}

func testTrendBaselines(t *testing.T, store Store) {
	ctx := context.Background()
	baselineDeploy := openReleasedRun(t, store, testT0)
	currentDeploy := openReleasedRun(t, store, testT0.Add(162*time.Hour))

	_, err := store.AppendFact(ctx, buildTestFact("abc12345678", baselineDeploy, 100, 10))
	require.NoError(t, err)
	factID, err := store.AppendFact(ctx, buildTestFact("abc12345678", currentDeploy, 150, 12))
	require.NoError(t, err)

	updated, err := store.SetTrendBaselines(ctx, []TrendBaseline{{FactID: factID, BaselineDeployID: baselineDeploy, Views: 100, Likes: 10}})
	require.NoError(t, err)
	assert.Equal(t, int64(1), updated)

	// A baseline is written once and never recomputed
	updated, err = store.SetTrendBaselines(ctx, []TrendBaseline{{FactID: factID, BaselineDeployID: baselineDeploy, Views: 1, Likes: 1}})
	require.NoError(t, err)
	assert.Equal(t, int64(0), updated)

	fact, err := store.GetFact(ctx, "abc12345678", currentDeploy)
	require.NoError(t, err)
	assert.Equal(t, int64(100), fact.PreviousWeekViews)
	assert.Equal(t, int64(10), fact.PreviousWeekLikes)
	require.NotNil(t, fact.BaselineDeployID)
	assert.Equal(t, baselineDeploy, *fact.BaselineDeployID)
	assert.Equal(t, int64(150), fact.TotalViews)

	facts, err := store.ListFactsByDeploys(ctx, []uint64{baselineDeploy, currentDeploy})
	require.NoError(t, err)
	assert.Len(t, facts, 2)

	facts, err = store.ListFactsByDeploys(ctx, nil)
	require.NoError(t, err)
	assert.Empty(t, facts)
}

func testDeleteFactsByDeploys(t *testing.T, store Store) {
	ctx := context.Background()
	oldDeploy := openReleasedRun(t, store, testT0)
	newDeploy := openReleasedRun(t, store, testT0.Add(24*time.Hour))

	for _, id := range []string{"abc12345678", "def12345678"} {
		_, err := store.AppendFact(ctx, buildTestFact(id, oldDeploy, 1, 1))
		require.NoError(t, err)
	}
	_, err := store.AppendFact(ctx, buildTestFact("abc12345678", newDeploy, 2, 2))
	require.NoError(t, err)

	deleted, err := store.DeleteFactsByDeploys(ctx, []uint64{oldDeploy})
	require.NoError(t, err)
	assert.Equal(t, int64(2), deleted)

	facts, err := store.ListFactsByDeploys(ctx, []uint64{oldDeploy, newDeploy})
	require.NoError(t, err)
	require.Len(t, facts, 1)
	assert.Equal(t, newDeploy, facts[0].DeployID)

	// The ledger entry survives pruning
	entry, err := store.GetDeploy(ctx, oldDeploy)
	require.NoError(t, err)
	assert.NotNil(t, entry)

	deleted, err = store.DeleteFactsByDeploys(ctx, nil)
	require.NoError(t, err)
	assert.Equal(t, int64(0), deleted)
}

// =============================================================================
// Enrichment
// =============================================================================

func testPopularityCandidates(t *testing.T, store Store) {
	ctx := context.Background()
	deployID := openReleasedRun(t, store, testT0)
	require.NoError(t, store.UpsertVideo(ctx, buildTestVideo("abc12345678")))

	factID, err := store.AppendFact(ctx, buildTestFact("abc12345678", deployID, 100, 10))
	require.NoError(t, err)
	// No video row, so never a candidate
	_, err = store.AppendFact(ctx, buildTestFact("orphan00001", deployID, 100, 10))
	require.NoError(t, err)

	candidates, err := store.ListPopularityCandidates(ctx)
	require.NoError(t, err)
	require.Len(t, candidates, 1)
	assert.Equal(t, factID, candidates[0].FactID)
	assert.Equal(t, domain.VideoID("abc12345678"), candidates[0].VideoID)
	assert.Equal(t, int64(100), candidates[0].TotalViews)
	assert.Equal(t, int64(10), candidates[0].TotalLikes)
	assert.Equal(t, "Video abc12345678", candidates[0].Title)
	assert.Equal(t, 2023, candidates[0].PublishedAt.Year())

	written, err := store.SetPopularityClasses(ctx, []PopularityScore{{FactID: factID, Class: domain.PopularityPopular}})
	require.NoError(t, err)
	assert.Equal(t, int64(1), written)

	written, err = store.SetPopularityClasses(ctx, []PopularityScore{{FactID: factID, Class: domain.PopularityNotPopular}})
	require.NoError(t, err)
	assert.Equal(t, int64(0), written)

	candidates, err = store.ListPopularityCandidates(ctx)
	require.NoError(t, err)
	assert.Empty(t, candidates)

	fact, err := store.GetFact(ctx, "abc12345678", deployID)
	require.NoError(t, err)
	require.NotNil(t, fact.PopularityClass)
	assert.Equal(t, domain.PopularityPopular, *fact.PopularityClass)
}

func testSentimentCandidates(t *testing.T, store Store) {
	ctx := context.Background()
	require.NoError(t, store.UpsertVideo(ctx, buildTestVideo("abc12345678")))
	noTranscript := buildTestVideo("def12345678")
	noTranscript.Transcript = nil
	require.NoError(t, store.UpsertVideo(ctx, noTranscript))

	candidates, err := store.ListSentimentCandidates(ctx)
	require.NoError(t, err)
	require.Len(t, candidates, 2)
	assert.Equal(t, domain.VideoID("abc12345678"), candidates[0].VideoID)
	require.NotNil(t, candidates[0].Transcript)
	assert.Equal(t, "what a great song", *candidates[0].Transcript)
	assert.Nil(t, candidates[1].Transcript)

	written, err := store.SetSentimentClasses(ctx, []SentimentScore{{VideoID: "abc12345678", Class: domain.SentimentPositive}})
	require.NoError(t, err)
	assert.Equal(t, int64(1), written)

	written, err = store.SetSentimentClasses(ctx, []SentimentScore{{VideoID: "abc12345678", Class: domain.SentimentNegative}})
	require.NoError(t, err)
	assert.Equal(t, int64(0), written)

	candidates, err = store.ListSentimentCandidates(ctx)
	require.NoError(t, err)
	require.Len(t, candidates, 1)
	assert.Equal(t, domain.VideoID("def12345678"), candidates[0].VideoID)
}

// =============================================================================
// Transactions
// =============================================================================

func testWithinTransaction(t *testing.T, store Store) {
	ctx := context.Background()

	err := store.WithinTransaction(ctx, func(tx Store) error {
		if err := tx.UpsertVideo(ctx, buildTestVideo("abc12345678")); err != nil {
			return err
		}
		return assert.AnError
	})
	assert.ErrorIs(t, err, assert.AnError)

	count, err := store.CountVideos(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(0), count)

	err = store.WithinTransaction(ctx, func(tx Store) error {
		// A failed nested transaction only rolls back its own work
		_ = tx.WithinTransaction(ctx, func(inner Store) error {
			if err := inner.UpsertVideo(ctx, buildTestVideo("def12345678")); err != nil {
				return err
			}
			return assert.AnError
		})
		return tx.UpsertVideo(ctx, buildTestVideo("abc12345678"))
	})
	require.NoError(t, err)

	committed, err := store.GetVideo(ctx, "abc12345678")
	require.NoError(t, err)
	assert.NotNil(t, committed)

	rolledBack, err := store.GetVideo(ctx, "def12345678")
	require.NoError(t, err)
	assert.Nil(t, rolledBack)
}

// RunStoreTests runs all store tests against a specific store implementation
func RunStoreTests(t *testing.T, initDB func(t *testing.T) Store, cleanupDB func(t *testing.T)) {
	tests := []struct {
		name string
		fn   func(t *testing.T, store Store)
	}{
		{"RunLease", testRunLease},
		{"UpsertVideo", testUpsertVideo},
		{"AppendFact", testAppendFact},
		{"TrendBaselines", testTrendBaselines},
		{"DeleteFactsByDeploys", testDeleteFactsByDeploys},
		{"PopularityCandidates", testPopularityCandidates},
		{"SentimentCandidates", testSentimentCandidates},
		{"WithinTransaction", testWithinTransaction},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := initDB(t)
			defer cleanupDB(t)
			tt.fn(t, store)
		})
	}
}
