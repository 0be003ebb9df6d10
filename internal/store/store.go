package store

import (
	"context"
	"time"

	"github.com/feral-file/ff-video-warehouse/internal/domain"
	"github.com/feral-file/ff-video-warehouse/internal/store/schema"
)

// UpsertVideoInput carries the descriptive fields of a video
type UpsertVideoInput struct {
	VideoID     domain.VideoID
	Title       string
	PublishedAt time.Time
	Tags        []string
	Duration    string
	Transcript  *string
}

// AppendFactInput carries the counters observed for a video at one deploy
type AppendFactInput struct {
	VideoID     domain.VideoID
	DeployID    uint64
	PublishedAt time.Time
	CategoryID  *int
	Counters    domain.Counters
}

// TrendBaseline assigns the week-ago counters of a baseline fact to a current fact
type TrendBaseline struct {
	FactID           uint64
	BaselineDeployID uint64
	Views            int64
	Likes            int64
}

// PopularityCandidate is a fact row lacking a popularity class, joined with its video
type PopularityCandidate struct {
	FactID      uint64
	VideoID     domain.VideoID
	TotalViews  int64
	TotalLikes  int64
	Title       string
	PublishedAt time.Time
}

// PopularityScore is the popularity class assigned to one fact
type PopularityScore struct {
	FactID uint64
	Class  domain.PopularityClass
}

// SentimentCandidate is a video row lacking a sentiment class
type SentimentCandidate struct {
	VideoID    domain.VideoID
	Transcript *string
}

// SentimentScore is the sentiment class assigned to one video
type SentimentScore struct {
	VideoID domain.VideoID
	Class   domain.SentimentClass
}

// Store defines the interface for warehouse operations
type Store interface {
	// OpenRun appends a ledger entry at the given instant and takes the run lease
	// Returns domain.ErrRunInProgress if another run holds a live lease
	OpenRun(ctx context.Context, at time.Time, leaseTTL time.Duration) (*schema.DeployEntry, error)
	// ReleaseRun releases the run lease if it is held by the given deploy
	ReleaseRun(ctx context.Context, deployID uint64) error
	// ActiveRun returns the deploy ID holding a live run lease, or nil
	ActiveRun(ctx context.Context, now time.Time) (*uint64, error)
	// GetDeploy retrieves a ledger entry by ID
	GetDeploy(ctx context.Context, deployID uint64) (*schema.DeployEntry, error)
	// ListDeploys retrieves the whole ledger ordered by deploy ID
	ListDeploys(ctx context.Context) ([]schema.DeployEntry, error)

	// FindDateID resolves a calendar key by component match
	// Returns domain.ErrCalendarKeyNotFound if the key is absent
	FindDateID(ctx context.Context, year, month, day int) (uint64, error)
	// CategoryExists checks whether a category code is present in the category dimension
	CategoryExists(ctx context.Context, categoryID int) (bool, error)

	// UpsertVideo inserts a video or overwrites its descriptive fields
	UpsertVideo(ctx context.Context, input UpsertVideoInput) error
	// GetVideo retrieves a video by ID
	GetVideo(ctx context.Context, videoID domain.VideoID) (*schema.VideoDimension, error)
	// CountVideos counts rows in the video dimension
	CountVideos(ctx context.Context) (int64, error)

	// AppendFact inserts the statistics fact for a (video, deploy) pair
	AppendFact(ctx context.Context, input AppendFactInput) (uint64, error)
	// GetFact retrieves the fact for a (video, deploy) pair
	GetFact(ctx context.Context, videoID domain.VideoID, deployID uint64) (*schema.StatisticsFact, error)
	// ListFactsByDeploys retrieves all facts owned by the given deploys
	ListFactsByDeploys(ctx context.Context, deployIDs []uint64) ([]schema.StatisticsFact, error)
	// SetTrendBaselines writes week-ago counters onto facts that have no baseline yet
	SetTrendBaselines(ctx context.Context, baselines []TrendBaseline) (int64, error)
	// DeleteFactsByDeploys deletes every fact owned by the given deploys
	DeleteFactsByDeploys(ctx context.Context, deployIDs []uint64) (int64, error)

	// ListPopularityCandidates retrieves facts whose popularity class is unset
	ListPopularityCandidates(ctx context.Context) ([]PopularityCandidate, error)
	// SetPopularityClasses writes popularity classes onto facts that are still unset
	SetPopularityClasses(ctx context.Context, scores []PopularityScore) (int64, error)
	// ListSentimentCandidates retrieves videos whose sentiment class is unset
	ListSentimentCandidates(ctx context.Context) ([]SentimentCandidate, error)
	// SetSentimentClasses writes sentiment classes onto videos that are still unset
	SetSentimentClasses(ctx context.Context, scores []SentimentScore) (int64, error)

	// WithinTransaction runs fn against a store bound to a single transaction
	WithinTransaction(ctx context.Context, fn func(Store) error) error
}
