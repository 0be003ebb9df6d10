package youtube

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/cenkalti/backoff/v4"
	"go.uber.org/zap"
	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"
	ytapi "google.golang.org/api/youtube/v3"

	"github.com/feral-file/ff-video-warehouse/internal/domain"
	"github.com/feral-file/ff-video-warehouse/internal/logger"
)

// DefaultParts are the videos.list parts requested for every video
var DefaultParts = []string{"snippet", "statistics", "contentDetails"}

// MetadataFetcher fetches descriptive metadata and counters for a video
//
//go:generate mockgen -source=client.go -destination=../../mocks/youtube.go -package=mocks -mock_names=MetadataFetcher=MockMetadataFetcher
type MetadataFetcher interface {
	// FetchVideo returns the metadata of a video
	// Returns domain.ErrVideoNotFound if the platform has no such video
	FetchVideo(ctx context.Context, videoID domain.VideoID) (*domain.VideoMetadata, error)
}

// Config holds the YouTube Data API settings
type Config struct {
	APIKey  string
	Timeout time.Duration
	Parts   []string
	// Endpoint overrides the API root, e.g. "https://www.googleapis.com/".
	// It must not include the "youtube/v3/" path, which the client appends.
	Endpoint string
	// MaxRetryElapsed bounds how long rate-limited calls are retried
	MaxRetryElapsed time.Duration
}

type client struct {
	service         *ytapi.Service
	parts           []string
	maxRetryElapsed time.Duration
}

// NewClient creates a YouTube Data API v3 client
func NewClient(ctx context.Context, cfg Config) (MetadataFetcher, error) {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}

	opts := []option.ClientOption{
		option.WithAPIKey(cfg.APIKey),
		option.WithHTTPClient(&http.Client{Timeout: timeout}),
	}
	if cfg.Endpoint != "" {
		opts = append(opts, option.WithEndpoint(cfg.Endpoint))
	}

	service, err := ytapi.NewService(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create youtube service: %w", err)
	}

	parts := cfg.Parts
	if len(parts) == 0 {
		parts = DefaultParts
	}
	maxRetryElapsed := cfg.MaxRetryElapsed
	if maxRetryElapsed <= 0 {
		maxRetryElapsed = time.Minute
	}

	return &client{service: service, parts: parts, maxRetryElapsed: maxRetryElapsed}, nil
}

// FetchVideo calls videos.list for a single ID.
// Rate limited (429) calls are retried with exponential backoff.
func (c *client) FetchVideo(ctx context.Context, videoID domain.VideoID) (*domain.VideoMetadata, error) {
	var resp *ytapi.VideoListResponse

	operation := func() error {
		var err error
		resp, err = c.service.Videos.List(c.parts).Id(videoID.String()).Context(ctx).Do()
		if err == nil {
			return nil
		}

		var apiErr *googleapi.Error
		if errors.As(err, &apiErr) && apiErr.Code == http.StatusTooManyRequests {
			logger.WarnCtx(ctx, "youtube rate limited, retrying with backoff", zap.String("video_id", videoID.String()))
			return err
		}
		return backoff.Permanent(err)
	}

	b := backoff.NewExponentialBackOff()
	b.InitialInterval = 2 * time.Second
	b.MaxInterval = 30 * time.Second
	b.MaxElapsedTime = c.maxRetryElapsed

	if err := backoff.Retry(operation, backoff.WithContext(b, ctx)); err != nil {
		var apiErr *googleapi.Error
		if errors.As(err, &apiErr) && apiErr.Code == http.StatusNotFound {
			return nil, fmt.Errorf("%s: %w", videoID, domain.ErrVideoNotFound)
		}
		return nil, fmt.Errorf("failed to fetch video %s: %w: %w", videoID, domain.ErrUnavailable, err)
	}

	if resp == nil || len(resp.Items) == 0 {
		return nil, fmt.Errorf("%s: %w", videoID, domain.ErrVideoNotFound)
	}

	return toMetadata(videoID, resp.Items[0]), nil
}

// toMetadata flattens an API item; absent parts leave zero values
func toMetadata(videoID domain.VideoID, item *ytapi.Video) *domain.VideoMetadata {
	md := &domain.VideoMetadata{VideoID: videoID, Tags: []string{}}

	if s := item.Snippet; s != nil {
		md.Title = s.Title
		md.PublishedAt = s.PublishedAt
		if s.CategoryId != "" {
			if id, err := strconv.Atoi(s.CategoryId); err == nil {
				md.CategoryID = &id
			}
		}
		if len(s.Tags) > 0 {
			md.Tags = append(md.Tags, s.Tags...)
		}
	}
	if st := item.Statistics; st != nil {
		md.Views = int64(st.ViewCount)       //nolint:gosec,G115
		md.Likes = int64(st.LikeCount)       //nolint:gosec,G115
		md.Comments = int64(st.CommentCount) //nolint:gosec,G115
	}
	if cd := item.ContentDetails; cd != nil {
		md.Duration = cd.Duration
	}

	return md
}
