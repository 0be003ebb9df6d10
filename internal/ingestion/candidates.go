package ingestion

import (
	"context"
	"iter"
	"time"

	"go.uber.org/zap"

	"github.com/feral-file/ff-video-warehouse/internal/domain"
	"github.com/feral-file/ff-video-warehouse/internal/logger"
)

// Item is a candidate whose external data was collected successfully
type Item struct {
	Metadata    domain.VideoMetadata
	PublishedAt time.Time
	Transcript  *string
}

// Outcome is the per-item result of collecting one candidate.
// Exactly one of Item and Err is set.
type Outcome struct {
	Raw  string
	Item *Item
	Err  error
}

// Candidates returns a lazy sequence of outcomes over the listed names.
// Every iteration starts over and fetches again; duplicate names yield once per iteration.
// A failure on one candidate never ends the sequence.
func (d *Driver) Candidates(ctx context.Context, names []string) iter.Seq[Outcome] {
	return func(yield func(Outcome) bool) {
		seen := make(map[string]struct{}, len(names))
		for _, raw := range names {
			if ctx.Err() != nil {
				return
			}
			if _, dup := seen[raw]; dup {
				continue
			}
			seen[raw] = struct{}{}

			item, err := d.collect(ctx, raw)
			if !yield(Outcome{Raw: raw, Item: item, Err: err}) {
				return
			}
		}
	}
}

// collect validates one candidate and fetches its metadata and transcript
func (d *Driver) collect(ctx context.Context, raw string) (*Item, error) {
	videoID, err := domain.ParseVideoID(raw)
	if err != nil {
		return nil, err
	}

	md, err := d.metadata.FetchVideo(ctx, videoID)
	if err != nil {
		return nil, err
	}

	publishedAt, err := domain.ParsePublishedAt(md.PublishedAt)
	if err != nil {
		return nil, err
	}
	if md.Tags == nil {
		md.Tags = []string{}
	}

	transcript, err := d.transcripts.FetchTranscript(ctx, videoID)
	if err != nil {
		// A transcript failure leaves the transcript absent
		logger.WarnCtx(ctx, "Transcript unavailable, storing video without one",
			zap.String("video_id", videoID.String()), zap.Error(err))
		transcript = nil
	}

	return &Item{Metadata: *md, PublishedAt: publishedAt, Transcript: transcript}, nil
}
