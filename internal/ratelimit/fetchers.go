package ratelimit

import (
	"context"

	"github.com/feral-file/ff-video-warehouse/internal/domain"
	"github.com/feral-file/ff-video-warehouse/internal/providers/transcript"
	"github.com/feral-file/ff-video-warehouse/internal/providers/youtube"
)

type metadataFetcher struct {
	inner youtube.MetadataFetcher
	proxy Proxy
}

// NewMetadataFetcher limits calls to the metadata API through the proxy
func NewMetadataFetcher(inner youtube.MetadataFetcher, p Proxy) youtube.MetadataFetcher {
	return &metadataFetcher{inner: inner, proxy: p}
}

func (f *metadataFetcher) FetchVideo(ctx context.Context, videoID domain.VideoID) (*domain.VideoMetadata, error) {
	return Request(ctx, f.proxy, ProviderYouTube, func(ctx context.Context) (*domain.VideoMetadata, error) {
		return f.inner.FetchVideo(ctx, videoID)
	})
}

type transcriptFetcher struct {
	inner transcript.Fetcher
	proxy Proxy
}

// NewTranscriptFetcher limits calls to the transcript endpoint through the proxy
func NewTranscriptFetcher(inner transcript.Fetcher, p Proxy) transcript.Fetcher {
	return &transcriptFetcher{inner: inner, proxy: p}
}

func (f *transcriptFetcher) FetchTranscript(ctx context.Context, videoID domain.VideoID) (*string, error) {
	return Request(ctx, f.proxy, ProviderTranscript, func(ctx context.Context) (*string, error) {
		return f.inner.FetchTranscript(ctx, videoID)
	})
}
