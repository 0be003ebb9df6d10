package transcript

import (
	"context"
	"encoding/xml"
	"fmt"
	"html"
	"net/http"
	"net/url"
	"strings"

	"go.uber.org/zap"

	"github.com/feral-file/ff-video-warehouse/internal/adapter"
	"github.com/feral-file/ff-video-warehouse/internal/domain"
	"github.com/feral-file/ff-video-warehouse/internal/logger"
)

// DefaultBaseURL is the timed-text endpoint
const DefaultBaseURL = "https://video.google.com/timedtext"

// Fetcher retrieves the transcript of a video
//
//go:generate mockgen -source=fetcher.go -destination=../../mocks/transcript.go -package=mocks -mock_names=Fetcher=MockTranscriptFetcher
type Fetcher interface {
	// FetchTranscript returns the transcript text, or nil when none is available.
	// Absence is not an error.
	FetchTranscript(ctx context.Context, videoID domain.VideoID) (*string, error)
}

// Config holds the timed-text settings
type Config struct {
	BaseURL string
	// Languages are tried in order; the first non-empty track wins
	Languages []string
}

type timedTextFetcher struct {
	config Config
	http   adapter.HTTPClient
}

// NewFetcher creates a timed-text transcript fetcher
func NewFetcher(config Config, httpClient adapter.HTTPClient) Fetcher {
	if config.BaseURL == "" {
		config.BaseURL = DefaultBaseURL
	}
	if len(config.Languages) == 0 {
		config.Languages = []string{"en"}
	}
	return &timedTextFetcher{config: config, http: httpClient}
}

// timedText is the XML document served by the timed-text endpoint
type timedText struct {
	XMLName xml.Name `xml:"transcript"`
	Lines   []struct {
		Text string `xml:",chardata"`
	} `xml:"text"`
}

func (f *timedTextFetcher) FetchTranscript(ctx context.Context, videoID domain.VideoID) (*string, error) {
	for _, lang := range f.config.Languages {
		q := url.Values{}
		q.Set("lang", lang)
		q.Set("v", videoID.String())

		body, err := f.http.GetRaw(ctx, f.config.BaseURL+"?"+q.Encode())
		if err != nil {
			if adapter.IsStatus(err, http.StatusNotFound) {
				continue
			}
			return nil, fmt.Errorf("failed to fetch transcript for %s: %w", videoID, err)
		}

		text, err := parseTimedText(body)
		if err != nil {
			return nil, fmt.Errorf("failed to parse transcript for %s: %w", videoID, err)
		}
		if text != "" {
			return &text, nil
		}
	}

	logger.DebugCtx(ctx, "No transcript available", zap.String("video_id", videoID.String()))
	return nil, nil
}

// parseTimedText joins the caption lines with single spaces.
// An empty body means the video has no track in that language.
func parseTimedText(body []byte) (string, error) {
	if len(strings.TrimSpace(string(body))) == 0 {
		return "", nil
	}

	var doc timedText
	if err := xml.Unmarshal(body, &doc); err != nil {
		return "", err
	}

	lines := make([]string, 0, len(doc.Lines))
	for _, l := range doc.Lines {
		// Caption text is HTML-escaped a second time inside the XML
		line := strings.Join(strings.Fields(html.UnescapeString(l.Text)), " ")
		if line != "" {
			lines = append(lines, line)
		}
	}
	return strings.Join(lines, " "), nil
}
