package domain

import (
	"fmt"
	"time"
)

// VideoID is the fixed-length external identifier of a video
type VideoID string

// String returns the string representation of the video ID
func (v VideoID) String() string {
	return string(v)
}

// Valid reports whether the identifier is exactly VideoIDLength characters
// drawn from the URL-safe alphabet used by the platform
func (v VideoID) Valid() bool {
	if len(v) != VideoIDLength {
		return false
	}
	for _, c := range v {
		switch {
		case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z', c >= '0' && c <= '9', c == '-', c == '_':
		default:
			return false
		}
	}
	return true
}

// ParseVideoID validates a raw candidate token
func ParseVideoID(raw string) (VideoID, error) {
	id := VideoID(raw)
	if !id.Valid() {
		return "", fmt.Errorf("%w: %q", ErrInvalidVideoID, raw)
	}
	return id, nil
}

// ParsePublishedAt parses an ISO-8601 UTC published_at value
func ParsePublishedAt(raw string) (time.Time, error) {
	t, err := time.Parse(PublishedAtLayout, raw)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidPublishedAt, raw)
	}
	return t.UTC(), nil
}

// PopularityClass is the popularity score attached to a statistics fact
type PopularityClass string

const (
	PopularityPopular    PopularityClass = "Popular"
	PopularityNotPopular PopularityClass = "NotPopular"
)

// SentimentClass is the sentiment score attached to a video
type SentimentClass string

const (
	SentimentPositive SentimentClass = "Positive"
	SentimentNegative SentimentClass = "Negative"
)

// PopularityCodes maps the popularity clusterer's output codes to classes.
// A model whose cluster semantics change must ship with an updated table.
var PopularityCodes = map[int]PopularityClass{
	0: PopularityNotPopular,
	1: PopularityPopular,
}

// SentimentCodes maps the sentiment classifier's output codes to classes
var SentimentCodes = map[int]SentimentClass{
	0: SentimentNegative,
	1: SentimentPositive,
}

// PopularityFromCode resolves a clusterer code through PopularityCodes
func PopularityFromCode(code int) (PopularityClass, error) {
	class, ok := PopularityCodes[code]
	if !ok {
		return "", fmt.Errorf("%w: popularity code %d", ErrUnknownModelCode, code)
	}
	return class, nil
}

// SentimentFromCode resolves a classifier code through SentimentCodes
func SentimentFromCode(code int) (SentimentClass, error) {
	class, ok := SentimentCodes[code]
	if !ok {
		return "", fmt.Errorf("%w: sentiment code %d", ErrUnknownModelCode, code)
	}
	return class, nil
}

// VideoMetadata is what the metadata collaborator returns for a single video.
// Absent fields are zero values; absent counters are 0.
type VideoMetadata struct {
	VideoID     VideoID  `json:"video_id"`
	Title       string   `json:"title"`
	PublishedAt string   `json:"published_at"`
	CategoryID  *int     `json:"category_id,omitempty"`
	Tags        []string `json:"tags"`
	Duration    string   `json:"duration"`
	Views       int64    `json:"views"`
	Likes       int64    `json:"likes"`
	Comments    int64    `json:"comments"`
}

// Counters are the engagement counters observed for a video at one deploy
type Counters struct {
	Views    int64 `json:"views"`
	Likes    int64 `json:"likes"`
	Comments int64 `json:"comments"`
}

// DeployRef identifies the run that owns a set of facts
type DeployRef struct {
	DeployID  uint64    `json:"deploy_id"`
	Timestamp time.Time `json:"timestamp"`
}

// SkippedItem records one item that was skipped during a step
type SkippedItem struct {
	VideoID string    `json:"video_id"`
	Kind    ErrorKind `json:"kind"`
	Reason  string    `json:"reason"`
}

// IngestReport summarizes the ingest step of a run
type IngestReport struct {
	DeployID   uint64        `json:"deploy_id"`
	Candidates int           `json:"candidates"`
	Ingested   int           `json:"ingested"`
	Skipped    []SkippedItem `json:"skipped"`
}

// SkippedByKind counts skipped items per ErrorKind
func (r IngestReport) SkippedByKind() map[ErrorKind]int {
	counts := make(map[ErrorKind]int)
	for _, s := range r.Skipped {
		counts[s.Kind]++
	}
	return counts
}

// TrendReport summarizes the trend-delta pass of a run
type TrendReport struct {
	DeployID        uint64   `json:"deploy_id"`
	BaselineDeploys []uint64 `json:"baseline_deploys"`
	FactsConsidered int      `json:"facts_considered"`
	BaselinesSet    int64    `json:"baselines_set"`
}

// RunSummary summarizes a completed ingestion run
type RunSummary struct {
	Deploy      DeployRef    `json:"deploy"`
	Ingest      IngestReport `json:"ingest"`
	Trend       TrendReport  `json:"trend"`
	FactsPruned int64        `json:"facts_pruned"`
}

// PassKind names an enrichment pass
type PassKind string

const (
	PassPopularity PassKind = "popularity"
	PassSentiment  PassKind = "sentiment"
)

// PassReport summarizes one enrichment pass
type PassReport struct {
	Pass     PassKind      `json:"pass"`
	BatchID  string        `json:"batch_id"`
	Selected int           `json:"selected"`
	Scored   int           `json:"scored"`
	Written  int64         `json:"written"`
	Skipped  []SkippedItem `json:"skipped"`
}
