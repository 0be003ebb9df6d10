package domain

import "time"

const (
	// VideoIDLength is the fixed length of an external video identifier
	VideoIDLength = 11

	// PublishedAtLayout is the layout of published_at timestamps returned by the metadata collaborator
	PublishedAtLayout = "2006-01-02T15:04:05Z"

	// Trend window bounds, measured back from the current run's deploy timestamp.
	// A prior deploy qualifies as the week-ago baseline when its age is in [TrendWindowMin, TrendWindowMax).
	TrendWindowMin = 6 * 24 * time.Hour
	TrendWindowMax = 7 * 24 * time.Hour

	// RetentionWindow is how long facts are kept after their deploy's timestamp
	RetentionWindow = 8 * 24 * time.Hour

	// DefaultRunLeaseTTL bounds how long an unfinished run blocks the next one
	DefaultRunLeaseTTL = 6 * time.Hour

	// RunLeaseKey is the key_value_store key holding the deploy_id of the active run
	RunLeaseKey = "ingestion:active_run"
)
