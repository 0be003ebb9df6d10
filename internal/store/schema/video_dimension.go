package schema

import (
	"time"

	"gorm.io/datatypes"

	"github.com/feral-file/ff-video-warehouse/internal/domain"
)

// VideoDimension represents the video_dimension table
// At most one row per video. Descriptive fields are overwritten on every
// ingestion; SentimentClass is owned by the sentiment enrichment pass.
type VideoDimension struct {
	// VideoID is the external 11-character identifier
	VideoID domain.VideoID `gorm:"column:video_id;primaryKey;type:varchar(11)"`

	Title       string                      `gorm:"column:title;type:text;not null"`
	PublishedAt time.Time                   `gorm:"column:published_at;not null"`
	Tags        datatypes.JSONSlice[string] `gorm:"column:tags;not null"`
	Duration    string                      `gorm:"column:duration;type:text;not null"`
	Transcript  *string                     `gorm:"column:transcript;type:text"`

	// SentimentClass is NULL until the sentiment pass scores the video
	SentimentClass *domain.SentimentClass `gorm:"column:sentiment_class;type:varchar(16);index"`

	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime"`
}

// TableName specifies the table name for the VideoDimension model
func (VideoDimension) TableName() string {
	return "video_dimension"
}

// VideoDescriptiveColumns are the columns overwritten by an upsert
var VideoDescriptiveColumns = []string{"title", "published_at", "tags", "duration", "transcript", "updated_at"}
