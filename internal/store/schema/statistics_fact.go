package schema

import (
	"time"

	"github.com/feral-file/ff-video-warehouse/internal/domain"
)

// StatisticsFact represents the statistics_fact table
// One row per (video_id, deploy_id). Raw counters are written once at insert;
// trend baselines are filled by the trend pass and popularity by enrichment.
type StatisticsFact struct {
	// FactID is the internal database primary key
	FactID uint64 `gorm:"column:fact_id;primaryKey;autoIncrement"`

	// DateID references calendar_dimension, resolved from the video's published_at
	DateID uint64 `gorm:"column:date_id;not null;index"`

	VideoID    domain.VideoID `gorm:"column:video_id;type:varchar(11);not null;uniqueIndex:idx_fact_video_deploy"`
	DeployID   uint64         `gorm:"column:deploy_id;not null;uniqueIndex:idx_fact_video_deploy;index"`
	CategoryID *int           `gorm:"column:category_id"`

	TotalViews    int64 `gorm:"column:total_views;not null;default:0"`
	TotalLikes    int64 `gorm:"column:total_likes;not null;default:0"`
	TotalComments int64 `gorm:"column:total_comments;not null;default:0"`

	// PopularityClass is NULL until the popularity pass scores the fact
	PopularityClass *domain.PopularityClass `gorm:"column:popularity_class;type:varchar(16);index"`

	PreviousWeekViews int64 `gorm:"column:previous_week_views;not null;default:0"`
	PreviousWeekLikes int64 `gorm:"column:previous_week_likes;not null;default:0"`

	// BaselineDeployID is the deploy whose counters were copied into previous_week_*.
	// Once set the baseline is never recomputed.
	BaselineDeployID *uint64 `gorm:"column:baseline_deploy_id"`

	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime"`
}

// TableName specifies the table name for the StatisticsFact model
func (StatisticsFact) TableName() string {
	return "statistics_fact"
}
