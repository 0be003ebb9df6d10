package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/feral-file/ff-video-warehouse/internal/domain"
	"github.com/feral-file/ff-video-warehouse/internal/logger"
	"github.com/feral-file/ff-video-warehouse/internal/store/schema"
)

type pgStore struct {
	db *gorm.DB
}

// NewPGStore creates a new store instance backed by the given GORM connection
func NewPGStore(db *gorm.DB) Store {
	return &pgStore{db: db}
}

// ConfigureConnectionPool configures the connection pool settings for a GORM database connection.
// If any of the pool settings are 0, defaults from NormalizeConnectionPoolSettings are used.
func ConfigureConnectionPool(db *gorm.DB, maxOpenConns, maxIdleConns int, connMaxLifetime, connMaxIdleTime time.Duration) error {
	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}

	maxOpenConns, maxIdleConns, connMaxLifetime, connMaxIdleTime =
		NormalizeConnectionPoolSettings(maxOpenConns, maxIdleConns, connMaxLifetime, connMaxIdleTime)

	sqlDB.SetMaxOpenConns(maxOpenConns)
	sqlDB.SetMaxIdleConns(maxIdleConns)
	sqlDB.SetConnMaxLifetime(connMaxLifetime)
	sqlDB.SetConnMaxIdleTime(connMaxIdleTime)

	return nil
}

// NormalizeConnectionPoolSettings applies defaults and clamps pool settings into safe values.
//
// Defaults (when zero):
//   - MaxOpenConns: 10
//   - MaxIdleConns: 2
//   - ConnMaxLifetime: 5 minutes
//   - ConnMaxIdleTime: 10 minutes
func NormalizeConnectionPoolSettings(maxOpenConns, maxIdleConns int, connMaxLifetime, connMaxIdleTime time.Duration) (int, int, time.Duration, time.Duration) {
	if maxOpenConns <= 0 {
		maxOpenConns = 10
	}
	if maxIdleConns <= 0 {
		maxIdleConns = 2
	}
	if connMaxLifetime <= 0 {
		connMaxLifetime = 5 * time.Minute
	}
	if connMaxIdleTime <= 0 {
		connMaxIdleTime = 10 * time.Minute
	}

	// Idle connections never exceed the open limit
	if maxIdleConns > maxOpenConns {
		maxIdleConns = maxOpenConns
	}

	return maxOpenConns, maxIdleConns, connMaxLifetime, connMaxIdleTime
}

// calculateSafeBatchSize computes the batch size for bulk inserts that stays under
// PostgreSQL's 65535 bind parameter limit, leaving headroom for clause parameters.
func calculateSafeBatchSize(totalRecords int, fieldsPerRecord int) int {
	const maxParams = 65535
	const totalHeadroom = 1000

	availableParams := maxParams - totalHeadroom
	safeBatchSize := max(availableParams/fieldsPerRecord, 1)

	if safeBatchSize > totalRecords {
		return max(totalRecords, 1)
	}

	return safeBatchSize
}

func getRunLease(tx *gorm.DB) (*schema.RunLease, error) {
	var kv schema.KeyValueStore
	err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("key = ?", domain.RunLeaseKey).
		First(&kv).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get run lease: %w", err)
	}

	return kv.RunLease()
}

// OpenRun appends a ledger entry at the given instant and takes the run lease
func (s *pgStore) OpenRun(ctx context.Context, at time.Time, leaseTTL time.Duration) (*schema.DeployEntry, error) {
	at = at.UTC()
	if leaseTTL <= 0 {
		leaseTTL = domain.DefaultRunLeaseTTL
	}

	var entry schema.DeployEntry
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// 1. Refuse while another run holds a live lease
		lease, err := getRunLease(tx)
		if err != nil {
			return err
		}
		if lease != nil && lease.Live(at) {
			return fmt.Errorf("deploy %d holds the run lease until %s: %w",
				lease.DeployID, lease.ExpiresAt.Format(time.RFC3339), domain.ErrRunInProgress)
		}

		// 2. Ledger timestamps never move backwards
		var latest schema.DeployEntry
		err = tx.Order("deploy_id DESC").Limit(1).Find(&latest).Error
		if err != nil {
			return fmt.Errorf("failed to get latest deploy: %w", err)
		}
		if latest.DeployID != 0 && at.Before(latest.Timestamp) {
			return fmt.Errorf("run timestamp %s precedes deploy %d at %s",
				at.Format(time.RFC3339), latest.DeployID, latest.Timestamp.UTC().Format(time.RFC3339))
		}

		// 3. Append the ledger entry
		entry = schema.DeployEntry{Timestamp: at}
		if err := tx.Create(&entry).Error; err != nil {
			return fmt.Errorf("failed to create deploy entry: %w", err)
		}

		// 4. Take the lease for the new deploy
		kv, err := schema.NewRunLeaseEntry(domain.RunLeaseKey, schema.RunLease{DeployID: entry.DeployID, ExpiresAt: at.Add(leaseTTL)})
		if err != nil {
			return err
		}
		if err := tx.Save(&kv).Error; err != nil {
			return fmt.Errorf("failed to set run lease: %w", err)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return &entry, nil
}

// ReleaseRun releases the run lease if it is held by the given deploy
func (s *pgStore) ReleaseRun(ctx context.Context, deployID uint64) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		lease, err := getRunLease(tx)
		if err != nil {
			return err
		}
		if lease == nil || lease.DeployID != deployID {
			return nil
		}

		err = tx.Where("key = ?", domain.RunLeaseKey).Delete(&schema.KeyValueStore{}).Error
		if err != nil {
			return fmt.Errorf("failed to release run lease: %w", err)
		}
		return nil
	})
}

// ActiveRun returns the deploy ID holding a live run lease, or nil
func (s *pgStore) ActiveRun(ctx context.Context, now time.Time) (*uint64, error) {
	lease, err := getRunLease(s.db.WithContext(ctx))
	if err != nil {
		return nil, err
	}
	if lease == nil || !lease.Live(now) {
		return nil, nil
	}

	deployID := lease.DeployID
	return &deployID, nil
}

// GetDeploy retrieves a ledger entry by ID
func (s *pgStore) GetDeploy(ctx context.Context, deployID uint64) (*schema.DeployEntry, error) {
	var entry schema.DeployEntry
	err := s.db.WithContext(ctx).Where("deploy_id = ?", deployID).First(&entry).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get deploy: %w", err)
	}
	return &entry, nil
}

// ListDeploys retrieves the whole ledger ordered by deploy ID
func (s *pgStore) ListDeploys(ctx context.Context) ([]schema.DeployEntry, error) {
	var entries []schema.DeployEntry
	err := s.db.WithContext(ctx).Order("deploy_id ASC").Find(&entries).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list deploys: %w", err)
	}
	return entries, nil
}

// FindDateID resolves a calendar key by component match
func (s *pgStore) FindDateID(ctx context.Context, year, month, day int) (uint64, error) {
	var entry schema.CalendarEntry
	err := s.db.WithContext(ctx).
		Where("year = ? AND month = ? AND day = ?", year, month, day).
		First(&entry).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, fmt.Errorf("%04d-%02d-%02d: %w", year, month, day, domain.ErrCalendarKeyNotFound)
		}
		return 0, fmt.Errorf("failed to find calendar key: %w", err)
	}
	return entry.DateID, nil
}

// CategoryExists checks whether a category code is present in the category dimension
func (s *pgStore) CategoryExists(ctx context.Context, categoryID int) (bool, error) {
	var count int64
	err := s.db.WithContext(ctx).
		Model(&schema.Category{}).
		Where("category_id = ?", categoryID).
		Count(&count).Error
	if err != nil {
		return false, fmt.Errorf("failed to check category: %w", err)
	}
	return count > 0, nil
}

// UpsertVideo inserts a video or overwrites its descriptive fields.
// The sentiment class is never touched by an upsert.
func (s *pgStore) UpsertVideo(ctx context.Context, input UpsertVideoInput) error {
	if !input.VideoID.Valid() {
		return fmt.Errorf("%q: %w", input.VideoID, domain.ErrInvalidVideoID)
	}

	tags := datatypes.JSONSlice[string]{}
	if len(input.Tags) > 0 {
		tags = append(tags, input.Tags...)
	}

	video := schema.VideoDimension{
		VideoID:     input.VideoID,
		Title:       input.Title,
		PublishedAt: input.PublishedAt.UTC(),
		Tags:        tags,
		Duration:    input.Duration,
		Transcript:  input.Transcript,
	}

	err := s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "video_id"}},
		DoUpdates: clause.AssignmentColumns(schema.VideoDescriptiveColumns),
	}).Create(&video).Error
	if err != nil {
		return fmt.Errorf("failed to upsert video: %w", err)
	}

	return nil
}

// GetVideo retrieves a video by ID
func (s *pgStore) GetVideo(ctx context.Context, videoID domain.VideoID) (*schema.VideoDimension, error) {
	var video schema.VideoDimension
	err := s.db.WithContext(ctx).Where("video_id = ?", videoID).First(&video).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get video: %w", err)
	}
	return &video, nil
}

// CountVideos counts rows in the video dimension
func (s *pgStore) CountVideos(ctx context.Context) (int64, error) {
	var count int64
	if err := s.db.WithContext(ctx).Model(&schema.VideoDimension{}).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count videos: %w", err)
	}
	return count, nil
}

// AppendFact inserts the statistics fact for a (video, deploy) pair.
// The calendar key is resolved from the publish date; a category outside the
// category dimension is stored as NULL.
func (s *pgStore) AppendFact(ctx context.Context, input AppendFactInput) (uint64, error) {
	if !input.VideoID.Valid() {
		return 0, fmt.Errorf("%q: %w", input.VideoID, domain.ErrInvalidVideoID)
	}

	var fact schema.StatisticsFact
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		txStore := &pgStore{db: tx}

		// 1. The owning deploy must exist in the ledger
		deploy, err := txStore.GetDeploy(ctx, input.DeployID)
		if err != nil {
			return err
		}
		if deploy == nil {
			return fmt.Errorf("deploy %d is not in the ledger", input.DeployID)
		}

		// 2. Resolve the calendar key from the publish date
		published := input.PublishedAt.UTC()
		dateID, err := txStore.FindDateID(ctx, published.Year(), int(published.Month()), published.Day())
		if err != nil {
			return err
		}

		// 3. Keep the category only if the dimension knows it
		categoryID := input.CategoryID
		if categoryID != nil {
			ok, err := txStore.CategoryExists(ctx, *categoryID)
			if err != nil {
				return err
			}
			if !ok {
				logger.WarnCtx(ctx, "Unknown category, storing fact without one",
					zap.String("video_id", input.VideoID.String()),
					zap.Int("category_id", *categoryID))
				categoryID = nil
			}
		}

		fact = schema.StatisticsFact{
			DateID:        dateID,
			VideoID:       input.VideoID,
			DeployID:      input.DeployID,
			CategoryID:    categoryID,
			TotalViews:    input.Counters.Views,
			TotalLikes:    input.Counters.Likes,
			TotalComments: input.Counters.Comments,
		}
		if err := tx.Create(&fact).Error; err != nil {
			return fmt.Errorf("failed to create statistics fact: %w", err)
		}

		return nil
	})
	if err != nil {
		return 0, err
	}

	return fact.FactID, nil
}

// GetFact retrieves the fact for a (video, deploy) pair
func (s *pgStore) GetFact(ctx context.Context, videoID domain.VideoID, deployID uint64) (*schema.StatisticsFact, error) {
	var fact schema.StatisticsFact
	err := s.db.WithContext(ctx).
		Where("video_id = ? AND deploy_id = ?", videoID, deployID).
		First(&fact).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get statistics fact: %w", err)
	}
	return &fact, nil
}

// ListFactsByDeploys retrieves all facts owned by the given deploys
func (s *pgStore) ListFactsByDeploys(ctx context.Context, deployIDs []uint64) ([]schema.StatisticsFact, error) {
	if len(deployIDs) == 0 {
		return []schema.StatisticsFact{}, nil
	}

	var facts []schema.StatisticsFact
	err := s.db.WithContext(ctx).
		Where("deploy_id IN ?", deployIDs).
		Order("fact_id ASC").
		Find(&facts).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list statistics facts: %w", err)
	}
	return facts, nil
}

// SetTrendBaselines writes week-ago counters onto facts that have no baseline yet.
// Facts that already carry a baseline are left untouched.
func (s *pgStore) SetTrendBaselines(ctx context.Context, baselines []TrendBaseline) (int64, error) {
	if len(baselines) == 0 {
		return 0, nil
	}

	var updated int64
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, b := range baselines {
			result := tx.Model(&schema.StatisticsFact{}).
				Where("fact_id = ? AND baseline_deploy_id IS NULL", b.FactID).
				Updates(map[string]any{
					"previous_week_views": b.Views,
					"previous_week_likes": b.Likes,
					"baseline_deploy_id":  b.BaselineDeployID,
				})
			if result.Error != nil {
				return fmt.Errorf("failed to set trend baseline for fact %d: %w", b.FactID, result.Error)
			}
			updated += result.RowsAffected
		}
		return nil
	})
	if err != nil {
		return 0, err
	}

	return updated, nil
}

// DeleteFactsByDeploys deletes every fact owned by the given deploys
func (s *pgStore) DeleteFactsByDeploys(ctx context.Context, deployIDs []uint64) (int64, error) {
	if len(deployIDs) == 0 {
		return 0, nil
	}

	result := s.db.WithContext(ctx).
		Where("deploy_id IN ?", deployIDs).
		Delete(&schema.StatisticsFact{})
	if result.Error != nil {
		return 0, fmt.Errorf("failed to delete statistics facts: %w", result.Error)
	}
	return result.RowsAffected, nil
}

// ListPopularityCandidates retrieves facts whose popularity class is unset.
// Facts without a matching video row are not candidates.
func (s *pgStore) ListPopularityCandidates(ctx context.Context) ([]PopularityCandidate, error) {
	var candidates []PopularityCandidate
	err := s.db.WithContext(ctx).
		Table("statistics_fact AS f").
		Select("f.fact_id, f.video_id, f.total_views, f.total_likes, v.title, v.published_at").
		Joins("JOIN video_dimension AS v ON v.video_id = f.video_id").
		Where("f.popularity_class IS NULL").
		Order("f.fact_id ASC").
		Scan(&candidates).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list popularity candidates: %w", err)
	}
	return candidates, nil
}

// SetPopularityClasses writes popularity classes onto facts that are still unset
func (s *pgStore) SetPopularityClasses(ctx context.Context, scores []PopularityScore) (int64, error) {
	if len(scores) == 0 {
		return 0, nil
	}

	var updated int64
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, score := range scores {
			result := tx.Model(&schema.StatisticsFact{}).
				Where("fact_id = ? AND popularity_class IS NULL", score.FactID).
				Update("popularity_class", score.Class)
			if result.Error != nil {
				return fmt.Errorf("failed to set popularity class for fact %d: %w", score.FactID, result.Error)
			}
			updated += result.RowsAffected
		}
		return nil
	})
	if err != nil {
		return 0, err
	}

	return updated, nil
}

// ListSentimentCandidates retrieves videos whose sentiment class is unset
func (s *pgStore) ListSentimentCandidates(ctx context.Context) ([]SentimentCandidate, error) {
	var candidates []SentimentCandidate
	err := s.db.WithContext(ctx).
		Model(&schema.VideoDimension{}).
		Select("video_id, transcript").
		Where("sentiment_class IS NULL").
		Order("video_id ASC").
		Scan(&candidates).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list sentiment candidates: %w", err)
	}
	return candidates, nil
}

// SetSentimentClasses writes sentiment classes onto videos that are still unset
func (s *pgStore) SetSentimentClasses(ctx context.Context, scores []SentimentScore) (int64, error) {
	if len(scores) == 0 {
		return 0, nil
	}

	var updated int64
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, score := range scores {
			// UpdateColumn keeps updated_at as the last descriptive refresh
			result := tx.Model(&schema.VideoDimension{}).
				Where("video_id = ? AND sentiment_class IS NULL", score.VideoID).
				UpdateColumn("sentiment_class", score.Class)
			if result.Error != nil {
				return fmt.Errorf("failed to set sentiment class for video %s: %w", score.VideoID, result.Error)
			}
			updated += result.RowsAffected
		}
		return nil
	})
	if err != nil {
		return 0, err
	}

	return updated, nil
}

// WithinTransaction runs fn against a store bound to a single transaction
func (s *pgStore) WithinTransaction(ctx context.Context, fn func(Store) error) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&pgStore{db: tx})
	})
}
