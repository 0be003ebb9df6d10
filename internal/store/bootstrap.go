package store

import (
	"context"
	"fmt"
	"time"

	"github.com/cenkalti/backoff/v4"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/feral-file/ff-video-warehouse/internal/logger"
	"github.com/feral-file/ff-video-warehouse/internal/store/schema"
)

// Models lists every table managed by the warehouse, in creation order
var Models = []any{
	&schema.DeployEntry{},
	&schema.CalendarEntry{},
	&schema.Category{},
	&schema.VideoDimension{},
	&schema.StatisticsFact{},
	&schema.KeyValueStore{},
}

// Calendar range seeded when none is configured
var (
	DefaultCalendarStart = time.Date(2005, time.January, 1, 0, 0, 0, 0, time.UTC)
	DefaultCalendarEnd   = time.Date(2035, time.December, 31, 0, 0, 0, 0, time.UTC)
)

// OpenPostgres connects to PostgreSQL, retrying with exponential backoff until maxElapsed
func OpenPostgres(ctx context.Context, dsn string, maxElapsed time.Duration, debug bool) (*gorm.DB, error) {
	logLevel := gormlogger.Warn
	if debug {
		logLevel = gormlogger.Info
	}

	var db *gorm.DB
	operation := func() error {
		var err error
		db, err = gorm.Open(postgres.Open(dsn), &gorm.Config{Logger: gormlogger.Default.LogMode(logLevel)})
		if err != nil {
			logger.WarnCtx(ctx, "Database not reachable, retrying", zap.Error(err))
			return err
		}
		return nil
	}

	b := backoff.NewExponentialBackOff()
	b.InitialInterval = time.Second
	b.MaxInterval = 10 * time.Second
	b.MaxElapsedTime = maxElapsed

	if err := backoff.Retry(operation, backoff.WithContext(b, ctx)); err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	return db, nil
}

// Migrate creates missing tables, columns and indexes. It never drops anything.
func Migrate(ctx context.Context, db *gorm.DB) error {
	if err := db.WithContext(ctx).AutoMigrate(Models...); err != nil {
		return fmt.Errorf("failed to migrate schema: %w", err)
	}
	return nil
}

// SeedCategories fills the category dimension with the default list when it is empty
func SeedCategories(ctx context.Context, db *gorm.DB) (int, error) {
	var count int64
	if err := db.WithContext(ctx).Model(&schema.Category{}).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count categories: %w", err)
	}
	if count > 0 {
		return 0, nil
	}

	categories := make([]schema.Category, len(schema.DefaultCategories))
	copy(categories, schema.DefaultCategories)
	if err := db.WithContext(ctx).Create(&categories).Error; err != nil {
		return 0, fmt.Errorf("failed to seed categories: %w", err)
	}
	return len(categories), nil
}

type calendarKey struct {
	year, month, day int
}

// SeedCalendar inserts every missing day in [start, end].
// Existing entries keep their date_id.
func SeedCalendar(ctx context.Context, db *gorm.DB, start, end time.Time) (int, error) {
	start = truncateToDay(start)
	end = truncateToDay(end)
	if end.Before(start) {
		return 0, fmt.Errorf("calendar end %s precedes start %s", end.Format(time.DateOnly), start.Format(time.DateOnly))
	}

	var existing []schema.CalendarEntry
	err := db.WithContext(ctx).
		Where("year BETWEEN ? AND ?", start.Year(), end.Year()).
		Find(&existing).Error
	if err != nil {
		return 0, fmt.Errorf("failed to load calendar: %w", err)
	}
	present := make(map[calendarKey]struct{}, len(existing))
	for _, e := range existing {
		present[calendarKey{e.Year, e.Month, e.Day}] = struct{}{}
	}

	var missing []schema.CalendarEntry
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		key := calendarKey{d.Year(), int(d.Month()), d.Day()}
		if _, ok := present[key]; ok {
			continue
		}
		missing = append(missing, schema.CalendarEntry{Year: key.year, Month: key.month, Day: key.day})
	}
	if len(missing) == 0 {
		return 0, nil
	}

	batchSize := calculateSafeBatchSize(len(missing), 3)
	if err := db.WithContext(ctx).CreateInBatches(&missing, batchSize).Error; err != nil {
		return 0, fmt.Errorf("failed to seed calendar: %w", err)
	}
	return len(missing), nil
}

// Bootstrap migrates the schema and seeds the reference dimensions
func Bootstrap(ctx context.Context, db *gorm.DB, calendarStart, calendarEnd time.Time) error {
	if err := Migrate(ctx, db); err != nil {
		return err
	}

	categories, err := SeedCategories(ctx, db)
	if err != nil {
		return err
	}

	if calendarStart.IsZero() {
		calendarStart = DefaultCalendarStart
	}
	if calendarEnd.IsZero() {
		calendarEnd = DefaultCalendarEnd
	}
	days, err := SeedCalendar(ctx, db, calendarStart, calendarEnd)
	if err != nil {
		return err
	}

	logger.InfoCtx(ctx, "Warehouse schema ready",
		zap.Int("categories_seeded", categories),
		zap.Int("calendar_days_seeded", days),
		zap.String("calendar_start", calendarStart.Format(time.DateOnly)),
		zap.String("calendar_end", calendarEnd.Format(time.DateOnly)),
	)
	return nil
}

func truncateToDay(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
