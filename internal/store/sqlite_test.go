package store

import (
	"context"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// openSQLiteTestDB opens a private in-memory database with the warehouse schema
func openSQLiteTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", name)
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	// A single connection keeps the in-memory database and its savepoints consistent
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() {
		_ = sqlDB.Close()
	})

	require.NoError(t, Bootstrap(context.Background(), db, testCalendarStart, testCalendarEnd))
	return db
}

func initSQLiteTestDB(t *testing.T) Store {
	return NewPGStore(openSQLiteTestDB(t))
}

// cleanupSQLiteTestDB is a no-op: every test gets its own in-memory database
func cleanupSQLiteTestDB(t *testing.T) {}

// TestSQLiteStore runs all store tests against an in-memory SQLite database
func TestSQLiteStore(t *testing.T) {
	RunStoreTests(t, initSQLiteTestDB, cleanupSQLiteTestDB)
}

func TestBootstrap_Idempotent(t *testing.T) {
	ctx := context.Background()
	db := openSQLiteTestDB(t)

	categories, err := SeedCategories(ctx, db)
	require.NoError(t, err)
	assert.Equal(t, 0, categories)

	days, err := SeedCalendar(ctx, db, testCalendarStart, testCalendarEnd)
	require.NoError(t, err)
	assert.Equal(t, 0, days)

	store := NewPGStore(db)
	leapDay, err := store.FindDateID(ctx, 2024, 2, 29)
	require.NoError(t, err)
	assert.NotZero(t, leapDay)

	// Extending the range keeps existing keys stable
	days, err = SeedCalendar(ctx, db, testCalendarStart, testCalendarEnd.AddDate(0, 0, 10))
	require.NoError(t, err)
	assert.Equal(t, 10, days)

	again, err := store.FindDateID(ctx, 2024, 2, 29)
	require.NoError(t, err)
	assert.Equal(t, leapDay, again)

	ok, err := store.CategoryExists(ctx, 10)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = store.CategoryExists(ctx, 999)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestSeedCalendar_InvalidRange(t *testing.T) {
	db := openSQLiteTestDB(t)
	_, err := SeedCalendar(context.Background(), db, testCalendarEnd, testCalendarStart)
	assert.Error(t, err)
}

func TestNormalizeConnectionPoolSettings(t *testing.T) {
	maxOpen, maxIdle, lifetime, idleTime := NormalizeConnectionPoolSettings(0, 0, 0, 0)
	assert.Greater(t, maxOpen, 0)
	assert.Greater(t, maxIdle, 0)
	assert.LessOrEqual(t, maxIdle, maxOpen)
	assert.Greater(t, lifetime, time.Duration(0))
	assert.Greater(t, idleTime, time.Duration(0))
}

func TestCalculateSafeBatchSize(t *testing.T) {
	assert.Equal(t, 1, calculateSafeBatchSize(0, 3))
	assert.Equal(t, 500, calculateSafeBatchSize(500, 3))
	assert.Equal(t, 21511, calculateSafeBatchSize(100000, 3))
}
