package ledger

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"github.com/talkincode/tillpos/internal/domain"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// setupTestDB creates an in-memory SQLite database for testing.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err, "failed to open test database")
	require.NoError(t, db.AutoMigrate(domain.Tables...), "failed to migrate test database")

	// The history join needs product rows.
	require.NoError(t, db.Create(&domain.Product{
		ID: 1, Name: "Manzana", Price: decimal.NewFromInt(1000), Stock: 50,
	}).Error)
	require.NoError(t, db.Create(&domain.Product{
		ID: 2, Name: "Banana", Price: decimal.NewFromInt(500), Stock: 100,
	}).Error)
	return db
}

func TestAppendAndLatestFor(t *testing.T) {
	db := setupTestDB(t)
	repo := NewRepository(db)
	ctx := context.Background()
	soldAt := time.Date(2026, 8, 31, 10, 30, 0, 0, time.UTC)

	first, err := repo.Append(ctx, 1, 5, decimal.NewFromInt(5000), soldAt)
	require.NoError(t, err)
	second, err := repo.Append(ctx, 1, 2, decimal.NewFromInt(2000), soldAt)
	require.NoError(t, err)
	require.Greater(t, second.ID, first.ID)

	// Highest id wins the tie-break.
	latest, err := repo.LatestFor(ctx, 1)
	require.NoError(t, err)
	require.Equal(t, second.ID, latest.ID)
	require.Equal(t, 2, latest.Quantity)
	require.Equal(t, "2026-08-31 10:30:00", latest.SoldAt)
}

func TestLatestForWithoutHistory(t *testing.T) {
	db := setupTestDB(t)
	repo := NewRepository(db)

	_, err := repo.LatestFor(context.Background(), 1)
	require.ErrorIs(t, err, domain.ErrInsufficientHistory)
}

func TestUpdate(t *testing.T) {
	db := setupTestDB(t)
	repo := NewRepository(db)
	ctx := context.Background()

	record, err := repo.Append(ctx, 1, 5, decimal.NewFromInt(5000), time.Now())
	require.NoError(t, err)

	require.NoError(t, repo.Update(ctx, record.ID, 2, decimal.NewFromInt(2000)))

	updated, err := repo.LatestFor(ctx, 1)
	require.NoError(t, err)
	require.Equal(t, 2, updated.Quantity)
	require.True(t, updated.Total.Equal(decimal.NewFromInt(2000)), "total = %s", updated.Total)
}

func TestDelete(t *testing.T) {
	db := setupTestDB(t)
	repo := NewRepository(db)
	ctx := context.Background()

	record, err := repo.Append(ctx, 1, 5, decimal.NewFromInt(5000), time.Now())
	require.NoError(t, err)
	require.NoError(t, repo.Delete(ctx, record.ID))

	_, err = repo.LatestFor(ctx, 1)
	require.ErrorIs(t, err, domain.ErrInsufficientHistory)
}

func TestAllJoinsProductNames(t *testing.T) {
	db := setupTestDB(t)
	repo := NewRepository(db)
	ctx := context.Background()
	soldAt := time.Now()

	_, err := repo.Append(ctx, 1, 5, decimal.NewFromInt(5000), soldAt)
	require.NoError(t, err)
	_, err = repo.Append(ctx, 2, 10, decimal.NewFromInt(5000), soldAt)
	require.NoError(t, err)

	entries, err := repo.All(ctx)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	require.Equal(t, "Manzana", entries[0].ProductName)
	require.Equal(t, 5, entries[0].Quantity)
	require.Equal(t, "Banana", entries[1].ProductName)
	require.Equal(t, 10, entries[1].Quantity)
}

func TestAllEmptyLedger(t *testing.T) {
	db := setupTestDB(t)
	repo := NewRepository(db)

	entries, err := repo.All(context.Background())
	require.NoError(t, err)
	require.Empty(t, entries)
}
