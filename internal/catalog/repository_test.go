package catalog

import (
	"context"
	"testing"

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
	return db
}

func TestSeedIsIdempotent(t *testing.T) {
	db := setupTestDB(t)
	repo := NewRepository(db)
	ctx := context.Background()

	require.NoError(t, repo.Seed(ctx))
	require.NoError(t, repo.Seed(ctx))

	products, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, products, 4)

	byID := map[int64]domain.Product{}
	for _, p := range products {
		byID[p.ID] = p
	}
	require.Equal(t, "Manzana", byID[1].Name)
	require.True(t, byID[1].Price.Equal(decimal.NewFromInt(1000)), "price = %s", byID[1].Price)
	require.Equal(t, 50, byID[1].Stock)
	require.Equal(t, "Banana", byID[2].Name)
	require.Equal(t, 100, byID[2].Stock)
	require.Equal(t, "Naranja", byID[3].Name)
	require.Equal(t, 80, byID[3].Stock)
	require.Equal(t, "Uva", byID[4].Name)
	require.Equal(t, 60, byID[4].Stock)
}

func TestSeedResetsMutatedRows(t *testing.T) {
	db := setupTestDB(t)
	repo := NewRepository(db)
	ctx := context.Background()

	require.NoError(t, repo.Seed(ctx))
	require.NoError(t, repo.AdjustStock(ctx, 1, -10))

	require.NoError(t, repo.Seed(ctx))
	product, err := repo.Get(ctx, 1)
	require.NoError(t, err)
	require.Equal(t, 50, product.Stock)
}

func TestGetUnknownProduct(t *testing.T) {
	db := setupTestDB(t)
	repo := NewRepository(db)

	_, err := repo.Get(context.Background(), 99)
	require.ErrorIs(t, err, domain.ErrProductNotFound)
}

func TestAdjustStock(t *testing.T) {
	db := setupTestDB(t)
	repo := NewRepository(db)
	ctx := context.Background()
	require.NoError(t, repo.Seed(ctx))

	require.NoError(t, repo.AdjustStock(ctx, 1, -5))
	product, err := repo.Get(ctx, 1)
	require.NoError(t, err)
	require.Equal(t, 45, product.Stock)

	require.NoError(t, repo.AdjustStock(ctx, 1, 3))
	product, err = repo.Get(ctx, 1)
	require.NoError(t, err)
	require.Equal(t, 48, product.Stock)
}

func TestAdjustStockUnknownProduct(t *testing.T) {
	db := setupTestDB(t)
	repo := NewRepository(db)
	ctx := context.Background()
	require.NoError(t, repo.Seed(ctx))

	err := repo.AdjustStock(ctx, 42, -1)
	require.ErrorIs(t, err, domain.ErrProductNotFound)
}
