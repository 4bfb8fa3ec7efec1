package app

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/talkincode/tillpos/config"
	"github.com/talkincode/tillpos/internal/domain"
)

func newTestApplication(t *testing.T) *Application {
	t.Helper()

	cfg := config.DefaultAppConfig()
	cfg.System.Workdir = t.TempDir()
	application := NewApplication(cfg)
	require.NoError(t, application.Init())
	t.Cleanup(application.Release)
	return application
}

func TestInitMigratesAndSeeds(t *testing.T) {
	application := newTestApplication(t)

	var count int64
	require.NoError(t, application.DB().Model(&domain.Product{}).Count(&count).Error)
	require.EqualValues(t, 4, count)
}

func TestInitDbRebuildsSchema(t *testing.T) {
	application := newTestApplication(t)

	require.NoError(t, application.DB().Create(&domain.SaleRecord{
		ProductID: 1, Quantity: 1, SoldAt: "2026-08-31 10:30:00",
	}).Error)

	application.InitDb()

	var records int64
	require.NoError(t, application.DB().Model(&domain.SaleRecord{}).Count(&records).Error)
	require.EqualValues(t, 0, records)

	var products int64
	require.NoError(t, application.DB().Model(&domain.Product{}).Count(&products).Error)
	require.EqualValues(t, 4, products)
}
