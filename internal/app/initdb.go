package app

import (
	"context"

	"github.com/talkincode/tillpos/internal/catalog"
	"go.uber.org/zap"
)

// checkCatalog seeds the fixed product catalog. Seeding is idempotent:
// running it again resets the four fixed rows to their default price and
// stock.
func (a *Application) checkCatalog() {
	if err := catalog.NewRepository(a.gormDB).Seed(context.Background()); err != nil {
		zap.L().Error("failed to seed product catalog", zap.Error(err))
		return
	}
	zap.L().Info("product catalog seeded")
}
