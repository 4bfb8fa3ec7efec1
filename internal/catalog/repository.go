package catalog

import (
	"context"
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/talkincode/tillpos/internal/domain"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// defaultProducts is the fixed catalog seeded at startup. There is no catalog
// management beyond this set.
var defaultProducts = []domain.Product{
	{ID: 1, Name: "Manzana", Price: decimal.NewFromInt(1000), Stock: 50},
	{ID: 2, Name: "Banana", Price: decimal.NewFromInt(500), Stock: 100},
	{ID: 3, Name: "Naranja", Price: decimal.NewFromInt(750), Stock: 80},
	{ID: 4, Name: "Uva", Price: decimal.NewFromInt(2000), Stock: 60},
}

// Repository handles database operations for the product catalog.
type Repository struct {
	db *gorm.DB
}

// NewRepository creates a new GORM-based catalog repository.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// Seed upserts the fixed product rows. Running it again resets those rows to
// their default name, price and stock.
func (r *Repository) Seed(ctx context.Context) error {
	products := make([]domain.Product, len(defaultProducts))
	copy(products, defaultProducts)
	err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{UpdateAll: true}).
		Create(&products).Error
	if err != nil {
		return fmt.Errorf("seed catalog: %w", err)
	}
	return nil
}

// Get retrieves a product by id.
func (r *Repository) Get(ctx context.Context, id int64) (*domain.Product, error) {
	var product domain.Product
	err := r.db.WithContext(ctx).First(&product, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("product %d: %w", id, domain.ErrProductNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("query product %d: %w", id, err)
	}
	return &product, nil
}

// List retrieves all products in storage order.
func (r *Repository) List(ctx context.Context) ([]domain.Product, error) {
	var products []domain.Product
	if err := r.db.WithContext(ctx).Find(&products).Error; err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	return products, nil
}

// AdjustStock applies a signed delta to a product's stock. No lower-bound
// check happens here; the register validates available stock before selling.
func (r *Repository) AdjustStock(ctx context.Context, id int64, delta int) error {
	res := r.db.WithContext(ctx).
		Model(&domain.Product{}).
		Where("id = ?", id).
		Update("stock", gorm.Expr("stock + ?", delta))
	if res.Error != nil {
		return fmt.Errorf("adjust stock of product %d: %w", id, res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("product %d: %w", id, domain.ErrProductNotFound)
	}
	return nil
}
