package ledger

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"github.com/talkincode/tillpos/internal/domain"
	"gorm.io/gorm"
)

// Repository handles database operations for the sales ledger.
type Repository struct {
	db *gorm.DB
}

// NewRepository creates a new GORM-based ledger repository.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// Append inserts a new sale record stamped with soldAt.
func (r *Repository) Append(ctx context.Context, productID int64, quantity int, total decimal.Decimal, soldAt time.Time) (*domain.SaleRecord, error) {
	record := &domain.SaleRecord{
		ProductID: productID,
		Quantity:  quantity,
		Total:     total,
		SoldAt:    soldAt.Format(domain.TimeLayout),
	}
	if err := r.db.WithContext(ctx).Create(record).Error; err != nil {
		return nil, fmt.Errorf("append sale record: %w", err)
	}
	return record, nil
}

// LatestFor retrieves the most recently inserted sale record for a product.
// Ties break on insertion order: the highest id wins.
func (r *Repository) LatestFor(ctx context.Context, productID int64) (*domain.SaleRecord, error) {
	var record domain.SaleRecord
	err := r.db.WithContext(ctx).
		Where("product_id = ?", productID).
		Order("id DESC").
		First(&record).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("no sale of product %d: %w", productID, domain.ErrInsufficientHistory)
	}
	if err != nil {
		return nil, fmt.Errorf("query latest sale of product %d: %w", productID, err)
	}
	return &record, nil
}

// Update overwrites quantity and total on an existing sale record.
func (r *Repository) Update(ctx context.Context, recordID int64, quantity int, total decimal.Decimal) error {
	err := r.db.WithContext(ctx).
		Model(&domain.SaleRecord{}).
		Where("id = ?", recordID).
		Updates(map[string]interface{}{
			"quantity": quantity,
			"total":    total,
		}).Error
	if err != nil {
		return fmt.Errorf("update sale record %d: %w", recordID, err)
	}
	return nil
}

// Delete removes a sale record.
func (r *Repository) Delete(ctx context.Context, recordID int64) error {
	if err := r.db.WithContext(ctx).Delete(&domain.SaleRecord{}, recordID).Error; err != nil {
		return fmt.Errorf("delete sale record %d: %w", recordID, err)
	}
	return nil
}

// All retrieves every sale record joined with its product name, in insertion
// order, for the history report.
func (r *Repository) All(ctx context.Context) ([]domain.SaleHistoryEntry, error) {
	var entries []domain.SaleHistoryEntry
	err := r.db.WithContext(ctx).
		Table("sales_history").
		Select("products.name AS product_name, sales_history.quantity, sales_history.total, sales_history.sold_at").
		Joins("JOIN products ON products.id = sales_history.product_id").
		Order("sales_history.id").
		Scan(&entries).Error
	if err != nil {
		return nil, fmt.Errorf("list sales history: %w", err)
	}
	return entries, nil
}
