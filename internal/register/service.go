package register

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"github.com/talkincode/tillpos/internal/catalog"
	"github.com/talkincode/tillpos/internal/domain"
	"github.com/talkincode/tillpos/internal/ledger"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// SaleLine is one requested (product, quantity) pair of a batch sale. Lines
// are an ordered sequence so diagnostics and receipt lines come out in the
// order the operator entered them.
type SaleLine struct {
	ProductID int64
	Quantity  int
}

// LineDiagnostic reports a sale line that was skipped without side effects.
type LineDiagnostic struct {
	ProductID int64
	Quantity  int
	Err       error
}

// SaleResult is the outcome of a batch sale: the receipt lines and batch
// total for the lines that succeeded, plus a diagnostic per skipped line.
type SaleResult struct {
	Lines    []domain.ReceiptLine
	Total    decimal.Decimal
	Skipped  []LineDiagnostic
	IssuedAt time.Time
}

// ReturnResult is the outcome of a successful return.
type ReturnResult struct {
	ProductID     int64
	Quantity      int
	Remaining     int
	RecordDeleted bool
}

// Service orchestrates sale and return transactions against the catalog and
// the sales ledger.
type Service struct {
	db  *gorm.DB
	now func() time.Time
}

// NewService creates a register service over the given database handle.
func NewService(db *gorm.DB) *Service {
	return &Service{db: db, now: time.Now}
}

// Sale processes an ordered batch of sale lines in one transaction. Lines for
// unknown products, lines exceeding available stock and lines with a
// non-positive quantity are skipped with a diagnostic and no side effect;
// every other line decrements stock and appends a ledger record. Partial
// success is allowed: one bad line never fails the batch.
func (s *Service) Sale(ctx context.Context, lines []SaleLine) (*SaleResult, error) {
	result := &SaleResult{Total: decimal.Zero, IssuedAt: s.now()}
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		cat := catalog.NewRepository(tx)
		led := ledger.NewRepository(tx)
		for _, line := range lines {
			if line.Quantity <= 0 {
				result.Skipped = append(result.Skipped, LineDiagnostic{
					ProductID: line.ProductID,
					Quantity:  line.Quantity,
					Err:       domain.ErrInvalidQuantity,
				})
				continue
			}
			product, err := cat.Get(ctx, line.ProductID)
			if errors.Is(err, domain.ErrProductNotFound) {
				result.Skipped = append(result.Skipped, LineDiagnostic{
					ProductID: line.ProductID,
					Quantity:  line.Quantity,
					Err:       err,
				})
				continue
			}
			if err != nil {
				return err
			}
			if product.Stock < line.Quantity {
				result.Skipped = append(result.Skipped, LineDiagnostic{
					ProductID: line.ProductID,
					Quantity:  line.Quantity,
					Err: fmt.Errorf("product %d holds %d of %d requested: %w",
						line.ProductID, product.Stock, line.Quantity, domain.ErrInsufficientStock),
				})
				continue
			}

			lineTotal := product.Price.Mul(decimal.NewFromInt(int64(line.Quantity)))
			if err := cat.AdjustStock(ctx, product.ID, -line.Quantity); err != nil {
				return err
			}
			if _, err := led.Append(ctx, product.ID, line.Quantity, lineTotal, result.IssuedAt); err != nil {
				return err
			}
			result.Total = result.Total.Add(lineTotal)
			result.Lines = append(result.Lines, domain.ReceiptLine{
				Name:      product.Name,
				Quantity:  line.Quantity,
				UnitPrice: product.Price,
				LineTotal: lineTotal,
			})
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("sale transaction: %w", err)
	}

	for _, skipped := range result.Skipped {
		zap.L().Warn("sale line skipped",
			zap.Int64("product_id", skipped.ProductID),
			zap.Int("quantity", skipped.Quantity),
			zap.Error(skipped.Err))
	}
	zap.L().Info("sale recorded",
		zap.Int("lines", len(result.Lines)),
		zap.Int("skipped", len(result.Skipped)),
		zap.String("total", result.Total.String()))
	return result, nil
}

// Return reverses part or all of the most recent sale of a product: stock is
// restored and the latest ledger record shrinks by the returned quantity, or
// is deleted when nothing remains. Returns never target older sale records.
func (s *Service) Return(ctx context.Context, productID int64, quantity int) (*ReturnResult, error) {
	if quantity <= 0 {
		return nil, fmt.Errorf("return %d units: %w", quantity, domain.ErrInvalidQuantity)
	}
	var result *ReturnResult
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		cat := catalog.NewRepository(tx)
		led := ledger.NewRepository(tx)

		product, err := cat.Get(ctx, productID)
		if err != nil {
			return err
		}
		record, err := led.LatestFor(ctx, productID)
		if err != nil {
			return err
		}
		if record.Quantity < quantity {
			return fmt.Errorf("latest sale of product %d holds %d of %d requested: %w",
				productID, record.Quantity, quantity, domain.ErrInsufficientHistory)
		}

		if err := cat.AdjustStock(ctx, productID, quantity); err != nil {
			return err
		}
		remaining := record.Quantity - quantity
		if remaining > 0 {
			newTotal := product.Price.Mul(decimal.NewFromInt(int64(remaining)))
			if err := led.Update(ctx, record.ID, remaining, newTotal); err != nil {
				return err
			}
		} else {
			if err := led.Delete(ctx, record.ID); err != nil {
				return err
			}
		}
		result = &ReturnResult{
			ProductID:     productID,
			Quantity:      quantity,
			Remaining:     remaining,
			RecordDeleted: remaining == 0,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	zap.L().Info("return recorded",
		zap.Int64("product_id", productID),
		zap.Int("quantity", quantity),
		zap.Bool("record_deleted", result.RecordDeleted))
	return result, nil
}
