package domain

import (
	"github.com/shopspring/decimal"
)

// TimeLayout is the storage format for sale timestamps.
const TimeLayout = "2006-01-02 15:04:05"

// SaleRecord is one ledger entry for a quantity of a product sold at a point
// in time. A later return shrinks the quantity/total or deletes the row; a
// record never persists with quantity zero.
type SaleRecord struct {
	ID        int64           `gorm:"primaryKey;autoIncrement" json:"id"`
	ProductID int64           `gorm:"index;not null" json:"product_id"`
	Quantity  int             `gorm:"not null" json:"quantity"`
	Total     decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"total"`
	SoldAt    string          `gorm:"size:19;not null" json:"sold_at"`
}

// TableName Specify table name
func (SaleRecord) TableName() string {
	return "sales_history"
}

// SaleHistoryEntry is a SaleRecord joined with its product name, used by the
// history report.
type SaleHistoryEntry struct {
	ProductName string          `json:"product_name"`
	Quantity    int             `json:"quantity"`
	Total       decimal.Decimal `json:"total"`
	SoldAt      string          `json:"sold_at"`
}

// ReceiptLine is one printable line of a sale receipt.
type ReceiptLine struct {
	Name      string          `json:"name"`
	Quantity  int             `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unit_price"`
	LineTotal decimal.Decimal `json:"line_total"`
}
