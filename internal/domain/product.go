package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product is a catalog item sold over the till. Rows are created by seeding
// only; sale and return operations are the only stock mutations.
type Product struct {
	ID        int64           `gorm:"primaryKey" json:"id"`
	Name      string          `gorm:"uniqueIndex;size:100" json:"name"`
	Price     decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"price"`
	Stock     int             `gorm:"not null" json:"stock"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}

// TableName Specify table name
func (Product) TableName() string {
	return "products"
}
