// Package stockrepo persists current stock quantities per product and
// variant and serves them to the inventory classifier as snapshots.
package stockrepo

import (
	"time"

	"github.com/google/uuid"
)

// StockLevelDTO represents one product/variant stock row. VariantID is
// the zero UUID for plain products, matching the snapshot key shape.
type StockLevelDTO struct {
	ProductID uuid.UUID `gorm:"type:uuid;primaryKey"`
	VariantID uuid.UUID `gorm:"type:uuid;primaryKey"`
	Quantity  int
	UpdatedAt time.Time
}

// TableName specifies the database table name for stock rows.
func (StockLevelDTO) TableName() string {
	return "stock_levels"
}
