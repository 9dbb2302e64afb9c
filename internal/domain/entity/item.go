package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Item is a catalog entry for an ATK (office supply) consumable.
// Stock and MinStock are whole units; Price is in local currency (IDR).
type Item struct {
	ID        string
	Name      string
	Unit      string // rim, pcs, box, ...
	Stock     int
	MinStock  int
	Price     decimal.Decimal
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Value returns the stock valuation of the item (stock * price).
func (i Item) Value() decimal.Decimal {
	return i.Price.Mul(decimal.NewFromInt(int64(i.Stock)))
}

// BelowMin reports whether the item is at or below its minimum stock level.
func (i Item) BelowMin() bool {
	return i.Stock <= i.MinStock
}
