package repository

import (
	"context"

	"github.com/shopspring/decimal"
)

// ItemHealthRow is the raw join of an item with its precomputed movement
// classification. Produced by the DB; the use case converts it into domain
// input. Status is the raw stored value; DaysSinceLastOut is nil when the
// analytics source has no outbound data for the item.
type ItemHealthRow struct {
	ItemID           string
	Name             string
	Stock            int
	MinStock         int
	Price            decimal.Decimal
	Status           string
	DaysSinceLastOut *int
	TurnoverRate     float64
}

// HealthRepository reads items joined with their health classification.
// Implementations are read-only.
type HealthRepository interface {
	ListItemHealth(ctx context.Context) ([]ItemHealthRow, error)
}
