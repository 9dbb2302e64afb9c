package repository

import (
	"context"

	"github.com/andikasp/atk-intel/internal/domain/entity"
)

// ForecastRepository persists restock predictions, one row per item.
type ForecastRepository interface {
	// Upsert fully replaces the item's prior forecast (insert-or-overwrite
	// keyed by item ID). No forecast history is retained.
	Upsert(ctx context.Context, f *entity.Forecast) error
}
