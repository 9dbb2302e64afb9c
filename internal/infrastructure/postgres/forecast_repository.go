package postgres

import (
	"context"
	"fmt"

	"github.com/andikasp/atk-intel/internal/domain/entity"
	"github.com/andikasp/atk-intel/internal/domain/repository"
)

var _ repository.ForecastRepository = (*ForecastRepo)(nil)

// ForecastRepo persists restock predictions, one row per item.
type ForecastRepo struct {
	q Querier
}

// NewForecastRepository builds the adapter.
func NewForecastRepository(q Querier) *ForecastRepo {
	return &ForecastRepo{q: q}
}

// Upsert overwrites the item's previous prediction entirely; no history rows
// are kept.
func (r *ForecastRepo) Upsert(ctx context.Context, f *entity.Forecast) error {
	query := `
		INSERT INTO restock_predictions
			(item_id, avg_daily_usage, days_until_min_stock, predicted_min_date, recommendation, confidence, calculated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (item_id) DO UPDATE SET
			avg_daily_usage      = EXCLUDED.avg_daily_usage,
			days_until_min_stock = EXCLUDED.days_until_min_stock,
			predicted_min_date   = EXCLUDED.predicted_min_date,
			recommendation       = EXCLUDED.recommendation,
			confidence           = EXCLUDED.confidence,
			calculated_at        = EXCLUDED.calculated_at`
	_, err := r.q.Exec(ctx, query,
		f.ItemID, f.AvgDailyUsage, f.DaysUntilMin, f.PredictedMinDate,
		string(f.Recommendation), f.Confidence, f.CalculatedAt,
	)
	if err != nil {
		return fmt.Errorf("upsert forecast: %w", err)
	}
	return nil
}
