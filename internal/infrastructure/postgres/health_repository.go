package postgres

import (
	"context"
	"fmt"

	"github.com/andikasp/atk-intel/internal/domain/repository"
)

var _ repository.HealthRepository = (*HealthRepo)(nil)

// HealthRepo reads items joined with their precomputed movement
// classification. The classification table is filled by an external
// analytics job; items it has not seen yet come back with an empty status,
// which the domain maps to "unknown".
type HealthRepo struct {
	q Querier
}

// NewHealthRepository builds the adapter.
func NewHealthRepository(q Querier) *HealthRepo {
	return &HealthRepo{q: q}
}

func (r *HealthRepo) ListItemHealth(ctx context.Context) ([]repository.ItemHealthRow, error) {
	query := `
		SELECT
			i.id, i.name, i.stock, i.min_stock, i.price,
			COALESCE(h.status, ''),
			h.days_since_last_out,
			COALESCE(h.turnover_rate, 0)
		FROM items i
		LEFT JOIN item_health h ON h.item_id = i.id
		ORDER BY i.name ASC`
	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list item health: %w", err)
	}
	defer rows.Close()

	var list []repository.ItemHealthRow
	for rows.Next() {
		var row repository.ItemHealthRow
		if err := rows.Scan(
			&row.ItemID, &row.Name, &row.Stock, &row.MinStock, &row.Price,
			&row.Status, &row.DaysSinceLastOut, &row.TurnoverRate,
		); err != nil {
			return nil, fmt.Errorf("scan item health: %w", err)
		}
		list = append(list, row)
	}
	return list, rows.Err()
}
