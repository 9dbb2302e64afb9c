package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/andikasp/atk-intel/internal/domain/repository"
)

var _ repository.UsageRepository = (*UsageRepo)(nil)

// UsageRepo reads historical stock movements. Read-only.
type UsageRepo struct {
	q Querier
}

// NewUsageRepository builds the adapter.
func NewUsageRepository(q Querier) *UsageRepo {
	return &UsageRepo{q: q}
}

// GetOutboundTotals aggregates outbound usage per item since the given time
// in one query, replacing a per-item round trip during forecast runs.
func (r *UsageRepo) GetOutboundTotals(ctx context.Context, since time.Time) (map[string]repository.OutboundUsage, error) {
	query := `
		SELECT item_id, COALESCE(SUM(quantity), 0), COUNT(*)
		FROM usage_records
		WHERE direction = 'out' AND occurred_at >= $1
		GROUP BY item_id`
	rows, err := r.q.Query(ctx, query, since)
	if err != nil {
		return nil, fmt.Errorf("get outbound totals: %w", err)
	}
	defer rows.Close()

	totals := make(map[string]repository.OutboundUsage)
	for rows.Next() {
		var itemID string
		var u repository.OutboundUsage
		if err := rows.Scan(&itemID, &u.TotalQuantity, &u.RecordCount); err != nil {
			return nil, fmt.Errorf("scan outbound usage: %w", err)
		}
		totals[itemID] = u
	}
	return totals, rows.Err()
}
