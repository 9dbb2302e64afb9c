package repository

import (
	"context"
	"time"
)

// OutboundUsage is the aggregated consumption of one item over a window:
// total outbound quantity and how many records contributed to it.
type OutboundUsage struct {
	TotalQuantity int
	RecordCount   int
}

// UsageRepository reads historical stock movements. Read-only.
type UsageRepository interface {
	// GetOutboundTotals returns per-item outbound usage since the given time,
	// keyed by item ID, in a single query. Items with no outbound records in
	// the window are absent from the map.
	GetOutboundTotals(ctx context.Context, since time.Time) (map[string]OutboundUsage, error)
}
