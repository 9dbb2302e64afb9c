package inventory

import (
	"fmt"
	"sort"

	"github.com/shopspring/decimal"
)

// HealthStatus classifies an item's movement pattern. The classification is
// computed by an external analytics source; we only consume it. Keeping it a
// closed enum (with ParseHealthStatus as the only entry point for raw strings)
// means an unrecognized value can never be silently treated as healthy.
type HealthStatus string

const (
	StatusHealthy HealthStatus = "healthy"
	StatusSlow    HealthStatus = "slow"
	StatusDead    HealthStatus = "dead"
	StatusUnknown HealthStatus = "unknown"
)

// ParseHealthStatus maps a raw status value onto the closed enum. Anything
// unrecognized (including empty) becomes StatusUnknown.
func ParseHealthStatus(s string) HealthStatus {
	switch HealthStatus(s) {
	case StatusHealthy, StatusSlow, StatusDead:
		return HealthStatus(s)
	default:
		return StatusUnknown
	}
}

// AlertSeverity for health alerts.
type AlertSeverity string

const (
	SeverityWarning AlertSeverity = "warning"
	SeverityDanger  AlertSeverity = "danger"
)

// Alert is one actionable finding from the health aggregation.
type Alert struct {
	Severity AlertSeverity
	Message  string
	ItemName string
}

// ItemHealthInput is one catalog item plus its precomputed movement
// classification. DaysSinceLastOut is nil when the analytics source has no
// data for the item.
type ItemHealthInput struct {
	Name             string
	Stock            int
	MinStock         int
	Price            decimal.Decimal
	Status           HealthStatus
	DaysSinceLastOut *int
	TurnoverRate     float64
}

// SlowMovingItem is a dead or slow item surfaced in the summary.
type SlowMovingItem struct {
	Name             string
	Status           HealthStatus
	Value            decimal.Decimal
	DaysSinceLastOut int
	TurnoverRate     float64
}

// HealthSummary is the aggregated stock-health report. Recomputed fresh on
// every call, never persisted.
type HealthSummary struct {
	StatusCounts    map[HealthStatus]int
	TotalValue      decimal.Decimal
	DeadStockValue  decimal.Decimal
	LowStockCount   int
	SlowMovingItems []SlowMovingItem // top 10, sorted by DaysSinceLastOut desc
	Alerts          []Alert          // top 10, generation order
}

const summaryTopN = 10

// deadStockAlertThreshold is the stock valuation (IDR) above which a dead item
// gets a redistribution/disposal warning.
var deadStockAlertThreshold = decimal.NewFromInt(500_000)

// Defaults for DaysSinceLastOut when the analytics source has no data. Dead
// items sink to the bottom of the report with 999; slow items surface with 0.
// The asymmetry is intentional: an undated dead item is assumed ancient.
const (
	defaultDeadDays = 999
	defaultSlowDays = 0
)

// SummarizeHealth aggregates per-item movement classifications into counts,
// value totals and threshold alerts. Single pass plus one sort; pure.
func SummarizeHealth(items []ItemHealthInput) HealthSummary {
	summary := HealthSummary{
		StatusCounts:   map[HealthStatus]int{},
		TotalValue:     decimal.Zero,
		DeadStockValue: decimal.Zero,
	}

	var slow []SlowMovingItem
	var alerts []Alert

	for _, it := range items {
		status := it.Status
		if status == "" {
			status = StatusUnknown
		}
		summary.StatusCounts[status]++

		value := it.Price.Mul(decimal.NewFromInt(int64(it.Stock)))
		summary.TotalValue = summary.TotalValue.Add(value)
		if status == StatusDead {
			summary.DeadStockValue = summary.DeadStockValue.Add(value)
		}
		if it.Stock <= it.MinStock {
			summary.LowStockCount++
		}

		// Stock-level alert: out-of-stock beats low-stock.
		switch {
		case it.Stock == 0:
			alerts = append(alerts, Alert{
				Severity: SeverityDanger,
				Message:  "Out of stock!",
				ItemName: it.Name,
			})
		case it.Stock <= it.MinStock:
			alerts = append(alerts, Alert{
				Severity: SeverityWarning,
				Message:  fmt.Sprintf("Low stock: %d left (minimum %d)", it.Stock, it.MinStock),
				ItemName: it.Name,
			})
		}

		// Independent of the stock-level alert: high-value dead stock should
		// be redistributed or disposed of, so one item can carry two alerts.
		if status == StatusDead && value.GreaterThan(deadStockAlertThreshold) {
			alerts = append(alerts, Alert{
				Severity: SeverityWarning,
				Message:  fmt.Sprintf("Dead stock worth %s: consider redistribution or disposal", value.StringFixed(0)),
				ItemName: it.Name,
			})
		}

		if status == StatusDead || status == StatusSlow {
			days := defaultSlowDays
			if status == StatusDead {
				days = defaultDeadDays
			}
			if it.DaysSinceLastOut != nil {
				days = *it.DaysSinceLastOut
			}
			slow = append(slow, SlowMovingItem{
				Name:             it.Name,
				Status:           status,
				Value:            value,
				DaysSinceLastOut: days,
				TurnoverRate:     it.TurnoverRate,
			})
		}
	}

	sort.SliceStable(slow, func(i, j int) bool {
		return slow[i].DaysSinceLastOut > slow[j].DaysSinceLastOut
	})
	if len(slow) > summaryTopN {
		slow = slow[:summaryTopN]
	}
	if len(alerts) > summaryTopN {
		alerts = alerts[:summaryTopN]
	}

	summary.SlowMovingItems = slow
	summary.Alerts = alerts
	return summary
}
