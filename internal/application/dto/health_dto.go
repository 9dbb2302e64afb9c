package dto

import "github.com/shopspring/decimal"

// SlowMovingItemDTO one dead/slow item in the health summary.
type SlowMovingItemDTO struct {
	Name             string          `json:"name"`
	Status           string          `json:"status"`
	Value            decimal.Decimal `json:"value"`
	DaysSinceLastOut int             `json:"days_since_last_out"`
	TurnoverRate     float64         `json:"turnover_rate"`
}

// HealthAlertDTO one aggregated stock-health alert.
type HealthAlertDTO struct {
	Severity string `json:"severity"`
	Message  string `json:"message"`
	ItemName string `json:"item_name"`
}

// HealthSummaryDTO the aggregated stock-health report.
type HealthSummaryDTO struct {
	StatusCounts    map[string]int      `json:"status_counts"`
	TotalValue      decimal.Decimal     `json:"total_value"`
	DeadStockValue  decimal.Decimal     `json:"dead_stock_value"`
	LowStockCount   int                 `json:"low_stock_count"`
	SlowMovingItems []SlowMovingItemDTO `json:"slow_moving_items"`
	Alerts          []HealthAlertDTO    `json:"alerts"`
}
