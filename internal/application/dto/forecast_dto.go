package dto

// PredictionDTO one item's restock forecast as returned by the batch run.
type PredictionDTO struct {
	ItemID           string  `json:"item_id"`
	ItemName         string  `json:"item_name"`
	CurrentStock     int     `json:"current_stock"`
	MinStock         int     `json:"min_stock"`
	AvgDailyUsage    float64 `json:"avg_daily_usage"`
	DaysUntilMin     int     `json:"days_until_min_stock"`
	PredictedMinDate string  `json:"predicted_min_date"` // YYYY-MM-DD
	Recommendation   string  `json:"recommendation"`
	Confidence       float64 `json:"confidence"`
}

// ForecastRunResult outcome of one restock-prediction batch run. Urgent is
// the subset feeding the alert dispatcher; it is not part of the response
// body (every urgent prediction is already in Predictions).
type ForecastRunResult struct {
	PredictionsCount int             `json:"predictions_count"`
	LowStockCount    int             `json:"low_stock_count"`
	Predictions      []PredictionDTO `json:"predictions"`
	Urgent           []PredictionDTO `json:"-"`
}

// DispatchOutcomeDTO per-recipient delivery result.
type DispatchOutcomeDTO struct {
	Recipient string `json:"recipient"`
	Phone     string `json:"phone"`
	Success   bool   `json:"success"`
	Error     string `json:"error,omitempty"`
}

// DispatchReportDTO summary of one alert fan-out.
type DispatchReportDTO struct {
	Attempted int                  `json:"attempted"`
	Outcomes  []DispatchOutcomeDTO `json:"outcomes"`
}
