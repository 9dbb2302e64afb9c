package entity

import "time"

// RecommendationTier classifies how soon an item needs reordering relative to
// the procurement lead time.
type RecommendationTier string

const (
	TierUrgent RecommendationTier = "urgent" // reorder now: hits minimum within lead time
	TierPlan   RecommendationTier = "plan"   // schedule a reorder: within twice the lead time
	TierSafe   RecommendationTier = "safe"
)

// UnboundedDays is the sentinel for "effectively never reaches minimum stock"
// (no measured consumption in the trailing window).
const UnboundedDays = 999

// Forecast is the per-item restock prediction. Exactly one active Forecast
// exists per item; every batch run overwrites the previous one.
type Forecast struct {
	ItemID           string
	AvgDailyUsage    float64
	DaysUntilMin     int // days until stock falls to MinStock, or UnboundedDays
	PredictedMinDate time.Time
	Recommendation   RecommendationTier
	Confidence       float64 // data-sufficiency proxy in [0,1], not an error bound
	CalculatedAt     time.Time
}
