// Package inventory holds the pure calculation core of the intelligence
// engine: restock forecasting and stock-health aggregation. No I/O here; the
// application layer feeds these functions from repositories.
package inventory

import (
	"math"
	"time"

	"github.com/andikasp/atk-intel/internal/domain/entity"
)

// UsageWindowDays is the trailing window of consumption history the forecaster
// averages over. The divisor is always this fixed window length, not the span
// of history actually available, so items younger than the window get their
// usage understated. Known approximation, kept deliberately.
const UsageWindowDays = 30

// DefaultLeadTimeDays is the procurement lead time used as the urgency
// threshold when none is configured.
const DefaultLeadTimeDays = 14

// ForecastInput is the per-item data needed to compute a restock forecast.
// OutboundQty and RecordCount cover "out" usage records in the trailing
// UsageWindowDays ending at Now.
type ForecastInput struct {
	Stock       int
	MinStock    int
	OutboundQty int // total outbound quantity in the window
	RecordCount int // number of outbound records in the window
	Now         time.Time
}

// RestockForecast is the computed prediction, before persistence.
type RestockForecast struct {
	AvgDailyUsage    float64
	DaysUntilMin     int
	PredictedMinDate time.Time
	Recommendation   entity.RecommendationTier
	Confidence       float64
}

// CalculateRestock computes the days-until-minimum-stock forecast for one
// item.
//
// avgDailyUsage = outbound total / UsageWindowDays. With no measured usage the
// horizon is the entity.UnboundedDays sentinel and the tier is safe. A stock
// level already at or below minimum clamps the horizon to zero, which lands in
// the urgent tier.
func CalculateRestock(in ForecastInput, leadTimeDays int) RestockForecast {
	if leadTimeDays <= 0 {
		leadTimeDays = DefaultLeadTimeDays
	}

	avg := float64(in.OutboundQty) / float64(UsageWindowDays)

	days := entity.UnboundedDays
	if avg > 0 {
		days = int(math.Floor(float64(in.Stock-in.MinStock) / avg))
		if days < 0 {
			days = 0
		}
	}

	tier := entity.TierSafe
	switch {
	case days <= leadTimeDays:
		tier = entity.TierUrgent
	case days <= 2*leadTimeDays:
		tier = entity.TierPlan
	}

	confidence := float64(in.RecordCount) / 10.0
	if confidence > 1 {
		confidence = 1
	}

	return RestockForecast{
		AvgDailyUsage:    avg,
		DaysUntilMin:     days,
		PredictedMinDate: in.Now.AddDate(0, 0, days),
		Recommendation:   tier,
		Confidence:       confidence,
	}
}
