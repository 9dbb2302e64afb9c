package inventory_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/andikasp/atk-intel/internal/domain/entity"
	"github.com/andikasp/atk-intel/internal/domain/inventory"
)

var testNow = time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)

// 60 units over the 30-day window -> 2/day; (100-20)/2 = 40 days -> safe
// (40 > 2*14).
func TestCalculateRestock_SafeTier(t *testing.T) {
	fc := inventory.CalculateRestock(inventory.ForecastInput{
		Stock: 100, MinStock: 20, OutboundQty: 60, RecordCount: 12, Now: testNow,
	}, 14)

	assert.InDelta(t, 2.0, fc.AvgDailyUsage, 1e-9)
	assert.Equal(t, 40, fc.DaysUntilMin)
	assert.Equal(t, entity.TierSafe, fc.Recommendation)
	assert.Equal(t, testNow.AddDate(0, 0, 40), fc.PredictedMinDate)
}

// 30 units over the window -> 1/day; (30-20)/1 = 10 days -> urgent (10 <= 14).
func TestCalculateRestock_UrgentTier(t *testing.T) {
	fc := inventory.CalculateRestock(inventory.ForecastInput{
		Stock: 30, MinStock: 20, OutboundQty: 30, RecordCount: 5, Now: testNow,
	}, 14)

	assert.Equal(t, 10, fc.DaysUntilMin)
	assert.Equal(t, entity.TierUrgent, fc.Recommendation)
}

func TestCalculateRestock_PlanTier(t *testing.T) {
	// (60-20)/2 = 20 days: inside twice the lead time but outside the lead time.
	fc := inventory.CalculateRestock(inventory.ForecastInput{
		Stock: 60, MinStock: 20, OutboundQty: 60, RecordCount: 10, Now: testNow,
	}, 14)

	assert.Equal(t, 20, fc.DaysUntilMin)
	assert.Equal(t, entity.TierPlan, fc.Recommendation)
}

// No measured consumption: unbounded horizon, safe tier.
func TestCalculateRestock_ZeroUsageIsUnbounded(t *testing.T) {
	fc := inventory.CalculateRestock(inventory.ForecastInput{
		Stock: 5, MinStock: 20, OutboundQty: 0, RecordCount: 0, Now: testNow,
	}, 14)

	assert.Zero(t, fc.AvgDailyUsage)
	assert.Equal(t, entity.UnboundedDays, fc.DaysUntilMin)
	assert.Equal(t, entity.TierSafe, fc.Recommendation)
	assert.Zero(t, fc.Confidence)
}

// Stock already at or below minimum clamps the horizon to zero days.
func TestCalculateRestock_BelowMinClampsToZero(t *testing.T) {
	fc := inventory.CalculateRestock(inventory.ForecastInput{
		Stock: 10, MinStock: 20, OutboundQty: 30, RecordCount: 6, Now: testNow,
	}, 14)

	assert.Equal(t, 0, fc.DaysUntilMin)
	assert.Equal(t, entity.TierUrgent, fc.Recommendation)
	assert.Equal(t, testNow, fc.PredictedMinDate)
}

func TestCalculateRestock_DaysAreFloored(t *testing.T) {
	// (50-20)/(40/30) = 22.5 -> 22
	fc := inventory.CalculateRestock(inventory.ForecastInput{
		Stock: 50, MinStock: 20, OutboundQty: 40, RecordCount: 8, Now: testNow,
	}, 14)

	assert.Equal(t, 22, fc.DaysUntilMin)
}

func TestCalculateRestock_ConfidenceCapsAtOne(t *testing.T) {
	few := inventory.CalculateRestock(inventory.ForecastInput{
		Stock: 100, MinStock: 10, OutboundQty: 30, RecordCount: 4, Now: testNow,
	}, 14)
	many := inventory.CalculateRestock(inventory.ForecastInput{
		Stock: 100, MinStock: 10, OutboundQty: 30, RecordCount: 25, Now: testNow,
	}, 14)

	assert.InDelta(t, 0.4, few.Confidence, 1e-9)
	assert.Equal(t, 1.0, many.Confidence)
}

// The divisor is the fixed window length, not the item's history span: an
// item stocked a week ago with 14 outbound units averages 14/30, not 14/7.
// Known approximation, asserted here so nobody "fixes" it silently.
func TestCalculateRestock_FixedWindowDivisor(t *testing.T) {
	fc := inventory.CalculateRestock(inventory.ForecastInput{
		Stock: 50, MinStock: 10, OutboundQty: 14, RecordCount: 7, Now: testNow,
	}, 14)

	assert.InDelta(t, 14.0/30.0, fc.AvgDailyUsage, 1e-9)
}

// Identical input yields an identical forecast: the batch is idempotent
// modulo calculated_at, which the calculator does not produce.
func TestCalculateRestock_Deterministic(t *testing.T) {
	in := inventory.ForecastInput{Stock: 80, MinStock: 20, OutboundQty: 45, RecordCount: 9, Now: testNow}

	a := inventory.CalculateRestock(in, 14)
	b := inventory.CalculateRestock(in, 14)

	assert.Equal(t, a, b)
}

func TestCalculateRestock_NonPositiveLeadTimeFallsBack(t *testing.T) {
	fc := inventory.CalculateRestock(inventory.ForecastInput{
		Stock: 30, MinStock: 20, OutboundQty: 30, RecordCount: 5, Now: testNow,
	}, 0)

	// 10 days against the default 14-day lead time is still urgent.
	assert.Equal(t, entity.TierUrgent, fc.Recommendation)
}
