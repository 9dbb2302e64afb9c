// Package inventory contains the batch use cases of the intelligence engine:
// the restock-prediction run and the stock-health summary.
package inventory

import (
	"context"
	"fmt"
	"time"

	"github.com/andikasp/atk-intel/internal/application/dto"
	"github.com/andikasp/atk-intel/internal/domain/entity"
	domaininv "github.com/andikasp/atk-intel/internal/domain/inventory"
	"github.com/andikasp/atk-intel/internal/domain/repository"
)

// ForecastUseCase runs the restock-prediction batch: one forecast per catalog
// item, persisted as an overwrite of the item's previous prediction.
//
// The consumption history is fetched in a single aggregated query for the
// whole catalog instead of one round trip per item. Persistence stays
// per-item and sequential: an upsert failure aborts the rest of the run but
// forecasts already written are not rolled back.
type ForecastUseCase struct {
	itemRepo     repository.ItemRepository
	usageRepo    repository.UsageRepository
	forecastRepo repository.ForecastRepository
	leadTimeDays int
	now          func() time.Time
}

// NewForecastUseCase builds the use case. leadTimeDays <= 0 falls back to the
// default lead time.
func NewForecastUseCase(
	itemRepo repository.ItemRepository,
	usageRepo repository.UsageRepository,
	forecastRepo repository.ForecastRepository,
	leadTimeDays int,
) *ForecastUseCase {
	if leadTimeDays <= 0 {
		leadTimeDays = domaininv.DefaultLeadTimeDays
	}
	return &ForecastUseCase{
		itemRepo:     itemRepo,
		usageRepo:    usageRepo,
		forecastRepo: forecastRepo,
		leadTimeDays: leadTimeDays,
		now:          time.Now,
	}
}

// LeadTimeDays exposes the configured lead time (the digest mentions it).
func (uc *ForecastUseCase) LeadTimeDays() int { return uc.leadTimeDays }

// Run executes one batch over the full catalog. Re-running with identical
// inputs produces identical predictions modulo calculated_at.
func (uc *ForecastUseCase) Run(ctx context.Context) (*dto.ForecastRunResult, error) {
	items, err := uc.itemRepo.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("forecast run: list items: %w", err)
	}

	now := uc.now()
	since := now.AddDate(0, 0, -domaininv.UsageWindowDays)
	totals, err := uc.usageRepo.GetOutboundTotals(ctx, since)
	if err != nil {
		return nil, fmt.Errorf("forecast run: read usage history: %w", err)
	}

	result := &dto.ForecastRunResult{Predictions: make([]dto.PredictionDTO, 0, len(items))}
	for _, item := range items {
		usage := totals[item.ID] // zero value when no outbound history

		fc := domaininv.CalculateRestock(domaininv.ForecastInput{
			Stock:       item.Stock,
			MinStock:    item.MinStock,
			OutboundQty: usage.TotalQuantity,
			RecordCount: usage.RecordCount,
			Now:         now,
		}, uc.leadTimeDays)

		record := &entity.Forecast{
			ItemID:           item.ID,
			AvgDailyUsage:    fc.AvgDailyUsage,
			DaysUntilMin:     fc.DaysUntilMin,
			PredictedMinDate: fc.PredictedMinDate,
			Recommendation:   fc.Recommendation,
			Confidence:       fc.Confidence,
			CalculatedAt:     now,
		}
		if err := uc.forecastRepo.Upsert(ctx, record); err != nil {
			// Earlier items in this run are already committed; the caller
			// gets a run-level failure without partial data presented as
			// complete.
			return nil, fmt.Errorf("forecast run: upsert forecast for item %s: %w", item.ID, err)
		}

		pred := dto.PredictionDTO{
			ItemID:           item.ID,
			ItemName:         item.Name,
			CurrentStock:     item.Stock,
			MinStock:         item.MinStock,
			AvgDailyUsage:    fc.AvgDailyUsage,
			DaysUntilMin:     fc.DaysUntilMin,
			PredictedMinDate: fc.PredictedMinDate.Format("2006-01-02"),
			Recommendation:   string(fc.Recommendation),
			Confidence:       fc.Confidence,
		}
		result.Predictions = append(result.Predictions, pred)
		if item.BelowMin() {
			result.LowStockCount++
		}
		if fc.Recommendation == entity.TierUrgent {
			result.Urgent = append(result.Urgent, pred)
		}
	}

	result.PredictionsCount = len(result.Predictions)
	return result, nil
}
