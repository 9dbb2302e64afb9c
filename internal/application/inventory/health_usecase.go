package inventory

import (
	"context"
	"fmt"

	"github.com/andikasp/atk-intel/internal/application/dto"
	domaininv "github.com/andikasp/atk-intel/internal/domain/inventory"
	"github.com/andikasp/atk-intel/internal/domain/repository"
)

// HealthUseCase serves the stock-health summary. One read, pure aggregation,
// nothing persisted; a read failure is a run-level failure for the caller.
type HealthUseCase struct {
	healthRepo repository.HealthRepository
}

// NewHealthUseCase builds the use case.
func NewHealthUseCase(healthRepo repository.HealthRepository) *HealthUseCase {
	return &HealthUseCase{healthRepo: healthRepo}
}

// GetSummary aggregates the current item-health rows into a HealthSummaryDTO.
func (uc *HealthUseCase) GetSummary(ctx context.Context) (*dto.HealthSummaryDTO, error) {
	rows, err := uc.healthRepo.ListItemHealth(ctx)
	if err != nil {
		return nil, fmt.Errorf("health summary: read item health: %w", err)
	}

	inputs := make([]domaininv.ItemHealthInput, 0, len(rows))
	for _, r := range rows {
		inputs = append(inputs, domaininv.ItemHealthInput{
			Name:             r.Name,
			Stock:            r.Stock,
			MinStock:         r.MinStock,
			Price:            r.Price,
			Status:           domaininv.ParseHealthStatus(r.Status),
			DaysSinceLastOut: r.DaysSinceLastOut,
			TurnoverRate:     r.TurnoverRate,
		})
	}

	summary := domaininv.SummarizeHealth(inputs)

	out := &dto.HealthSummaryDTO{
		StatusCounts:    make(map[string]int, len(summary.StatusCounts)),
		TotalValue:      summary.TotalValue,
		DeadStockValue:  summary.DeadStockValue,
		LowStockCount:   summary.LowStockCount,
		SlowMovingItems: make([]dto.SlowMovingItemDTO, 0, len(summary.SlowMovingItems)),
		Alerts:          make([]dto.HealthAlertDTO, 0, len(summary.Alerts)),
	}
	for status, n := range summary.StatusCounts {
		out.StatusCounts[string(status)] = n
	}
	for _, s := range summary.SlowMovingItems {
		out.SlowMovingItems = append(out.SlowMovingItems, dto.SlowMovingItemDTO{
			Name:             s.Name,
			Status:           string(s.Status),
			Value:            s.Value,
			DaysSinceLastOut: s.DaysSinceLastOut,
			TurnoverRate:     s.TurnoverRate,
		})
	}
	for _, a := range summary.Alerts {
		out.Alerts = append(out.Alerts, dto.HealthAlertDTO{
			Severity: string(a.Severity),
			Message:  a.Message,
			ItemName: a.ItemName,
		})
	}
	return out, nil
}
