package inventory_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appinv "github.com/andikasp/atk-intel/internal/application/inventory"
	"github.com/andikasp/atk-intel/internal/domain/entity"
	"github.com/andikasp/atk-intel/internal/domain/repository"
)

// ── fakes ────────────────────────────────────────────────────────────────────

type fakeItemRepo struct {
	items []entity.Item
	err   error
}

func (f *fakeItemRepo) ListAll(ctx context.Context) ([]entity.Item, error) {
	return f.items, f.err
}

func (f *fakeItemRepo) GetByID(ctx context.Context, id string) (*entity.Item, error) {
	for i := range f.items {
		if f.items[i].ID == id {
			return &f.items[i], nil
		}
	}
	return nil, errors.New("not found")
}

type fakeUsageRepo struct {
	totals map[string]repository.OutboundUsage
	since  time.Time
	err    error
}

func (f *fakeUsageRepo) GetOutboundTotals(ctx context.Context, since time.Time) (map[string]repository.OutboundUsage, error) {
	f.since = since
	return f.totals, f.err
}

type fakeForecastRepo struct {
	saved  []entity.Forecast
	failOn string // item ID whose upsert fails
}

func (f *fakeForecastRepo) Upsert(ctx context.Context, fc *entity.Forecast) error {
	if f.failOn != "" && fc.ItemID == f.failOn {
		return errors.New("db down")
	}
	f.saved = append(f.saved, *fc)
	return nil
}

func item(id, name string, stock, minStock int) entity.Item {
	return entity.Item{ID: id, Name: name, Unit: "pcs", Stock: stock, MinStock: minStock, Price: decimal.NewFromInt(1000)}
}

// ── tests ────────────────────────────────────────────────────────────────────

func TestForecastRun_PersistsOnePredictionPerItem(t *testing.T) {
	itemRepo := &fakeItemRepo{items: []entity.Item{
		item("a", "Kertas", 100, 20),
		item("b", "Pulpen", 30, 20),
		item("c", "Stapler", 5, 2),
	}}
	usageRepo := &fakeUsageRepo{totals: map[string]repository.OutboundUsage{
		"a": {TotalQuantity: 60, RecordCount: 12}, // 2/day -> 40 days, safe
		"b": {TotalQuantity: 30, RecordCount: 5},  // 1/day -> 10 days, urgent
		// "c" has no history -> unbounded, safe
	}}
	forecastRepo := &fakeForecastRepo{}
	uc := appinv.NewForecastUseCase(itemRepo, usageRepo, forecastRepo, 14)

	result, err := uc.Run(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 3, result.PredictionsCount)
	require.Len(t, forecastRepo.saved, 3)

	assert.Equal(t, 40, result.Predictions[0].DaysUntilMin)
	assert.Equal(t, "safe", result.Predictions[0].Recommendation)
	assert.Equal(t, 10, result.Predictions[1].DaysUntilMin)
	assert.Equal(t, "urgent", result.Predictions[1].Recommendation)
	assert.Equal(t, entity.UnboundedDays, result.Predictions[2].DaysUntilMin)

	require.Len(t, result.Urgent, 1)
	assert.Equal(t, "b", result.Urgent[0].ItemID)
}

func TestForecastRun_LowStockCount(t *testing.T) {
	itemRepo := &fakeItemRepo{items: []entity.Item{
		item("a", "Kertas", 100, 20),
		item("b", "Pulpen", 20, 20), // at minimum counts as low
		item("c", "Stapler", 1, 2),
	}}
	uc := appinv.NewForecastUseCase(itemRepo, &fakeUsageRepo{}, &fakeForecastRepo{}, 14)

	result, err := uc.Run(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 2, result.LowStockCount)
}

// The usage history is one aggregated read for the whole catalog, covering
// the trailing 30 days.
func TestForecastRun_SingleBatchedHistoryRead(t *testing.T) {
	usageRepo := &fakeUsageRepo{}
	uc := appinv.NewForecastUseCase(
		&fakeItemRepo{items: []entity.Item{item("a", "Kertas", 10, 2)}},
		usageRepo, &fakeForecastRepo{}, 14,
	)

	_, err := uc.Run(context.Background())

	require.NoError(t, err)
	// The window starts 30 days back from the run timestamp.
	assert.WithinDuration(t, time.Now().AddDate(0, 0, -30), usageRepo.since, 5*time.Second)
}

// An upsert failure aborts the run but forecasts written before the failure
// stay committed. No all-or-nothing batch semantics.
func TestForecastRun_UpsertFailureAbortsRemainder(t *testing.T) {
	itemRepo := &fakeItemRepo{items: []entity.Item{
		item("a", "Kertas", 100, 20),
		item("b", "Pulpen", 30, 20),
		item("c", "Stapler", 5, 2),
	}}
	forecastRepo := &fakeForecastRepo{failOn: "b"}
	uc := appinv.NewForecastUseCase(itemRepo, &fakeUsageRepo{}, forecastRepo, 14)

	_, err := uc.Run(context.Background())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "item b")
	require.Len(t, forecastRepo.saved, 1, "only the forecast before the failure is committed")
	assert.Equal(t, "a", forecastRepo.saved[0].ItemID)
}

func TestForecastRun_HistoryReadFailureIsRunLevel(t *testing.T) {
	uc := appinv.NewForecastUseCase(
		&fakeItemRepo{items: []entity.Item{item("a", "Kertas", 10, 2)}},
		&fakeUsageRepo{err: errors.New("timeout")},
		&fakeForecastRepo{}, 14,
	)

	_, err := uc.Run(context.Background())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "usage history")
}

// Two runs over identical inputs produce identical predictions except for
// the calculation timestamp.
func TestForecastRun_IdempotentModuloTimestamp(t *testing.T) {
	itemRepo := &fakeItemRepo{items: []entity.Item{item("a", "Kertas", 100, 20)}}
	usageRepo := &fakeUsageRepo{totals: map[string]repository.OutboundUsage{
		"a": {TotalQuantity: 60, RecordCount: 12},
	}}
	forecastRepo := &fakeForecastRepo{}
	uc := appinv.NewForecastUseCase(itemRepo, usageRepo, forecastRepo, 14)

	_, err := uc.Run(context.Background())
	require.NoError(t, err)
	_, err = uc.Run(context.Background())
	require.NoError(t, err)

	require.Len(t, forecastRepo.saved, 2)
	first, second := forecastRepo.saved[0], forecastRepo.saved[1]
	assert.Equal(t, first.AvgDailyUsage, second.AvgDailyUsage)
	assert.Equal(t, first.DaysUntilMin, second.DaysUntilMin)
	assert.Equal(t, first.Recommendation, second.Recommendation)
	assert.Equal(t, first.Confidence, second.Confidence)
}
