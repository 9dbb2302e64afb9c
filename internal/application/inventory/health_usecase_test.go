package inventory_test

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appinv "github.com/andikasp/atk-intel/internal/application/inventory"
	"github.com/andikasp/atk-intel/internal/domain/repository"
)

type fakeHealthRepo struct {
	rows []repository.ItemHealthRow
	err  error
}

func (f *fakeHealthRepo) ListItemHealth(ctx context.Context) ([]repository.ItemHealthRow, error) {
	return f.rows, f.err
}

func TestHealthSummary_MapsRowsThroughAggregation(t *testing.T) {
	days := 120
	repo := &fakeHealthRepo{rows: []repository.ItemHealthRow{
		{ItemID: "a", Name: "Kertas", Stock: 0, MinStock: 5, Price: decimal.NewFromInt(50_000), Status: "healthy"},
		{ItemID: "b", Name: "Toner Lama", Stock: 3, MinStock: 1, Price: decimal.NewFromInt(250_000), Status: "dead", DaysSinceLastOut: &days},
		{ItemID: "c", Name: "Baru", Stock: 9, MinStock: 1, Price: decimal.NewFromInt(1_000), Status: "weird-value"},
	}}
	uc := appinv.NewHealthUseCase(repo)

	s, err := uc.GetSummary(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 1, s.StatusCounts["healthy"])
	assert.Equal(t, 1, s.StatusCounts["dead"])
	assert.Equal(t, 1, s.StatusCounts["unknown"], "unrecognized status collapses to unknown")

	// Kertas out of stock + Toner Lama high-value dead (750000 > 500000)
	require.Len(t, s.Alerts, 2)
	assert.Equal(t, "danger", s.Alerts[0].Severity)
	assert.Equal(t, "Kertas", s.Alerts[0].ItemName)
	assert.Equal(t, "warning", s.Alerts[1].Severity)

	require.Len(t, s.SlowMovingItems, 1)
	assert.Equal(t, "Toner Lama", s.SlowMovingItems[0].Name)
	assert.Equal(t, 120, s.SlowMovingItems[0].DaysSinceLastOut)
}

func TestHealthSummary_ReadFailureSurfaces(t *testing.T) {
	uc := appinv.NewHealthUseCase(&fakeHealthRepo{err: errors.New("connection reset")})

	_, err := uc.GetSummary(context.Background())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "item health")
}
