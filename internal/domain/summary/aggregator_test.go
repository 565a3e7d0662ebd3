package summary

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/ecotrack/ecotrack-backend/internal/domain/category"
	"github.com/ecotrack/ecotrack-backend/internal/model"
)

var now = time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

func foodTx(date string, price float64) model.Transaction {
	return model.Transaction{
		Date:        date,
		TotalAmount: price,
		Products: []model.Product{
			{Category: category.Food, Price: price, Quantity: 1},
		},
	}
}

func TestFootprint_Windows(t *testing.T) {
	agg := NewAggregator(nil, nil)

	txs := []model.Transaction{
		foodTx("2025-06-14", 10),             // yesterday: week + month
		foodTx("2025-05-25", 20),             // 3 weeks ago: month only
		foodTx("2025-01-01", 30),             // old: all-time only
		foodTx("2024-06-15T12:00:00Z", 40),   // a year ago: all-time only
	}

	got := agg.Footprint(txs, now)

	assert.InDelta(t, 40.0, got.Total, 0.0001)  // (10+20+30+40)×0.4
	assert.InDelta(t, 4.0, got.Weekly, 0.0001)  // 10×0.4
	assert.InDelta(t, 12.0, got.Monthly, 0.0001) // (10+20)×0.4
}

func TestFootprint_WeeklyBoundaryInclusive(t *testing.T) {
	agg := NewAggregator(nil, nil)

	exactly := foodTx(now.Add(-7*24*time.Hour).Format(time.RFC3339), 10)
	justOver := foodTx(now.Add(-7*24*time.Hour-time.Second).Format(time.RFC3339), 10)

	got := agg.Footprint([]model.Transaction{exactly, justOver}, now)

	// Exactly 7×24h before now is in the weekly window; one second more
	// is not.
	assert.InDelta(t, 4.0, got.Weekly, 0.0001)
	assert.InDelta(t, 8.0, got.Monthly, 0.0001)
}

func TestFootprint_BadDateStillCountsAllTime(t *testing.T) {
	agg := NewAggregator(nil, nil)

	txs := []model.Transaction{
		foodTx("not-a-date", 100),
		foodTx("2025-06-14", 10),
	}

	got := agg.Footprint(txs, now)

	assert.InDelta(t, 44.0, got.Total, 0.0001)
	assert.InDelta(t, 4.0, got.Weekly, 0.0001)
	assert.InDelta(t, 4.0, got.Monthly, 0.0001)
	// The bad-date transaction still lands in its category bucket.
	assert.InDelta(t, 44.0, got.ByCategory[category.Food], 0.0001)
}

func TestFootprint_CategoryBucketsSpanFullHistory(t *testing.T) {
	agg := NewAggregator(nil, nil)

	txs := []model.Transaction{
		{
			Date:        "2024-01-01", // far outside both windows
			TotalAmount: 100,
			Products: []model.Product{
				{Category: category.Electronics, Price: 100, Quantity: 1},
			},
		},
	}

	got := agg.Footprint(txs, now)

	assert.InDelta(t, 150.0, got.ByCategory[category.Electronics], 0.0001)
	assert.NotContains(t, got.ByCategory, category.Clothing)
}

func TestFootprint_Idempotent(t *testing.T) {
	agg := NewAggregator(nil, nil)

	txs := []model.Transaction{
		foodTx("2025-06-14", 10),
		foodTx("2025-05-25", 20),
	}

	first := agg.Footprint(txs, now)
	second := agg.Footprint(txs, now)

	assert.Equal(t, first, second)
}

func TestPoints_WindowsAndPlants(t *testing.T) {
	agg := NewAggregator(nil, nil)

	// Each $50 food transaction earns 40 points (baseline 40, footprint
	// 20, saved 20 → ⌊20/5⌋×10).
	txs := []model.Transaction{
		foodTx("2025-06-14", 50),
		foodTx("2025-05-25", 50),
		foodTx("2023-01-01", 50),
	}

	got := agg.Points(txs, now)

	assert.Equal(t, 120, got.Total)
	assert.Equal(t, 40, got.EarnedThisWeek)
	assert.Equal(t, 80, got.EarnedThisMonth)
	assert.Equal(t, 2, got.PlantsUnlocked) // ⌊120/50⌋
}

func TestPoints_BadDateExcludedFromWindows(t *testing.T) {
	agg := NewAggregator(nil, nil)

	txs := []model.Transaction{foodTx("", 50)}

	got := agg.Points(txs, now)

	assert.Equal(t, 40, got.Total)
	assert.Equal(t, 0, got.EarnedThisWeek)
	assert.Equal(t, 0, got.EarnedThisMonth)
}

func TestPoints_EmptyHistory(t *testing.T) {
	agg := NewAggregator(nil, nil)

	got := agg.Points(nil, now)

	assert.Equal(t, model.EcoPointsSummary{}, got)
}
