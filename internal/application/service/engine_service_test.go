package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ecotrack/ecotrack-backend/internal/domain/category"
	"github.com/ecotrack/ecotrack-backend/internal/infrastructure/config"
	"github.com/ecotrack/ecotrack-backend/internal/infrastructure/storage"
	"github.com/ecotrack/ecotrack-backend/internal/model"
)

func newTestEngine(repo storage.Repository) *Engine {
	return NewEngine(config.EngineConfig{}, repo, nil)
}

func TestEnrichTransactions_ClassifiesAndScores(t *testing.T) {
	e := newTestEngine(nil)

	txs := []model.Transaction{
		{
			Date:        "2025-06-14",
			TotalAmount: 50,
			Products: []model.Product{
				{Name: "Organic Veg Box", Category: "Produce Dept", Price: 50, Quantity: 1},
			},
		},
	}

	enriched := e.EnrichTransactions(txs)
	require.Len(t, enriched, 1)
	tx := enriched[0]
	require.Len(t, tx.Products, 1)
	p := tx.Products[0]

	// "Produce Dept" is not a canonical category; "vegetable"? no —
	// nothing in the name or hint matches, so it funnels to other.
	assert.Equal(t, category.Other, p.Category)
	// "Organic" flips the sustainability flag.
	assert.True(t, p.IsSustainable)
	// IDs are backfilled.
	assert.NotEmpty(t, tx.ID)
	assert.NotEmpty(t, p.ID)
	// other rate: 50 × 0.6 = 30; baseline 40, saved 10 → 20 points
	// carbon bonus + 5 sustainability.
	assert.InDelta(t, 30.0, tx.CarbonFootprint, 0.0001)
	assert.Equal(t, 25, tx.EcoPoints)
}

func TestEnrichTransactions_KeepsValidCategory(t *testing.T) {
	e := newTestEngine(nil)

	enriched := e.EnrichTransactions([]model.Transaction{
		{
			TotalAmount: 10,
			Products: []model.Product{
				{ID: "p1", Name: "Mystery Box", Category: "Electronics", Price: 10, Quantity: 1},
			},
		},
	})

	// An already-canonical category (case aside) is kept, not reclassified.
	assert.Equal(t, category.Electronics, enriched[0].Products[0].Category)
	assert.Equal(t, "p1", enriched[0].Products[0].ID)
}

func TestEnrichTransactions_DoesNotMutateInput(t *testing.T) {
	e := newTestEngine(nil)

	in := []model.Transaction{
		{Products: []model.Product{{Name: "Laptop", Category: "gadgets", Price: 10}}},
	}
	_ = e.EnrichTransactions(in)

	assert.Equal(t, category.Category("gadgets"), in[0].Products[0].Category)
	assert.Empty(t, in[0].ID)
}

func TestCalculateBatch_Totals(t *testing.T) {
	e := newTestEngine(nil)

	txs := []model.Transaction{
		{
			TotalAmount: 100,
			Products: []model.Product{
				{Name: "Laptop", Category: category.Electronics, Price: 100, Quantity: 1},
			},
		},
		{
			TotalAmount: 50,
			Products: []model.Product{
				{Name: "Organic Veg Box", Category: category.Food, Price: 50, Quantity: 1, IsSustainable: true},
			},
		},
	}

	enriched, batch := e.CalculateBatch(txs)
	require.Len(t, enriched, 2)

	assert.InDelta(t, 150.0, enriched[0].CarbonFootprint, 0.0001)
	assert.Equal(t, 0, enriched[0].EcoPoints)
	assert.InDelta(t, 20.0, enriched[1].CarbonFootprint, 0.0001)
	assert.Equal(t, 45, enriched[1].EcoPoints)

	assert.InDelta(t, 170.0, batch.TotalCarbon, 0.0001)
	assert.Equal(t, 45, batch.TotalEcoPoints)
}

func TestCalculateBatch_EmptyBatch(t *testing.T) {
	e := newTestEngine(nil)

	enriched, batch := e.CalculateBatch(nil)

	assert.Empty(t, enriched)
	assert.Equal(t, BatchSummary{}, batch)
}

func TestImportTransactions_Persists(t *testing.T) {
	repo := storage.NewMockRepository()
	e := newTestEngine(repo)

	_, err := e.ImportTransactions("user-1", []model.Transaction{
		{Date: "2025-06-14", TotalAmount: 50, Products: []model.Product{
			{Name: "Organic Veg Box", Category: category.Food, Price: 50, Quantity: 1},
		}},
	})
	require.NoError(t, err)

	assert.True(t, repo.SaveCalled)
	require.Len(t, repo.LastSaved, 1)
	assert.NotZero(t, repo.LastSaved[0].CarbonFootprint)
}

func TestUserSummaries_FromStoredHistory(t *testing.T) {
	repo := storage.NewMockRepository()
	e := newTestEngine(repo)

	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

	_, err := e.ImportTransactions("user-1", []model.Transaction{
		{Date: "2025-06-14", TotalAmount: 50, Products: []model.Product{
			{Name: "Veg Box", Category: category.Food, Price: 50, Quantity: 1},
		}},
		{Date: "2023-01-01", TotalAmount: 50, Products: []model.Product{
			{Name: "Veg Box", Category: category.Food, Price: 50, Quantity: 1},
		}},
	})
	require.NoError(t, err)

	footprint, err := e.UserFootprint("user-1", now)
	require.NoError(t, err)
	assert.InDelta(t, 40.0, footprint.Total, 0.0001)
	assert.InDelta(t, 20.0, footprint.Weekly, 0.0001)

	points, err := e.UserPoints("user-1", now)
	require.NoError(t, err)
	assert.Equal(t, 80, points.Total) // 40 per transaction
	assert.Equal(t, 40, points.EarnedThisWeek)
	assert.Equal(t, 1, points.PlantsUnlocked)

	garden, err := e.UserGarden("user-1", now)
	require.NoError(t, err)
	assert.Equal(t, 1, garden.PlantsUnlocked)
	assert.Equal(t, 1, garden.Sprouts)
	assert.Equal(t, 0, garden.Trees)
}
