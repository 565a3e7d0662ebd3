// Package service wires the domain components into the operations the API
// and CLI expose: enriching raw transaction batches, computing batch
// totals, and deriving user summaries from stored history.
package service

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/ecotrack/ecotrack-backend/internal/domain/carbon"
	"github.com/ecotrack/ecotrack-backend/internal/domain/category"
	"github.com/ecotrack/ecotrack-backend/internal/domain/classifier"
	"github.com/ecotrack/ecotrack-backend/internal/domain/rewards"
	"github.com/ecotrack/ecotrack-backend/internal/domain/summary"
	"github.com/ecotrack/ecotrack-backend/internal/infrastructure/config"
	"github.com/ecotrack/ecotrack-backend/internal/infrastructure/storage"
	"github.com/ecotrack/ecotrack-backend/internal/model"
)

// BatchSummary holds the totals for one calculated batch.
type BatchSummary struct {
	TotalCarbon    float64 `json:"total_carbon"`
	TotalEcoPoints int     `json:"total_eco_points"`
}

// Engine orchestrates classification, footprint and points computation
// over transaction batches. All computation is pure; the repository is
// only consulted for the stored history behind user summaries.
type Engine struct {
	classifier *classifier.Classifier
	calc       *carbon.Calculator
	scorer     *rewards.Scorer
	aggregator *summary.Aggregator
	repo       storage.Repository
	logger     *slog.Logger
}

// NewEngine builds an engine from config. repo may be nil when only
// batch calculation is needed (e.g. the report CLI).
func NewEngine(engineCfg config.EngineConfig, repo storage.Repository, logger *slog.Logger) *Engine {
	if logger == nil {
		logger = slog.Default()
	}

	calc := carbon.NewCalculator(engineCfg.Rates())
	scorer := rewards.NewScorer(calc)

	return &Engine{
		classifier: classifier.New(engineCfg.ClassifierRules(), engineCfg.SustainableKeywords),
		calc:       calc,
		scorer:     scorer,
		aggregator: summary.NewAggregator(calc, scorer),
		repo:       repo,
		logger:     logger,
	}
}

// EnrichTransactions normalizes and annotates a batch: missing IDs are
// backfilled, products without a recognized category are classified from
// their text, sustainability flags are detected, and per-transaction
// carbon_footprint and eco_points are computed. The input slice is not
// modified.
func (e *Engine) EnrichTransactions(txs []model.Transaction) []model.Transaction {
	out := make([]model.Transaction, len(txs))
	for i, tx := range txs {
		out[i] = e.enrich(tx)
	}
	return out
}

func (e *Engine) enrich(tx model.Transaction) model.Transaction {
	if tx.ID == "" {
		tx.ID = "tx_" + uuid.NewString()
	}

	products := make([]model.Product, len(tx.Products))
	for i, p := range tx.Products {
		if p.ID == "" {
			p.ID = "p_" + uuid.NewString()
		}
		if norm := category.Category(strings.ToLower(strings.TrimSpace(string(p.Category)))); norm.Valid() {
			p.Category = norm
		} else {
			// The raw category value, whatever it was, still serves as a
			// classification hint.
			p.Category = e.classifier.Classify(p.Name, string(p.Category))
		}
		if !p.IsSustainable {
			p.IsSustainable = e.classifier.IsSustainable(p.Name, p.Description)
		}
		products[i] = p
	}
	tx.Products = products

	footprint := e.calc.TransactionFootprint(tx)
	tx.CarbonFootprint = footprint
	tx.EcoPoints = e.scorer.TransactionPointsWithFootprint(tx, footprint)
	return tx
}

// CalculateBatch enriches a batch and returns it with its totals.
func (e *Engine) CalculateBatch(txs []model.Transaction) ([]model.Transaction, BatchSummary) {
	enriched := e.EnrichTransactions(txs)

	var batch BatchSummary
	for _, tx := range enriched {
		batch.TotalCarbon += tx.CarbonFootprint
		batch.TotalEcoPoints += tx.EcoPoints
	}

	e.logger.Debug("batch calculated",
		"transactions", len(enriched),
		"total_carbon", batch.TotalCarbon,
		"total_eco_points", batch.TotalEcoPoints)

	return enriched, batch
}

// ImportTransactions enriches a batch and persists it to the user's
// history.
func (e *Engine) ImportTransactions(userID string, txs []model.Transaction) ([]model.Transaction, error) {
	enriched := e.EnrichTransactions(txs)

	if err := e.repo.SaveTransactions(userID, enriched); err != nil {
		return nil, fmt.Errorf("failed to save transactions for %s: %w", userID, err)
	}

	e.logger.Info("transactions imported", "user", userID, "count", len(enriched))
	return enriched, nil
}

// Summaries computes footprint and points summaries over an explicit
// transaction set relative to now.
func (e *Engine) Summaries(txs []model.Transaction, now time.Time) (model.CarbonFootprintSummary, model.EcoPointsSummary) {
	return e.aggregator.Footprint(txs, now), e.aggregator.Points(txs, now)
}

// UserFootprint re-aggregates the stored history of a user.
func (e *Engine) UserFootprint(userID string, now time.Time) (model.CarbonFootprintSummary, error) {
	txs, err := e.repo.TransactionsByUser(userID)
	if err != nil {
		return model.CarbonFootprintSummary{}, fmt.Errorf("failed to load history for %s: %w", userID, err)
	}
	return e.aggregator.Footprint(txs, now), nil
}

// UserPoints re-aggregates the stored history of a user.
func (e *Engine) UserPoints(userID string, now time.Time) (model.EcoPointsSummary, error) {
	txs, err := e.repo.TransactionsByUser(userID)
	if err != nil {
		return model.EcoPointsSummary{}, fmt.Errorf("failed to load history for %s: %w", userID, err)
	}
	return e.aggregator.Points(txs, now), nil
}

// UserGarden derives the garden progression from a user's points total.
func (e *Engine) UserGarden(userID string, now time.Time) (rewards.GardenState, error) {
	points, err := e.UserPoints(userID, now)
	if err != nil {
		return rewards.GardenState{}, err
	}
	return rewards.Progression(points.Total), nil
}
