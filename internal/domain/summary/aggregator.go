// Package summary folds transaction collections into windowed footprint
// and points summaries.
//
// The reference instant is always an explicit parameter. The aggregator
// never reads the wall clock, so calling it twice with the same inputs
// yields identical results and tests can pin time exactly.
package summary

import (
	"time"

	"github.com/ecotrack/ecotrack-backend/internal/domain/carbon"
	"github.com/ecotrack/ecotrack-backend/internal/domain/category"
	"github.com/ecotrack/ecotrack-backend/internal/domain/rewards"
	"github.com/ecotrack/ecotrack-backend/internal/model"
)

const (
	weekWindow  = 7 * 24 * time.Hour
	monthWindow = 30 * 24 * time.Hour
)

// Aggregator computes windowed summaries over full transaction histories.
type Aggregator struct {
	calc   *carbon.Calculator
	scorer *rewards.Scorer
}

// NewAggregator creates an aggregator. Nil arguments fall back to
// default-rate instances.
func NewAggregator(calc *carbon.Calculator, scorer *rewards.Scorer) *Aggregator {
	if calc == nil {
		calc = carbon.NewCalculator(nil)
	}
	if scorer == nil {
		scorer = rewards.NewScorer(calc)
	}
	return &Aggregator{calc: calc, scorer: scorer}
}

// inWindow reports whether ts falls inside the trailing window ending at
// now. The boundary is inclusive: a transaction dated exactly now-7d is
// part of the weekly window.
func inWindow(ts time.Time, now time.Time, window time.Duration) bool {
	return !ts.Before(now.Add(-window))
}

// Footprint aggregates carbon footprint across all transactions relative
// to the reference instant now. Transactions with unparseable dates count
// toward the all-time total and category buckets but are excluded from
// the weekly and monthly windows; they never abort the batch.
func (a *Aggregator) Footprint(txs []model.Transaction, now time.Time) model.CarbonFootprintSummary {
	out := model.CarbonFootprintSummary{
		ByCategory: make(map[category.Category]float64),
	}

	for _, tx := range txs {
		footprint := a.calc.TransactionFootprint(tx)
		out.Total += footprint

		if ts, ok := tx.Time(); ok {
			if inWindow(ts, now, weekWindow) {
				out.Weekly += footprint
			}
			if inWindow(ts, now, monthWindow) {
				out.Monthly += footprint
			}
		}

		// Category buckets cover the whole history, not just the windows.
		for _, p := range tx.Products {
			out.ByCategory[p.Category] += a.calc.ProductFootprint(p)
		}
	}

	return out
}

// Points aggregates eco-points across all transactions relative to the
// reference instant now, applying the same date policy as Footprint.
func (a *Aggregator) Points(txs []model.Transaction, now time.Time) model.EcoPointsSummary {
	var out model.EcoPointsSummary

	for _, tx := range txs {
		points := a.scorer.TransactionPoints(tx)
		out.Total += points

		if ts, ok := tx.Time(); ok {
			if inWindow(ts, now, weekWindow) {
				out.EarnedThisWeek += points
			}
			if inWindow(ts, now, monthWindow) {
				out.EarnedThisMonth += points
			}
		}
	}

	out.PlantsUnlocked = out.Total / 50
	return out
}
