// Package rewards turns purchase data into eco-points and derives the
// garden-progression state shown to the user.
//
// The score has two additive parts: a sustainability bonus per flagged
// product, scaled by price, and a carbon-savings bonus computed once per
// transaction against a flat baseline intensity. This per-transaction,
// price-scaled formula is the single canonical one; an older flat
// +5-per-product variant that computed savings per product is retired.
package rewards

import (
	"math"

	"github.com/ecotrack/ecotrack-backend/internal/domain/carbon"
	"github.com/ecotrack/ecotrack-backend/internal/model"
)

const (
	// Minimum points for any sustainable product, regardless of price.
	sustainableMinPoints = 5
	// Fraction of product price converted to points for sustainable items.
	sustainablePriceFactor = 0.1
	// Assumed average carbon intensity used as the savings baseline,
	// independent of actual category mix.
	baselineIntensity = 0.8
	// Every full 5 kg CO₂e saved versus baseline earns 10 points.
	savedKgPerBonus = 5.0
	pointsPerBonus  = 10
)

// Scorer computes eco-points for transactions.
type Scorer struct {
	calc *carbon.Calculator
}

// NewScorer creates a scorer backed by the given footprint calculator.
// A nil calculator uses default rates.
func NewScorer(calc *carbon.Calculator) *Scorer {
	if calc == nil {
		calc = carbon.NewCalculator(nil)
	}
	return &Scorer{calc: calc}
}

// TransactionPoints computes the eco-points for a transaction, deriving
// the footprint itself.
func (s *Scorer) TransactionPoints(t model.Transaction) int {
	return s.TransactionPointsWithFootprint(t, s.calc.TransactionFootprint(t))
}

// TransactionPointsWithFootprint computes eco-points using an already
// computed transaction footprint, avoiding a second pass over products.
// The result is a non-negative integer.
func (s *Scorer) TransactionPointsWithFootprint(t model.Transaction, footprint float64) int {
	points := 0
	for _, p := range t.Products {
		if p.IsSustainable {
			scaled := int(math.Round(p.EffectivePrice() * sustainablePriceFactor))
			if scaled < sustainableMinPoints {
				scaled = sustainableMinPoints
			}
			points += scaled
		}
	}

	// Carbon-savings bonus, once per transaction: the baseline is what an
	// average basket of this total would emit.
	baseline := t.TotalAmount * baselineIntensity
	saved := math.Max(0, baseline-footprint)
	points += int(math.Floor(saved/savedKgPerBonus)) * pointsPerBonus

	if points < 0 {
		return 0
	}
	return points
}
