// Package carbon estimates the carbon footprint of purchases from spend
// and category-intensity rates. All monetary fields are assumed to share
// one implicit currency unit; no conversion happens here.
package carbon

import (
	"github.com/ecotrack/ecotrack-backend/internal/domain/category"
	"github.com/ecotrack/ecotrack-backend/internal/model"
)

// Calculator computes footprints against a rate table.
type Calculator struct {
	rates category.RateTable
}

// NewCalculator creates a calculator. A nil table uses the default rates.
func NewCalculator(rates category.RateTable) *Calculator {
	if rates == nil {
		rates = category.DefaultRates()
	}
	return &Calculator{rates: rates}
}

// ProductFootprint returns the estimated kg CO₂e for one line item:
// price × quantity × rate(category). Never negative.
func (c *Calculator) ProductFootprint(p model.Product) float64 {
	return p.EffectivePrice() * float64(p.EffectiveQuantity()) * c.rates.Rate(p.Category)
}

// TransactionFootprint sums the product footprints of a transaction.
// A transaction without products has footprint 0.
func (c *Calculator) TransactionFootprint(t model.Transaction) float64 {
	var total float64
	for _, p := range t.Products {
		total += c.ProductFootprint(p)
	}
	return total
}
