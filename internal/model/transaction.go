// Package model defines the transaction and product types shared by the
// engine, the API layer, and storage. JSON field names match the wire
// format of the merchant sync feed.
package model

import (
	"time"

	"github.com/ecotrack/ecotrack-backend/internal/domain/category"
)

// Product is a single line item on a transaction. Once classified it is
// treated as immutable.
type Product struct {
	ID            string            `json:"id"`
	Name          string            `json:"name"`
	Category      category.Category `json:"category"`
	Price         float64           `json:"price"`
	Quantity      int               `json:"quantity"`
	IsSustainable bool              `json:"is_sustainable"`
	Description   string            `json:"description,omitempty"`
}

// EffectiveQuantity treats a missing or non-positive quantity as 1.
func (p Product) EffectiveQuantity() int {
	if p.Quantity <= 0 {
		return 1
	}
	return p.Quantity
}

// EffectivePrice clamps a missing or negative price to 0.
func (p Product) EffectivePrice() float64 {
	if p.Price < 0 {
		return 0
	}
	return p.Price
}

// Transaction is one purchase record from a connected merchant. TotalAmount
// is the amount actually charged and is not guaranteed to equal the sum of
// product price×quantity; the engine tolerates divergence.
type Transaction struct {
	ID              string    `json:"id"`
	MerchantID      int       `json:"merchant_id"`
	ExternalUserID  string    `json:"external_user_id"`
	Date            string    `json:"date"`
	TotalAmount     float64   `json:"total_amount"`
	Currency        string    `json:"currency"`
	Products        []Product `json:"products"`
	CarbonFootprint float64   `json:"carbon_footprint"`
	EcoPoints       int       `json:"eco_points"`
}

// Date layouts accepted from the merchant feed.
var dateLayouts = []string{
	time.RFC3339,
	"2006-01-02",
}

// Time parses the transaction date. The feed delivers either RFC3339
// timestamps or bare dates.
func (t Transaction) Time() (time.Time, bool) {
	for _, layout := range dateLayouts {
		if ts, err := time.Parse(layout, t.Date); err == nil {
			return ts, true
		}
	}
	return time.Time{}, false
}
