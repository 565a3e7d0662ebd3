package classifier

import "github.com/ecotrack/ecotrack-backend/internal/domain/category"

// DefaultRules returns the built-in keyword table. Order matters: the
// first matching rule wins, so electronics outranks clothing, clothing
// outranks food, food outranks groceries.
func DefaultRules() []Rule {
	return []Rule{
		{
			Category: category.Electronics,
			Keywords: []string{
				"phone", "laptop", "headphone", "tablet", "computer", "tv",
				"electronics", "tech",
			},
		},
		{
			Category: category.Clothing,
			Keywords: []string{
				"shirt", "pants", "dress", "shoes", "jacket", "jeans",
				"clothing", "apparel", "fashion",
			},
		},
		{
			Category: category.Food,
			Keywords: []string{
				"meal", "restaurant", "pizza", "burger", "coffee", "snack",
				"food", "dining",
			},
		},
		{
			Category: category.Groceries,
			Keywords: []string{
				"grocery", "supermarket", "milk", "bread", "fruit", "vegetable",
				"market",
			},
		},
	}
}

// DefaultSustainableKeywords returns the built-in sustainability signals.
func DefaultSustainableKeywords() []string {
	return []string{
		"organic", "eco", "sustainable", "green", "renewable", "recycled",
		"bamboo", "hemp", "local", "fair trade", "carbon neutral",
		"biodegradable", "compostable", "reusable", "solar", "plant-based",
		"stainless steel",
	}
}
