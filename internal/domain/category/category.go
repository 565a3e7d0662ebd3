// Package category defines the closed set of product categories and the
// carbon-intensity rates attached to them.
//
// The category set is fixed: every category-indexed table in the engine
// (rates, keyword rules) covers exactly these five values, and anything
// unclassifiable funnels into Other rather than producing an error.
package category

import "strings"

// Category is a product category. The set of values is closed.
type Category string

const (
	Electronics Category = "electronics"
	Clothing    Category = "clothing"
	Food        Category = "food"
	Groceries   Category = "groceries"
	Other       Category = "other"
)

// All lists every valid category in display order.
func All() []Category {
	return []Category{Electronics, Clothing, Food, Groceries, Other}
}

// Valid reports whether c is one of the five known categories.
func (c Category) Valid() bool {
	switch c {
	case Electronics, Clothing, Food, Groceries, Other:
		return true
	}
	return false
}

func (c Category) String() string {
	return string(c)
}

// Parse normalizes a raw category string. Unknown or empty input resolves
// to Other, never an error.
func Parse(raw string) Category {
	c := Category(strings.ToLower(strings.TrimSpace(raw)))
	if c.Valid() {
		return c
	}
	return Other
}
