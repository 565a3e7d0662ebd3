package category

// Carbon intensity rates in kg CO₂e per currency unit of spend. These are
// coarse heuristic multipliers, not emissions-factor-database lookups.
const (
	rateElectronics = 1.5
	rateClothing    = 0.8
	rateFood        = 0.4
	rateGroceries   = 0.4
	rateOther       = 0.6

	// DefaultRate applies when a category is missing from the table
	// entirely. It is deliberately distinct from the Other rate: Other is
	// a real category with its own intensity, DefaultRate is the answer
	// for data the table has never heard of.
	DefaultRate = 0.7
)

// RateTable maps categories to carbon-intensity multipliers. A nil or
// partial table falls back to DefaultRate for absent entries.
type RateTable map[Category]float64

// DefaultRates returns the built-in rate table.
func DefaultRates() RateTable {
	return RateTable{
		Electronics: rateElectronics,
		Clothing:    rateClothing,
		Food:        rateFood,
		Groceries:   rateGroceries,
		Other:       rateOther,
	}
}

// Rate returns the carbon-intensity multiplier for c, or DefaultRate if
// the table has no entry for it.
func (t RateTable) Rate(c Category) float64 {
	if r, ok := t[c]; ok {
		return r
	}
	return DefaultRate
}

// WithOverrides returns a copy of t with the given overrides applied.
// Zero-valued overrides are ignored so a sparse config section cannot
// accidentally zero out a rate.
func (t RateTable) WithOverrides(overrides map[Category]float64) RateTable {
	out := make(RateTable, len(t))
	for c, r := range t {
		out[c] = r
	}
	for c, r := range overrides {
		if r > 0 && c.Valid() {
			out[c] = r
		}
	}
	return out
}
