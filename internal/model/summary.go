package model

import "github.com/ecotrack/ecotrack-backend/internal/domain/category"

// CarbonFootprintSummary reports accumulated footprint over trailing
// windows. It is derived from the full transaction history on every call
// and never mutated in place.
type CarbonFootprintSummary struct {
	Total      float64                       `json:"total"`
	Weekly     float64                       `json:"weekly"`
	Monthly    float64                       `json:"monthly"`
	ByCategory map[category.Category]float64 `json:"by_category"`
}

// EcoPointsSummary reports accumulated reward points over trailing
// windows. PlantsUnlocked is always ⌊Total/50⌋.
type EcoPointsSummary struct {
	Total           int `json:"total"`
	EarnedThisWeek  int `json:"earned_this_week"`
	EarnedThisMonth int `json:"earned_this_month"`
	PlantsUnlocked  int `json:"plants_unlocked"`
}
