package rewards

// Tier is a plant's progression stage.
type Tier string

const (
	TierSeedling Tier = "seedling"
	TierSprout   Tier = "sprout"
	TierTree     Tier = "tree"
)

// Per-tier display values. Growth is a percentage, PointsInvested is a
// label for the UI; neither feeds back into any computation.
const (
	growthSeedling = 50
	growthSprout   = 75
	growthTree     = 100

	investedSeedling = 25
	investedSprout   = 50
	investedTree     = 100

	// One plant unlocks per 50 points; 100 points matures one to a tree.
	pointsPerPlant = 50
	pointsPerTree  = 100
)

// Plant is one unlocked plant in the garden.
type Plant struct {
	Tier           Tier `json:"tier"`
	Growth         int  `json:"growth"`
	PointsInvested int  `json:"points_invested"`
}

// GardenState is the full progression derived from a points total.
// Spatial placement is a presentation concern and not part of this state.
type GardenState struct {
	Plants         []Plant `json:"plants"`
	Trees          int     `json:"trees"`
	Sprouts        int     `json:"sprouts"`
	Seedlings      int     `json:"seedlings"`
	PlantsUnlocked int     `json:"plants_unlocked"`
	NextMilestone  int     `json:"next_milestone"`
	Progress       float64 `json:"progress"`
}

// Progression derives the garden state from a cumulative points total.
// Trees come first in the plant list, then sprouts, then seedlings, and
// trees + sprouts + seedlings always equals PlantsUnlocked.
func Progression(totalPoints int) GardenState {
	if totalPoints < 0 {
		totalPoints = 0
	}

	unlocked := totalPoints / pointsPerPlant
	trees := totalPoints / pointsPerTree
	sprouts := (totalPoints % pointsPerTree) / pointsPerPlant
	seedlings := unlocked - trees - sprouts

	plants := make([]Plant, 0, unlocked)
	for i := 0; i < trees; i++ {
		plants = append(plants, Plant{Tier: TierTree, Growth: growthTree, PointsInvested: investedTree})
	}
	for i := 0; i < sprouts; i++ {
		plants = append(plants, Plant{Tier: TierSprout, Growth: growthSprout, PointsInvested: investedSprout})
	}
	for i := 0; i < seedlings; i++ {
		plants = append(plants, Plant{Tier: TierSeedling, Growth: growthSeedling, PointsInvested: investedSeedling})
	}

	return GardenState{
		Plants:         plants,
		Trees:          trees,
		Sprouts:        sprouts,
		Seedlings:      seedlings,
		PlantsUnlocked: unlocked,
		NextMilestone:  (unlocked + 1) * pointsPerPlant,
		Progress:       float64(totalPoints%pointsPerPlant) / pointsPerPlant,
	}
}
