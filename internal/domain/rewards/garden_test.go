package rewards

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestProgression_TierSplit(t *testing.T) {
	// 249 points: 4 plants unlocked, 2 trees, 0 sprouts (49 leftover
	// under the 50 threshold), 2 seedlings.
	g := Progression(249)

	assert.Equal(t, 4, g.PlantsUnlocked)
	assert.Equal(t, 2, g.Trees)
	assert.Equal(t, 0, g.Sprouts)
	assert.Equal(t, 2, g.Seedlings)
}

func TestProgression_Milestones(t *testing.T) {
	g := Progression(249)

	assert.Equal(t, 250, g.NextMilestone)
	assert.InDelta(t, 49.0/50.0, g.Progress, 0.0001)

	g = Progression(0)
	assert.Equal(t, 50, g.NextMilestone)
	assert.Equal(t, 0.0, g.Progress)
}

func TestProgression_ZeroAndNegative(t *testing.T) {
	g := Progression(0)
	assert.Equal(t, 0, g.PlantsUnlocked)
	assert.Empty(t, g.Plants)

	// Negative totals clamp to zero rather than producing negative counts.
	g = Progression(-10)
	assert.Equal(t, 0, g.PlantsUnlocked)
	assert.Equal(t, 50, g.NextMilestone)
}

func TestProgression_PlantOrderAndDisplayValues(t *testing.T) {
	// 150 points: 1 tree, 1 sprout, 1 seedling, in that order.
	g := Progression(150)

	assert.Equal(t, 3, g.PlantsUnlocked)
	assert.Equal(t, []Plant{
		{Tier: TierTree, Growth: 100, PointsInvested: 100},
		{Tier: TierSprout, Growth: 75, PointsInvested: 50},
		{Tier: TierSeedling, Growth: 50, PointsInvested: 25},
	}, g.Plants)
}

func TestProgression_TierCountsAlwaysConsistent(t *testing.T) {
	// Every unlocked plant appears in exactly one tier, for any total.
	for total := 0; total <= 1000; total++ {
		g := Progression(total)

		assert.Equal(t, total/50, g.PlantsUnlocked, "total=%d", total)
		assert.Equal(t, g.PlantsUnlocked, g.Trees+g.Sprouts+g.Seedlings, "total=%d", total)
		assert.Len(t, g.Plants, g.PlantsUnlocked, "total=%d", total)
		assert.GreaterOrEqual(t, g.Seedlings, 0, "total=%d", total)
	}
}
