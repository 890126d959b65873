package leaguesim

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUpdateRating_Conservation(t *testing.T) {
	cases := []struct {
		eloHome, eloAway         float64
		goalsHome, goalsAway     int
		modFactor, homeAdvantage float64
	}{
		{1500, 1600, 2, 1, 40, 0},
		{1400, 1400, 0, 0, 20, 65},
		{1800, 1200, 5, 0, 20, 65},
	}

	for _, c := range cases {
		shift := UpdateRating(c.eloHome, c.eloAway, c.goalsHome, c.goalsAway, c.modFactor, c.homeAdvantage)
		sum := (shift.NewHome - c.eloHome) + (shift.NewAway - c.eloAway)
		assert.InDelta(t, 0, sum, 1e-12)
	}
}

func TestUpdateRating_DrawShiftSmallerThanWin(t *testing.T) {
	draw := UpdateRating(1500, 1500, 1, 1, 20, 0)
	win := UpdateRating(1500, 1500, 2, 1, 20, 0)

	assert.Less(t, math.Abs(draw.NewHome-1500), math.Abs(win.NewHome-1500))
}

func TestUpdateRating_UnderdogPremium(t *testing.T) {
	underdogWins := UpdateRating(1400, 1600, 2, 1, 20, 0)
	favoriteWins := UpdateRating(1600, 1400, 2, 1, 20, 0)

	underdogShift := underdogWins.NewHome - 1400
	favoriteShift := favoriteWins.NewHome - 1600

	assert.Greater(t, underdogShift, favoriteShift)
}

func TestUpdateRating_GoalDiffMonotonicity(t *testing.T) {
	big := UpdateRating(1500, 1500, 5, 0, 20, 0)
	small := UpdateRating(1500, 1500, 1, 0, 20, 0)

	assert.Greater(t, math.Abs(big.NewHome-1500), math.Abs(small.NewHome-1500))
}

func TestUpdateRating_HomeAdvantageMonotonicity(t *testing.T) {
	low := UpdateRating(1500, 1500, 1, 1, 20, 0)
	high := UpdateRating(1500, 1500, 1, 1, 20, 100)

	assert.Greater(t, high.HomeWinProbability, low.HomeWinProbability)
}

// S1 — Rating update.
func TestUpdateRating_S1(t *testing.T) {
	shift := UpdateRating(1500, 1600, 2, 1, 40, 0)

	require.InDelta(t, -(shift.NewAway - 1600), shift.NewHome-1500, 1e-9)
	assert.InDelta(t, 0.3599, shift.HomeWinProbability, 1e-4)
}
