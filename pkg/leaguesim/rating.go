package leaguesim

import "math"

// UpdateRating applies the skill-rating update for a single match result.
// It combines the pre-match expected score (a logistic function of the
// rating gap, home advantage included) with the actual result, weighted
// by how decisive the scoreline was.
//
// The two returned shifts always sum to exactly zero: rating is
// conserved across a match, never created or destroyed.
func UpdateRating(eloHome, eloAway float64, goalsHome, goalsAway int, modFactor, homeAdvantage float64) RatingShift {
	deltaInv := eloAway - eloHome - homeAdvantage
	deltaInv = clamp(deltaInv, -400, 400)

	pHome := 1.0 / (1.0 + math.Pow(10, deltaInv/400))

	goalDiff := goalsHome - goalsAway
	result := (float64(sign(goalDiff)) + 1) / 2

	weight := math.Sqrt(math.Max(1, math.Abs(float64(goalDiff))))
	shift := (result - pHome) * weight * modFactor

	return RatingShift{
		NewHome:            eloHome + shift,
		NewAway:            eloAway - shift,
		GoalsHome:          goalsHome,
		GoalsAway:          goalsAway,
		HomeWinProbability: pHome,
	}
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func sign(v int) int {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	default:
		return 0
	}
}
