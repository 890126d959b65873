package leaguesim

import "math"

// simulateMatch draws a goal count for each side from independent
// Poisson distributions whose means are a linear function of the rating
// gap (home advantage included), then applies the rating update to the
// resulting scoreline.
//
// uHome and uAway are independent uniform samples in (0,1); the caller
// controls their order of consumption from the RNG.
func simulateMatch(eloHome, eloAway, modFactor, homeAdvantage, goalsSlope, goalsIntercept, uHome, uAway float64) RatingShift {
	delta := eloHome + homeAdvantage - eloAway

	lambdaHome := math.Max(0.001, delta*goalsSlope+goalsIntercept)
	lambdaAway := math.Max(0.001, -delta*goalsSlope+goalsIntercept)

	goalsHome := PoissonQuantile(uHome, lambdaHome)
	goalsAway := PoissonQuantile(uAway, lambdaAway)

	return UpdateRating(eloHome, eloAway, goalsHome, goalsAway, modFactor, homeAdvantage)
}
