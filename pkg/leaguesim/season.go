package leaguesim

// uniformSource is satisfied by *rand.Rand from math/rand/v2. Extracted
// as an interface so tests can feed a fixed sequence of uniforms.
type uniformSource interface {
	Float64() float64
}

// simulateSeason walks a season's fixtures in order. A played match
// still propagates a rating update from its stored goals; an unplayed
// match draws two uniforms from rng (home, then away), simulates a
// score, and carries that score forward into the next match's ratings.
//
// The input season is never mutated; the returned match list is a full
// copy with every match marked played.
func simulateSeason(season Season, params Params, rng uniformSource) []Match {
	ratings := make([]float64, len(season.TeamRatings))
	copy(ratings, season.TeamRatings)

	completed := make([]Match, len(season.Matches))

	for i, m := range season.Matches {
		var shift RatingShift

		if m.Played() {
			shift = UpdateRating(ratings[m.Home], ratings[m.Away], *m.GoalsHome, *m.GoalsAway, params.ModFactor, params.HomeAdvantage)
		} else {
			uHome := rng.Float64()
			uAway := rng.Float64()
			shift = simulateMatch(ratings[m.Home], ratings[m.Away], params.ModFactor, params.HomeAdvantage, params.GoalsSlope, params.GoalsIntercept, uHome, uAway)
		}

		ratings[m.Home] = shift.NewHome
		ratings[m.Away] = shift.NewAway

		goalsHome, goalsAway := shift.GoalsHome, shift.GoalsAway
		completed[i] = Match{
			Home:      m.Home,
			Away:      m.Away,
			GoalsHome: &goalsHome,
			GoalsAway: &goalsAway,
		}
	}

	return completed
}
