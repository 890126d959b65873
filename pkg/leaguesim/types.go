// Package leaguesim simulates round-robin league seasons and aggregates
// many simulated trajectories into a probability matrix of final standings.
package leaguesim

// Match is a fixture between two teams, identified by dense indices in
// [0, T). Goals are either both set (a played match) or both nil
// (to be simulated).
type Match struct {
	Home       int
	Away       int
	GoalsHome  *int
	GoalsAway  *int
}

// Played reports whether the match already has a recorded result.
func (m Match) Played() bool {
	return m.GoalsHome != nil && m.GoalsAway != nil
}

// Season is the immutable input to a single simulation run: the fixture
// list in play order and the current skill rating of every team.
type Season struct {
	Matches      []Match
	TeamRatings  []float64
}

// TeamCount returns T, the number of teams in the season.
func (s Season) TeamCount() int {
	return len(s.TeamRatings)
}

// Adjustments carries per-team corrections applied to the table before
// sorting. A nil field is equivalent to a vector of zeros.
type Adjustments struct {
	Points       []int
	GoalsFor     []int
	GoalsAgainst []int
	GoalDiff     []int
}

// Params bundles every scalar and adjustment input to a simulation run
// beyond the season itself.
type Params struct {
	ModFactor      float64
	HomeAdvantage  float64
	Iterations     int
	GoalsSlope     float64
	GoalsIntercept float64
	Adjustments    Adjustments
}

// RatingShift is the derived outcome of applying the rating update to a
// single match result. It is never persisted; callers fold new_home and
// new_away back into a rating vector themselves.
type RatingShift struct {
	NewHome            float64
	NewAway            float64
	GoalsHome          int
	GoalsAway          int
	HomeWinProbability float64
}

// Standing is one team's row in a LeagueTable.
type Standing struct {
	Team           int
	Played         int
	Won            int
	Drawn          int
	Lost           int
	GoalsFor       int
	GoalsAgainst   int
	GoalDifference int
	Points         int
	Position       int
}

// LeagueTable is a fully ordered set of standings, index 0 being rank 1.
type LeagueTable []Standing

// SimulationResult is the output of a Monte Carlo run: a T×T matrix where
// row i, column j is the probability that the team shown in row i
// finishes in table position j+1, plus the team names in the same row
// order.
type SimulationResult struct {
	ProbabilityMatrix [][]float64
	TeamNames         []string
}
