package httpapi

import (
	"strconv"

	"github.com/chrisschwer/league-simulator/pkg/leaguesim"
)

// fixtureRow is one element of the 1-based "schedule" array in a
// /simulate request body: [home, away, goals_home_or_null, goals_away_or_null].
type fixtureRow [4]*int

type simulateRequest struct {
	Schedule        []fixtureRow `json:"schedule"`
	EloValues       []float64    `json:"elo_values"`
	TeamNames       []string     `json:"team_names,omitempty"`
	Iterations      *int         `json:"iterations,omitempty"`
	ModFactor       *float64     `json:"mod_factor,omitempty"`
	HomeAdvantage   *float64     `json:"home_advantage,omitempty"`
	GoalsSlope      *float64     `json:"goals_slope,omitempty"`
	GoalsIntercept  *float64     `json:"goals_intercept,omitempty"`
	AdjPoints       []int        `json:"adj_points,omitempty"`
	AdjGoals        []int        `json:"adj_goals,omitempty"`
	AdjGoalsAgainst []int        `json:"adj_goals_against,omitempty"`
	AdjGoalDiff     []int        `json:"adj_goal_diff,omitempty"`
}

type simulateResponse struct {
	ProbabilityMatrix    [][]float64 `json:"probability_matrix"`
	TeamNames            []string    `json:"team_names"`
	SimulationsPerformed int         `json:"simulations_performed"`
	TimeMs               int64       `json:"time_ms"`
}

type healthResponse struct {
	Status              string `json:"status"`
	Version             string `json:"version"`
	IterationsSupported bool   `json:"iterations_supported"`
}

type errorResponse struct {
	Error string `json:"error"`
}

const (
	defaultIterations     = 10000
	defaultModFactor      = 20.0
	defaultHomeAdvantage  = 65.0
	defaultGoalsSlope     = 0.0017854953143549
	defaultGoalsIntercept = 1.3218390804597700
)

// toSeasonAndParams converts the wire request into core types, applying
// the documented defaults and shifting 1-based team indices down to the
// core's 0-based convention.
func toSeasonAndParams(req simulateRequest) (leaguesim.Season, leaguesim.Params, []string) {
	matches := make([]leaguesim.Match, len(req.Schedule))
	for i, row := range req.Schedule {
		home := *row[0] - 1
		away := *row[1] - 1
		matches[i] = leaguesim.Match{Home: home, Away: away, GoalsHome: row[2], GoalsAway: row[3]}
	}

	season := leaguesim.Season{Matches: matches, TeamRatings: req.EloValues}

	params := leaguesim.Params{
		Iterations:     defaultIterations,
		ModFactor:      defaultModFactor,
		HomeAdvantage:  defaultHomeAdvantage,
		GoalsSlope:     defaultGoalsSlope,
		GoalsIntercept: defaultGoalsIntercept,
		Adjustments: leaguesim.Adjustments{
			Points:       req.AdjPoints,
			GoalsFor:     req.AdjGoals,
			GoalsAgainst: req.AdjGoalsAgainst,
			GoalDiff:     req.AdjGoalDiff,
		},
	}
	if req.Iterations != nil {
		params.Iterations = *req.Iterations
	}
	if req.ModFactor != nil {
		params.ModFactor = *req.ModFactor
	}
	if req.HomeAdvantage != nil {
		params.HomeAdvantage = *req.HomeAdvantage
	}
	if req.GoalsSlope != nil {
		params.GoalsSlope = *req.GoalsSlope
	}
	if req.GoalsIntercept != nil {
		params.GoalsIntercept = *req.GoalsIntercept
	}

	teamNames := req.TeamNames
	if teamNames == nil {
		teamNames = make([]string, len(req.EloValues))
		for i := range teamNames {
			teamNames[i] = defaultTeamName(i + 1)
		}
	}

	return season, params, teamNames
}

func defaultTeamName(n int) string {
	return "Team_" + strconv.Itoa(n)
}
