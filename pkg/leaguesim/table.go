package leaguesim

import "sort"

// BuildTable aggregates a fully played match list into a sorted league
// table. Adjustment vectors seed the points/goals/goal-difference
// columns before any match is applied; a nil vector contributes zero to
// every team.
//
// Sort order is strictly points desc, then goal difference desc, then
// goals for desc. Anything still tied is broken by team index ascending,
// via a stable sort over the index-ordered standings.
func BuildTable(matches []Match, teamCount int, adj Adjustments) LeagueTable {
	standings := make([]Standing, teamCount)
	for i := range standings {
		standings[i].Team = i
		standings[i].Points = adjAt(adj.Points, i)
		standings[i].GoalsFor = adjAt(adj.GoalsFor, i)
		standings[i].GoalsAgainst = adjAt(adj.GoalsAgainst, i)
		standings[i].GoalDifference = adjAt(adj.GoalDiff, i)
	}

	for _, m := range matches {
		if !m.Played() {
			continue
		}
		gh, ga := *m.GoalsHome, *m.GoalsAway

		home := &standings[m.Home]
		away := &standings[m.Away]

		home.Played++
		away.Played++
		home.GoalsFor += gh
		home.GoalsAgainst += ga
		away.GoalsFor += ga
		away.GoalsAgainst += gh
		home.GoalDifference += gh - ga
		away.GoalDifference += ga - gh

		switch {
		case gh > ga:
			home.Won++
			home.Points += 3
			away.Lost++
		case gh < ga:
			away.Won++
			away.Points += 3
			home.Lost++
		default:
			home.Drawn++
			away.Drawn++
			home.Points++
			away.Points++
		}
	}

	sort.SliceStable(standings, func(i, j int) bool {
		if standings[i].Points != standings[j].Points {
			return standings[i].Points > standings[j].Points
		}
		if standings[i].GoalDifference != standings[j].GoalDifference {
			return standings[i].GoalDifference > standings[j].GoalDifference
		}
		if standings[i].GoalsFor != standings[j].GoalsFor {
			return standings[i].GoalsFor > standings[j].GoalsFor
		}
		return standings[i].Team < standings[j].Team
	})

	for i := range standings {
		standings[i].Position = i + 1
	}

	return standings
}

func adjAt(v []int, i int) int {
	if i >= len(v) {
		return 0
	}
	return v[i]
}
