package leaguesim

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func unplayed(home, away int) Match {
	return Match{Home: home, Away: away}
}

func defaultParams(iterations int) Params {
	return Params{
		ModFactor:      20,
		HomeAdvantage:  65,
		Iterations:     iterations,
		GoalsSlope:     0.0017854953143549,
		GoalsIntercept: 1.3218390804597700,
	}
}

// S5 — Determinism.
func TestRunMonteCarlo_S5_Determinism(t *testing.T) {
	season := Season{
		Matches:     []Match{played(0, 1, 1, 0), unplayed(1, 2), unplayed(2, 0)},
		TeamRatings: []float64{1500, 1500, 1500},
	}
	params := defaultParams(50)

	first, err := RunMonteCarlo(season, params, nil)
	require.NoError(t, err)

	second, err := RunMonteCarlo(season, params, nil)
	require.NoError(t, err)

	assert.Equal(t, first.ProbabilityMatrix, second.ProbabilityMatrix)
}

func TestRunMonteCarlo_AllPlayedCollapse(t *testing.T) {
	season := Season{
		Matches:     []Match{played(0, 1, 2, 1), played(1, 2, 1, 1), played(2, 0, 0, 3)},
		TeamRatings: []float64{1500, 1500, 1500},
	}
	params := defaultParams(20)

	result, err := RunMonteCarlo(season, params, nil)
	require.NoError(t, err)

	for _, row := range result.ProbabilityMatrix {
		ones := 0
		for _, p := range row {
			if p == 1.0 {
				ones++
			} else {
				assert.Equal(t, 0.0, p)
			}
		}
		assert.Equal(t, 1, ones)
	}
}

func TestRunMonteCarlo_AdjustmentDominance(t *testing.T) {
	season := Season{
		Matches:     []Match{unplayed(0, 1), unplayed(1, 2), unplayed(2, 0)},
		TeamRatings: []float64{1500, 1500, 1500},
	}
	params := defaultParams(100)
	params.Adjustments = Adjustments{Points: []int{0, 0, -50}}

	result, err := RunMonteCarlo(season, params, nil)
	require.NoError(t, err)

	lastPlaceProb := result.ProbabilityMatrix[2][2]
	assert.Greater(t, lastPlaceProb, 0.9)
}

func TestRunMonteCarlo_RowAndColumnStochasticity(t *testing.T) {
	season := Season{
		Matches:     []Match{unplayed(0, 1), unplayed(1, 2), unplayed(2, 0)},
		TeamRatings: []float64{1600, 1500, 1400},
	}
	params := defaultParams(500)

	result, err := RunMonteCarlo(season, params, nil)
	require.NoError(t, err)

	for _, row := range result.ProbabilityMatrix {
		sum := 0.0
		for _, p := range row {
			sum += p
		}
		assert.InDelta(t, 1.0, sum, 1e-9)
	}

	teamCount := len(result.TeamNames)
	for j := 0; j < teamCount; j++ {
		sum := 0.0
		for i := 0; i < teamCount; i++ {
			sum += result.ProbabilityMatrix[i][j]
		}
		assert.InDelta(t, 1.0, sum, 1e-9)
	}
}

// S6 — Three-team Monte Carlo.
func TestRunMonteCarlo_S6(t *testing.T) {
	season := Season{
		Matches: []Match{
			played(0, 1, 3, 0),
			played(1, 2, 1, 1),
			played(2, 0, 0, 2),
			unplayed(1, 0),
			unplayed(2, 1),
			unplayed(0, 2),
		},
		TeamRatings: []float64{1600, 1500, 1400},
	}
	params := defaultParams(1000)

	result, err := RunMonteCarlo(season, params, []string{"Alpha", "Beta", "Gamma"})
	require.NoError(t, err)

	for _, row := range result.ProbabilityMatrix {
		sum := 0.0
		for _, p := range row {
			sum += p
		}
		assert.InDelta(t, 1.0, sum, 1e-9)
	}

	leaderFirstPlaceProb := result.ProbabilityMatrix[0][0]
	for i := 1; i < len(result.ProbabilityMatrix); i++ {
		assert.Greater(t, leaderFirstPlaceProb, result.ProbabilityMatrix[i][0])
	}
}

func TestRunMonteCarlo_RejectsEmptySchedule(t *testing.T) {
	season := Season{TeamRatings: []float64{1500, 1500}}
	_, err := RunMonteCarlo(season, defaultParams(10), nil)
	assert.Error(t, err)
}

func TestRunMonteCarlo_RejectsZeroTeams(t *testing.T) {
	season := Season{Matches: []Match{unplayed(0, 1)}}
	_, err := RunMonteCarlo(season, defaultParams(10), nil)
	assert.Error(t, err)
}
