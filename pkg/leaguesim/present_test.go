package leaguesim

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOrderByExpectedPosition(t *testing.T) {
	result := SimulationResult{
		ProbabilityMatrix: [][]float64{
			{0.1, 0.9}, // expected position 1.9
			{0.9, 0.1}, // expected position 1.1
		},
		TeamNames: []string{"Underdog", "Favorite"},
	}

	ordered := OrderByExpectedPosition(result)

	assert.Equal(t, []string{"Favorite", "Underdog"}, ordered.TeamNames)
	assert.Equal(t, []float64{0.9, 0.1}, ordered.ProbabilityMatrix[0])
	assert.Equal(t, []float64{0.1, 0.9}, ordered.ProbabilityMatrix[1])
}
