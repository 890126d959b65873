package leaguesim

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidate_AggregatesMultipleErrors(t *testing.T) {
	season := Season{
		Matches:     []Match{{Home: 0, Away: 5}, {Home: 1, Away: 1}},
		TeamRatings: []float64{1500, 1500},
	}
	params := Params{Iterations: -1, Adjustments: Adjustments{Points: []int{1}}}

	err := Validate(season, params)
	var verrs ValidationErrors
	if !assert.ErrorAs(t, err, &verrs) {
		return
	}
	assert.GreaterOrEqual(t, len(verrs.Errors), 4)
}

func TestValidate_AcceptsWellFormedInput(t *testing.T) {
	season := Season{
		Matches:     []Match{{Home: 0, Away: 1}},
		TeamRatings: []float64{1500, 1500},
	}
	params := Params{Iterations: 10}

	assert.NoError(t, Validate(season, params))
}
