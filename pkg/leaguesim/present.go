package leaguesim

import "sort"

// OrderByExpectedPosition reorders the rows of a SimulationResult by each
// team's expected finishing position, ascending (best first). Column
// order — position 1..T — is unchanged.
func OrderByExpectedPosition(result SimulationResult) SimulationResult {
	teamCount := len(result.TeamNames)

	expected := make([]float64, teamCount)
	for i, row := range result.ProbabilityMatrix {
		var sum float64
		for j, p := range row {
			sum += float64(j+1) * p
		}
		expected[i] = sum
	}

	order := make([]int, teamCount)
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		return expected[order[a]] < expected[order[b]]
	})

	matrix := make([][]float64, teamCount)
	names := make([]string, teamCount)
	for newRow, oldRow := range order {
		matrix[newRow] = result.ProbabilityMatrix[oldRow]
		names[newRow] = result.TeamNames[oldRow]
	}

	return SimulationResult{ProbabilityMatrix: matrix, TeamNames: names}
}
