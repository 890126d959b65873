package leaguesim

import (
	"runtime"
	"strconv"
	"sync"

	mathrand "math/rand/v2"
)

// newTrialRNG seeds a generator solely from the trial index, never from
// wall-clock time or any shared global state. Two runs requesting trial
// i always draw the identical uniform sequence, regardless of which
// worker happens to run it or in what order. PCG is a documented,
// reproducible counter-style generator; it is the one fixed algorithm
// this package uses for trial seeding.
func newTrialRNG(trial int) *mathrand.Rand {
	return mathrand.New(mathrand.NewPCG(uint64(trial), 0))
}

// RunMonteCarlo runs Params.Iterations independent season trials and
// tallies, per team, how often each finishing position occurs. The
// result is a probability matrix ordered by team index; callers wanting
// the expected-position display order should pass it through
// OrderByExpectedPosition.
//
// Trials are independent and run across GOMAXPROCS workers, each
// accumulating into its own local histogram; histograms are summed once
// at the end so there is no contention on the hot path and the result
// is identical no matter how trials are scheduled across workers.
func RunMonteCarlo(season Season, params Params, teamNames []string) (SimulationResult, error) {
	if err := Validate(season, params); err != nil {
		return SimulationResult{}, err
	}

	teamCount := season.TeamCount()
	iterations := params.Iterations

	workers := runtime.GOMAXPROCS(0)
	if workers > iterations {
		workers = iterations
	}
	if workers < 1 {
		workers = 1
	}

	totals := make([][]int, teamCount)
	for i := range totals {
		totals[i] = make([]int, teamCount)
	}

	trials := make(chan int, iterations)
	for i := 0; i < iterations; i++ {
		trials <- i
	}
	close(trials)

	var mu sync.Mutex
	var wg sync.WaitGroup

	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()

			local := make([][]int, teamCount)
			for i := range local {
				local[i] = make([]int, teamCount)
			}

			for trial := range trials {
				rng := newTrialRNG(trial)
				completed := simulateSeason(season, params, rng)
				table := BuildTable(completed, teamCount, params.Adjustments)
				for _, standing := range table {
					local[standing.Team][standing.Position-1]++
				}
			}

			mu.Lock()
			for i := range local {
				for j := range local[i] {
					totals[i][j] += local[i][j]
				}
			}
			mu.Unlock()
		}()
	}
	wg.Wait()

	matrix := make([][]float64, teamCount)
	for i := range matrix {
		matrix[i] = make([]float64, teamCount)
		for j := range matrix[i] {
			matrix[i][j] = float64(totals[i][j]) / float64(iterations)
		}
	}

	names := teamNames
	if names == nil {
		names = defaultTeamNames(teamCount)
	}

	return SimulationResult{ProbabilityMatrix: matrix, TeamNames: names}, nil
}

func defaultTeamNames(teamCount int) []string {
	names := make([]string, teamCount)
	for i := range names {
		names[i] = "Team_" + strconv.Itoa(i+1)
	}
	return names
}
