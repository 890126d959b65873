package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/chrisschwer/league-simulator/pkg/leaguesim"
	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v2"
)

// fixtureConfig mirrors Match but with optional goals, suitable for
// JSON/YAML round-tripping where "not yet played" means the fields are
// simply absent from the document.
type fixtureConfig struct {
	Home      int  `json:"home" yaml:"home"`
	Away      int  `json:"away" yaml:"away"`
	GoalsHome *int `json:"goals_home,omitempty" yaml:"goals_home,omitempty"`
	GoalsAway *int `json:"goals_away,omitempty" yaml:"goals_away,omitempty"`
}

type teamConfig struct {
	Name string  `json:"name" yaml:"name"`
	Elo  float64 `json:"elo" yaml:"elo"`
}

type seasonConfig struct {
	Teams          []teamConfig     `json:"teams" yaml:"teams"`
	Fixtures       []fixtureConfig  `json:"fixtures" yaml:"fixtures"`
	Iterations     int              `json:"iterations" yaml:"iterations"`
	ModFactor      float64          `json:"mod_factor" yaml:"mod_factor"`
	HomeAdvantage  float64          `json:"home_advantage" yaml:"home_advantage"`
	GoalsSlope     float64          `json:"goals_slope" yaml:"goals_slope"`
	GoalsIntercept float64          `json:"goals_intercept" yaml:"goals_intercept"`
	AdjPoints      []int            `json:"adj_points,omitempty" yaml:"adj_points,omitempty"`
}

func main() {
	var seasonPath string

	root := &cobra.Command{
		Use:   "league-simulator-demo",
		Short: "Runs a Monte Carlo league standings simulation and prints the probability table",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDemo(seasonPath)
		},
	}
	root.Flags().StringVar(&seasonPath, "season", "", "path to a season config file (.json or .yaml)")
	root.MarkFlagRequired("season")

	if err := root.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func runDemo(path string) error {
	cfg, err := loadSeasonConfig(path)
	if err != nil {
		return fmt.Errorf("loading season config: %w", err)
	}

	season, params, teamNames := cfg.toCore()

	fmt.Printf("Simulating %d teams, %d fixtures, %s iterations...\n",
		len(teamNames), len(season.Matches), humanize.Comma(int64(params.Iterations)))

	start := time.Now()
	result, err := leaguesim.RunMonteCarlo(season, params, teamNames)
	if err != nil {
		return err
	}
	elapsed := time.Since(start)

	ordered := leaguesim.OrderByExpectedPosition(result)
	printTable(ordered)

	rate := float64(params.Iterations) / elapsed.Seconds()
	fmt.Printf("\n%s simulations in %v (%s sims/sec)\n",
		humanize.Comma(int64(params.Iterations)), elapsed, humanize.Comma(int64(rate)))

	return nil
}

func (c seasonConfig) toCore() (leaguesim.Season, leaguesim.Params, []string) {
	ratings := make([]float64, len(c.Teams))
	names := make([]string, len(c.Teams))
	for i, t := range c.Teams {
		ratings[i] = t.Elo
		names[i] = t.Name
	}

	matches := make([]leaguesim.Match, len(c.Fixtures))
	for i, f := range c.Fixtures {
		matches[i] = leaguesim.Match{Home: f.Home, Away: f.Away, GoalsHome: f.GoalsHome, GoalsAway: f.GoalsAway}
	}

	params := leaguesim.Params{
		Iterations:     c.Iterations,
		ModFactor:      c.ModFactor,
		HomeAdvantage:  c.HomeAdvantage,
		GoalsSlope:     c.GoalsSlope,
		GoalsIntercept: c.GoalsIntercept,
		Adjustments:    leaguesim.Adjustments{Points: c.AdjPoints},
	}

	return leaguesim.Season{Matches: matches, TeamRatings: ratings}, params, names
}

func loadSeasonConfig(path string) (seasonConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return seasonConfig{}, err
	}

	var cfg seasonConfig
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &cfg)
	default:
		err = json.Unmarshal(data, &cfg)
	}
	return cfg, err
}

func printTable(result leaguesim.SimulationResult) {
	w := tabwriter.NewWriter(os.Stdout, 0, 2, 2, ' ', 0)
	defer w.Flush()

	fmt.Fprintf(w, "Pos\tTeam")
	for j := range result.TeamNames {
		fmt.Fprintf(w, "\tP%d", j+1)
	}
	fmt.Fprintln(w)

	for i, name := range result.TeamNames {
		fmt.Fprintf(w, "%d\t%s", i+1, name)
		for _, p := range result.ProbabilityMatrix[i] {
			fmt.Fprintf(w, "\t%.3f", p)
		}
		fmt.Fprintln(w)
	}
}
