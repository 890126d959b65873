package leaguesim

import (
	"fmt"
	"strings"
)

// ValidationError reports one shape violation in a Season or Params
// value.
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("validation error in %s: %s", e.Field, e.Message)
}

// ValidationErrors aggregates every ValidationError found in one pass,
// rather than stopping at the first.
type ValidationErrors struct {
	Errors []ValidationError
}

func (e ValidationErrors) Error() string {
	messages := make([]string, len(e.Errors))
	for i, err := range e.Errors {
		messages[i] = err.Error()
	}
	return strings.Join(messages, "; ")
}

// Validate checks a Season and Params for shape violations before any
// computation starts. A non-nil error is always a ValidationErrors.
func Validate(season Season, params Params) error {
	var errs []ValidationError

	teamCount := season.TeamCount()
	if teamCount == 0 {
		errs = append(errs, ValidationError{Field: "season.team_ratings", Message: "must contain at least one team"})
	}

	if len(season.Matches) == 0 {
		errs = append(errs, ValidationError{Field: "season.matches", Message: "schedule must not be empty"})
	}

	for i, m := range season.Matches {
		if m.Home < 0 || m.Home >= teamCount {
			errs = append(errs, ValidationError{Field: fmt.Sprintf("season.matches[%d].home", i), Message: "team index out of range"})
		}
		if m.Away < 0 || m.Away >= teamCount {
			errs = append(errs, ValidationError{Field: fmt.Sprintf("season.matches[%d].away", i), Message: "team index out of range"})
		}
		if m.Home == m.Away {
			errs = append(errs, ValidationError{Field: fmt.Sprintf("season.matches[%d]", i), Message: "home and away team must differ"})
		}
		if (m.GoalsHome == nil) != (m.GoalsAway == nil) {
			errs = append(errs, ValidationError{Field: fmt.Sprintf("season.matches[%d]", i), Message: "goals must be both present or both absent"})
		}
	}

	if params.Iterations <= 0 {
		errs = append(errs, ValidationError{Field: "params.iterations", Message: "must be positive"})
	}

	checkAdjustment(&errs, "params.adjustments.points", params.Adjustments.Points, teamCount)
	checkAdjustment(&errs, "params.adjustments.goals_for", params.Adjustments.GoalsFor, teamCount)
	checkAdjustment(&errs, "params.adjustments.goals_against", params.Adjustments.GoalsAgainst, teamCount)
	checkAdjustment(&errs, "params.adjustments.goal_diff", params.Adjustments.GoalDiff, teamCount)

	if len(errs) > 0 {
		return ValidationErrors{Errors: errs}
	}
	return nil
}

func checkAdjustment(errs *[]ValidationError, field string, vec []int, teamCount int) {
	if vec != nil && len(vec) != teamCount {
		*errs = append(*errs, ValidationError{Field: field, Message: fmt.Sprintf("length %d does not match team count %d", len(vec), teamCount)})
	}
}
