package validation

import (
	"fmt"
	"strings"

	"workoutlogger/internal/domain"
)

// Workout checks a candidate workout payload against the save rules and
// returns every violation as a human-readable message, in rule order. An
// empty result means the payload may be persisted. The same function backs
// both the draft's pre-submit check and the service's authoritative check;
// it never panics on malformed input.
func Workout(input domain.WorkoutInput) []string {
	var errs []string

	if _, ok := ParseDate(input.WorkoutDate); !ok {
		errs = append(errs, "Workout date is required (YYYY-MM-DD).")
	}

	if len(input.Exercises) == 0 {
		// Per-exercise checks depend on there being exercises at all.
		errs = append(errs, "At least one exercise is required.")
		return errs
	}

	for ei, ex := range input.Exercises {
		name := strings.TrimSpace(ex.Name)
		if name == "" {
			errs = append(errs, fmt.Sprintf("Exercise #%d: name is required.", ei+1))
		}
		label := ExerciseLabel(ex.Name, ei)

		if len(ex.Sets) == 0 {
			errs = append(errs, fmt.Sprintf("Exercise '%s': at least one set is required.", label))
			continue
		}

		for si, set := range ex.Sets {
			errs = append(errs, setErrors(label, si, RepsValue(set.Reps), WeightValue(set.Weight))...)
		}
	}

	return errs
}
