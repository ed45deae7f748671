package domain

import "encoding/json"

// WorkoutInput is the write payload for creating or replacing a workout
// aggregate. It mirrors the JSON request body.
type WorkoutInput struct {
	WorkoutDate string          `json:"workout_date"`
	Title       *string         `json:"title"`
	Exercises   []ExerciseInput `json:"exercises"`
}

// ExerciseInput is one exercise in a write payload.
type ExerciseInput struct {
	Name string     `json:"name"`
	Sets []SetInput `json:"sets"`
}

// SetInput is one set in a write payload. Reps and weight stay raw so that
// a missing, null, fractional or non-numeric value survives decoding and is
// reported against its own exercise and set position by the validation
// rules, instead of failing the whole payload at the JSON layer.
type SetInput struct {
	Reps   json.RawMessage `json:"reps"`
	Weight json.RawMessage `json:"weight"`
}
