package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Workout is a single logged training session. The exercises and their sets
// are embedded in the workout document, so the whole aggregate is written,
// replaced and deleted as one unit.
type Workout struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	WorkoutDate string             `bson:"workoutDate" json:"workout_date"` // ISO date YYYY-MM-DD
	Title       string             `bson:"title,omitempty" json:"title"`
	Exercises   []Exercise         `bson:"exercises" json:"exercises"`
	CreatedAt   time.Time          `bson:"createdAt" json:"created_at"`
	UpdatedAt   time.Time          `bson:"updatedAt" json:"updated_at"`
}

// Exercise is one movement within a workout. Slice order is display order
// and must survive a save/reload round trip.
type Exercise struct {
	Name string `bson:"name" json:"name"`
	Sets []Set  `bson:"sets" json:"sets"`
}

// Set is one set of an exercise. SetNumber is the 1-based position within
// its exercise, assigned at write time from slice order.
type Set struct {
	SetNumber int     `bson:"setNumber" json:"set_number"`
	Reps      int     `bson:"reps" json:"reps"`
	Weight    float64 `bson:"weight" json:"weight"`
}

// WorkoutSummary is the lightweight history-list projection of a workout.
type WorkoutSummary struct {
	ID            primitive.ObjectID `bson:"_id" json:"id"`
	WorkoutDate   string             `bson:"workoutDate" json:"workout_date"`
	Title         string             `bson:"title" json:"title"`
	CreatedAt     time.Time          `bson:"createdAt" json:"created_at"`
	UpdatedAt     time.Time          `bson:"updatedAt" json:"updated_at"`
	ExerciseCount int                `bson:"exerciseCount" json:"exercise_count"`
	SetCount      int                `bson:"setCount" json:"set_count"`
}

// SetCount returns the total number of sets across all exercises.
func (w *Workout) SetCount() int {
	n := 0
	for _, ex := range w.Exercises {
		n += len(ex.Sets)
	}
	return n
}
