package service

import (
	"context"
	"math"
	"math/rand"
	"time"

	"workoutlogger/internal/domain"
	"workoutlogger/internal/validation"
)

// Seed bounds. The endpoint exists to demonstrate listing responsiveness
// with a few hundred workouts, not to bulk-load real data.
const (
	DefaultSeedCount = 200
	MaxSeedCount     = 2000
)

var seedExercisePool = []string{
	"Bench Press", "Squat", "Deadlift", "Overhead Press",
	"Barbell Row", "Lat Pulldown", "Pull-up", "Dumbbell Curl",
	"Tricep Pushdown", "Leg Press", "Calf Raise",
}

// Seed inserts count randomized workouts, one per day walking back from
// today, and returns how many were created. Count is clamped to
// [1, MaxSeedCount].
func (s *workoutService) Seed(ctx context.Context, count int) (int, error) {
	if count < 1 {
		count = 1
	}
	if count > MaxSeedCount {
		count = MaxSeedCount
	}

	created := 0
	startDay := s.now()
	for i := 0; i < count; i++ {
		day := startDay.AddDate(0, 0, -i)
		workout := randomWorkout(day)
		now := s.now()
		workout.CreatedAt = now
		workout.UpdatedAt = now

		if _, err := s.workoutRepo.Create(ctx, &workout); err != nil {
			return created, err
		}
		created++
	}
	return created, nil
}

func randomWorkout(day time.Time) domain.Workout {
	picked := rand.Perm(len(seedExercisePool))[:1+rand.Intn(4)]

	exercises := make([]domain.Exercise, 0, len(picked))
	for _, pi := range picked {
		setCount := 1 + rand.Intn(5)
		sets := make([]domain.Set, 0, setCount)
		for j := 0; j < setCount; j++ {
			sets = append(sets, domain.Set{
				SetNumber: j + 1,
				Reps:      3 + rand.Intn(10),
				Weight:    math.Round(rand.Float64()*315*10) / 10,
			})
		}
		exercises = append(exercises, domain.Exercise{
			Name: seedExercisePool[pi],
			Sets: sets,
		})
	}

	return domain.Workout{
		WorkoutDate: day.Format(validation.DateLayout),
		Exercises:   exercises,
	}
}
