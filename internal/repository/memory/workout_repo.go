// Package memory provides a map-backed WorkoutRepository. It serves the
// service/protocol tests and the server's -memory development mode, where no
// MongoDB instance is available.
package memory

import (
	"context"
	"sort"
	"sync"

	"workoutlogger/internal/domain"
	"workoutlogger/internal/repository"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type memoryWorkoutRepository struct {
	mu       sync.RWMutex
	workouts map[primitive.ObjectID]domain.Workout
}

// NewMemoryWorkoutRepository creates an empty in-memory workout repository.
func NewMemoryWorkoutRepository() repository.WorkoutRepository {
	return &memoryWorkoutRepository{
		workouts: make(map[primitive.ObjectID]domain.Workout),
	}
}

// cloneWorkout copies the aggregate so callers can't mutate stored state
// through returned pointers.
func cloneWorkout(w domain.Workout) domain.Workout {
	out := w
	out.Exercises = make([]domain.Exercise, len(w.Exercises))
	for i, ex := range w.Exercises {
		outEx := ex
		outEx.Sets = append([]domain.Set(nil), ex.Sets...)
		out.Exercises[i] = outEx
	}
	return out
}

func (r *memoryWorkoutRepository) Create(ctx context.Context, workout *domain.Workout) (primitive.ObjectID, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	workout.ID = primitive.NewObjectID()
	r.workouts[workout.ID] = cloneWorkout(*workout)
	return workout.ID, nil
}

func (r *memoryWorkoutRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*domain.Workout, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	stored, ok := r.workouts[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	workout := cloneWorkout(stored)
	if workout.Exercises == nil {
		workout.Exercises = []domain.Exercise{}
	}
	return &workout, nil
}

func (r *memoryWorkoutRepository) List(ctx context.Context) ([]domain.WorkoutSummary, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	summaries := make([]domain.WorkoutSummary, 0, len(r.workouts))
	for _, w := range r.workouts {
		summaries = append(summaries, domain.WorkoutSummary{
			ID:            w.ID,
			WorkoutDate:   w.WorkoutDate,
			Title:         w.Title,
			CreatedAt:     w.CreatedAt,
			UpdatedAt:     w.UpdatedAt,
			ExerciseCount: len(w.Exercises),
			SetCount:      w.SetCount(),
		})
	}

	// Newest date first; id descending breaks date ties deterministically.
	sort.Slice(summaries, func(i, j int) bool {
		if summaries[i].WorkoutDate != summaries[j].WorkoutDate {
			return summaries[i].WorkoutDate > summaries[j].WorkoutDate
		}
		return summaries[i].ID.Hex() > summaries[j].ID.Hex()
	})
	return summaries, nil
}

func (r *memoryWorkoutRepository) Replace(ctx context.Context, workout *domain.Workout) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.workouts[workout.ID]; !ok {
		return repository.ErrNotFound
	}
	r.workouts[workout.ID] = cloneWorkout(*workout)
	return nil
}

func (r *memoryWorkoutRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.workouts[id]; !ok {
		return repository.ErrNotFound
	}
	delete(r.workouts, id)
	return nil
}
