package memory

import (
	"context"
	"testing"

	"workoutlogger/internal/domain"
	"workoutlogger/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func sampleWorkout(date string) *domain.Workout {
	return &domain.Workout{
		WorkoutDate: date,
		Exercises: []domain.Exercise{
			{Name: "Squat", Sets: []domain.Set{{SetNumber: 1, Reps: 5, Weight: 135}}},
		},
	}
}

func TestCreateAssignsID(t *testing.T) {
	repo := NewMemoryWorkoutRepository()
	ctx := context.Background()

	w := sampleWorkout("2024-05-01")
	id, err := repo.Create(ctx, w)
	require.NoError(t, err)
	assert.NotEqual(t, primitive.NilObjectID, id)
	assert.Equal(t, id, w.ID)
}

func TestGetByID_ReturnsIsolatedCopy(t *testing.T) {
	repo := NewMemoryWorkoutRepository()
	ctx := context.Background()

	id, err := repo.Create(ctx, sampleWorkout("2024-05-01"))
	require.NoError(t, err)

	first, err := repo.GetByID(ctx, id)
	require.NoError(t, err)

	// Mutating the returned aggregate must not leak into the store.
	first.Exercises[0].Sets[0].Reps = 99

	second, err := repo.GetByID(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, 5, second.Exercises[0].Sets[0].Reps)
}

func TestGetByID_NotFound(t *testing.T) {
	repo := NewMemoryWorkoutRepository()
	_, err := repo.GetByID(context.Background(), primitive.NewObjectID())
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestList_OrderAndCounts(t *testing.T) {
	repo := NewMemoryWorkoutRepository()
	ctx := context.Background()

	_, err := repo.Create(ctx, sampleWorkout("2024-01-01"))
	require.NoError(t, err)
	newerID, err := repo.Create(ctx, sampleWorkout("2024-06-01"))
	require.NoError(t, err)

	summaries, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, summaries, 2)
	assert.Equal(t, newerID, summaries[0].ID)
	assert.Equal(t, 1, summaries[0].ExerciseCount)
	assert.Equal(t, 1, summaries[0].SetCount)
}

func TestReplaceAndDelete_NotFound(t *testing.T) {
	repo := NewMemoryWorkoutRepository()
	ctx := context.Background()

	missing := sampleWorkout("2024-05-01")
	missing.ID = primitive.NewObjectID()
	assert.ErrorIs(t, repo.Replace(ctx, missing), repository.ErrNotFound)
	assert.ErrorIs(t, repo.Delete(ctx, missing.ID), repository.ErrNotFound)
}
