package draft

import (
	"encoding/json"
	"testing"

	"workoutlogger/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestAddExercise(t *testing.T) {
	d := New()

	require.NoError(t, d.AddExercise("  Squat  "))
	snap := d.Snapshot()
	require.Len(t, snap.Exercises, 1)
	assert.Equal(t, "Squat", snap.Exercises[0].Name)
	assert.Empty(t, snap.Exercises[0].Sets)
	assert.True(t, d.Dirty())
}

func TestAddExercise_RejectsBlankName(t *testing.T) {
	d := New()

	err := d.AddExercise("   ")
	assert.ErrorIs(t, err, ErrNameRequired)
	assert.Empty(t, d.Snapshot().Exercises)
	assert.False(t, d.Dirty(), "rejected operation must not dirty the draft")
}

func TestAddSet(t *testing.T) {
	d := New()
	require.NoError(t, d.AddExercise("Squat"))

	require.NoError(t, d.AddSet(0, "5", "135"))
	require.NoError(t, d.AddSet(0, " 8 ", " 95.5 "))

	sets := d.Snapshot().Exercises[0].Sets
	require.Len(t, sets, 2)
	assert.Equal(t, json.RawMessage("5"), sets[0].Reps)
	assert.Equal(t, json.RawMessage("135"), sets[0].Weight)
	assert.Equal(t, json.RawMessage("8"), sets[1].Reps)
	assert.Equal(t, json.RawMessage("95.5"), sets[1].Weight)
}

func TestAddSet_RejectsBadValues(t *testing.T) {
	d := New()
	require.NoError(t, d.AddExercise("Squat"))
	d.MarkSaved(primitive.NilObjectID) // reset dirty to observe rejections

	tests := []struct {
		name    string
		reps    string
		weight  string
		wantErr error
	}{
		{"non-numeric reps", "five", "100", ErrInvalidReps},
		{"fractional reps", "2.5", "100", ErrInvalidReps},
		{"zero reps", "0", "100", ErrInvalidReps},
		{"empty reps", "", "100", ErrInvalidReps},
		{"non-numeric weight", "5", "heavy", ErrInvalidWeight},
		{"negative weight", "5", "-10", ErrInvalidWeight},
		{"empty weight", "5", "", ErrInvalidWeight},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.ErrorIs(t, d.AddSet(0, tc.reps, tc.weight), tc.wantErr)
		})
	}

	assert.Empty(t, d.Snapshot().Exercises[0].Sets)
	assert.False(t, d.Dirty())
}

func TestAddSet_BoundaryValues(t *testing.T) {
	d := New()
	require.NoError(t, d.AddExercise("Squat"))

	require.NoError(t, d.AddSet(0, "1", "0"), "reps=1 and weight=0 are the passing boundaries")
	require.NoError(t, d.AddSet(0, "1", "0.5"))
	assert.Len(t, d.Snapshot().Exercises[0].Sets, 2)
}

func TestAddSet_UnknownExercise(t *testing.T) {
	d := New()
	assert.Error(t, d.AddSet(0, "5", "135"))
}

func TestRemoveExerciseRemovesItsSets(t *testing.T) {
	d := New()
	require.NoError(t, d.AddExercise("Squat"))
	require.NoError(t, d.AddExercise("Bench Press"))
	require.NoError(t, d.AddSet(0, "5", "135"))
	require.NoError(t, d.AddSet(1, "8", "95"))

	require.NoError(t, d.RemoveExercise(0))

	snap := d.Snapshot()
	require.Len(t, snap.Exercises, 1)
	assert.Equal(t, "Bench Press", snap.Exercises[0].Name)
	assert.Len(t, snap.Exercises[0].Sets, 1)
}

func TestRemoveSet(t *testing.T) {
	d := New()
	require.NoError(t, d.AddExercise("Squat"))
	require.NoError(t, d.AddSet(0, "5", "135"))
	require.NoError(t, d.AddSet(0, "3", "155"))

	require.NoError(t, d.RemoveSet(0, 0))

	sets := d.Snapshot().Exercises[0].Sets
	require.Len(t, sets, 1)
	assert.Equal(t, json.RawMessage("3"), sets[0].Reps)

	assert.Error(t, d.RemoveSet(0, 5))
	assert.Error(t, d.RemoveSet(3, 0))
}

func TestUndoLastSet(t *testing.T) {
	d := New()
	require.NoError(t, d.AddExercise("Squat"))
	require.NoError(t, d.AddExercise("Bench Press"))
	require.NoError(t, d.AddSet(0, "5", "135"))
	require.NoError(t, d.AddSet(1, "8", "95"))

	// Scans from the last exercise backwards.
	assert.True(t, d.UndoLastSet())
	snap := d.Snapshot()
	assert.Len(t, snap.Exercises[0].Sets, 1)
	assert.Empty(t, snap.Exercises[1].Sets)

	// Falls back to the earlier exercise once the later one is empty.
	assert.True(t, d.UndoLastSet())
	snap = d.Snapshot()
	assert.Empty(t, snap.Exercises[0].Sets)

	assert.False(t, d.UndoLastSet(), "nothing left to undo")
}

func TestUndoLastSet_EmptyDraft(t *testing.T) {
	d := New()
	assert.False(t, d.UndoLastSet())
	assert.False(t, d.Dirty())

	require.NoError(t, d.AddExercise("Squat"))
	d.MarkSaved(primitive.NilObjectID)
	assert.False(t, d.UndoLastSet(), "exercise without sets has nothing to undo")
	assert.False(t, d.Dirty())
}

func TestValidateForSave(t *testing.T) {
	d := New()
	errs := d.ValidateForSave()
	require.Len(t, errs, 2)
	assert.Equal(t, "Workout date is required (YYYY-MM-DD).", errs[0])
	assert.Equal(t, "At least one exercise is required.", errs[1])

	d.SetWorkoutDate("2024-05-01")
	require.NoError(t, d.AddExercise("Squat"))
	errs = d.ValidateForSave()
	require.Len(t, errs, 1)
	assert.Equal(t, "Exercise 'Squat': at least one set is required.", errs[0])

	require.NoError(t, d.AddSet(0, "5", "135"))
	assert.Empty(t, d.ValidateForSave())
}

func TestDirtyLifecycle(t *testing.T) {
	d := New()
	assert.False(t, d.Dirty())

	d.SetTitle("Morning session")
	assert.True(t, d.Dirty())

	id := primitive.NewObjectID()
	d.MarkSaved(id)
	assert.False(t, d.Dirty())

	got, ok := d.WorkoutID()
	require.True(t, ok)
	assert.Equal(t, id, got)

	d.SetWorkoutDate("2024-05-01")
	assert.True(t, d.Dirty(), "mutation after save dirties again")
}

func TestNewFromWorkout(t *testing.T) {
	w := &domain.Workout{
		ID:          primitive.NewObjectID(),
		WorkoutDate: "2024-05-01",
		Title:       "Leg day",
		Exercises: []domain.Exercise{
			{Name: "Squat", Sets: []domain.Set{
				{SetNumber: 1, Reps: 5, Weight: 135},
				{SetNumber: 2, Reps: 3, Weight: 155},
			}},
		},
	}

	d := NewFromWorkout(w)
	assert.False(t, d.Dirty())

	id, ok := d.WorkoutID()
	require.True(t, ok)
	assert.Equal(t, w.ID, id)

	snap := d.Snapshot()
	assert.Equal(t, "2024-05-01", snap.WorkoutDate)
	require.NotNil(t, snap.Title)
	assert.Equal(t, "Leg day", *snap.Title)
	require.Len(t, snap.Exercises, 1)
	require.Len(t, snap.Exercises[0].Sets, 2)
	assert.Equal(t, json.RawMessage("3"), snap.Exercises[0].Sets[1].Reps)
}

func TestSnapshot_EmptyTitleIsNull(t *testing.T) {
	d := New()
	d.SetWorkoutDate("2024-05-01")
	assert.Nil(t, d.Snapshot().Title)
}
