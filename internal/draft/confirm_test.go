package draft

import (
	"testing"

	"workoutlogger/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func draftWithSets(t *testing.T) *Draft {
	t.Helper()
	d := New()
	require.NoError(t, d.AddExercise("Squat"))
	require.NoError(t, d.AddSet(0, "5", "135"))
	require.NoError(t, d.AddSet(0, "3", "155"))
	return d
}

func TestConfirmRemoveExercise(t *testing.T) {
	d := draftWithSets(t)

	conf, err := d.RequestRemoveExercise(0)
	require.NoError(t, err)

	// Nothing happens until the user confirms.
	assert.Len(t, d.Snapshot().Exercises, 1)

	require.NoError(t, conf.Confirm())
	assert.Empty(t, d.Snapshot().Exercises)
}

func TestCancelLeavesDraftUntouched(t *testing.T) {
	d := draftWithSets(t)

	conf, err := d.RequestRemoveSet(0, 1)
	require.NoError(t, err)
	conf.Cancel()

	assert.Len(t, d.Snapshot().Exercises[0].Sets, 2)
	assert.ErrorIs(t, conf.Confirm(), ErrConfirmationSpent)
}

func TestConfirmationIsSingleUse(t *testing.T) {
	d := draftWithSets(t)

	conf, err := d.RequestRemoveSet(0, 0)
	require.NoError(t, err)
	require.NoError(t, conf.Confirm())
	assert.ErrorIs(t, conf.Confirm(), ErrConfirmationSpent)
}

func TestConfirmationGoesStaleOnMutation(t *testing.T) {
	d := draftWithSets(t)

	conf, err := d.RequestRemoveSet(0, 1)
	require.NoError(t, err)

	// The draft moved on; the staged index may no longer mean the same set.
	require.NoError(t, d.AddSet(0, "8", "95"))

	assert.ErrorIs(t, conf.Confirm(), ErrConfirmationStale)
	assert.Len(t, d.Snapshot().Exercises[0].Sets, 3)
}

func TestRequestRemove_UnknownTargets(t *testing.T) {
	d := draftWithSets(t)

	_, err := d.RequestRemoveExercise(5)
	assert.Error(t, err)
	_, err = d.RequestRemoveSet(0, 9)
	assert.Error(t, err)
}

func TestManagerSessions(t *testing.T) {
	m := NewManager()

	id, d := m.Begin()
	require.NotEmpty(t, id)

	got, ok := m.Get(id)
	require.True(t, ok)
	assert.Same(t, d, got)

	id2, _ := m.Begin()
	assert.NotEqual(t, id, id2, "each session gets its own draft")

	_, ok = m.Get("missing")
	assert.False(t, ok)
}

func TestManagerBeginEdit(t *testing.T) {
	m := NewManager()
	w := &domain.Workout{
		ID:          primitive.NewObjectID(),
		WorkoutDate: "2024-05-01",
		Exercises:   []domain.Exercise{{Name: "Squat", Sets: []domain.Set{{SetNumber: 1, Reps: 5, Weight: 135}}}},
	}

	_, d := m.BeginEdit(w)
	id, ok := d.WorkoutID()
	require.True(t, ok)
	assert.Equal(t, w.ID, id)
	assert.False(t, d.Dirty())
}

func TestManagerEnd_RefusesDirtyDraft(t *testing.T) {
	m := NewManager()
	id, d := m.Begin()

	require.NoError(t, d.AddExercise("Squat"))
	assert.ErrorIs(t, m.End(id), ErrUnsavedChanges)

	// Still there.
	_, ok := m.Get(id)
	assert.True(t, ok)
}

func TestManagerEnd_CleanDraft(t *testing.T) {
	m := NewManager()
	id, _ := m.Begin()

	require.NoError(t, m.End(id))
	_, ok := m.Get(id)
	assert.False(t, ok)

	assert.ErrorIs(t, m.End(id), ErrSessionNotFound)
}

func TestRequestDiscard_DropsDirtyDraftOnConfirm(t *testing.T) {
	m := NewManager()
	id, d := m.Begin()
	require.NoError(t, d.AddExercise("Squat"))

	conf, err := m.RequestDiscard(id)
	require.NoError(t, err)
	require.NoError(t, conf.Confirm())

	_, ok := m.Get(id)
	assert.False(t, ok)
}

func TestRequestDiscard_CancelKeepsDraft(t *testing.T) {
	m := NewManager()
	id, d := m.Begin()
	require.NoError(t, d.AddExercise("Squat"))

	conf, err := m.RequestDiscard(id)
	require.NoError(t, err)
	conf.Cancel()

	got, ok := m.Get(id)
	require.True(t, ok)
	assert.True(t, got.Dirty())
}
