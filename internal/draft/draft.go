// Package draft holds the in-memory state of a workout being authored or
// edited. A draft belongs to exactly one UI session, mutates locally with no
// store round trip, and is only persisted through the protocol package once
// its validation passes.
package draft

import (
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"workoutlogger/internal/domain"
	"workoutlogger/internal/validation"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// --- Error Definitions ---
var (
	ErrNameRequired  = errors.New("Exercise name is required.")
	ErrInvalidReps   = errors.New("Reps must be a whole number >= 1.")
	ErrInvalidWeight = errors.New("Weight must be a number >= 0.")
)

// Set is one set being composed.
type Set struct {
	Reps   int
	Weight float64
}

// Exercise is one exercise being composed.
type Exercise struct {
	Name string
	Sets []Set
}

// Draft is the mutable pre-persistence form of a workout. All operations are
// synchronous; rejected operations leave the draft untouched. Every
// successful mutation marks the draft dirty until a commit clears it.
type Draft struct {
	workoutID   primitive.ObjectID // NilObjectID until first save, or carried over when editing
	workoutDate string
	title       string
	exercises   []Exercise

	dirty   bool
	version uint64 // bumped on every mutation; guards stale confirmations
}

// New returns an empty draft for authoring a new workout.
func New() *Draft {
	return &Draft{}
}

// NewFromWorkout returns a draft seeded from a persisted workout for
// editing. The draft keeps the workout's id so a later save replaces it.
func NewFromWorkout(w *domain.Workout) *Draft {
	d := &Draft{
		workoutID:   w.ID,
		workoutDate: w.WorkoutDate,
		title:       w.Title,
		exercises:   make([]Exercise, len(w.Exercises)),
	}
	for i, ex := range w.Exercises {
		sets := make([]Set, len(ex.Sets))
		for j, s := range ex.Sets {
			sets[j] = Set{Reps: s.Reps, Weight: s.Weight}
		}
		d.exercises[i] = Exercise{Name: ex.Name, Sets: sets}
	}
	return d
}

func (d *Draft) touch() {
	d.dirty = true
	d.version++
}

// WorkoutID returns the persisted workout this draft edits, ok=false when
// the draft is for a new workout.
func (d *Draft) WorkoutID() (primitive.ObjectID, bool) {
	return d.workoutID, d.workoutID != primitive.NilObjectID
}

// Dirty reports whether the draft has unsaved changes. Callers use it to
// gate a confirmation prompt before navigating away or cancelling.
func (d *Draft) Dirty() bool {
	return d.dirty
}

// SetWorkoutDate updates the draft's date.
func (d *Draft) SetWorkoutDate(date string) {
	d.workoutDate = date
	d.touch()
}

// SetTitle updates the draft's optional title.
func (d *Draft) SetTitle(title string) {
	d.title = title
	d.touch()
}

// AddExercise appends an exercise with an empty set list. Rejected without
// mutation when the name trims to empty.
func (d *Draft) AddExercise(name string) error {
	if strings.TrimSpace(name) == "" {
		return ErrNameRequired
	}
	d.exercises = append(d.exercises, Exercise{Name: strings.TrimSpace(name)})
	d.touch()
	return nil
}

// AddSet parses reps and weight from their form-field strings, applies the
// same numeric rules the save validation uses, and appends the set. The set
// number is implicit in its position. Rejected input leaves the draft
// untouched.
func (d *Draft) AddSet(exerciseIndex int, reps, weight string) error {
	if exerciseIndex < 0 || exerciseIndex >= len(d.exercises) {
		return fmt.Errorf("no exercise at position %d", exerciseIndex+1)
	}

	r, err := strconv.Atoi(strings.TrimSpace(reps))
	if err != nil || !validation.RepsValid(&r) {
		return ErrInvalidReps
	}
	w, err := strconv.ParseFloat(strings.TrimSpace(weight), 64)
	if err != nil || !validation.WeightValid(&w) {
		return ErrInvalidWeight
	}

	ex := &d.exercises[exerciseIndex]
	ex.Sets = append(ex.Sets, Set{Reps: r, Weight: w})
	d.touch()
	return nil
}

// RemoveExercise removes the exercise and all its sets.
func (d *Draft) RemoveExercise(exerciseIndex int) error {
	if exerciseIndex < 0 || exerciseIndex >= len(d.exercises) {
		return fmt.Errorf("no exercise at position %d", exerciseIndex+1)
	}
	d.exercises = append(d.exercises[:exerciseIndex], d.exercises[exerciseIndex+1:]...)
	d.touch()
	return nil
}

// RemoveSet removes a single set from an exercise.
func (d *Draft) RemoveSet(exerciseIndex, setIndex int) error {
	if exerciseIndex < 0 || exerciseIndex >= len(d.exercises) {
		return fmt.Errorf("no exercise at position %d", exerciseIndex+1)
	}
	ex := &d.exercises[exerciseIndex]
	if setIndex < 0 || setIndex >= len(ex.Sets) {
		return fmt.Errorf("no set at position %d", setIndex+1)
	}
	ex.Sets = append(ex.Sets[:setIndex], ex.Sets[setIndex+1:]...)
	d.touch()
	return nil
}

// UndoLastSet removes the most recently added set across the whole draft:
// exercises are scanned from last-added to first, and the last set of the
// first exercise that has one is removed. This assumes exercises are never
// reordered after being added. Returns false, with no state change, when the
// draft has no sets anywhere.
func (d *Draft) UndoLastSet() bool {
	for i := len(d.exercises) - 1; i >= 0; i-- {
		ex := &d.exercises[i]
		if len(ex.Sets) > 0 {
			ex.Sets = ex.Sets[:len(ex.Sets)-1]
			d.touch()
			return true
		}
	}
	return false
}

// ValidateForSave runs the save rules against the current state. An empty
// result means the draft is ready to submit.
func (d *Draft) ValidateForSave() []string {
	return validation.Workout(d.Snapshot())
}

// Snapshot serializes the draft into the persistence payload shape.
func (d *Draft) Snapshot() domain.WorkoutInput {
	var title *string
	if d.title != "" {
		t := d.title
		title = &t
	}

	exercises := make([]domain.ExerciseInput, len(d.exercises))
	for i, ex := range d.exercises {
		sets := make([]domain.SetInput, len(ex.Sets))
		for j, s := range ex.Sets {
			sets[j] = domain.SetInput{
				Reps:   json.RawMessage(strconv.Itoa(s.Reps)),
				Weight: json.RawMessage(strconv.FormatFloat(s.Weight, 'f', -1, 64)),
			}
		}
		exercises[i] = domain.ExerciseInput{Name: ex.Name, Sets: sets}
	}

	return domain.WorkoutInput{
		WorkoutDate: d.workoutDate,
		Title:       title,
		Exercises:   exercises,
	}
}

// MarkSaved clears the dirty flag. Only the commit path calls this, and only
// after the store confirms the write.
func (d *Draft) MarkSaved(id primitive.ObjectID) {
	d.workoutID = id
	d.dirty = false
}
