package draft

import "errors"

var (
	ErrConfirmationSpent = errors.New("confirmation already resolved")
	ErrConfirmationStale = errors.New("draft changed after confirmation was requested")
)

// Confirmation is a pending destructive action. The action runs only when
// Confirm is called, so the caller can put a prompt between requesting and
// executing without blocking inside the draft. A confirmation is single-use
// and refuses to apply if the draft was mutated after it was issued.
type Confirmation struct {
	version  uint64
	current  func() uint64
	apply    func() error
	resolved bool
}

func newConfirmation(d *Draft, apply func() error) *Confirmation {
	return &Confirmation{
		version: d.version,
		current: func() uint64 { return d.version },
		apply:   apply,
	}
}

// Confirm executes the pending action.
func (c *Confirmation) Confirm() error {
	if c.resolved {
		return ErrConfirmationSpent
	}
	c.resolved = true
	if c.current() != c.version {
		return ErrConfirmationStale
	}
	return c.apply()
}

// Cancel abandons the pending action; the draft is left as it was.
func (c *Confirmation) Cancel() {
	c.resolved = true
}

// RequestRemoveExercise stages removal of an exercise and all its sets.
func (d *Draft) RequestRemoveExercise(exerciseIndex int) (*Confirmation, error) {
	if exerciseIndex < 0 || exerciseIndex >= len(d.exercises) {
		return nil, errors.New("no such exercise")
	}
	return newConfirmation(d, func() error {
		return d.RemoveExercise(exerciseIndex)
	}), nil
}

// RequestRemoveSet stages removal of a single set.
func (d *Draft) RequestRemoveSet(exerciseIndex, setIndex int) (*Confirmation, error) {
	if exerciseIndex < 0 || exerciseIndex >= len(d.exercises) {
		return nil, errors.New("no such exercise")
	}
	if setIndex < 0 || setIndex >= len(d.exercises[exerciseIndex].Sets) {
		return nil, errors.New("no such set")
	}
	return newConfirmation(d, func() error {
		return d.RemoveSet(exerciseIndex, setIndex)
	}), nil
}
