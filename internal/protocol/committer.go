// Package protocol carries a draft across the trust boundary into the
// workout store. The draft validates locally before anything is submitted;
// the store validates again on its side and its verdict wins. Cancelling a
// draft never touches the store — the draft manager discards it locally.
package protocol

import (
	"context"
	"errors"

	"workoutlogger/internal/domain"
	"workoutlogger/internal/draft"
	"workoutlogger/internal/service"
)

// Committer submits drafts to the workout service.
type Committer struct {
	workouts service.WorkoutService
}

// NewCommitter creates a Committer backed by the given service.
func NewCommitter(workouts service.WorkoutService) *Committer {
	return &Committer{workouts: workouts}
}

// Save commits a draft: new drafts are created, drafts seeded from an
// existing workout replace it with the full tree unconditionally.
//
// The returned message list is non-empty when validation rejected the save —
// either locally (the store was never called) or by the store itself, whose
// wording is authoritative and not assumed to match the local messages. The
// error return covers not-found and persistence failures; the caller may
// resubmit manually, nothing is retried here.
//
// The draft's dirty flag is cleared only once the store confirms the commit,
// and the returned workout is the canonical persisted form.
func (c *Committer) Save(ctx context.Context, d *draft.Draft) (*domain.Workout, []string, error) {
	if msgs := d.ValidateForSave(); len(msgs) > 0 {
		return nil, msgs, nil
	}

	input := d.Snapshot()

	var (
		workout *domain.Workout
		err     error
	)
	if id, editing := d.WorkoutID(); editing {
		workout, err = c.workouts.Replace(ctx, id, input)
	} else {
		workout, err = c.workouts.Create(ctx, input)
	}

	if err != nil {
		var verr *service.ValidationError
		if errors.As(err, &verr) {
			return nil, verr.Errors, nil
		}
		return nil, nil, err
	}

	d.MarkSaved(workout.ID)
	return workout, nil, nil
}
