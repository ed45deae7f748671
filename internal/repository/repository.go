package repository

import (
	"context"

	"workoutlogger/internal/domain"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Error constants for the repository layer.
var (
	ErrNotFound      = RepositoryError("not found")
	ErrReplaceFailed = RepositoryError("replace failed")
	ErrDeleteFailed  = RepositoryError("delete failed")
)

// RepositoryError helps distinguish repository errors from driver errors.
type RepositoryError string

func (e RepositoryError) Error() string {
	return string(e)
}

// WorkoutRepository persists workout aggregates. Every write is atomic over
// the whole aggregate: a workout together with its exercises and sets either
// commits completely or not at all, and deleting a workout removes its
// children with it.
type WorkoutRepository interface {
	// Create inserts a new aggregate and returns its assigned id.
	Create(ctx context.Context, workout *domain.Workout) (primitive.ObjectID, error)
	// GetByID loads one aggregate with exercises and sets in stored order.
	// Returns ErrNotFound if no workout has that id.
	GetByID(ctx context.Context, id primitive.ObjectID) (*domain.Workout, error)
	// List returns history summaries sorted by workout date descending,
	// ties broken by id descending so the order is stable across requests.
	List(ctx context.Context) ([]domain.WorkoutSummary, error)
	// Replace swaps the stored aggregate for workout.ID with the given one,
	// children included. Returns ErrNotFound if the id does not exist; in
	// that case nothing is written.
	Replace(ctx context.Context, workout *domain.Workout) error
	// Delete permanently removes the aggregate. Returns ErrNotFound if the
	// id does not exist.
	Delete(ctx context.Context, id primitive.ObjectID) error
}
