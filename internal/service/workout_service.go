package service

import (
	"context"
	"errors"
	"math"
	"strings"
	"time"

	"workoutlogger/internal/domain"
	"workoutlogger/internal/repository"
	"workoutlogger/internal/validation"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// --- Error Definitions ---
var (
	ErrWorkoutNotFound = errors.New("workout not found")
)

// ValidationError carries the ordered list of rule violations for a rejected
// write payload. Nothing is persisted when it is returned.
type ValidationError struct {
	Errors []string
}

func (e *ValidationError) Error() string {
	return "workout validation failed: " + strings.Join(e.Errors, "; ")
}

// HistoryPage is the result of a history listing, including how long the
// underlying query took (informational only).
type HistoryPage struct {
	Workouts []domain.WorkoutSummary
	TimingMS float64
}

// WorkoutService is the authoritative boundary for workout aggregates: it
// re-validates every write regardless of what the client already checked,
// and never partially commits.
type WorkoutService interface {
	Create(ctx context.Context, input domain.WorkoutInput) (*domain.Workout, error)
	Get(ctx context.Context, id primitive.ObjectID) (*domain.Workout, error)
	List(ctx context.Context) (*HistoryPage, error)
	Replace(ctx context.Context, id primitive.ObjectID, input domain.WorkoutInput) (*domain.Workout, error)
	Delete(ctx context.Context, id primitive.ObjectID) error
	Seed(ctx context.Context, count int) (int, error)
}

// workoutService implements the WorkoutService interface.
type workoutService struct {
	workoutRepo repository.WorkoutRepository
	now         func() time.Time
}

// NewWorkoutService creates a new instance of workoutService.
func NewWorkoutService(workoutRepo repository.WorkoutRepository) WorkoutService {
	return &workoutService{
		workoutRepo: workoutRepo,
		now:         func() time.Time { return time.Now().UTC() },
	}
}

// buildAggregate turns a validated input payload into the persisted shape:
// trimmed names, canonical date, set numbers assigned from position.
func buildAggregate(input domain.WorkoutInput) domain.Workout {
	date, _ := validation.ParseDate(input.WorkoutDate)

	title := ""
	if input.Title != nil {
		title = strings.TrimSpace(*input.Title)
	}

	exercises := make([]domain.Exercise, len(input.Exercises))
	for i, ex := range input.Exercises {
		sets := make([]domain.Set, len(ex.Sets))
		for j, s := range ex.Sets {
			// Validation already proved both values parse.
			sets[j] = domain.Set{
				SetNumber: j + 1,
				Reps:      *validation.RepsValue(s.Reps),
				Weight:    *validation.WeightValue(s.Weight),
			}
		}
		exercises[i] = domain.Exercise{
			Name: strings.TrimSpace(ex.Name),
			Sets: sets,
		}
	}

	return domain.Workout{
		WorkoutDate: date,
		Title:       title,
		Exercises:   exercises,
	}
}

// Create validates the payload and inserts a new aggregate atomically.
func (s *workoutService) Create(ctx context.Context, input domain.WorkoutInput) (*domain.Workout, error) {
	if errs := validation.Workout(input); len(errs) > 0 {
		return nil, &ValidationError{Errors: errs}
	}

	workout := buildAggregate(input)
	now := s.now()
	workout.CreatedAt = now
	workout.UpdatedAt = now

	id, err := s.workoutRepo.Create(ctx, &workout)
	if err != nil {
		return nil, err
	}
	// Fetch again so the caller sees exactly what was persisted.
	return s.Get(ctx, id)
}

// Get retrieves one workout aggregate.
func (s *workoutService) Get(ctx context.Context, id primitive.ObjectID) (*domain.Workout, error) {
	workout, err := s.workoutRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrWorkoutNotFound
		}
		return nil, err
	}
	return workout, nil
}

// List returns history summaries plus the wall-clock duration of the query.
func (s *workoutService) List(ctx context.Context) (*HistoryPage, error) {
	start := time.Now()
	summaries, err := s.workoutRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	elapsed := float64(time.Since(start).Microseconds()) / 1000.0

	return &HistoryPage{
		Workouts: summaries,
		TimingMS: math.Round(elapsed*100) / 100,
	}, nil
}

// Replace validates the payload and swaps the stored aggregate wholesale:
// the old exercise/set tree is discarded and the new one written in a single
// atomic operation. CreatedAt is preserved, UpdatedAt bumped.
func (s *workoutService) Replace(ctx context.Context, id primitive.ObjectID, input domain.WorkoutInput) (*domain.Workout, error) {
	if errs := validation.Workout(input); len(errs) > 0 {
		return nil, &ValidationError{Errors: errs}
	}

	existing, err := s.workoutRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrWorkoutNotFound
		}
		return nil, err
	}

	workout := buildAggregate(input)
	workout.ID = id
	workout.CreatedAt = existing.CreatedAt
	workout.UpdatedAt = s.now()

	if err := s.workoutRepo.Replace(ctx, &workout); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrWorkoutNotFound
		}
		return nil, err
	}
	return s.Get(ctx, id)
}

// Delete permanently removes the workout and all its exercises and sets.
func (s *workoutService) Delete(ctx context.Context, id primitive.ObjectID) error {
	err := s.workoutRepo.Delete(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrWorkoutNotFound
		}
		return err
	}
	return nil
}
