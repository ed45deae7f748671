// internal/repository/mongo/workout_repo.go
package mongo

import (
	"context"
	"errors"

	"workoutlogger/internal/domain"
	"workoutlogger/internal/repository"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const workoutCollectionName = "workouts"

// mongoWorkoutRepository implements repository.WorkoutRepository. The whole
// aggregate lives in one document, so each operation below is a single
// document write and therefore atomic without a multi-document transaction.
type mongoWorkoutRepository struct {
	collection *mongo.Collection
}

// NewMongoWorkoutRepository creates a new Workout repository.
func NewMongoWorkoutRepository(db *mongo.Database) repository.WorkoutRepository {
	return &mongoWorkoutRepository{
		collection: db.Collection(workoutCollectionName),
	}
}

// Create inserts a new workout aggregate.
func (r *mongoWorkoutRepository) Create(ctx context.Context, workout *domain.Workout) (primitive.ObjectID, error) {
	if workout.WorkoutDate == "" {
		return primitive.NilObjectID, errors.New("workout requires a workout date")
	}
	workout.ID = primitive.NewObjectID()

	result, err := r.collection.InsertOne(ctx, workout)
	if err != nil {
		return primitive.NilObjectID, err
	}
	insertedID, ok := result.InsertedID.(primitive.ObjectID)
	if !ok {
		return primitive.NilObjectID, errors.New("failed to convert inserted workout ID")
	}
	return insertedID, nil
}

// GetByID retrieves a single workout aggregate by its ID.
func (r *mongoWorkoutRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*domain.Workout, error) {
	var workout domain.Workout
	filter := bson.M{"_id": id}
	err := r.collection.FindOne(ctx, filter).Decode(&workout)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	// Legacy documents may lack the exercises array; readers expect a slice.
	if workout.Exercises == nil {
		workout.Exercises = []domain.Exercise{}
	}
	return &workout, nil
}

// List returns history summaries with exercise/set counts computed in the
// database, newest workout date first, id descending on equal dates.
func (r *mongoWorkoutRepository) List(ctx context.Context) ([]domain.WorkoutSummary, error) {
	emptyIfMissing := func(field string) bson.D {
		return bson.D{{Key: "$ifNull", Value: bson.A{field, bson.A{}}}}
	}

	pipeline := mongo.Pipeline{
		bson.D{{Key: "$project", Value: bson.D{
			{Key: "workoutDate", Value: 1},
			{Key: "title", Value: bson.D{{Key: "$ifNull", Value: bson.A{"$title", ""}}}},
			{Key: "createdAt", Value: 1},
			{Key: "updatedAt", Value: 1},
			{Key: "exerciseCount", Value: bson.D{{Key: "$size", Value: emptyIfMissing("$exercises")}}},
			{Key: "setCount", Value: bson.D{{Key: "$sum", Value: bson.D{{Key: "$map", Value: bson.D{
				{Key: "input", Value: emptyIfMissing("$exercises")},
				{Key: "as", Value: "ex"},
				{Key: "in", Value: bson.D{{Key: "$size", Value: emptyIfMissing("$$ex.sets")}}},
			}}}}}},
		}}},
		bson.D{{Key: "$sort", Value: bson.D{
			{Key: "workoutDate", Value: -1},
			{Key: "_id", Value: -1},
		}}},
	}

	cursor, err := r.collection.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	summaries := []domain.WorkoutSummary{}
	if err = cursor.All(ctx, &summaries); err != nil {
		return nil, err
	}
	return summaries, nil
}

// Replace swaps the stored aggregate wholesale. The single ReplaceOne call
// discards the old exercise/set tree and writes the new one together, so a
// failed write leaves the previous aggregate untouched.
func (r *mongoWorkoutRepository) Replace(ctx context.Context, workout *domain.Workout) error {
	if workout.ID == primitive.NilObjectID {
		return errors.New("workout ID is required for replace")
	}

	filter := bson.M{"_id": workout.ID}
	result, err := r.collection.ReplaceOne(ctx, filter, workout)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return repository.ErrNotFound
	}
	return nil
}

// Delete removes the workout and, since children are embedded, all its
// exercises and sets with it.
func (r *mongoWorkoutRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	if id == primitive.NilObjectID {
		return errors.New("workout ID is required for deletion")
	}

	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return repository.ErrNotFound
	}
	return nil
}

// EnsureWorkoutIndexes creates necessary indexes. Call during startup.
func EnsureWorkoutIndexes(ctx context.Context, collection *mongo.Collection) {
	indexes := []mongo.IndexModel{
		{
			// Backs the history listing sort.
			Keys:    bson.D{{Key: "workoutDate", Value: -1}, {Key: "_id", Value: -1}},
			Options: options.Index(),
		},
	}
	_, _ = collection.Indexes().CreateMany(ctx, indexes)
}
