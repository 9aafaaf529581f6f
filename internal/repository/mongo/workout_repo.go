package mongo

import (
	"context"
	"errors"
	"time"

	"fitsphere/workout-api/internal/domain"
	"fitsphere/workout-api/internal/repository"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const workoutCollectionName = "workouts"

// mongoWorkoutRepository implements repository.WorkoutRepository.
// Exercises live embedded in the workout document, so create/copy/delete of
// a workout together with its exercises is atomic at the document level.
type mongoWorkoutRepository struct {
	collection *mongo.Collection
}

// NewMongoWorkoutRepository creates a new Workout repository.
func NewMongoWorkoutRepository(db *mongo.Database) repository.WorkoutRepository {
	return &mongoWorkoutRepository{
		collection: db.Collection(workoutCollectionName),
	}
}

// Create inserts a new workout with its embedded exercises. Exercise IDs are
// generated here if not already set (copies arrive with fresh IDs).
func (r *mongoWorkoutRepository) Create(ctx context.Context, workout *domain.Workout) (primitive.ObjectID, error) {
	if workout.UserID == "" || workout.Name == "" {
		return primitive.NilObjectID, errors.New("workout requires userId and name")
	}

	workout.ID = primitive.NewObjectID()
	now := time.Now().UTC()
	workout.CreatedAt = now
	workout.UpdatedAt = now
	for i := range workout.Exercises {
		if workout.Exercises[i].ID == primitive.NilObjectID {
			workout.Exercises[i].ID = primitive.NewObjectID()
		}
	}
	if workout.Likes == nil {
		workout.Likes = []string{}
	}

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

// GetByID retrieves a single workout by its ID.
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
	return &workout, nil
}

// Find retrieves workouts filtered by owner and/or visibility. Nil filters
// are omitted from the query; both nil returns every workout.
func (r *mongoWorkoutRepository) Find(ctx context.Context, userID *string, visibility *domain.Visibility) ([]domain.Workout, error) {
	filter := bson.M{}
	if userID != nil {
		filter["userId"] = *userID
	}
	if visibility != nil {
		filter["visibility"] = *visibility
	}

	findOptions := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := r.collection.Find(ctx, filter, findOptions)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	workouts := []domain.Workout{}
	if err = cursor.All(ctx, &workouts); err != nil {
		return nil, err
	}
	return workouts, nil
}

// Delete removes a workout document (and, by embedding, all its exercises).
// The deleted document is returned so callers can release storage objects
// its exercises reference.
func (r *mongoWorkoutRepository) Delete(ctx context.Context, id primitive.ObjectID) (*domain.Workout, error) {
	var workout domain.Workout
	err := r.collection.FindOneAndDelete(ctx, bson.M{"_id": id}).Decode(&workout)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return &workout, nil
}

// AddLike registers a like. $addToSet keeps the (user, workout) pair unique
// even under concurrent requests; re-liking is a silent no-op.
func (r *mongoWorkoutRepository) AddLike(ctx context.Context, workoutID primitive.ObjectID, userID string) error {
	filter := bson.M{"_id": workoutID}
	update := bson.M{
		"$addToSet": bson.M{"likes": userID},
		"$set":      bson.M{"updatedAt": time.Now().UTC()},
	}

	result, err := r.collection.UpdateOne(ctx, filter, update)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return repository.ErrNotFound
	}
	return nil
}

// RemoveLike withdraws a like. Removing an absent like is a no-op.
func (r *mongoWorkoutRepository) RemoveLike(ctx context.Context, workoutID primitive.ObjectID, userID string) error {
	filter := bson.M{"_id": workoutID}
	update := bson.M{
		"$pull": bson.M{"likes": userID},
		"$set":  bson.M{"updatedAt": time.Now().UTC()},
	}

	result, err := r.collection.UpdateOne(ctx, filter, update)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return repository.ErrNotFound
	}
	return nil
}

// DeleteExercise pulls one embedded exercise out of the workout containing
// it. The parent workout survives; only the array element is removed. The
// removed exercise is returned, taken from the pre-update document.
func (r *mongoWorkoutRepository) DeleteExercise(ctx context.Context, exerciseID primitive.ObjectID) (*domain.Exercise, error) {
	filter := bson.M{"exercises._id": exerciseID}
	update := bson.M{
		"$pull": bson.M{"exercises": bson.M{"_id": exerciseID}},
		"$set":  bson.M{"updatedAt": time.Now().UTC()},
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.Before)

	var workout domain.Workout
	err := r.collection.FindOneAndUpdate(ctx, filter, update, opts).Decode(&workout)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}

	exercise := workout.ExerciseByID(exerciseID)
	if exercise == nil {
		return nil, repository.ErrNotFound
	}
	return exercise, nil
}

// EnsureWorkoutIndexes creates necessary indexes. Call during startup.
func EnsureWorkoutIndexes(ctx context.Context, collection *mongo.Collection) {
	indexes := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "userId", Value: 1}, {Key: "createdAt", Value: -1}},
			Options: options.Index(),
		},
		{
			Keys:    bson.D{{Key: "visibility", Value: 1}},
			Options: options.Index(),
		},
		{
			// Exercise deletion looks the owning workout up by embedded ID.
			Keys:    bson.D{{Key: "exercises._id", Value: 1}},
			Options: options.Index(),
		},
	}
	_, _ = collection.Indexes().CreateMany(ctx, indexes)
}
