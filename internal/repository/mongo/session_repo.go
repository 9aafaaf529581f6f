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

const sessionCollectionName = "workout_sessions"

// mongoSessionRepository implements repository.SessionRepository.
type mongoSessionRepository struct {
	collection *mongo.Collection
}

// NewMongoSessionRepository creates a new WorkoutSession repository.
func NewMongoSessionRepository(db *mongo.Database) repository.SessionRepository {
	return &mongoSessionRepository{
		collection: db.Collection(sessionCollectionName),
	}
}

// Create inserts a new session with its seeded completion records.
func (r *mongoSessionRepository) Create(ctx context.Context, session *domain.WorkoutSession) (primitive.ObjectID, error) {
	if session.WorkoutID == primitive.NilObjectID || session.UserID == "" {
		return primitive.NilObjectID, errors.New("session requires workoutId and userId")
	}

	session.ID = primitive.NewObjectID()
	now := time.Now().UTC()
	session.CreatedAt = now
	session.UpdatedAt = now
	if session.Status == "" {
		session.Status = domain.SessionCreated
	}
	if session.Exercises == nil {
		session.Exercises = []domain.SessionExercise{}
	}

	result, err := r.collection.InsertOne(ctx, session)
	if err != nil {
		return primitive.NilObjectID, err
	}
	insertedID, ok := result.InsertedID.(primitive.ObjectID)
	if !ok {
		return primitive.NilObjectID, errors.New("failed to convert inserted session ID")
	}
	return insertedID, nil
}

// GetByID retrieves a single session by its ID.
func (r *mongoSessionRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*domain.WorkoutSession, error) {
	var session domain.WorkoutSession
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&session)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return &session, nil
}

// GetByWorkoutID retrieves all sessions performed against a workout.
// Returns an empty slice, not an error, when there are none.
func (r *mongoSessionRepository) GetByWorkoutID(ctx context.Context, workoutID primitive.ObjectID) ([]domain.WorkoutSession, error) {
	filter := bson.M{"workoutId": workoutID}
	findOptions := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})

	cursor, err := r.collection.Find(ctx, filter, findOptions)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	sessions := []domain.WorkoutSession{}
	if err = cursor.All(ctx, &sessions); err != nil {
		return nil, err
	}
	return sessions, nil
}

// MarkExercise updates a single completion record in place. The filter
// demands a non-completed session containing the record, and the update
// touches only that record via arrayFilters, so concurrent marks of
// different exercises cannot overwrite each other and a mark can never land
// on a session that already completed.
func (r *mongoSessionRepository) MarkExercise(ctx context.Context, sessionID, exerciseID primitive.ObjectID, mark domain.ExerciseMark) (*domain.WorkoutSession, error) {
	filter := bson.M{
		"_id":                  sessionID,
		"status":               bson.M{"$ne": domain.SessionCompleted},
		"exercises.exerciseId": exerciseID,
	}

	set := bson.M{
		"exercises.$[rec].completed": mark.Completed,
		"updatedAt":                  time.Now().UTC(),
	}
	if mark.Weight != nil {
		set["exercises.$[rec].weight"] = *mark.Weight
	}
	if mark.Repetitions != nil {
		set["exercises.$[rec].repetitions"] = *mark.Repetitions
	}
	if mark.Series != nil {
		set["exercises.$[rec].series"] = *mark.Series
	}

	opts := options.FindOneAndUpdate().
		SetReturnDocument(options.After).
		SetArrayFilters(options.ArrayFilters{
			Filters: []interface{}{bson.M{"rec.exerciseId": exerciseID}},
		})

	var session domain.WorkoutSession
	err := r.collection.FindOneAndUpdate(ctx, filter, bson.M{"$set": set}, opts).Decode(&session)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return &session, nil
}

// UpdateStatus persists a derived non-terminal status. Completed sessions
// are never touched.
func (r *mongoSessionRepository) UpdateStatus(ctx context.Context, sessionID primitive.ObjectID, status domain.SessionStatus) error {
	filter := bson.M{"_id": sessionID, "status": bson.M{"$ne": domain.SessionCompleted}}
	update := bson.M{"$set": bson.M{"status": status, "updatedAt": time.Now().UTC()}}

	result, err := r.collection.UpdateOne(ctx, filter, update)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return repository.ErrNotFound
	}
	return nil
}

// Complete moves a session to the terminal status without touching its
// completion records. The status guard lives in the filter, so the
// transition happens at most once regardless of concurrent callers.
func (r *mongoSessionRepository) Complete(ctx context.Context, sessionID primitive.ObjectID, requireAllCompleted bool) (*domain.WorkoutSession, error) {
	filter := bson.M{"_id": sessionID, "status": bson.M{"$ne": domain.SessionCompleted}}
	if requireAllCompleted {
		filter["exercises.0"] = bson.M{"$exists": true}
		filter["exercises.completed"] = bson.M{"$ne": false}
	}

	now := time.Now().UTC()
	update := bson.M{"$set": bson.M{
		"status":      domain.SessionCompleted,
		"completedAt": now,
		"updatedAt":   now,
	}}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var session domain.WorkoutSession
	err := r.collection.FindOneAndUpdate(ctx, filter, update, opts).Decode(&session)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return &session, nil
}

// EnsureSessionIndexes creates necessary indexes. Call during startup.
func EnsureSessionIndexes(ctx context.Context, collection *mongo.Collection) {
	indexes := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "workoutId", Value: 1}, {Key: "createdAt", Value: -1}},
			Options: options.Index(),
		},
		{
			Keys:    bson.D{{Key: "userId", Value: 1}},
			Options: options.Index(),
		},
	}
	_, _ = collection.Indexes().CreateMany(ctx, indexes)
}
