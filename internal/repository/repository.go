package repository

import (
	"context"

	"fitsphere/workout-api/internal/domain"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ErrNotFound is returned when the targeted document (or the state it was
// required to be in) cannot be matched.
var ErrNotFound = RepositoryError("not found")

// RepositoryError helps distinguish repository errors.
type RepositoryError string

func (e RepositoryError) Error() string {
	return string(e)
}

// UserRepository defines the interface for interacting with user data.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) (primitive.ObjectID, error)
	GetByExternalID(ctx context.Context, externalID string) (*domain.User, error)
	UpdateProfile(ctx context.Context, id primitive.ObjectID, update domain.ProfileUpdate) (*domain.User, error)
}

// WorkoutRepository defines the interface for interacting with workout data.
// Exercises are embedded, so exercise-level mutations go through here too.
type WorkoutRepository interface {
	Create(ctx context.Context, workout *domain.Workout) (primitive.ObjectID, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (*domain.Workout, error)
	// Find filters by owner and/or visibility; nil means "no filter".
	Find(ctx context.Context, userID *string, visibility *domain.Visibility) ([]domain.Workout, error)
	// Delete removes a workout and returns the deleted document so callers
	// can release resources its exercises reference.
	Delete(ctx context.Context, id primitive.ObjectID) (*domain.Workout, error)
	// AddLike adds userID to the workout's like set. Returns ErrNotFound if
	// the workout does not exist; adding an existing like is a no-op.
	AddLike(ctx context.Context, workoutID primitive.ObjectID, userID string) error
	// RemoveLike removes userID from the like set if present.
	RemoveLike(ctx context.Context, workoutID primitive.ObjectID, userID string) error
	// DeleteExercise pulls one embedded exercise out of whichever workout
	// contains it and returns the removed exercise. Returns ErrNotFound if
	// no workout embeds that exercise.
	DeleteExercise(ctx context.Context, exerciseID primitive.ObjectID) (*domain.Exercise, error)
}

// SessionRepository defines the interface for interacting with workout
// session data. Mutations target individual fields so that concurrent
// writers on the same session cannot overwrite each other's records.
type SessionRepository interface {
	Create(ctx context.Context, session *domain.WorkoutSession) (primitive.ObjectID, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (*domain.WorkoutSession, error)
	GetByWorkoutID(ctx context.Context, workoutID primitive.ObjectID) ([]domain.WorkoutSession, error)
	// MarkExercise atomically applies a partial update to one completion
	// record of a non-completed session and returns the updated session.
	// ErrNotFound when no document matches the session, the record, and a
	// non-completed status at once.
	MarkExercise(ctx context.Context, sessionID, exerciseID primitive.ObjectID, mark domain.ExerciseMark) (*domain.WorkoutSession, error)
	// UpdateStatus sets the derived status of a non-completed session.
	UpdateStatus(ctx context.Context, sessionID primitive.ObjectID, status domain.SessionStatus) error
	// Complete atomically moves a non-completed session to the terminal
	// status and returns the updated session. With requireAllCompleted the
	// match additionally demands every record be marked done. ErrNotFound
	// when no document satisfies the filter.
	Complete(ctx context.Context, sessionID primitive.ObjectID, requireAllCompleted bool) (*domain.WorkoutSession, error)
}

// MuscleGroupRepository reads the static muscle group catalog.
type MuscleGroupRepository interface {
	GetAll(ctx context.Context) ([]domain.MuscleGroup, error)
}
