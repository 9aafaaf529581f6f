package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Visibility controls whether a workout is discoverable by other users.
type Visibility string

const (
	VisibilityPublic  Visibility = "PUBLIC"
	VisibilityPrivate Visibility = "PRIVATE"
)

// ValidVisibility reports whether v is one of the enumerated values.
func ValidVisibility(v Visibility) bool {
	return v == VisibilityPublic || v == VisibilityPrivate
}

// WorkoutOrigin records how a workout came to exist.
type WorkoutOrigin string

const (
	OriginManual WorkoutOrigin = "manual"
	OriginAI     WorkoutOrigin = "ai"
)

// Workout is a training plan owned by one user. Users are referenced by
// their external provider ID, matching the identity model of the auth flow.
// Exercises are embedded so that creating, copying and deleting a workout
// (with all its exercises) is a single-document operation. Likes holds the
// user IDs of everyone who liked the workout; $addToSet keeps the
// (user, workout) pair unique.
type Workout struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UserID     string             `bson:"userId" json:"userId"`
	Name       string             `bson:"name" json:"name"`
	Visibility Visibility         `bson:"visibility" json:"visibility"`
	Origin     WorkoutOrigin      `bson:"origin" json:"origin"`
	Exercises  []Exercise         `bson:"exercises" json:"exercises"`
	Likes      []string           `bson:"likes" json:"likes"`
	CreatedAt  time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt  time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// Like records one user's endorsement of a workout. It is materialized from
// workout.likes membership rather than stored as its own document.
type Like struct {
	WorkoutID primitive.ObjectID `json:"workoutId"`
	UserID    string             `json:"userId"`
}

// ExerciseByID returns the embedded exercise with the given ID, or nil.
func (w *Workout) ExerciseByID(id primitive.ObjectID) *Exercise {
	for i := range w.Exercises {
		if w.Exercises[i].ID == id {
			return &w.Exercises[i]
		}
	}
	return nil
}
