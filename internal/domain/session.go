package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// SessionStatus type for the workout session lifecycle.
type SessionStatus string

const (
	SessionCreated    SessionStatus = "created"     // No exercises marked yet
	SessionInProgress SessionStatus = "in_progress" // At least one exercise marked
	SessionCompleted  SessionStatus = "completed"   // Terminal, set only by explicit completion
)

// SessionExercise is the per-exercise completion record of a session. The
// weight/repetitions/series overrides capture actual performance, which may
// differ from the plan.
type SessionExercise struct {
	ExerciseID  primitive.ObjectID `bson:"exerciseId" json:"exerciseId"`
	Name        string             `bson:"name" json:"name"` // Denormalized from the source exercise
	Completed   bool               `bson:"completed" json:"completed"`
	Weight      string             `bson:"weight,omitempty" json:"weight,omitempty"`
	Repetitions string             `bson:"repetitions,omitempty" json:"repetitions,omitempty"`
	Series      string             `bson:"series,omitempty" json:"series,omitempty"`
}

// WorkoutSession is one performed instance of a Workout. Completion records
// reference only exercises belonging to the source workout; they are seeded
// at session creation and never added afterwards.
type WorkoutSession struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	WorkoutID   primitive.ObjectID `bson:"workoutId" json:"workoutId"`
	UserID      string             `bson:"userId" json:"userId"`
	Status      SessionStatus      `bson:"status" json:"status"`
	Exercises   []SessionExercise  `bson:"exercises" json:"exercises"`
	CreatedAt   time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt   time.Time          `bson:"updatedAt" json:"updatedAt"`
	CompletedAt *time.Time         `bson:"completedAt,omitempty" json:"completedAt,omitempty"`
}

// ExerciseMark carries a partial update of one completion record. Nil
// pointers mean "leave the stored value unchanged".
type ExerciseMark struct {
	Completed   bool
	Weight      *string
	Repetitions *string
	Series      *string
}

// ExerciseRecord returns the completion record for the given exercise, or nil.
func (s *WorkoutSession) ExerciseRecord(exerciseID primitive.ObjectID) *SessionExercise {
	for i := range s.Exercises {
		if s.Exercises[i].ExerciseID == exerciseID {
			return &s.Exercises[i]
		}
	}
	return nil
}

// AllCompleted reports whether every completion record is marked done.
func (s *WorkoutSession) AllCompleted() bool {
	for i := range s.Exercises {
		if !s.Exercises[i].Completed {
			return false
		}
	}
	return len(s.Exercises) > 0
}

// AnyCompleted reports whether at least one record is marked done.
func (s *WorkoutSession) AnyCompleted() bool {
	for i := range s.Exercises {
		if s.Exercises[i].Completed {
			return true
		}
	}
	return false
}
