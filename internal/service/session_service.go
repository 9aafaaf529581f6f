package service

import (
	"context"
	"errors"

	"fitsphere/workout-api/internal/domain"
	"fitsphere/workout-api/internal/repository"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// --- Service Interface ---
type SessionService interface {
	CreateSession(ctx context.Context, userID string, workoutID primitive.ObjectID) (*domain.WorkoutSession, error)
	GetSession(ctx context.Context, sessionID primitive.ObjectID) (*domain.WorkoutSession, error)
	GetSessionsByWorkout(ctx context.Context, workoutID primitive.ObjectID) ([]domain.WorkoutSession, error)
	MarkExercise(ctx context.Context, sessionID, exerciseID primitive.ObjectID, mark domain.ExerciseMark) (*domain.WorkoutSession, error)
	CompleteSession(ctx context.Context, sessionID primitive.ObjectID) (*domain.WorkoutSession, error)
}

// sessionService implements the SessionService interface and owns the
// created -> in_progress -> completed lifecycle. State transitions are
// delegated to targeted repository updates so concurrent requests against
// the same session cannot overwrite each other.
type sessionService struct {
	sessionRepo repository.SessionRepository
	workoutRepo repository.WorkoutRepository
	// requireAllCompleted makes CompleteSession reject sessions that still
	// have unmarked exercises instead of completing them unconditionally.
	requireAllCompleted bool
}

// NewSessionService creates a new instance of sessionService.
func NewSessionService(sessionRepo repository.SessionRepository, workoutRepo repository.WorkoutRepository, requireAllCompleted bool) SessionService {
	return &sessionService{
		sessionRepo:         sessionRepo,
		workoutRepo:         workoutRepo,
		requireAllCompleted: requireAllCompleted,
	}
}

// CreateSession starts a new performed instance of a workout, seeding one
// uncompleted record per source exercise.
func (s *sessionService) CreateSession(ctx context.Context, userID string, workoutID primitive.ObjectID) (*domain.WorkoutSession, error) {
	workout, err := s.workoutRepo.GetByID(ctx, workoutID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrWorkoutNotFound
		}
		return nil, err
	}

	records := make([]domain.SessionExercise, len(workout.Exercises))
	for i, ex := range workout.Exercises {
		records[i] = domain.SessionExercise{
			ExerciseID: ex.ID,
			Name:       ex.Name,
			Completed:  false,
		}
	}

	session := &domain.WorkoutSession{
		WorkoutID: workoutID,
		UserID:    userID,
		Status:    domain.SessionCreated,
		Exercises: records,
	}

	sessionID, err := s.sessionRepo.Create(ctx, session)
	if err != nil {
		return nil, err
	}
	session.ID = sessionID
	return session, nil
}

// GetSession retrieves a single session.
func (s *sessionService) GetSession(ctx context.Context, sessionID primitive.ObjectID) (*domain.WorkoutSession, error) {
	session, err := s.sessionRepo.GetByID(ctx, sessionID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrSessionNotFound
		}
		return nil, err
	}
	return session, nil
}

// GetSessionsByWorkout retrieves every session performed against a workout.
// No sessions is an empty slice, not an error.
func (s *sessionService) GetSessionsByWorkout(ctx context.Context, workoutID primitive.ObjectID) ([]domain.WorkoutSession, error) {
	return s.sessionRepo.GetByWorkoutID(ctx, workoutID)
}

// MarkExercise updates one completion record and recomputes the session
// status. The record update is a single targeted write with the
// non-completed guard in its filter, so a mark can never land on a session
// that completed concurrently and parallel marks of different exercises
// both persist. The completed status itself is never entered here, only
// via CompleteSession.
func (s *sessionService) MarkExercise(ctx context.Context, sessionID, exerciseID primitive.ObjectID, mark domain.ExerciseMark) (*domain.WorkoutSession, error) {
	if mark.Series != nil && !domain.ValidSeries(*mark.Series) {
		return nil, ErrInvalidSeries
	}

	session, err := s.sessionRepo.MarkExercise(ctx, sessionID, exerciseID, mark)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, s.classifyMarkFailure(ctx, sessionID, exerciseID)
		}
		return nil, err
	}

	status := domain.SessionCreated
	if session.AnyCompleted() {
		status = domain.SessionInProgress
	}
	if session.Status != status {
		// Lost to a concurrent completion at worst; the record update above
		// already committed against a non-completed session.
		if err := s.sessionRepo.UpdateStatus(ctx, sessionID, status); err != nil && !errors.Is(err, repository.ErrNotFound) {
			return nil, err
		}
		session.Status = status
	}
	return session, nil
}

// classifyMarkFailure distinguishes why the targeted mark matched nothing.
func (s *sessionService) classifyMarkFailure(ctx context.Context, sessionID, exerciseID primitive.ObjectID) error {
	session, err := s.sessionRepo.GetByID(ctx, sessionID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrSessionNotFound
		}
		return err
	}
	if session.Status == domain.SessionCompleted {
		return ErrSessionCompleted
	}
	if session.ExerciseRecord(exerciseID) == nil {
		return ErrSessionExerciseNotFound
	}
	return ErrSessionNotFound
}

// CompleteSession moves a session to its terminal state. The transition is
// a single guarded write; completing an already-completed session is
// idempotent and returns the terminal record unchanged.
func (s *sessionService) CompleteSession(ctx context.Context, sessionID primitive.ObjectID) (*domain.WorkoutSession, error) {
	session, err := s.sessionRepo.Complete(ctx, sessionID, s.requireAllCompleted)
	if err == nil {
		return session, nil
	}
	if !errors.Is(err, repository.ErrNotFound) {
		return nil, err
	}

	current, err := s.sessionRepo.GetByID(ctx, sessionID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrSessionNotFound
		}
		return nil, err
	}
	if current.Status == domain.SessionCompleted {
		return current, nil
	}
	return nil, ErrSessionIncomplete
}
