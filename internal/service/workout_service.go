package service

import (
	"context"
	"errors"
	"log"
	"unicode/utf8"

	"fitsphere/workout-api/internal/domain"
	"fitsphere/workout-api/internal/planner"
	"fitsphere/workout-api/internal/repository"
	"fitsphere/workout-api/internal/storage"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// --- Service Interface ---
type WorkoutService interface {
	CreateWorkout(ctx context.Context, userID, name string, visibility domain.Visibility, exercises []domain.Exercise) (*domain.Workout, error)
	GetWorkouts(ctx context.Context, userID *string, visibility *domain.Visibility) ([]domain.Workout, error)
	LikeWorkout(ctx context.Context, workoutID primitive.ObjectID, userID string) (*domain.Like, error)
	UnlikeWorkout(ctx context.Context, workoutID primitive.ObjectID, userID string) error
	CopyWorkout(ctx context.Context, workoutID primitive.ObjectID, newOwnerID string) (*domain.Workout, error)
	DeleteWorkout(ctx context.Context, workoutID primitive.ObjectID) error
	DeleteExercise(ctx context.Context, exerciseID primitive.ObjectID) error
	GenerateWorkoutAI(ctx context.Context, userID string, profile planner.Profile) (*domain.Workout, error)
}

// workoutService implements the WorkoutService interface.
type workoutService struct {
	workoutRepo repository.WorkoutRepository
	generator   planner.Generator
	fileStorage storage.FileStorage
}

// NewWorkoutService creates a new instance of workoutService.
func NewWorkoutService(workoutRepo repository.WorkoutRepository, generator planner.Generator, fileStorage storage.FileStorage) WorkoutService {
	return &workoutService{
		workoutRepo: workoutRepo,
		generator:   generator,
		fileStorage: fileStorage,
	}
}

// validateExercises enforces the exercise invariants. The API layer rejects
// malformed input before it reaches here, but the rules are non-negotiable
// for direct callers too (and for AI-generated plans).
func validateExercises(exercises []domain.Exercise) error {
	if len(exercises) == 0 {
		return ErrNoExercises
	}
	for _, ex := range exercises {
		if utf8.RuneCountInString(ex.Name) < 3 || utf8.RuneCountInString(ex.Instructions) < 3 {
			return &Error{KindValidation, "exercise name and instructions must have at least 3 characters"}
		}
		if !domain.ValidSeries(ex.Series) {
			return ErrInvalidSeries
		}
		if !domain.ValidVideoURL(ex.VideoURL) {
			return ErrInvalidVideoURL
		}
	}
	return nil
}

func (s *workoutService) createWorkout(ctx context.Context, userID, name string, visibility domain.Visibility, origin domain.WorkoutOrigin, exercises []domain.Exercise) (*domain.Workout, error) {
	if n := utf8.RuneCountInString(name); n < 3 || n > 255 {
		return nil, ErrInvalidName
	}
	if visibility == "" {
		visibility = domain.VisibilityPublic
	}
	if !domain.ValidVisibility(visibility) {
		return nil, ErrInvalidVisibility
	}
	if err := validateExercises(exercises); err != nil {
		return nil, err
	}

	workout := &domain.Workout{
		UserID:     userID,
		Name:       name,
		Visibility: visibility,
		Origin:     origin,
		Exercises:  exercises,
	}

	workoutID, err := s.workoutRepo.Create(ctx, workout)
	if err != nil {
		return nil, err
	}
	workout.ID = workoutID
	return workout, nil
}

// CreateWorkout authors a new workout with its exercises.
func (s *workoutService) CreateWorkout(ctx context.Context, userID, name string, visibility domain.Visibility, exercises []domain.Exercise) (*domain.Workout, error) {
	return s.createWorkout(ctx, userID, name, visibility, domain.OriginManual, exercises)
}

// GetWorkouts lists workouts. Without a userId filter only PUBLIC workouts
// are discoverable; with a userId the owner's full library is visible,
// optionally narrowed by visibility.
func (s *workoutService) GetWorkouts(ctx context.Context, userID *string, visibility *domain.Visibility) ([]domain.Workout, error) {
	if visibility != nil && !domain.ValidVisibility(*visibility) {
		return nil, ErrInvalidVisibility
	}
	if userID == nil {
		if visibility != nil && *visibility != domain.VisibilityPublic {
			// Non-public workouts of arbitrary users are never listable.
			return []domain.Workout{}, nil
		}
		public := domain.VisibilityPublic
		visibility = &public
	}
	return s.workoutRepo.Find(ctx, userID, visibility)
}

// LikeWorkout registers a like. Liking twice is an idempotent no-op; the
// Like record is returned either way.
func (s *workoutService) LikeWorkout(ctx context.Context, workoutID primitive.ObjectID, userID string) (*domain.Like, error) {
	if err := s.workoutRepo.AddLike(ctx, workoutID, userID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrWorkoutNotFound
		}
		return nil, err
	}
	return &domain.Like{WorkoutID: workoutID, UserID: userID}, nil
}

// UnlikeWorkout withdraws a like; removing an absent like is a no-op.
func (s *workoutService) UnlikeWorkout(ctx context.Context, workoutID primitive.ObjectID, userID string) error {
	if err := s.workoutRepo.RemoveLike(ctx, workoutID, userID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrWorkoutNotFound
		}
		return err
	}
	return nil
}

// CopyWorkout deep-clones a workout under a new owner: fresh workout and
// exercise IDs, zero likes, visibility reset to PRIVATE. Exercises are
// embedded, so the clone is a single atomic insert.
func (s *workoutService) CopyWorkout(ctx context.Context, workoutID primitive.ObjectID, newOwnerID string) (*domain.Workout, error) {
	source, err := s.workoutRepo.GetByID(ctx, workoutID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrWorkoutNotFound
		}
		return nil, err
	}

	exercises := make([]domain.Exercise, len(source.Exercises))
	for i, ex := range source.Exercises {
		ex.ID = primitive.NilObjectID // Repo assigns fresh IDs
		exercises[i] = ex
	}

	copied := &domain.Workout{
		UserID:     newOwnerID,
		Name:       source.Name,
		Visibility: domain.VisibilityPrivate,
		Origin:     source.Origin,
		Exercises:  exercises,
	}

	copiedID, err := s.workoutRepo.Create(ctx, copied)
	if err != nil {
		return nil, err
	}
	copied.ID = copiedID
	return copied, nil
}

// DeleteWorkout removes a workout and, by embedding, all its exercises.
// Demo videos the exercises reference in our bucket are deleted with it.
func (s *workoutService) DeleteWorkout(ctx context.Context, workoutID primitive.ObjectID) error {
	workout, err := s.workoutRepo.Delete(ctx, workoutID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrWorkoutNotFound
		}
		return err
	}
	for _, ex := range workout.Exercises {
		s.removeStoredVideo(ctx, ex.VideoURL)
	}
	return nil
}

// DeleteExercise removes a single exercise from whichever workout contains
// it. The parent workout survives; the exercise's demo video is deleted
// when it lives in our bucket.
func (s *workoutService) DeleteExercise(ctx context.Context, exerciseID primitive.ObjectID) error {
	exercise, err := s.workoutRepo.DeleteExercise(ctx, exerciseID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrExerciseNotFound
		}
		return err
	}
	s.removeStoredVideo(ctx, exercise.VideoURL)
	return nil
}

// removeStoredVideo deletes the bucket object behind a video URL issued by
// this service. External URLs are left alone. Failures are logged, not
// surfaced; the workout mutation already committed.
func (s *workoutService) removeStoredVideo(ctx context.Context, videoURL string) {
	key, ok := storage.VideoObjectKey(videoURL)
	if !ok {
		return
	}
	if err := s.fileStorage.DeleteObject(ctx, key); err != nil {
		log.Printf("ERROR: failed to delete video object %q: %v", key, err)
	}
}

// GenerateWorkoutAI delegates to the plan generator and persists the result
// as an ordinary workout. Generator output is untrusted: it passes the same
// invariant checks as manual input before anything is stored.
func (s *workoutService) GenerateWorkoutAI(ctx context.Context, userID string, profile planner.Profile) (*domain.Workout, error) {
	plan, err := s.generator.GeneratePlan(ctx, profile)
	if err != nil {
		log.Printf("ERROR: plan generation failed for user %s: %v", userID, err)
		return nil, ErrPlanGeneration
	}

	exercises := make([]domain.Exercise, len(plan.Exercises))
	for i, ex := range plan.Exercises {
		exercises[i] = domain.Exercise{
			Name:         ex.Name,
			Series:       ex.Series,
			Repetitions:  ex.Repetitions,
			Weight:       ex.Weight,
			RestTime:     ex.RestTime,
			VideoURL:     ex.VideoURL,
			Instructions: ex.Instructions,
		}
	}
	name := plan.Name
	if utf8.RuneCountInString(name) < 3 {
		name = "AI Workout Plan"
	}
	if runes := []rune(name); len(runes) > 255 {
		name = string(runes[:255])
	}
	if err := validateExercises(exercises); err != nil {
		// The model violated the schema contract; the client did nothing wrong.
		log.Printf("ERROR: generated plan failed validation for user %s: %v", userID, err)
		return nil, ErrPlanGeneration
	}

	return s.createWorkout(ctx, userID, name, domain.VisibilityPublic, domain.OriginAI, exercises)
}
