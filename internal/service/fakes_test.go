package service

import (
	"context"
	"sync"
	"time"

	"fitsphere/workout-api/internal/domain"
	"fitsphere/workout-api/internal/planner"
	"fitsphere/workout-api/internal/repository"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// In-memory repository fakes mirroring the mongo implementations' contracts
// (ID assignment, timestamps, ErrNotFound, add-to-set like semantics, and
// the targeted session updates with their status guards).

type fakeWorkoutRepo struct {
	workouts map[primitive.ObjectID]*domain.Workout
}

func newFakeWorkoutRepo() *fakeWorkoutRepo {
	return &fakeWorkoutRepo{workouts: make(map[primitive.ObjectID]*domain.Workout)}
}

func (r *fakeWorkoutRepo) Create(_ context.Context, workout *domain.Workout) (primitive.ObjectID, error) {
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
	stored := *workout
	stored.Exercises = append([]domain.Exercise(nil), workout.Exercises...)
	stored.Likes = append([]string(nil), workout.Likes...)
	r.workouts[workout.ID] = &stored
	return workout.ID, nil
}

func (r *fakeWorkoutRepo) GetByID(_ context.Context, id primitive.ObjectID) (*domain.Workout, error) {
	w, ok := r.workouts[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	out := *w
	out.Exercises = append([]domain.Exercise(nil), w.Exercises...)
	out.Likes = append([]string(nil), w.Likes...)
	return &out, nil
}

func (r *fakeWorkoutRepo) Find(_ context.Context, userID *string, visibility *domain.Visibility) ([]domain.Workout, error) {
	result := []domain.Workout{}
	for _, w := range r.workouts {
		if userID != nil && w.UserID != *userID {
			continue
		}
		if visibility != nil && w.Visibility != *visibility {
			continue
		}
		result = append(result, *w)
	}
	return result, nil
}

func (r *fakeWorkoutRepo) Delete(_ context.Context, id primitive.ObjectID) (*domain.Workout, error) {
	w, ok := r.workouts[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	delete(r.workouts, id)
	return w, nil
}

func (r *fakeWorkoutRepo) AddLike(_ context.Context, workoutID primitive.ObjectID, userID string) error {
	w, ok := r.workouts[workoutID]
	if !ok {
		return repository.ErrNotFound
	}
	for _, id := range w.Likes {
		if id == userID {
			return nil
		}
	}
	w.Likes = append(w.Likes, userID)
	return nil
}

func (r *fakeWorkoutRepo) RemoveLike(_ context.Context, workoutID primitive.ObjectID, userID string) error {
	w, ok := r.workouts[workoutID]
	if !ok {
		return repository.ErrNotFound
	}
	for i, id := range w.Likes {
		if id == userID {
			w.Likes = append(w.Likes[:i], w.Likes[i+1:]...)
			return nil
		}
	}
	return nil
}

func (r *fakeWorkoutRepo) DeleteExercise(_ context.Context, exerciseID primitive.ObjectID) (*domain.Exercise, error) {
	for _, w := range r.workouts {
		for i, ex := range w.Exercises {
			if ex.ID == exerciseID {
				w.Exercises = append(w.Exercises[:i], w.Exercises[i+1:]...)
				removed := ex
				return &removed, nil
			}
		}
	}
	return nil, repository.ErrNotFound
}

// fakeSessionRepo guards its map with a mutex so tests can exercise
// concurrent marks the way the real store does.
type fakeSessionRepo struct {
	mu       sync.Mutex
	sessions map[primitive.ObjectID]*domain.WorkoutSession
}

func newFakeSessionRepo() *fakeSessionRepo {
	return &fakeSessionRepo{sessions: make(map[primitive.ObjectID]*domain.WorkoutSession)}
}

func (r *fakeSessionRepo) Create(_ context.Context, session *domain.WorkoutSession) (primitive.ObjectID, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	session.ID = primitive.NewObjectID()
	now := time.Now().UTC()
	session.CreatedAt = now
	session.UpdatedAt = now
	if session.Status == "" {
		session.Status = domain.SessionCreated
	}
	stored := *session
	stored.Exercises = append([]domain.SessionExercise(nil), session.Exercises...)
	r.sessions[session.ID] = &stored
	return session.ID, nil
}

func (r *fakeSessionRepo) GetByID(_ context.Context, id primitive.ObjectID) (*domain.WorkoutSession, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.snapshot(id)
}

func (r *fakeSessionRepo) snapshot(id primitive.ObjectID) (*domain.WorkoutSession, error) {
	s, ok := r.sessions[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	out := *s
	out.Exercises = append([]domain.SessionExercise(nil), s.Exercises...)
	return &out, nil
}

func (r *fakeSessionRepo) GetByWorkoutID(_ context.Context, workoutID primitive.ObjectID) ([]domain.WorkoutSession, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	result := []domain.WorkoutSession{}
	for _, s := range r.sessions {
		if s.WorkoutID == workoutID {
			result = append(result, *s)
		}
	}
	return result, nil
}

func (r *fakeSessionRepo) MarkExercise(_ context.Context, sessionID, exerciseID primitive.ObjectID, mark domain.ExerciseMark) (*domain.WorkoutSession, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	s, ok := r.sessions[sessionID]
	if !ok || s.Status == domain.SessionCompleted {
		return nil, repository.ErrNotFound
	}
	record := s.ExerciseRecord(exerciseID)
	if record == nil {
		return nil, repository.ErrNotFound
	}

	record.Completed = mark.Completed
	if mark.Weight != nil {
		record.Weight = *mark.Weight
	}
	if mark.Repetitions != nil {
		record.Repetitions = *mark.Repetitions
	}
	if mark.Series != nil {
		record.Series = *mark.Series
	}
	s.UpdatedAt = time.Now().UTC()
	return r.snapshot(sessionID)
}

func (r *fakeSessionRepo) UpdateStatus(_ context.Context, sessionID primitive.ObjectID, status domain.SessionStatus) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	s, ok := r.sessions[sessionID]
	if !ok || s.Status == domain.SessionCompleted {
		return repository.ErrNotFound
	}
	s.Status = status
	s.UpdatedAt = time.Now().UTC()
	return nil
}

func (r *fakeSessionRepo) Complete(_ context.Context, sessionID primitive.ObjectID, requireAllCompleted bool) (*domain.WorkoutSession, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	s, ok := r.sessions[sessionID]
	if !ok || s.Status == domain.SessionCompleted {
		return nil, repository.ErrNotFound
	}
	if requireAllCompleted && !s.AllCompleted() {
		return nil, repository.ErrNotFound
	}
	now := time.Now().UTC()
	s.Status = domain.SessionCompleted
	s.CompletedAt = &now
	s.UpdatedAt = now
	return r.snapshot(sessionID)
}

type fakeUserRepo struct {
	users map[string]*domain.User // keyed by external ID
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[string]*domain.User)}
}

func (r *fakeUserRepo) Create(_ context.Context, user *domain.User) (primitive.ObjectID, error) {
	user.ID = primitive.NewObjectID()
	now := time.Now().UTC()
	user.CreatedAt = now
	user.UpdatedAt = now
	stored := *user
	r.users[user.ExternalID] = &stored
	return user.ID, nil
}

func (r *fakeUserRepo) GetByExternalID(_ context.Context, externalID string) (*domain.User, error) {
	u, ok := r.users[externalID]
	if !ok {
		return nil, repository.ErrNotFound
	}
	out := *u
	return &out, nil
}

func (r *fakeUserRepo) UpdateProfile(_ context.Context, id primitive.ObjectID, update domain.ProfileUpdate) (*domain.User, error) {
	for _, u := range r.users {
		if u.ID != id {
			continue
		}
		if update.Name != nil {
			u.Name = *update.Name
		}
		if update.Avatar != nil {
			u.Avatar = *update.Avatar
		}
		if update.Email != nil {
			u.Email = *update.Email
		}
		if update.Experience != nil {
			u.Experience = *update.Experience
		}
		if update.Goal != nil {
			u.Goal = *update.Goal
		}
		if update.Height != nil {
			u.Height = *update.Height
		}
		if update.Weight != nil {
			u.Weight = *update.Weight
		}
		if update.PublicProfile != nil {
			u.PublicProfile = *update.PublicProfile
		}
		u.UpdatedAt = time.Now().UTC()
		out := *u
		return &out, nil
	}
	return nil, repository.ErrNotFound
}

// fakeGenerator returns a canned plan or error.
type fakeGenerator struct {
	plan *planner.GeneratedPlan
	err  error
}

func (g *fakeGenerator) GeneratePlan(_ context.Context, _ planner.Profile) (*planner.GeneratedPlan, error) {
	if g.err != nil {
		return nil, g.err
	}
	return g.plan, nil
}

// fakeFileStorage records deleted object keys.
type fakeFileStorage struct {
	deleted []string
	err     error
}

func (s *fakeFileStorage) GeneratePresignedUploadURL(_ context.Context, objectKey, _ string, _ time.Duration) (string, error) {
	return "https://bucket.test/put/" + objectKey, s.err
}

func (s *fakeFileStorage) GeneratePresignedDownloadURL(_ context.Context, objectKey string, _ time.Duration) (string, error) {
	return "https://bucket.test/get/" + objectKey, s.err
}

func (s *fakeFileStorage) DeleteObject(_ context.Context, objectKey string) error {
	if s.err != nil {
		return s.err
	}
	s.deleted = append(s.deleted, objectKey)
	return nil
}

func validExercises() []domain.Exercise {
	return []domain.Exercise{
		{
			Name:         "Squat",
			Series:       "4",
			Repetitions:  "10",
			Weight:       "60kg",
			RestTime:     "90s",
			VideoURL:     "https://x.test/v",
			Instructions: "Keep back straight",
		},
	}
}
