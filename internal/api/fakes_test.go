package api

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"fitsphere/workout-api/internal/domain"
	"fitsphere/workout-api/internal/planner"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v4"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

const testJWTSecret = "test-secret"

func init() {
	gin.SetMode(gin.TestMode)
}

// Service stubs return canned values and capture the arguments they were
// called with, so handler tests cover only the HTTP boundary.

type stubWorkoutService struct {
	workout  *domain.Workout
	workouts []domain.Workout
	like     *domain.Like
	err      error

	lastUserID     string
	lastName       string
	lastVisibility domain.Visibility
	lastExercises  []domain.Exercise
	lastProfile    planner.Profile
	lastWorkoutID  primitive.ObjectID
	lastLikeUserID string
}

func (s *stubWorkoutService) CreateWorkout(_ context.Context, userID, name string, visibility domain.Visibility, exercises []domain.Exercise) (*domain.Workout, error) {
	s.lastUserID, s.lastName, s.lastVisibility, s.lastExercises = userID, name, visibility, exercises
	return s.workout, s.err
}

func (s *stubWorkoutService) GetWorkouts(_ context.Context, userID *string, visibility *domain.Visibility) ([]domain.Workout, error) {
	if userID != nil {
		s.lastUserID = *userID
	}
	if visibility != nil {
		s.lastVisibility = *visibility
	}
	return s.workouts, s.err
}

func (s *stubWorkoutService) LikeWorkout(_ context.Context, workoutID primitive.ObjectID, userID string) (*domain.Like, error) {
	s.lastWorkoutID, s.lastLikeUserID = workoutID, userID
	return s.like, s.err
}

func (s *stubWorkoutService) UnlikeWorkout(_ context.Context, workoutID primitive.ObjectID, userID string) error {
	s.lastWorkoutID, s.lastLikeUserID = workoutID, userID
	return s.err
}

func (s *stubWorkoutService) CopyWorkout(_ context.Context, workoutID primitive.ObjectID, newOwnerID string) (*domain.Workout, error) {
	s.lastWorkoutID, s.lastUserID = workoutID, newOwnerID
	return s.workout, s.err
}

func (s *stubWorkoutService) DeleteWorkout(_ context.Context, workoutID primitive.ObjectID) error {
	s.lastWorkoutID = workoutID
	return s.err
}

func (s *stubWorkoutService) DeleteExercise(_ context.Context, exerciseID primitive.ObjectID) error {
	s.lastWorkoutID = exerciseID
	return s.err
}

func (s *stubWorkoutService) GenerateWorkoutAI(_ context.Context, userID string, profile planner.Profile) (*domain.Workout, error) {
	s.lastUserID, s.lastProfile = userID, profile
	return s.workout, s.err
}

type stubSessionService struct {
	session  *domain.WorkoutSession
	sessions []domain.WorkoutSession
	err      error

	lastUserID     string
	lastWorkoutID  primitive.ObjectID
	lastSessionID  primitive.ObjectID
	lastExerciseID primitive.ObjectID
	lastMark       domain.ExerciseMark
}

func (s *stubSessionService) CreateSession(_ context.Context, userID string, workoutID primitive.ObjectID) (*domain.WorkoutSession, error) {
	s.lastUserID, s.lastWorkoutID = userID, workoutID
	return s.session, s.err
}

func (s *stubSessionService) GetSession(_ context.Context, sessionID primitive.ObjectID) (*domain.WorkoutSession, error) {
	s.lastSessionID = sessionID
	return s.session, s.err
}

func (s *stubSessionService) GetSessionsByWorkout(_ context.Context, workoutID primitive.ObjectID) ([]domain.WorkoutSession, error) {
	s.lastWorkoutID = workoutID
	return s.sessions, s.err
}

func (s *stubSessionService) MarkExercise(_ context.Context, sessionID, exerciseID primitive.ObjectID, mark domain.ExerciseMark) (*domain.WorkoutSession, error) {
	s.lastSessionID, s.lastExerciseID, s.lastMark = sessionID, exerciseID, mark
	return s.session, s.err
}

func (s *stubSessionService) CompleteSession(_ context.Context, sessionID primitive.ObjectID) (*domain.WorkoutSession, error) {
	s.lastSessionID = sessionID
	return s.session, s.err
}

type stubAuthService struct {
	user    *domain.User
	token   string
	created bool
	err     error

	lastExternalID string
	lastUpdateID   primitive.ObjectID
	lastUpdate     domain.ProfileUpdate
}

func (s *stubAuthService) GetOrCreate(_ context.Context, externalID, _, _, _ string) (*domain.User, string, bool, error) {
	s.lastExternalID = externalID
	return s.user, s.token, s.created, s.err
}

func (s *stubAuthService) UpdateProfile(_ context.Context, id primitive.ObjectID, update domain.ProfileUpdate) (*domain.User, error) {
	s.lastUpdateID, s.lastUpdate = id, update
	return s.user, s.err
}

type stubMuscleGroupService struct {
	groups []domain.MuscleGroup
	err    error
}

func (s *stubMuscleGroupService) GetMuscleGroups(_ context.Context) ([]domain.MuscleGroup, error) {
	return s.groups, s.err
}

type stubFileStorage struct {
	uploadURL   string
	downloadURL string
	err         error

	lastObjectKey   string
	lastContentType string
}

func (s *stubFileStorage) GeneratePresignedUploadURL(_ context.Context, objectKey, contentType string, _ time.Duration) (string, error) {
	s.lastObjectKey, s.lastContentType = objectKey, contentType
	return s.uploadURL, s.err
}

func (s *stubFileStorage) GeneratePresignedDownloadURL(_ context.Context, objectKey string, _ time.Duration) (string, error) {
	s.lastObjectKey = objectKey
	return s.downloadURL, s.err
}

func (s *stubFileStorage) DeleteObject(_ context.Context, objectKey string) error {
	s.lastObjectKey = objectKey
	return s.err
}

// testServices bundles every stub behind a wired router.
type testServices struct {
	router      *gin.Engine
	workout     *stubWorkoutService
	session     *stubSessionService
	auth        *stubAuthService
	muscleGroup *stubMuscleGroupService
	storage     *stubFileStorage
}

func newTestServices() *testServices {
	ts := &testServices{
		workout:     &stubWorkoutService{},
		session:     &stubSessionService{},
		auth:        &stubAuthService{},
		muscleGroup: &stubMuscleGroupService{},
		storage:     &stubFileStorage{},
	}
	ts.router = gin.New()
	SetupRoutes(ts.router, testJWTSecret, ts.auth, ts.workout, ts.session, ts.muscleGroup, ts.storage)
	return ts
}

func (ts *testServices) do(t *testing.T, method, path string, body interface{}, headers map[string]string) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, err := http.NewRequest(method, path, reader)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	rec := httptest.NewRecorder()
	ts.router.ServeHTTP(rec, req)
	return rec
}

// signTestToken issues a token the auth middleware accepts.
func signTestToken(t *testing.T, userID, externalID string) string {
	t.Helper()

	claims := &jwtClaims{
		UserID:     userID,
		ExternalID: externalID,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID,
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
			Issuer:    "workout-api",
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testJWTSecret))
	require.NoError(t, err)
	return token
}

func bearer(token string) map[string]string {
	return map[string]string{"Authorization": "Bearer " + token}
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var out map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	return out
}

// fieldErrorsOf extracts the errors array of a validation response as
// field -> message.
func fieldErrorsOf(t *testing.T, rec *httptest.ResponseRecorder) map[string]string {
	t.Helper()

	var body struct {
		Message string       `json:"message"`
		Errors  []FieldError `json:"errors"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Equal(t, "validation error", body.Message)

	out := make(map[string]string, len(body.Errors))
	for _, fe := range body.Errors {
		out[fe.Field] = fe.Message
	}
	return out
}

func validWorkoutBody() map[string]interface{} {
	return map[string]interface{}{
		"name":       "Leg Day",
		"userId":     "u1",
		"visibility": "PUBLIC",
		"exercises": []map[string]interface{}{
			{
				"name":         "Squat",
				"series":       "4",
				"repetitions":  "10",
				"weight":       "60kg",
				"restTime":     "90s",
				"videoUrl":     "https://x.test/v",
				"instructions": "Keep back straight",
			},
		},
	}
}
