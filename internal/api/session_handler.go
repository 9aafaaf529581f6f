package api

import (
	"net/http"

	"fitsphere/workout-api/internal/domain"
	"fitsphere/workout-api/internal/service"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// SessionHandler holds the workout session service dependency.
type SessionHandler struct {
	sessionService service.SessionService
}

// NewSessionHandler creates a new SessionHandler.
func NewSessionHandler(sessionService service.SessionService) *SessionHandler {
	return &SessionHandler{sessionService: sessionService}
}

// --- DTOs ---

// CreateSessionRequest starts a performed instance of a workout.
type CreateSessionRequest struct {
	UserID    string `json:"userId" binding:"required"`
	WorkoutID string `json:"workoutId" binding:"required"`
}

// MarkExerciseRequest updates one completion record. The override fields are
// optional; absent means "keep the stored value".
type MarkExerciseRequest struct {
	Completed   *bool   `json:"completed" binding:"required"`
	Weight      *string `json:"weight"`
	Repetitions *string `json:"repetitions"`
	Series      *string `json:"series" binding:"omitempty,intstring"`
}

// ListSessionsQuery filters GET /workout/session.
type ListSessionsQuery struct {
	WorkoutID string `form:"workoutId" json:"workoutId" binding:"required"`
}

// --- Handler Methods ---

// CreateSession handles POST /workout/session.
func (h *SessionHandler) CreateSession(c *gin.Context) {
	var req CreateSessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithBindingError(c, err)
		return
	}

	workoutID, err := primitive.ObjectIDFromHex(req.WorkoutID)
	if err != nil {
		// An ID that can never exist is reported like any other missing workout.
		handleServiceError(c, service.ErrWorkoutNotFound)
		return
	}

	session, err := h.sessionService.CreateSession(c.Request.Context(), req.UserID, workoutID)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, session)
}

// GetSession handles GET /workout/session/:sessionId.
func (h *SessionHandler) GetSession(c *gin.Context) {
	sessionID, err := primitive.ObjectIDFromHex(c.Param("sessionId"))
	if err != nil {
		abortWithValidationErrors(c, []FieldError{{Field: "sessionId", Message: "must be a valid ID"}})
		return
	}

	session, err := h.sessionService.GetSession(c.Request.Context(), sessionID)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, session)
}

// ListSessions handles GET /workout/session?workoutId=.
func (h *SessionHandler) ListSessions(c *gin.Context) {
	var query ListSessionsQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		abortWithBindingError(c, err)
		return
	}

	workoutID, err := primitive.ObjectIDFromHex(query.WorkoutID)
	if err != nil {
		abortWithValidationErrors(c, []FieldError{{Field: "workoutId", Message: "must be a valid ID"}})
		return
	}

	sessions, err := h.sessionService.GetSessionsByWorkout(c.Request.Context(), workoutID)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, sessions)
}

// MarkExercise handles PATCH /workout/session/:sessionId/exercises/:exerciseId.
func (h *SessionHandler) MarkExercise(c *gin.Context) {
	sessionID, err := primitive.ObjectIDFromHex(c.Param("sessionId"))
	if err != nil {
		abortWithValidationErrors(c, []FieldError{{Field: "sessionId", Message: "must be a valid ID"}})
		return
	}
	exerciseID, err := primitive.ObjectIDFromHex(c.Param("exerciseId"))
	if err != nil {
		abortWithValidationErrors(c, []FieldError{{Field: "exerciseId", Message: "must be a valid ID"}})
		return
	}

	var req MarkExerciseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithBindingError(c, err)
		return
	}

	session, err := h.sessionService.MarkExercise(c.Request.Context(), sessionID, exerciseID, domain.ExerciseMark{
		Completed:   *req.Completed,
		Weight:      req.Weight,
		Repetitions: req.Repetitions,
		Series:      req.Series,
	})
	if err != nil {
		handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, session)
}

// CompleteSession handles POST /workout/session/:sessionId/complete.
// Completing twice is idempotent.
func (h *SessionHandler) CompleteSession(c *gin.Context) {
	sessionID, err := primitive.ObjectIDFromHex(c.Param("sessionId"))
	if err != nil {
		abortWithValidationErrors(c, []FieldError{{Field: "sessionId", Message: "must be a valid ID"}})
		return
	}

	session, err := h.sessionService.CompleteSession(c.Request.Context(), sessionID)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, session)
}
