package api

import (
	"net/http"

	"fitsphere/workout-api/internal/domain"
	"fitsphere/workout-api/internal/planner"
	"fitsphere/workout-api/internal/service"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// WorkoutHandler holds the workout service dependency.
type WorkoutHandler struct {
	workoutService service.WorkoutService
}

// NewWorkoutHandler creates a new WorkoutHandler.
func NewWorkoutHandler(workoutService service.WorkoutService) *WorkoutHandler {
	return &WorkoutHandler{workoutService: workoutService}
}

// --- DTOs ---

// ExercisePayload is one exercise of a workout creation request.
type ExercisePayload struct {
	Name         string `json:"name" binding:"required,min=3"`
	Series       string `json:"series" binding:"required,intstring"`
	Repetitions  string `json:"repetitions" binding:"required"`
	Weight       string `json:"weight" binding:"required"`
	RestTime     string `json:"restTime" binding:"required"`
	VideoURL     string `json:"videoUrl" binding:"required,url"`
	Instructions string `json:"instructions" binding:"required,min=3"`
}

// CreateWorkoutRequest defines the expected JSON for authoring a workout.
type CreateWorkoutRequest struct {
	Name       string            `json:"name" binding:"required,min=3,max=255"`
	UserID     string            `json:"userId" binding:"required"`
	Visibility domain.Visibility `json:"visibility" binding:"omitempty,oneof=PUBLIC PRIVATE"`
	Exercises  []ExercisePayload `json:"exercises" binding:"required,min=1,dive"`
}

// GenerateWorkoutRequest is the AI questionnaire plus the requesting user.
type GenerateWorkoutRequest struct {
	UserID                 string   `json:"userId" binding:"required"`
	Objective              string   `json:"objective" binding:"required"`
	TrainingTime           string   `json:"trainingTime" binding:"required"`
	ExperienceLevel        string   `json:"experienceLevel" binding:"required"`
	Frequency              string   `json:"frequency" binding:"required"`
	Duration               string   `json:"duration" binding:"required"`
	Location               string   `json:"location" binding:"required"`
	Equipments             []string `json:"equipments" binding:"required"`
	HasPhysicalLimitations *bool    `json:"hasPhysicalLimitations" binding:"required"`
	LimitationDescription  string   `json:"limitationDescription"`
	PreferredTrainingStyle string   `json:"preferredTrainingStyle" binding:"required"`
	Nutrition              string   `json:"nutrition" binding:"required"`
	SleepQuality           string   `json:"sleepQuality" binding:"required"`
}

// CopyWorkoutRequest names the new owner of a copied workout.
type CopyWorkoutRequest struct {
	UserID string `json:"userId" binding:"required"`
}

// ListWorkoutsQuery holds the optional listing filters.
type ListWorkoutsQuery struct {
	UserID     string `form:"userId"`
	Visibility string `form:"visibility" binding:"omitempty,oneof=PUBLIC PRIVATE"`
}

func exercisesFromPayload(payload []ExercisePayload) []domain.Exercise {
	exercises := make([]domain.Exercise, len(payload))
	for i, ex := range payload {
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
	return exercises
}

// --- Handler Methods ---

// CreateWorkout handles POST /workout.
func (h *WorkoutHandler) CreateWorkout(c *gin.Context) {
	var req CreateWorkoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithBindingError(c, err)
		return
	}

	workout, err := h.workoutService.CreateWorkout(
		c.Request.Context(),
		req.UserID,
		req.Name,
		req.Visibility,
		exercisesFromPayload(req.Exercises),
	)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, workout)
}

// GenerateWorkout handles POST /workout/ai.
func (h *WorkoutHandler) GenerateWorkout(c *gin.Context) {
	var req GenerateWorkoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithBindingError(c, err)
		return
	}

	profile := planner.Profile{
		Objective:              req.Objective,
		TrainingTime:           req.TrainingTime,
		ExperienceLevel:        req.ExperienceLevel,
		Frequency:              req.Frequency,
		Duration:               req.Duration,
		Location:               req.Location,
		Equipments:             req.Equipments,
		HasPhysicalLimitations: req.HasPhysicalLimitations != nil && *req.HasPhysicalLimitations,
		LimitationDescription:  req.LimitationDescription,
		PreferredTrainingStyle: req.PreferredTrainingStyle,
		Nutrition:              req.Nutrition,
		SleepQuality:           req.SleepQuality,
	}

	workout, err := h.workoutService.GenerateWorkoutAI(c.Request.Context(), req.UserID, profile)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, workout)
}

// ListWorkouts handles GET /workout.
func (h *WorkoutHandler) ListWorkouts(c *gin.Context) {
	var query ListWorkoutsQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		abortWithBindingError(c, err)
		return
	}

	var userID *string
	if query.UserID != "" {
		userID = &query.UserID
	}
	var visibility *domain.Visibility
	if query.Visibility != "" {
		v := domain.Visibility(query.Visibility)
		visibility = &v
	}

	workouts, err := h.workoutService.GetWorkouts(c.Request.Context(), userID, visibility)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, workouts)
}

// LikeWorkout handles POST /workout/:id/user/:idUser/like.
func (h *WorkoutHandler) LikeWorkout(c *gin.Context) {
	workoutID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		abortWithValidationErrors(c, []FieldError{{Field: "idWorkout", Message: "must be a valid ID"}})
		return
	}
	userID := c.Param("idUser")

	like, err := h.workoutService.LikeWorkout(c.Request.Context(), workoutID, userID)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, like)
}

// UnlikeWorkout handles DELETE /workout/:id/user/:idUser/like.
func (h *WorkoutHandler) UnlikeWorkout(c *gin.Context) {
	workoutID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		abortWithValidationErrors(c, []FieldError{{Field: "idWorkout", Message: "must be a valid ID"}})
		return
	}

	if err := h.workoutService.UnlikeWorkout(c.Request.Context(), workoutID, c.Param("idUser")); err != nil {
		handleServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// CopyWorkout handles POST /workout/:id/copy.
func (h *WorkoutHandler) CopyWorkout(c *gin.Context) {
	workoutID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		abortWithValidationErrors(c, []FieldError{{Field: "id", Message: "must be a valid ID"}})
		return
	}

	var req CopyWorkoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithBindingError(c, err)
		return
	}

	workout, err := h.workoutService.CopyWorkout(c.Request.Context(), workoutID, req.UserID)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, workout)
}

// DeleteWorkout handles DELETE /workout/:id.
func (h *WorkoutHandler) DeleteWorkout(c *gin.Context) {
	workoutID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		abortWithValidationErrors(c, []FieldError{{Field: "id", Message: "must be a valid ID"}})
		return
	}

	if err := h.workoutService.DeleteWorkout(c.Request.Context(), workoutID); err != nil {
		handleServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// DeleteExercise handles DELETE /workout/exercise/:id. The parent workout
// survives; only the exercise is removed.
func (h *WorkoutHandler) DeleteExercise(c *gin.Context) {
	exerciseID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		abortWithValidationErrors(c, []FieldError{{Field: "id", Message: "must be a valid ID"}})
		return
	}

	if err := h.workoutService.DeleteExercise(c.Request.Context(), exerciseID); err != nil {
		handleServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
