package api

import (
	"net/http"

	"fitsphere/workout-api/internal/service"
	"fitsphere/workout-api/internal/storage"

	"github.com/gin-gonic/gin"
)

// SetupRoutes wires the handlers onto the router. The workout surface is
// open (mobile clients call it with the provider-issued user ID); only the
// profile update and media presign routes require the token issued by the
// auth endpoint.
func SetupRoutes(
	router *gin.Engine,
	jwtSecret string,
	authService service.AuthService,
	workoutService service.WorkoutService,
	sessionService service.SessionService,
	muscleGroupService service.MuscleGroupService,
	fileStorage storage.FileStorage,
) {
	SetupValidation()

	authHandler := NewAuthHandler(authService)
	workoutHandler := NewWorkoutHandler(workoutService)
	sessionHandler := NewSessionHandler(sessionService)
	muscleGroupHandler := NewMuscleGroupHandler(muscleGroupService)
	mediaHandler := NewMediaHandler(fileStorage)

	authMiddleware := AuthMiddleware(jwtSecret)

	router.Use(CORSMiddleware())

	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})

	// --- Auth ---
	router.POST("/auth", authHandler.Authenticate)
	router.PATCH("/auth/:id", authMiddleware, authHandler.UpdateProfile)

	// --- Workouts ---
	// Session routes are registered before the parameterized workout routes
	// purely for readability; gin resolves static segments first either way.
	workoutGroup := router.Group("/workout")
	{
		workoutGroup.POST("", workoutHandler.CreateWorkout)
		workoutGroup.GET("", workoutHandler.ListWorkouts)
		workoutGroup.POST("/ai", workoutHandler.GenerateWorkout)

		workoutGroup.GET("/session", sessionHandler.ListSessions)
		workoutGroup.POST("/session", sessionHandler.CreateSession)
		workoutGroup.GET("/session/:sessionId", sessionHandler.GetSession)
		workoutGroup.PATCH("/session/:sessionId/exercises/:exerciseId", sessionHandler.MarkExercise)
		workoutGroup.POST("/session/:sessionId/complete", sessionHandler.CompleteSession)

		workoutGroup.DELETE("/exercise/:id", workoutHandler.DeleteExercise)

		workoutGroup.POST("/:id/copy", workoutHandler.CopyWorkout)
		workoutGroup.DELETE("/:id", workoutHandler.DeleteWorkout)
		workoutGroup.POST("/:id/user/:idUser/like", workoutHandler.LikeWorkout)
		workoutGroup.DELETE("/:id/user/:idUser/like", workoutHandler.UnlikeWorkout)
	}

	// --- Muscle groups ---
	router.GET("/muscle-group", muscleGroupHandler.ListMuscleGroups)

	// --- Media ---
	mediaGroup := router.Group("/media")
	mediaGroup.Use(authMiddleware)
	{
		mediaGroup.POST("/video-upload-url", mediaHandler.NewUploadURL)
		mediaGroup.GET("/video-url", mediaHandler.DownloadURL)
	}
}
