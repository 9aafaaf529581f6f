package api

import (
	"net/http"

	"fitsphere/workout-api/internal/service"

	"github.com/gin-gonic/gin"
)

// MuscleGroupHandler serves the static muscle group catalog.
type MuscleGroupHandler struct {
	muscleGroupService service.MuscleGroupService
}

// NewMuscleGroupHandler creates a new MuscleGroupHandler.
func NewMuscleGroupHandler(muscleGroupService service.MuscleGroupService) *MuscleGroupHandler {
	return &MuscleGroupHandler{muscleGroupService: muscleGroupService}
}

// ListMuscleGroups handles GET /muscle-group.
func (h *MuscleGroupHandler) ListMuscleGroups(c *gin.Context) {
	groups, err := h.muscleGroupService.GetMuscleGroups(c.Request.Context())
	if err != nil {
		handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, groups)
}
