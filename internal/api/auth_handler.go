package api

import (
	"net/http"

	"fitsphere/workout-api/internal/domain"
	"fitsphere/workout-api/internal/service"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// AuthHandler holds the authentication service dependency.
type AuthHandler struct {
	authService service.AuthService
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(authService service.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// --- Request/Response Structs ---

type AuthRequest struct {
	UserID string `json:"userId" binding:"required"`
	Name   string `json:"name" binding:"required"`
	Avatar string `json:"avatar" binding:"omitempty,url"`
	Email  string `json:"email" binding:"omitempty,email"`
}

type AuthResponse struct {
	User  domain.User `json:"user"`
	Token string      `json:"token"`
}

// UpdateProfileRequest carries a partial profile update; absent fields stay
// unchanged.
type UpdateProfileRequest struct {
	Name          *string                 `json:"name" binding:"omitempty,min=1"`
	Avatar        *string                 `json:"avatar" binding:"omitempty,url"`
	Email         *string                 `json:"email" binding:"omitempty,email"`
	Experience    *domain.ExperienceLevel `json:"experience" binding:"omitempty,oneof=beginner intermediate advanced"`
	Goal          *string                 `json:"goal"`
	Height        *float64                `json:"height" binding:"omitempty,gt=0"`
	Weight        *float64                `json:"weight" binding:"omitempty,gt=0"`
	PublicProfile *bool                   `json:"publicProfile"`
}

// --- Handler Methods ---

// Authenticate gets or lazily creates the user identified by the external
// provider ID. Attributes of an existing user are never overwritten here.
func (h *AuthHandler) Authenticate(c *gin.Context) {
	var req AuthRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithBindingError(c, err)
		return
	}

	user, token, created, err := h.authService.GetOrCreate(c.Request.Context(), req.UserID, req.Name, req.Avatar, req.Email)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	status := http.StatusOK
	if created {
		status = http.StatusCreated
	}
	c.JSON(status, AuthResponse{User: *user, Token: token})
}

// UpdateProfile applies a partial profile update. Users may only update
// their own profile.
func (h *AuthHandler) UpdateProfile(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		abortWithValidationErrors(c, []FieldError{{Field: "id", Message: "must be a valid ID"}})
		return
	}

	authenticatedID, err := getUserIDFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusUnauthorized, "Unable to identify user from token")
		return
	}
	if authenticatedID != id.Hex() {
		abortWithError(c, http.StatusForbidden, "Cannot update another user's profile")
		return
	}

	var req UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithBindingError(c, err)
		return
	}

	user, err := h.authService.UpdateProfile(c.Request.Context(), id, domain.ProfileUpdate{
		Name:          req.Name,
		Avatar:        req.Avatar,
		Email:         req.Email,
		Experience:    req.Experience,
		Goal:          req.Goal,
		Height:        req.Height,
		Weight:        req.Weight,
		PublicProfile: req.PublicProfile,
	})
	if err != nil {
		handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, user)
}
