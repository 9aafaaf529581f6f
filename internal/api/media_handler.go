package api

import (
	"net/http"
	"path"
	"strings"
	"time"

	"fitsphere/workout-api/internal/storage"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// MediaHandler issues presigned URLs for exercise demo videos. Clients
// upload straight to the bucket and reference the object from an exercise's
// videoUrl; the API never proxies file bytes.
type MediaHandler struct {
	fileStorage storage.FileStorage
}

// NewMediaHandler creates a new MediaHandler.
func NewMediaHandler(fileStorage storage.FileStorage) *MediaHandler {
	return &MediaHandler{fileStorage: fileStorage}
}

// --- DTOs ---

type UploadURLRequest struct {
	FileName    string `json:"fileName" binding:"required"`
	ContentType string `json:"contentType" binding:"required"`
}

type UploadURLResponse struct {
	UploadURL string    `json:"uploadUrl"`
	ObjectKey string    `json:"objectKey"`
	ExpiresAt time.Time `json:"expiresAt"`
}

type DownloadURLQuery struct {
	Key string `form:"key" binding:"required"`
}

// --- Handler Methods ---

// NewUploadURL handles POST /media/video-upload-url.
func (h *MediaHandler) NewUploadURL(c *gin.Context) {
	var req UploadURLRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithBindingError(c, err)
		return
	}
	if !strings.HasPrefix(req.ContentType, "video/") {
		abortWithValidationErrors(c, []FieldError{{Field: "contentType", Message: "must be a video content type"}})
		return
	}

	objectKey := storage.VideoObjectPrefix + uuid.NewString() + path.Ext(req.FileName)
	expires := storage.DefaultPresignedURLExpiry

	uploadURL, err := h.fileStorage.GeneratePresignedUploadURL(c.Request.Context(), objectKey, req.ContentType, expires)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "failed to generate upload URL")
		return
	}

	c.JSON(http.StatusCreated, UploadURLResponse{
		UploadURL: uploadURL,
		ObjectKey: objectKey,
		ExpiresAt: time.Now().Add(expires),
	})
}

// DownloadURL handles GET /media/video-url?key=.
func (h *MediaHandler) DownloadURL(c *gin.Context) {
	var query DownloadURLQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		abortWithBindingError(c, err)
		return
	}

	downloadURL, err := h.fileStorage.GeneratePresignedDownloadURL(c.Request.Context(), query.Key, storage.DefaultPresignedURLExpiry)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "failed to generate download URL")
		return
	}

	c.JSON(http.StatusOK, gin.H{"downloadUrl": downloadURL})
}
