package api

import (
	"errors"
	"net/http"

	"fitsphere/workout-api/internal/service"

	"github.com/gin-gonic/gin"
)

// statusByKind is the single place domain error categories become HTTP
// status codes. Mapping is by kind, never by message content.
var statusByKind = map[service.ErrorKind]int{
	service.KindValidation: http.StatusBadRequest,
	service.KindNotFound:   http.StatusNotFound,
	service.KindConflict:   http.StatusConflict,
	service.KindExternal:   http.StatusBadGateway,
	service.KindInternal:   http.StatusInternalServerError,
}

// abortWithError returns a JSON error response and aborts the request.
func abortWithError(c *gin.Context, code int, message string) {
	c.AbortWithStatusJSON(code, gin.H{"error": message})
}

// handleServiceError maps a service-layer error onto the response exactly
// once, at the controller boundary. Unclassified errors become an opaque 500
// so internal details never leak to clients.
func handleServiceError(c *gin.Context, err error) {
	var svcErr *service.Error
	if errors.As(err, &svcErr) {
		status, ok := statusByKind[svcErr.Kind]
		if !ok {
			status = http.StatusInternalServerError
		}
		abortWithError(c, status, svcErr.Message)
		return
	}
	abortWithError(c, http.StatusInternalServerError, "internal server error")
}
