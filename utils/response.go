package utils

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"inkwell/models"
)

// StatusFromError maps the service error taxonomy onto HTTP status codes.
func StatusFromError(err error) int {
	var uploadErr *models.UploadError
	switch {
	case errors.Is(err, models.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, models.ErrNotAuthenticated):
		return http.StatusUnauthorized
	case errors.Is(err, models.ErrInvalidCredentials):
		return http.StatusUnauthorized
	case errors.Is(err, models.ErrCredentialConflict):
		return http.StatusConflict
	case errors.Is(err, models.ErrWeakCredential):
		return http.StatusBadRequest
	case errors.As(err, &uploadErr):
		return http.StatusBadGateway
	case errors.Is(err, models.ErrUnavailable):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

func SendError(c *gin.Context, err error) {
	c.JSON(StatusFromError(err), gin.H{"error": err.Error()})
}

func SendValidationError(c *gin.Context, message string) {
	c.JSON(http.StatusBadRequest, gin.H{"error": message})
}
