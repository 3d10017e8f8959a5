package utils

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"inkwell/models"
)

func TestStatusFromError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"not found", models.ErrNotFound, http.StatusNotFound},
		{"not authenticated", models.ErrNotAuthenticated, http.StatusUnauthorized},
		{"invalid credentials", models.ErrInvalidCredentials, http.StatusUnauthorized},
		{"credential conflict", models.ErrCredentialConflict, http.StatusConflict},
		{"weak credential", models.ErrWeakCredential, http.StatusBadRequest},
		{"upload failure", &models.UploadError{Reason: "File too large"}, http.StatusBadGateway},
		{"unavailable", models.ErrUnavailable, http.StatusServiceUnavailable},
		{"wrapped unavailable", fmt.Errorf("%w: connection reset", models.ErrUnavailable), http.StatusServiceUnavailable},
		{"unknown", errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, StatusFromError(tt.err))
		})
	}
}
