package models

import (
	"errors"
	"fmt"
)

var (
	ErrNotFound           = errors.New("not found")
	ErrNotAuthenticated   = errors.New("not authenticated")
	ErrCredentialConflict = errors.New("email is already in use")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrWeakCredential     = errors.New("password does not meet the minimum requirements")
	ErrUnavailable        = errors.New("service unavailable")
)

// UploadError is returned by the image host adapter for any non-success
// outcome, including success-shaped responses whose success flag is false.
type UploadError struct {
	Reason string
}

func (e *UploadError) Error() string {
	return fmt.Sprintf("image upload failed: %s", e.Reason)
}
