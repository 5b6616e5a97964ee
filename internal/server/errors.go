// Package server provides the HTTP REST API for JobSync.
package server

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/jobsync/jobsync/internal/store"
)

// ErrValidation indicates request validation failure
type ErrValidation struct {
	Field   string
	Message string
}

func (e *ErrValidation) Error() string {
	return fmt.Sprintf("validation error: %s - %s", e.Field, e.Message)
}

// HTTPStatus returns the appropriate HTTP status code for an error
func HTTPStatus(err error) int {
	var (
		emailExists  *store.ErrEmailAlreadyExists
		invalidCreds *store.ErrInvalidCredentials
		notFound     *store.ErrUserNotFound
		notAuthed    *store.ErrNotAuthenticated
		validation   *ErrValidation
	)
	switch {
	case errors.As(err, &emailExists):
		return http.StatusConflict
	case errors.As(err, &invalidCreds), errors.As(err, &notAuthed):
		return http.StatusUnauthorized
	case errors.As(err, &notFound):
		return http.StatusNotFound
	case errors.As(err, &validation):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
