package apperr

import (
	"errors"
	"net/http"
)

var (
	// ErrValidation indicates missing or malformed input.
	ErrValidation = errors.New("validation failed")
	// ErrUnauthenticated indicates a missing or unusable token.
	ErrUnauthenticated = errors.New("unauthenticated")
	// ErrForbidden indicates a known caller without sufficient rights.
	ErrForbidden = errors.New("forbidden")
	// ErrNotFound indicates the id does not resolve.
	ErrNotFound = errors.New("not found")
	// ErrStore indicates an underlying datastore failure.
	ErrStore = errors.New("store error")
)

// Status maps an error to its HTTP status. Anything outside the taxonomy
// is an internal error.
func Status(err error) int {
	switch {
	case errors.Is(err, ErrValidation):
		return http.StatusBadRequest
	case errors.Is(err, ErrUnauthenticated):
		return http.StatusUnauthorized
	case errors.Is(err, ErrForbidden):
		return http.StatusForbidden
	case errors.Is(err, ErrNotFound):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}
