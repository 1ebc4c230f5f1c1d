package controllers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"

	"booking-backend/app/apperr"
	"booking-backend/global"
)

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// writeError maps the error taxonomy to a status. Internal errors are
// logged with their cause and the caller gets a generic body.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := apperr.Status(err)
	if status == http.StatusInternalServerError {
		global.Logger.Error().Err(err).Str("method", r.Method).Str("path", r.URL.Path).Msg("request failed")
		writeJSON(w, status, map[string]string{"error": "internal server error"})
		return
	}
	writeJSON(w, status, map[string]string{"error": err.Error()})
}

// validationError turns a validator failure into an ErrValidation naming
// the first offending field.
func validationError(err error) error {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		fe := verrs[0]
		return fmt.Errorf("%w: field %s is %s", apperr.ErrValidation, strings.ToLower(fe.Field()), fe.Tag())
	}
	return fmt.Errorf("%w: %v", apperr.ErrValidation, err)
}

func decodeError(err error) error {
	return fmt.Errorf("%w: bad request body: %v", apperr.ErrValidation, err)
}
