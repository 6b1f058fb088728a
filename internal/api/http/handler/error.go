package handler

import (
	"errors"
	"net/http"

	"github.com/fintrack/fintrack-server/internal/model"
)

// statusForError maps service-layer sentinel errors to HTTP status codes.
// A missing token and a failed token are distinct outcomes, as are a
// foreign-owned resource and an absent one.
func statusForError(err error) int {
	switch {
	case errors.Is(err, model.ErrUnauthenticated), errors.Is(err, model.ErrInvalidCredentials):
		return http.StatusUnauthorized
	case errors.Is(err, model.ErrInvalidToken), errors.Is(err, model.ErrForbidden):
		return http.StatusForbidden
	case errors.Is(err, model.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, model.ErrAlreadyExists):
		return http.StatusConflict
	case errors.Is(err, model.ErrInvalidInput):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// WriteError writes the JSON error body for err. Internal failures are
// reported generically, never exposing wrapped detail to the caller.
func WriteError(w http.ResponseWriter, err error) {
	status := statusForError(err)
	message := err.Error()
	if status == http.StatusInternalServerError {
		message = "internal server error"
	}
	WriteJSON(w, status, errorResponse{Error: message})
}
