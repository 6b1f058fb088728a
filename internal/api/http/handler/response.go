package handler

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/fintrack/fintrack-server/internal/model"
)

type errorResponse struct {
	Error string `json:"error"`
}

// WriteJSON serializes v into the response with the given status code.
func WriteJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if v != nil {
		// Status is already committed; an encode failure here can only be
		// logged by the caller, not reported to the client.
		_ = json.NewEncoder(w).Encode(v)
	}
}

// decodeJSON parses the request body into v.
func decodeJSON(r *http.Request, v any) error {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		return fmt.Errorf("%w: malformed request body", model.ErrInvalidInput)
	}
	return nil
}
