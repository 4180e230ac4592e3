package helpers

import (
	"encoding/json"
	"net/http"
)

// MessageResponse is the `{message}` body used for errors and message-only
// successes. The shape is part of the public API contract.
// swagger:model MessageResponse
type MessageResponse struct {
	Message string `json:"message"`
}

// WriteJSON sets Content-Type to application/json, writes statusCode, and
// encodes v as the response body.
func WriteJSON(w http.ResponseWriter, statusCode int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(v)
}

// WriteMessage writes a `{message}` JSON body with the given status code.
func WriteMessage(w http.ResponseWriter, statusCode int, message string) {
	WriteJSON(w, statusCode, MessageResponse{Message: message})
}

// WriteServerError writes the generic 500 response. The underlying cause is
// logged by the caller, never exposed.
func WriteServerError(w http.ResponseWriter) {
	WriteMessage(w, http.StatusInternalServerError, "Server error")
}
