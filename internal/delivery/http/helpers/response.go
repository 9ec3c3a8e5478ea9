package helpers

import (
	"encoding/json"
	"net/http"
)

// MessageResponse is the body for client errors: {message}.
// swagger:model MessageResponse
type MessageResponse struct {
	Message string `json:"message"`
}

// ErrorResponse is the body for not-found and generic read failures: {error}.
// swagger:model ErrorResponse
type ErrorResponse struct {
	Error string `json:"error"`
}

// FailureResponse is the body for write failures: {message, error}.
// swagger:model FailureResponse
type FailureResponse struct {
	Message string `json:"message"`
	Error   string `json:"error"`
}

// WriteJSON sets Content-Type to application/json, writes statusCode, and
// encodes payload.
func WriteJSON(w http.ResponseWriter, statusCode int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(payload)
}

// WriteMessage writes a {message} body with the given status.
func WriteMessage(w http.ResponseWriter, statusCode int, message string) {
	WriteJSON(w, statusCode, MessageResponse{Message: message})
}

// WriteError writes an {error} body with the given status.
func WriteError(w http.ResponseWriter, statusCode int, errMsg string) {
	WriteJSON(w, statusCode, ErrorResponse{Error: errMsg})
}

// WriteFailure writes a {message, error} body with the given status.
func WriteFailure(w http.ResponseWriter, statusCode int, message, errMsg string) {
	WriteJSON(w, statusCode, FailureResponse{Message: message, Error: errMsg})
}
