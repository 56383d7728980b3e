package utils

import (
	"encoding/json"
	"net/http"
)

// ErrorResponse is the structured error body every failing endpoint returns.
// No internals or stack traces ever reach the client.
type ErrorResponse struct {
	Error   bool   `json:"error"`
	Message string `json:"message"`
}

func WriteJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func WriteError(w http.ResponseWriter, status int, message string) {
	WriteJSON(w, status, ErrorResponse{Error: true, Message: message})
}
