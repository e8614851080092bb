// Package httpx provides HTTP response utilities for the portal's JSON envelope.
package httpx

import (
	"encoding/json"
	"net/http"
)

// Envelope is the wire format shared by every endpoint.
type Envelope struct {
	Message string `json:"message"`
	Success bool   `json:"success"`
	User    any    `json:"user,omitempty"`
	Job     any    `json:"job,omitempty"`
	Jobs    any    `json:"jobs,omitempty"`
}

// JSON sends a JSON response with the given status code.
func JSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(data)
}

// OK sends a success envelope.
func OK(w http.ResponseWriter, status int, env Envelope) {
	env.Success = true
	JSON(w, status, env)
}

// Fail sends a failure envelope with the given message.
func Fail(w http.ResponseWriter, status int, message string) {
	JSON(w, status, Envelope{Message: message, Success: false})
}

// DecodeJSON decodes JSON request body into the target struct.
func DecodeJSON(r *http.Request, target any) error {
	return json.NewDecoder(r.Body).Decode(target)
}
