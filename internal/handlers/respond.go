// Package handlers is the HTTP surface: request decoding, the JSON response
// envelope, and the mapping from service errors to status codes.
package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/vasei-me/Architecture-Blog-API/internal/apierr"
)

// envelope is the uniform response shape. Every endpoint returns one.
type envelope struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	Data    any    `json:"data,omitempty"`
	// Error carries the underlying error text in development mode only.
	Error string `json:"error,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, env envelope) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(env); err != nil {
		slog.Error("write response", "error", err)
	}
}

// respond writes a success envelope.
func respond(w http.ResponseWriter, status int, message string, data any) {
	writeJSON(w, status, envelope{Success: true, Message: message, Data: data})
}

// respondList writes a success body whose fields (the resource-named array
// and its pagination) sit at the top level beside success and message,
// not nested under data.
func respondList(w http.ResponseWriter, message string, fields map[string]any) {
	body := map[string]any{"success": true, "message": message}
	for k, v := range fields {
		body[k] = v
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		slog.Error("write response", "error", err)
	}
}

// respondError maps a service error to its status and envelope. Internal
// errors are logged with their cause; in development the cause is also
// echoed to the client.
func respondError(w http.ResponseWriter, err error, dev bool) {
	ae := apierr.From(err)
	env := envelope{Success: false, Message: ae.Message}

	if ae.Kind == apierr.KindInternal {
		slog.Error("request failed", "error", err)
	}
	if dev {
		if cause := ae.Unwrap(); cause != nil {
			env.Error = cause.Error()
		}
	}
	writeJSON(w, ae.Status, env)
}

// decode parses the JSON request body into dst.
func decode(r *http.Request, dst any) error {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return apierr.Validation("Invalid request body").WithCause(err)
	}
	return nil
}
