package handlers

import (
	"encoding/json"
	"net/http"
	"time"
)

// Health handles GET /api/health. Liveness only; it does not touch the
// database. The timestamp sits at the top level of the body, unlike the
// data envelope everything else uses.
func Health(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(map[string]any{
		"success":   true,
		"message":   "Blog API is running",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}
