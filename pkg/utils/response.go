package utils

import (
	"net/http"

	"github.com/goccy/go-json"
)

func WriteJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		http.Error(w, "Failed to encode response", http.StatusInternalServerError)
	}
}

func WriteError(w http.ResponseWriter, status int, message string) {
	WriteJSON(w, status, map[string]string{"error": message})
}

// WriteFieldErrors reports request validation failures as a flat list of
// field/message pairs, never truncated to the first violation.
func WriteFieldErrors(w http.ResponseWriter, errors interface{}) {
	WriteJSON(w, http.StatusBadRequest, map[string]interface{}{"errors": errors})
}
