package server

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/northflank-guides/go-with-postgres/internal/models"
)

// Responses take one of three shapes: a visitor array, a confirmation
// object, or a bare JSON string for errors and unknown routes.

type Confirmation struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

func writeVisitors(w http.ResponseWriter, visitors []models.Visitor) {
	writeJSON(w, http.StatusOK, visitors)
}

func writeConfirmation(w http.ResponseWriter, message string) {
	writeJSON(w, http.StatusOK, Confirmation{Success: true, Message: message})
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, message)
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		// The status line is already on the wire; all we can do is log.
		log.Printf("Failed to encode response: %v", err)
	}
}
