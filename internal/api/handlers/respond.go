package handlers

import (
	"encoding/json"
	"log"
	"net/http"
)

// ErrorResponse is the failure envelope shared by every endpoint.
type ErrorResponse struct {
	Message string `json:"message"`
	Success bool   `json:"success"`
}

// WriteJSON writes a JSON response with the given status code
func WriteJSON(w http.ResponseWriter, statusCode int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		log.Printf("Failed to encode response: %v", err)
	}
}

// WriteError writes a standardized failure envelope
func WriteError(w http.ResponseWriter, statusCode int, message string) {
	WriteJSON(w, statusCode, ErrorResponse{Success: false, Message: message})
}
