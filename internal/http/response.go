package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"

	"portfolio-backend-go/internal/services"
)

type ErrorResponse struct {
	Message string `json:"message"`
	Field   string `json:"field,omitempty"`
}

func WriteJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

func WriteError(w http.ResponseWriter, status int, message string) {
	WriteJSON(w, status, ErrorResponse{Message: message})
}

// writeServiceError maps the service taxonomy onto HTTP; anything
// unclassified becomes a generic failure message.
func writeServiceError(w http.ResponseWriter, err error) {
	var serr services.ServiceError
	if errors.As(err, &serr) {
		WriteJSON(w, serr.Status, ErrorResponse{Message: serr.Message, Field: serr.Field})
		return
	}
	WriteError(w, http.StatusInternalServerError, "Internal server error")
}
