package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/streamhive/streamhive-api/internal/logger"
	"github.com/streamhive/streamhive-api/internal/models"
	"github.com/streamhive/streamhive-api/internal/services"
)

// writeData writes the uniform success envelope.
func writeData(w http.ResponseWriter, status int, data any, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(models.APIResponse{
		StatusCode: status,
		Data:       data,
		Message:    message,
		Success:    true,
	})
}

// writeError maps a service error to its HTTP status and writes the uniform
// error envelope. Unrecognized errors never leak their message.
func writeError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	message := "Internal server error"

	switch {
	case errors.Is(err, services.ErrValidation), errors.Is(err, services.ErrInvalidIdentifier):
		status = http.StatusBadRequest
		message = err.Error()
	case errors.Is(err, services.ErrNotFound):
		status = http.StatusNotFound
		message = err.Error()
	case errors.Is(err, services.ErrConflict):
		status = http.StatusConflict
		message = err.Error()
	case errors.Is(err, services.ErrForbidden):
		status = http.StatusForbidden
		message = err.Error()
	case errors.Is(err, services.ErrUnauthenticated):
		status = http.StatusUnauthorized
		message = err.Error()
	default:
		logger.Log.Errorw("internal server error", "err", err)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(models.APIErrorResponse{
		StatusCode: status,
		Message:    message,
		Success:    false,
	})
}

// paginated wraps a page of items with its pagination metadata.
type paginated struct {
	Items any `json:"items"`
	Meta  any `json:"pagination"`
}
