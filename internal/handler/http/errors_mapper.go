package http

import (
	"net/http"

	"github.com/MKhiriev/go-pulse-keeper/internal/utils"
	"github.com/MKhiriev/go-pulse-keeper/models"
)

// writeError sends the uniform single-message JSON error body.
func writeError(w http.ResponseWriter, message string, statusCode int) {
	utils.WriteJSON(w, models.ErrorResponse{Error: message}, statusCode)
}

// writeInternalError sends a generic 500 body. The real error stays on the
// server side: handlers log it before calling this, and nothing about the
// failure reaches the client.
func writeInternalError(w http.ResponseWriter) {
	writeError(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
}

// writeValidationErrors sends the structured field error list with
// HTTP 400.
func writeValidationErrors(w http.ResponseWriter, errs []models.FieldError) {
	utils.WriteJSON(w, models.ValidationErrorResponse{Errors: errs}, http.StatusBadRequest)
}
