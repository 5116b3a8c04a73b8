package http

import (
	"net/http"

	"github.com/MKhiriev/go-pulse-keeper/internal/utils"
	"github.com/MKhiriev/go-pulse-keeper/models"
)

func (h *Handler) health(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, models.HealthResponse{Status: "healthy"}, http.StatusOK)
}
