package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/MKhiriev/go-pulse-keeper/internal/logger"
	"github.com/MKhiriev/go-pulse-keeper/internal/service"
	"github.com/MKhiriev/go-pulse-keeper/internal/store"
	"github.com/MKhiriev/go-pulse-keeper/internal/utils"
	"github.com/MKhiriev/go-pulse-keeper/internal/validators"
	"github.com/MKhiriev/go-pulse-keeper/models"
	"github.com/go-chi/chi/v5"
)

func (h *Handler) createDataPoint(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		log.Error().Msg("no user ID in request context")
		writeError(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	var req models.DataPointRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		writeError(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	if errs := validators.ValidateDataPoint(req); len(errs) > 0 {
		log.Debug().Any("errors", errs).Msg("data point input rejected")
		writeValidationErrors(w, errs)
		return
	}

	created, err := h.services.DataPointService.CreateDataPoint(ctx, userID, req)
	if err != nil {
		if errors.Is(err, service.ErrInvalidDataProvided) {
			writeError(w, "invalid data provided", http.StatusBadRequest)
			return
		}

		log.Err(err).Msg("unexpected error occurred during data point creation")
		writeInternalError(w)
		return
	}

	utils.WriteJSON(w, created, http.StatusCreated)
}

func (h *Handler) listDataPoints(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		log.Error().Msg("no user ID in request context")
		writeError(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	var dataPoints []models.DataPoint
	var err error

	// an optional ?category= narrows the listing to one label
	if category := r.URL.Query().Get("category"); category != "" {
		dataPoints, err = h.services.DataPointService.DataPointsByCategory(ctx, userID, category)
	} else {
		dataPoints, err = h.services.DataPointService.DataPointsByUser(ctx, userID)
	}
	if err != nil {
		log.Err(err).Msg("unexpected error occurred during data point listing")
		writeInternalError(w)
		return
	}

	utils.WriteJSON(w, dataPoints, http.StatusOK)
}

// dataPointsByRange lists the caller's samples recorded within the
// inclusive [start, end] window. Bounds arrive as RFC 3339 query
// parameters.
func (h *Handler) dataPointsByRange(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		log.Error().Msg("no user ID in request context")
		writeError(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	start, err := time.Parse(time.RFC3339, r.URL.Query().Get("start"))
	if err != nil {
		log.Err(err).Msg("invalid start bound")
		writeError(w, "start must be an RFC 3339 timestamp", http.StatusBadRequest)
		return
	}

	end, err := time.Parse(time.RFC3339, r.URL.Query().Get("end"))
	if err != nil {
		log.Err(err).Msg("invalid end bound")
		writeError(w, "end must be an RFC 3339 timestamp", http.StatusBadRequest)
		return
	}

	dataPoints, err := h.services.DataPointService.DataPointsByDateRange(ctx, userID, start, end)
	if err != nil {
		if errors.Is(err, service.ErrInvalidDataProvided) {
			writeError(w, "end must not precede start", http.StatusBadRequest)
			return
		}

		log.Err(err).Msg("unexpected error occurred during data point range listing")
		writeInternalError(w)
		return
	}

	utils.WriteJSON(w, dataPoints, http.StatusOK)
}

func (h *Handler) dataPointByID(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		log.Error().Msg("no user ID in request context")
		writeError(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		log.Err(err).Msg("invalid data point id")
		writeError(w, "invalid data point id", http.StatusBadRequest)
		return
	}

	found, err := h.services.DataPointService.DataPointByID(ctx, userID, id)
	if err != nil {
		switch {
		case errors.Is(err, store.ErrDataPointNotFound):
			writeError(w, store.ErrDataPointNotFound.Error(), http.StatusNotFound)
			return
		case errors.Is(err, service.ErrNotOwner):
			writeError(w, http.StatusText(http.StatusForbidden), http.StatusForbidden)
			return
		default:
			log.Err(err).Msg("unexpected error occurred during data point lookup")
			writeInternalError(w)
			return
		}
	}

	utils.WriteJSON(w, found, http.StatusOK)
}
