package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/MKhiriev/go-pulse-keeper/internal/logger"
	"github.com/MKhiriev/go-pulse-keeper/internal/service"
	"github.com/MKhiriev/go-pulse-keeper/internal/store"
	"github.com/MKhiriev/go-pulse-keeper/internal/utils"
	"github.com/MKhiriev/go-pulse-keeper/internal/validators"
	"github.com/MKhiriev/go-pulse-keeper/models"
	"github.com/go-chi/chi/v5"
)

// createUser shares the account creation path with register so that
// hashing and uniqueness checks exist exactly once; the only difference is
// that no token is issued here.
func (h *Handler) createUser(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		writeError(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	if errs := validators.ValidateRegister(req); len(errs) > 0 {
		log.Debug().Any("errors", errs).Msg("user creation input rejected")
		writeValidationErrors(w, errs)
		return
	}

	createdUser, err := h.services.AuthService.Register(ctx, req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidDataProvided):
			writeError(w, "invalid data provided", http.StatusBadRequest)
			return
		case errors.Is(err, store.ErrUserAlreadyExists):
			log.Err(err).Msg("username or email already exists")
			writeError(w, store.ErrUserAlreadyExists.Error(), http.StatusBadRequest)
			return
		default:
			log.Err(err).Msg("unexpected error occurred during user creation")
			writeInternalError(w)
			return
		}
	}

	utils.WriteJSON(w, createdUser.Public(), http.StatusCreated)
}

func (h *Handler) userByID(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		log.Err(err).Msg("invalid user id")
		writeError(w, "invalid user id", http.StatusBadRequest)
		return
	}

	foundUser, err := h.services.UserService.UserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, store.ErrNoUserWasFound) {
			writeError(w, store.ErrNoUserWasFound.Error(), http.StatusNotFound)
			return
		}

		log.Err(err).Msg("unexpected error occurred during user lookup")
		writeError(w, "error looking up user", http.StatusBadRequest)
		return
	}

	utils.WriteJSON(w, foundUser.Public(), http.StatusOK)
}

func (h *Handler) listUsers(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	users, err := h.services.UserService.AllUsers(ctx)
	if err != nil {
		log.Err(err).Msg("unexpected error occurred during user listing")
		writeInternalError(w)
		return
	}

	publicUsers := make([]models.PublicUser, 0, len(users))
	for _, u := range users {
		publicUsers = append(publicUsers, u.Public())
	}

	utils.WriteJSON(w, publicUsers, http.StatusOK)
}
