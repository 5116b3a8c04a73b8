package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/MKhiriev/go-pulse-keeper/internal/logger"
	"github.com/MKhiriev/go-pulse-keeper/internal/service"
	"github.com/MKhiriev/go-pulse-keeper/internal/store"
	"github.com/MKhiriev/go-pulse-keeper/internal/utils"
	"github.com/MKhiriev/go-pulse-keeper/internal/validators"
	"github.com/MKhiriev/go-pulse-keeper/models"
)

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		writeError(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	if errs := validators.ValidateRegister(req); len(errs) > 0 {
		log.Debug().Any("errors", errs).Msg("registration input rejected")
		writeValidationErrors(w, errs)
		return
	}

	registeredUser, err := h.services.AuthService.Register(ctx, req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidDataProvided):
			log.Err(err).Msg("invalid data provided")
			writeError(w, "invalid data provided", http.StatusBadRequest)
			return
		case errors.Is(err, store.ErrUserAlreadyExists):
			log.Err(err).Msg("username or email already exists")
			writeError(w, store.ErrUserAlreadyExists.Error(), http.StatusBadRequest)
			return
		default:
			log.Err(err).Msg("unexpected error occurred during user registration")
			writeInternalError(w)
			return
		}
	}

	token, err := h.services.AuthService.CreateToken(ctx, registeredUser)
	if err != nil {
		log.Err(err).Msg("creation of token failed")
		writeInternalError(w)
		return
	}

	utils.WriteJSON(w, models.AuthResponse{
		User:  registeredUser.Public(),
		Token: token.SignedString,
	}, http.StatusCreated)
}

func (h *Handler) token(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		writeError(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	if errs := validators.ValidateLogin(req); len(errs) > 0 {
		log.Debug().Any("errors", errs).Msg("login input rejected")
		writeValidationErrors(w, errs)
		return
	}

	foundUser, err := h.services.AuthService.Login(ctx, req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidDataProvided):
			log.Err(err).Msg("invalid data provided")
			writeError(w, "invalid data provided", http.StatusBadRequest)
			return
		case errors.Is(err, service.ErrInvalidCredentials):
			// One message for unknown email and wrong password alike.
			log.Debug().Msg("invalid credentials")
			writeError(w, service.ErrInvalidCredentials.Error(), http.StatusUnauthorized)
			return
		default:
			log.Err(err).Msg("unexpected error occurred during user login")
			writeInternalError(w)
			return
		}
	}

	log.Debug().Int64("id", foundUser.UserID).Msg("user successfully logged in")

	token, err := h.services.AuthService.CreateToken(ctx, foundUser)
	if err != nil {
		log.Err(err).Msg("creation of token failed")
		writeInternalError(w)
		return
	}

	utils.WriteJSON(w, models.AuthResponse{
		User:  foundUser.Public(),
		Token: token.SignedString,
	}, http.StatusOK)
}

// currentUser resolves the authenticated subject to its account record.
// It backs both /api/auth/login and /api/users/login.
func (h *Handler) currentUser(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		log.Error().Msg("no user ID in request context")
		writeError(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	foundUser, err := h.services.UserService.UserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, store.ErrNoUserWasFound) {
			// A valid token whose subject has since disappeared.
			log.Debug().Int64("id", userID).Msg("token subject no longer exists")
			writeError(w, store.ErrNoUserWasFound.Error(), http.StatusNotFound)
			return
		}

		log.Err(err).Msg("unexpected error occurred during current user lookup")
		writeInternalError(w)
		return
	}

	utils.WriteJSON(w, foundUser.Public(), http.StatusOK)
}
