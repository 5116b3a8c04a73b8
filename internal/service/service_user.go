package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-pulse-keeper/internal/logger"
	"github.com/MKhiriev/go-pulse-keeper/internal/store"
	"github.com/MKhiriev/go-pulse-keeper/models"
)

// userService is the concrete implementation of UserService. Account
// creation is deliberately absent: it lives on AuthService so there is a
// single path that handles plaintext passwords.
type userService struct {
	userRepository store.UserRepository
	logger         *logger.Logger
}

// NewUserService constructs a UserService backed by the given repository.
func NewUserService(userRepository store.UserRepository, logger *logger.Logger) UserService {
	return &userService{
		userRepository: userRepository,
		logger:         logger,
	}
}

// UserByID looks up one account. The underlying query never selects the
// password hash.
//
// Returns store.ErrNoUserWasFound (wrapped) when the account does not exist.
func (s *userService) UserByID(ctx context.Context, userID int64) (models.User, error) {
	foundUser, err := s.userRepository.FindUserByID(ctx, userID)
	if err != nil {
		return models.User{}, fmt.Errorf("user search by id failed: %w", err)
	}

	return foundUser, nil
}

// AllUsers lists every account.
func (s *userService) AllUsers(ctx context.Context) ([]models.User, error) {
	users, err := s.userRepository.FindAllUsers(ctx)
	if err != nil {
		return nil, fmt.Errorf("user listing failed: %w", err)
	}

	return users, nil
}
