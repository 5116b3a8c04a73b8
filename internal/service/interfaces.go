package service

import (
	"context"
	"time"

	"github.com/MKhiriev/go-pulse-keeper/models"
)

// AuthService orchestrates credential hashing and token issuance for the
// registration and login flows. Creation of user accounts lives here so
// that there is exactly one path on which a plaintext password is hashed.
type AuthService interface {
	Register(ctx context.Context, req models.RegisterRequest) (models.User, error)
	Login(ctx context.Context, req models.LoginRequest) (models.User, error)
	CreateToken(ctx context.Context, user models.User) (models.Token, error)
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}

// UserService exposes read access to user accounts.
type UserService interface {
	UserByID(ctx context.Context, userID int64) (models.User, error)
	AllUsers(ctx context.Context) ([]models.User, error)
}

// DataPointService manages user-owned numeric samples. Every operation is
// scoped to the authenticated owner; the user ID always comes from the
// verified token subject, never from a request body.
type DataPointService interface {
	CreateDataPoint(ctx context.Context, userID int64, req models.DataPointRequest) (models.DataPoint, error)
	DataPointByID(ctx context.Context, userID, id int64) (models.DataPoint, error)
	DataPointsByUser(ctx context.Context, userID int64) ([]models.DataPoint, error)
	DataPointsByCategory(ctx context.Context, userID int64, category string) ([]models.DataPoint, error)
	DataPointsByDateRange(ctx context.Context, userID int64, start, end time.Time) ([]models.DataPoint, error)
}
