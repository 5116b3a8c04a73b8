package store

import (
	"context"
	"time"

	"github.com/MKhiriev/go-pulse-keeper/models"
)

// UserRepository is the persistence contract for user accounts.
//
// All lookups exclude the password hash except FindUserByEmail, which is
// used internally by the authentication flow and must return the stored
// hash for verification.
type UserRepository interface {
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	FindUserByID(ctx context.Context, userID int64) (models.User, error)
	FindUserByEmail(ctx context.Context, email string) (models.User, error)
	FindAllUsers(ctx context.Context) ([]models.User, error)
}

// DataPointRepository is the persistence contract for user-owned numeric
// samples. Data points are insert-only: no update or delete operations
// exist.
type DataPointRepository interface {
	CreateDataPoint(ctx context.Context, dataPoint models.DataPoint) (models.DataPoint, error)
	FindDataPointByID(ctx context.Context, id int64) (models.DataPoint, error)
	FindDataPointsByUser(ctx context.Context, userID int64) ([]models.DataPoint, error)
	FindDataPointsByCategory(ctx context.Context, userID int64, category string) ([]models.DataPoint, error)
	FindDataPointsByDateRange(ctx context.Context, userID int64, start, end time.Time) ([]models.DataPoint, error)
}
