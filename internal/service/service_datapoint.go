package service

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/go-pulse-keeper/internal/logger"
	"github.com/MKhiriev/go-pulse-keeper/internal/store"
	"github.com/MKhiriev/go-pulse-keeper/models"
)

// dataPointService is the concrete implementation of DataPointService.
type dataPointService struct {
	dataPointRepository store.DataPointRepository
	logger              *logger.Logger
}

// NewDataPointService constructs a DataPointService backed by the given
// repository.
func NewDataPointService(dataPointRepository store.DataPointRepository, logger *logger.Logger) DataPointService {
	return &dataPointService{
		dataPointRepository: dataPointRepository,
		logger:              logger,
	}
}

// CreateDataPoint records a new sample owned by userID. The owner is taken
// from the verified token subject carried in userID, never from req.
func (s *dataPointService) CreateDataPoint(ctx context.Context, userID int64, req models.DataPointRequest) (models.DataPoint, error) {
	log := logger.FromContext(ctx)

	if userID == 0 || req.Category == "" {
		log.Error().Int64("user_id", userID).Msg("invalid data point provided")
		return models.DataPoint{}, ErrInvalidDataProvided
	}

	created, err := s.dataPointRepository.CreateDataPoint(ctx, models.DataPoint{
		UserID:   userID,
		Value:    req.Value,
		Category: req.Category,
		Metadata: req.Metadata,
	})
	if err != nil {
		log.Err(err).Int64("user_id", userID).Msg("data point creation ended with error")
		return models.DataPoint{}, fmt.Errorf("data point creation ended with error: %w", err)
	}

	return created, nil
}

// DataPointByID fetches one sample joined with its owner's public
// projection.
//
// Returns:
//   - store.ErrDataPointNotFound (wrapped) when no such sample exists.
//   - ErrNotOwner when the sample belongs to a different user.
func (s *dataPointService) DataPointByID(ctx context.Context, userID, id int64) (models.DataPoint, error) {
	found, err := s.dataPointRepository.FindDataPointByID(ctx, id)
	if err != nil {
		return models.DataPoint{}, fmt.Errorf("data point search by id failed: %w", err)
	}

	if found.UserID != userID {
		return models.DataPoint{}, ErrNotOwner
	}

	return found, nil
}

// DataPointsByUser lists all samples owned by userID.
func (s *dataPointService) DataPointsByUser(ctx context.Context, userID int64) ([]models.DataPoint, error) {
	dataPoints, err := s.dataPointRepository.FindDataPointsByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("data point listing failed: %w", err)
	}

	return dataPoints, nil
}

// DataPointsByCategory lists userID's samples carrying the given category
// label.
func (s *dataPointService) DataPointsByCategory(ctx context.Context, userID int64, category string) ([]models.DataPoint, error) {
	if category == "" {
		return nil, ErrInvalidDataProvided
	}

	dataPoints, err := s.dataPointRepository.FindDataPointsByCategory(ctx, userID, category)
	if err != nil {
		return nil, fmt.Errorf("data point category listing failed: %w", err)
	}

	return dataPoints, nil
}

// DataPointsByDateRange lists userID's samples recorded within
// [start, end], inclusive on both bounds.
func (s *dataPointService) DataPointsByDateRange(ctx context.Context, userID int64, start, end time.Time) ([]models.DataPoint, error) {
	if end.Before(start) {
		return nil, ErrInvalidDataProvided
	}

	dataPoints, err := s.dataPointRepository.FindDataPointsByDateRange(ctx, userID, start, end)
	if err != nil {
		return nil, fmt.Errorf("data point range listing failed: %w", err)
	}

	return dataPoints, nil
}
