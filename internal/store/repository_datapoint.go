package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-pulse-keeper/internal/logger"
	"github.com/MKhiriev/go-pulse-keeper/models"
)

// dataPointRepository is the PostgreSQL-backed implementation of
// [DataPointRepository]. Listing queries are assembled with squirrel so the
// owner and date-range filters share one SELECT shape.
type dataPointRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewDataPointRepository constructs a [DataPointRepository] backed by the
// provided database connection and logger.
func NewDataPointRepository(db *DB, logger *logger.Logger) DataPointRepository {
	logger.Debug().Msg("creating data point repository")
	return &dataPointRepository{
		db:     db,
		logger: logger,
	}
}

// CreateDataPoint persists a new sample and returns it with server-assigned
// fields (ID, CreatedAt). The owner comes from dataPoint.UserID, which the
// service layer fills from the verified token subject.
func (r *dataPointRepository) CreateDataPoint(ctx context.Context, dataPoint models.DataPoint) (models.DataPoint, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, createDataPoint, dataPoint.UserID, dataPoint.Value, dataPoint.Category, dataPoint.Metadata)

	var created models.DataPoint
	if err := row.Scan(&created.ID, &created.UserID, &created.Value, &created.Category, &created.Metadata, &created.CreatedAt); err != nil {
		log.Err(err).Str("func", "*dataPointRepository.CreateDataPoint").Msg("error creating data point")
		return models.DataPoint{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return created, nil
}

// FindDataPointByID retrieves one sample joined with its owning user. The
// owner is attached as a public projection; the join never selects the
// password hash.
//
// Returns [ErrDataPointNotFound] when no row matches.
func (r *dataPointRepository) FindDataPointByID(ctx context.Context, id int64) (models.DataPoint, error) {
	log := logger.FromContext(ctx)

	var found models.DataPoint
	var owner models.PublicUser
	row := r.db.QueryRowContext(ctx, findDataPointByID, id)

	err := row.Scan(
		&found.ID, &found.UserID, &found.Value, &found.Category, &found.Metadata, &found.CreatedAt,
		&owner.ID, &owner.Username, &owner.Email, &owner.CreatedAt, &owner.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.DataPoint{}, ErrDataPointNotFound
		}

		log.Err(err).Str("func", "*dataPointRepository.FindDataPointByID").Msg("error: scanning error")
		return models.DataPoint{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	found.Owner = &owner
	return found, nil
}

// FindDataPointsByUser lists all samples owned by userID, oldest first.
func (r *dataPointRepository) FindDataPointsByUser(ctx context.Context, userID int64) ([]models.DataPoint, error) {
	query, args, err := buildFindByUserQuery(userID)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return r.queryDataPoints(ctx, query, args...)
}

// FindDataPointsByCategory lists samples owned by userID carrying the given
// category label, oldest first.
func (r *dataPointRepository) FindDataPointsByCategory(ctx context.Context, userID int64, category string) ([]models.DataPoint, error) {
	query, args, err := buildFindByCategoryQuery(userID, category)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return r.queryDataPoints(ctx, query, args...)
}

// FindDataPointsByDateRange lists samples owned by userID whose creation
// timestamp falls within [start, end]. Both bounds are inclusive.
func (r *dataPointRepository) FindDataPointsByDateRange(ctx context.Context, userID int64, start, end time.Time) ([]models.DataPoint, error) {
	query, args, err := buildFindByDateRangeQuery(userID, start, end)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return r.queryDataPoints(ctx, query, args...)
}

// queryDataPoints runs a listing query and scans the result set.
func (r *dataPointRepository) queryDataPoints(ctx context.Context, query string, args ...any) ([]models.DataPoint, error) {
	log := logger.FromContext(ctx)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*dataPointRepository.queryDataPoints").Msg("error executing query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	dataPoints := make([]models.DataPoint, 0)
	for rows.Next() {
		var d models.DataPoint
		if err := rows.Scan(&d.ID, &d.UserID, &d.Value, &d.Category, &d.Metadata, &d.CreatedAt); err != nil {
			log.Err(err).Str("func", "*dataPointRepository.queryDataPoints").Msg("error scanning rows")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		dataPoints = append(dataPoints, d)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return dataPoints, nil
}
