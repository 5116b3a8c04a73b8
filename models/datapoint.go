package models

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"
	"time"
)

// Limits applied to [Metadata] by the input validator. They keep the open
// key-value payload bounded so a single data point cannot carry an
// arbitrarily large document.
const (
	MaxMetadataKeys  = 16
	MaxMetadataBytes = 1024
)

// Metadata is an open, schema-less key-value annotation attached to a data
// point. It is persisted as a JSONB column.
type Metadata map[string]string

// Value implements [driver.Valuer] so Metadata can be bound directly as a
// query argument. A nil map is stored as SQL NULL.
func (m Metadata) Value() (driver.Value, error) {
	if m == nil {
		return nil, nil
	}

	return json.Marshal(m)
}

// Scan implements [sql.Scanner] for reading the JSONB column back.
func (m *Metadata) Scan(src any) error {
	if src == nil {
		*m = nil
		return nil
	}

	switch v := src.(type) {
	case []byte:
		return json.Unmarshal(v, m)
	case string:
		return json.Unmarshal([]byte(v), m)
	default:
		return fmt.Errorf("metadata: unsupported scan type %T", src)
	}
}

// ErrMetadataTooLarge is returned by [Metadata.Validate] when the map
// exceeds the documented key count or serialized size limits.
var ErrMetadataTooLarge = errors.New("metadata exceeds allowed size")

// Validate checks the metadata against [MaxMetadataKeys] and
// [MaxMetadataBytes].
func (m Metadata) Validate() error {
	if m == nil {
		return nil
	}

	if len(m) > MaxMetadataKeys {
		return ErrMetadataTooLarge
	}

	raw, err := json.Marshal(m)
	if err != nil {
		return fmt.Errorf("metadata: %w", err)
	}
	if len(raw) > MaxMetadataBytes {
		return ErrMetadataTooLarge
	}

	return nil
}

// DataPoint is a user-owned numeric sample. Every data point belongs to
// exactly one user; the owner is always taken from the verified token
// subject, never from the request body. Data points are insert-only: no
// update or delete operation exists.
type DataPoint struct {
	// ID is the internal unique identifier of the sample.
	ID int64 `json:"id"`

	// UserID references the owning user.
	UserID int64 `json:"user_id"`

	// Value is the recorded numeric measurement.
	Value float64 `json:"value"`

	// Category is a free-form label grouping related samples.
	Category string `json:"category"`

	// Metadata optionally annotates the sample with bounded key-value data.
	Metadata Metadata `json:"metadata,omitempty"`

	// CreatedAt is the timestamp when the sample was recorded.
	CreatedAt time.Time `json:"created_at"`

	// Owner is the owning user's public projection. Populated only by
	// lookups that join the users table (find-by-id).
	Owner *PublicUser `json:"owner,omitempty"`
}

// TableName returns the name of the database table
// associated with the DataPoint model.
func (d DataPoint) TableName() string {
	return "data_points"
}
