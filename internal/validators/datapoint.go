package validators

import (
	"fmt"
	"math"

	"github.com/MKhiriev/go-pulse-keeper/models"
)

// Field name constants for data point validation errors.
const (
	FieldValue    = "value"
	FieldCategory = "category"
	FieldMetadata = "metadata"
)

// MaxCategoryLength bounds the free-form category label.
const MaxCategoryLength = 64

// ValidateDataPoint checks a data point creation request: finite numeric
// value, non-empty bounded category, and metadata within the documented
// size limits. Returns nil when the request is valid.
func ValidateDataPoint(req models.DataPointRequest) []models.FieldError {
	var errs []models.FieldError

	if math.IsNaN(req.Value) || math.IsInf(req.Value, 0) {
		errs = append(errs, models.FieldError{Field: FieldValue, Message: "value must be a finite number"})
	}

	if req.Category == "" {
		errs = append(errs, models.FieldError{Field: FieldCategory, Message: "category is required"})
	} else if len(req.Category) > MaxCategoryLength {
		errs = append(errs, models.FieldError{Field: FieldCategory, Message: fmt.Sprintf("category must be at most %d characters", MaxCategoryLength)})
	}

	if err := req.Metadata.Validate(); err != nil {
		errs = append(errs, models.FieldError{
			Field:   FieldMetadata,
			Message: fmt.Sprintf("metadata must have at most %d keys and %d bytes serialized", models.MaxMetadataKeys, models.MaxMetadataBytes),
		})
	}

	return errs
}
