package config

import "errors"

// Validation errors returned by [StructuredConfig.validate] when required
// configuration groups are incomplete or invalid.
var (
	// ErrMissingTokenSignKey indicates that no JWT signing secret was
	// provided by any configuration source. The application refuses to
	// start rather than fall back to a well-known default key.
	ErrMissingTokenSignKey = errors.New("token sign key is required")

	// ErrInvalidAppConfigs indicates invalid application-level settings
	// (for example, an unrecognized deployment environment).
	ErrInvalidAppConfigs = errors.New("invalid app configuration")

	// ErrInvalidStorageConfigs indicates invalid storage settings
	// (for example, neither a DSN nor host/name pair was provided).
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
)
