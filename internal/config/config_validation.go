// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
//
// The token sign key is required: signing tokens with a publicly known
// fallback value would let anyone forge credentials, so a missing key is a
// hard startup failure rather than a degraded mode.
//
// Returns nil if the configuration is valid, or a descriptive error
// otherwise.
func (cfg *StructuredConfig) validate() error {
	if cfg.App.TokenSignKey == "" {
		return ErrMissingTokenSignKey
	}

	switch cfg.App.Env {
	case EnvDevelopment, EnvTest, EnvProduction:
	default:
		return ErrInvalidAppConfigs
	}

	if cfg.Storage.DB.ResolveDSN() == "" {
		return ErrInvalidStorageConfigs
	}

	return nil
}
