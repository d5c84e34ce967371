package config

import "errors"

// Validation errors returned by [StructuredConfig.validate] when required
// configuration groups are incomplete or invalid.
var (
	// ErrInvalidStorageConfigs indicates invalid storage settings
	// (for example, an empty database DSN).
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrInvalidAppConfigs indicates invalid application-level settings
	// (for example, missing or mis-sized encryption key material).
	ErrInvalidAppConfigs = errors.New("invalid app configuration")
	// ErrInvalidVerifierConfigs indicates invalid external verifier
	// settings (for example, a missing endpoint URL).
	ErrInvalidVerifierConfigs = errors.New("invalid verifier configuration")
	// ErrInvalidFileStorageConfigs indicates an unknown file storage
	// backend or missing backend settings.
	ErrInvalidFileStorageConfigs = errors.New("invalid file storage configuration")
)
