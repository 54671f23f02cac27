package config

import "errors"

// Validation errors returned by [StructuredConfig.validate] when required
// configuration groups are incomplete or invalid.
var (
	// ErrInvalidSyncConfigs indicates invalid daemon sync settings
	// (for example, an empty entry in the watched file list).
	ErrInvalidSyncConfigs = errors.New("invalid sync configuration")
)
