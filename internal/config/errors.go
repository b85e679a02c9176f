package config

import "errors"

// Validation errors returned by [StructuredConfig.validate] when required
// configuration groups are incomplete or invalid.
var (
	// ErrInvalidStorageConfigs indicates invalid database settings
	// (for example, an empty DSN).
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")

	// ErrInvalidServerConfigs indicates invalid server settings
	// (for example, a missing HTTP address).
	ErrInvalidServerConfigs = errors.New("invalid server configuration")

	// ErrUnsupportedNASBackend indicates that the configured remote file
	// store backend is neither "webdav" nor "ftp".
	ErrUnsupportedNASBackend = errors.New("unsupported NAS backend")

	// ErrInvalidNASConfigs indicates invalid remote file store settings
	// (for example, a non-positive operation timeout).
	ErrInvalidNASConfigs = errors.New("invalid NAS configuration")
)
