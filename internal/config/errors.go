package config

import "errors"

// Validation errors returned by [StructuredConfig.validate] when a
// configuration group is incomplete or invalid.
var (
	// ErrInvalidAppConfigs indicates an unknown log level.
	ErrInvalidAppConfigs = errors.New("invalid app configuration")
	// ErrInvalidCryptoConfigs indicates an unsupported envelope version or a
	// non-positive derivation limit.
	ErrInvalidCryptoConfigs = errors.New("invalid crypto configuration")
	// ErrInvalidStorageConfigs indicates an unknown backend, a missing DSN or
	// path, or at-rest encryption without a passphrase.
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrInvalidServerConfigs indicates a missing or non-loopback address or
	// a non-positive request timeout.
	ErrInvalidServerConfigs = errors.New("invalid server configuration")
)
