// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container for the vault.
// It aggregates all sub-configurations and is populated by merging values
// from environment variables, command-line flags, an optional JSON file and
// built-in defaults.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds process-wide settings such as the log level.
	App App `envPrefix:"APP_"`

	// Crypto holds envelope and key derivation settings.
	Crypto Crypto `envPrefix:"CRYPTO_"`

	// Storage selects and configures the credential store backend.
	Storage Storage `envPrefix:"STORAGE_"`

	// Server holds the local HTTP bridge settings.
	Server Server `envPrefix:"SERVER_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds process-wide settings.
type App struct {
	// LogLevel is a zerolog level name ("debug", "info", "warn", ...).
	LogLevel string `env:"LOG_LEVEL"`
}

// Crypto holds the envelope engine settings.
type Crypto struct {
	// EnvelopeVersion is the envelope format new encryptions are written
	// with. Older versions stay decryptable.
	EnvelopeVersion int `env:"ENVELOPE_VERSION"`

	// MaxConcurrentDerivations bounds how many Argon2id derivations run at
	// once. Each one holds 64 MiB.
	MaxConcurrentDerivations int `env:"MAX_CONCURRENT_DERIVATIONS"`

	// EnforcePasswordPolicy makes encryption reject passwords that fail the
	// password policy.
	EnforcePasswordPolicy bool `env:"ENFORCE_PASSWORD_POLICY"`
}

// Storage groups the configuration of the credential store backends.
type Storage struct {
	// Backend is one of "memory", "sqlite", "postgres" or "bolt".
	Backend string `env:"BACKEND"`

	// DB holds the SQL connection settings for "sqlite" and "postgres".
	DB DB `envPrefix:"DB_"`

	// Bolt holds the bbolt file settings for "bolt".
	Bolt Bolt `envPrefix:"BOLT_"`

	// EncryptAtRest seals stored token values into vault envelopes.
	EncryptAtRest bool `env:"ENCRYPT_AT_REST"`

	// AtRestPassphrase is the password the at-rest envelopes are sealed
	// under. Required when EncryptAtRest is set.
	AtRestPassphrase string `env:"AT_REST_PASSPHRASE"`
}

// DB holds relational database connection parameters.
type DB struct {
	// DSN is a SQLite file path or a PostgreSQL connection string.
	DSN string `env:"DATABASE_URI"`
}

// Bolt holds bbolt database parameters.
type Bolt struct {
	// Path is the database file location.
	Path string `env:"PATH"`
}

// Server holds the local HTTP bridge settings.
type Server struct {
	// HTTPAddress is the TCP address in host:port format. Only loopback
	// hosts are accepted.
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout is the maximum duration allowed for a single request.
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// GetStructuredConfig loads the configuration from the environment, the
// command-line args, the JSON file they point at and the defaults, then
// validates it. The args left after flag parsing are returned as well.
func GetStructuredConfig(args []string) (*StructuredConfig, []string, error) {
	b := newConfigBuilder().
		withEnv().
		withFlags(args).
		withJSON().
		withDefaults()

	cfg, err := b.build()
	return cfg, b.rest, err
}
