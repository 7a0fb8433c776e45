// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"net"

	"github.com/rs/zerolog"
)

// validate checks that the final merged [StructuredConfig] is usable before
// anything is opened at startup.
func (cfg *StructuredConfig) validate() error {
	if _, err := zerolog.ParseLevel(cfg.App.LogLevel); err != nil {
		return fmt.Errorf("%w: log level %q", ErrInvalidAppConfigs, cfg.App.LogLevel)
	}

	if v := cfg.Crypto.EnvelopeVersion; v != 0 && v != 1 && v != 2 {
		return fmt.Errorf("%w: envelope version %d", ErrInvalidCryptoConfigs, v)
	}
	if cfg.Crypto.MaxConcurrentDerivations < 0 {
		return fmt.Errorf("%w: negative derivation limit", ErrInvalidCryptoConfigs)
	}

	if err := cfg.Storage.validate(); err != nil {
		return err
	}

	if cfg.Server.HTTPAddress != "" && !isLoopback(cfg.Server.HTTPAddress) {
		return fmt.Errorf("%w: %q is not a loopback address", ErrInvalidServerConfigs, cfg.Server.HTTPAddress)
	}
	if cfg.Server.RequestTimeout < 0 {
		return fmt.Errorf("%w: negative request timeout", ErrInvalidServerConfigs)
	}

	return nil
}

func (s Storage) validate() error {
	switch s.Backend {
	case "", "memory":
	case "sqlite", "postgres":
		if s.DB.DSN == "" {
			return fmt.Errorf("%w: %s backend needs a DSN", ErrInvalidStorageConfigs, s.Backend)
		}
	case "bolt":
		if s.Bolt.Path == "" {
			return fmt.Errorf("%w: bolt backend needs a path", ErrInvalidStorageConfigs)
		}
	default:
		return fmt.Errorf("%w: unknown backend %q", ErrInvalidStorageConfigs, s.Backend)
	}

	if s.EncryptAtRest && s.AtRestPassphrase == "" {
		return fmt.Errorf("%w: encryption at rest needs a passphrase", ErrInvalidStorageConfigs)
	}

	return nil
}

func isLoopback(addr string) bool {
	host, _, err := net.SplitHostPort(addr)
	if err != nil {
		return false
	}
	if host == "localhost" {
		return true
	}
	ip := net.ParseIP(host)
	return ip != nil && ip.IsLoopback()
}
