package config

import (
	"errors"
	"fmt"
	"time"

	"dario.cat/mergo"
)

// Defaults applied to every field no other source has set.
const (
	DefaultLogLevel                 = "info"
	DefaultEnvelopeVersion          = 2
	DefaultMaxConcurrentDerivations = 2
	DefaultBackend                  = "sqlite"
	DefaultSQLiteDSN                = "vault.db"
	DefaultBoltPath                 = "vault.bolt"
	DefaultHTTPAddress              = "127.0.0.1:8765"
	DefaultRequestTimeout           = 30 * time.Second
)

type configBuilder struct {
	configs []*StructuredConfig
	rest    []string
	err     error
}

func newConfigBuilder() *configBuilder {
	return &configBuilder{
		configs: make([]*StructuredConfig, 0, 4),
	}
}

// build merges the collected configs. A field keeps the value of the first
// source that set it, so sources are added in priority order.
func (b *configBuilder) build() (*StructuredConfig, error) {
	if b.err != nil {
		return nil, fmt.Errorf("error occured during building config: %w", b.err)
	}

	config := new(StructuredConfig)
	for _, cfg := range b.configs {
		if err := mergo.Merge(config, cfg); err != nil {
			return nil, fmt.Errorf("error merging configs: %w", err)
		}
	}

	return config, config.validate()
}

func (b *configBuilder) withEnv() *configBuilder {
	envCfg := &StructuredConfig{}
	if err := parseEnv(envCfg); err != nil {
		b.err = errors.Join(b.err, err)
		return b
	}

	b.configs = append(b.configs, envCfg)
	return b
}

func (b *configBuilder) withFlags(args []string) *configBuilder {
	flags, rest, err := ParseFlags(args)
	if err != nil {
		b.err = errors.Join(b.err, err)
		return b
	}

	b.configs = append(b.configs, flags)
	b.rest = rest
	return b
}

func (b *configBuilder) withJSON() *configBuilder {
	var jsonPath string
	for _, cfg := range b.configs {
		if cfg.JSONFilePath != "" {
			jsonPath = cfg.JSONFilePath
			break
		}
	}

	if jsonPath != "" {
		jsonCfg, err := parseJSON(jsonPath)
		if err != nil {
			b.err = errors.Join(b.err, err)
			return b
		}
		b.configs = append(b.configs, jsonCfg)
	}

	return b
}

// withDefaults must be the last source. Backend-specific defaults depend on
// the backend chosen by the earlier sources.
func (b *configBuilder) withDefaults() *configBuilder {
	backend := DefaultBackend
	for _, cfg := range b.configs {
		if cfg.Storage.Backend != "" {
			backend = cfg.Storage.Backend
			break
		}
	}

	defaults := &StructuredConfig{
		App: App{LogLevel: DefaultLogLevel},
		Crypto: Crypto{
			EnvelopeVersion:          DefaultEnvelopeVersion,
			MaxConcurrentDerivations: DefaultMaxConcurrentDerivations,
		},
		Storage: Storage{Backend: backend},
		Server: Server{
			HTTPAddress:    DefaultHTTPAddress,
			RequestTimeout: DefaultRequestTimeout,
		},
	}

	switch backend {
	case "sqlite":
		defaults.Storage.DB.DSN = DefaultSQLiteDSN
	case "bolt":
		defaults.Storage.Bolt.Path = DefaultBoltPath
	}

	b.configs = append(b.configs, defaults)
	return b
}
