// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app assembles the vault core from configuration. It is shared by
// the daemon and the command-line tool so that both run exactly the same
// cipher, storage and service wiring.
package app

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-life-vault/internal/config"
	"github.com/MKhiriev/go-life-vault/internal/crypto"
	"github.com/MKhiriev/go-life-vault/internal/logger"
	"github.com/MKhiriev/go-life-vault/internal/service"
	"github.com/MKhiriev/go-life-vault/internal/store"
	"github.com/MKhiriev/go-life-vault/internal/workers"
)

// Vault is the assembled core.
type Vault struct {
	Services *service.Services
	Storages *store.Storages
}

// New builds the cipher, opens the configured backend and wires the
// services around one derivation pool and one crypto gate. The gate is still
// closed on return; run [Vault.SelfTest]
// before offering cryptographic features.
func New(ctx context.Context, cfg *config.StructuredConfig, log *logger.Logger) (*Vault, error) {
	provider := crypto.SystemProvider()

	var opts []crypto.Option
	if cfg.Crypto.EnvelopeVersion != 0 {
		opts = append(opts, crypto.WithVersion(crypto.Version(cfg.Crypto.EnvelopeVersion)))
	}

	cipher, err := crypto.NewVaultCipher(provider, opts...)
	if err != nil {
		return nil, fmt.Errorf("create cipher: %w", err)
	}

	pool := workers.NewDerivationPool(cfg.Crypto.MaxConcurrentDerivations)
	gate := workers.NewGate()

	storages, err := store.NewStorages(ctx, cfg.Storage, cipher, pool, gate, log)
	if err != nil {
		return nil, fmt.Errorf("create storages: %w", err)
	}

	services := service.NewServices(cipher, crypto.NewSecureRandom(provider), storages, pool, gate, cfg.Crypto, log)

	log.Info().
		Int("envelope_version", int(cipher.Version())).
		Str("backend", cfg.Storage.Backend).
		Bool("encrypt_at_rest", cfg.Storage.EncryptAtRest).
		Msg("vault core assembled")

	return &Vault{Services: services, Storages: storages}, nil
}

// SelfTest runs the startup jobs: the encryption self-test opens the crypto
// gate or reports why it stays closed.
func (v *Vault) SelfTest(ctx context.Context) error {
	selfTest := workers.WorkerFunc(func(ctx context.Context) error {
		res := v.Services.VaultService.TestEncryption(ctx)
		if !res.Success {
			return fmt.Errorf("%w: %s", crypto.ErrSelfTestFailed, res.Error)
		}
		return nil
	})

	return workers.NewWorkers(selfTest).Run(ctx)
}

// Close releases the storage backend.
func (v *Vault) Close() error {
	return v.Storages.Close()
}
