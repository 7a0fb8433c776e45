package service

import (
	"github.com/MKhiriev/go-life-vault/internal/config"
	"github.com/MKhiriev/go-life-vault/internal/crypto"
	"github.com/MKhiriev/go-life-vault/internal/logger"
	"github.com/MKhiriev/go-life-vault/internal/store"
	"github.com/MKhiriev/go-life-vault/internal/workers"
)

type Services struct {
	VaultService VaultService
	TokenService TokenService
}

// NewServices wires the facades. cipher and rnd must come from the same
// provider so that the self-test exercises what the services use. pool and
// gate must be the ones storages was opened with.
func NewServices(
	cipher crypto.Cipher,
	rnd *crypto.SecureRandom,
	storages *store.Storages,
	pool *workers.DerivationPool,
	gate *workers.Gate,
	cfg config.Crypto,
	logger *logger.Logger,
) *Services {
	selfTest := func() error { return crypto.RunSelfTest(cipher, rnd) }

	return &Services{
		VaultService: NewVaultService(cipher, rnd, selfTest, pool, gate, cfg, logger),
		TokenService: NewTokenService(storages.Credentials, logger),
	}
}
