package store

import (
	"context"
	"fmt"

	"github.com/jonboulle/clockwork"

	"github.com/MKhiriev/go-life-vault/internal/config"
	"github.com/MKhiriev/go-life-vault/internal/crypto"
	"github.com/MKhiriev/go-life-vault/internal/logger"
	"github.com/MKhiriev/go-life-vault/internal/workers"
)

// Backend names accepted in the storage configuration.
const (
	BackendMemory   = "memory"
	BackendSQLite   = "sqlite"
	BackendPostgres = "postgres"
	BackendBolt     = "bolt"
)

// Storages groups the repositories the services work with.
type Storages struct {
	Credentials CredentialRepository

	backend Backend
}

// NewStorages opens the configured backend, applies migrations for SQL
// backends and, when requested, wraps it with at-rest encryption. The
// encryption shares pool and gate with the vault service.
func NewStorages(
	ctx context.Context,
	cfg config.Storage,
	cipher crypto.Cipher,
	pool *workers.DerivationPool,
	gate *workers.Gate,
	log *logger.Logger,
) (*Storages, error) {
	backend, err := openBackend(ctx, cfg, log)
	if err != nil {
		return nil, err
	}

	if cfg.EncryptAtRest {
		backend = NewEncryptedBackend(backend, cipher, cfg.AtRestPassphrase, pool, gate)
		log.Info().Str("func", "NewStorages").Msg("credential values are encrypted at rest")
	}

	return &Storages{
		Credentials: NewCredentialStore(backend, clockwork.NewRealClock(), log),
		backend:     backend,
	}, nil
}

func openBackend(ctx context.Context, cfg config.Storage, log *logger.Logger) (Backend, error) {
	switch cfg.Backend {
	case BackendMemory:
		log.Warn().Str("func", "NewStorages").Msg("using in-memory storage, credentials will not survive a restart")
		return NewMemoryBackend(), nil

	case BackendBolt:
		return NewBoltBackend(cfg.Bolt.Path, log)

	case BackendSQLite, BackendPostgres:
		var (
			db  *DB
			err error
		)
		if cfg.Backend == BackendSQLite {
			db, err = NewConnectSQLite(ctx, cfg.DB.DSN, log)
		} else {
			db, err = NewConnectPostgres(ctx, cfg.DB.DSN, log)
		}
		if err != nil {
			return nil, err
		}
		if err = db.Migrate(); err != nil {
			_ = db.Close()
			log.Err(err).Str("func", "NewStorages").Msg("error applying migrations")
			return nil, err
		}
		return NewSQLBackend(db, log), nil
	}

	return nil, fmt.Errorf("%w: %q", ErrUnknownBackend, cfg.Backend)
}

// Close releases the underlying backend.
func (s *Storages) Close() error {
	if s.backend == nil {
		return nil
	}
	return s.backend.Close()
}
