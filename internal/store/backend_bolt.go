package store

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"time"

	"go.etcd.io/bbolt"

	"github.com/MKhiriev/go-life-vault/internal/logger"
)

var boltBucket = []byte("vault_kv")

const boltOpenTimeout = 5 * time.Second

type boltBackend struct {
	db     *bbolt.DB
	logger *logger.Logger
}

// NewBoltBackend opens (or creates) the bbolt file at path. Every Put is a
// committed and fsynced transaction.
func NewBoltBackend(path string, log *logger.Logger) (Backend, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o700); err != nil {
			log.Err(err).Str("func", "NewBoltBackend").Msg("error creating database directory")
			return nil, fmt.Errorf("error creating bolt directory: %w", err)
		}
	}

	db, err := bbolt.Open(path, 0o600, &bbolt.Options{Timeout: boltOpenTimeout})
	if err != nil {
		log.Err(err).Str("func", "NewBoltBackend").Msg("error opening bolt database")
		return nil, fmt.Errorf("error opening bolt database: %w", err)
	}

	err = db.Update(func(tx *bbolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(boltBucket)
		return err
	})
	if err != nil {
		_ = db.Close()
		log.Err(err).Str("func", "NewBoltBackend").Msg("error creating bucket")
		return nil, fmt.Errorf("error creating bolt bucket: %w", err)
	}

	log.Debug().Str("func", "NewBoltBackend").Str("path", path).Msg("bolt database opened")
	return &boltBackend{db: db, logger: log}, nil
}

func (b *boltBackend) Get(ctx context.Context, key string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var value []byte
	err := b.db.View(func(tx *bbolt.Tx) error {
		v := tx.Bucket(boltBucket).Get([]byte(key))
		if v == nil {
			return ErrNotFound
		}
		// v is only valid for the life of the transaction
		value = slices.Clone(v)
		return nil
	})
	return value, err
}

func (b *boltBackend) Put(ctx context.Context, key string, value []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	err := b.db.Update(func(tx *bbolt.Tx) error {
		return tx.Bucket(boltBucket).Put([]byte(key), value)
	})
	if err != nil {
		b.logger.Err(err).Str("func", "boltBackend.Put").Msg("error writing entry")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	return nil
}

func (b *boltBackend) Delete(ctx context.Context, key string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	return b.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(boltBucket)
		if bucket.Get([]byte(key)) == nil {
			return ErrNotFound
		}
		return bucket.Delete([]byte(key))
	})
}

func (b *boltBackend) List(ctx context.Context, prefix string) ([]Entry, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var entries []Entry
	err := b.db.View(func(tx *bbolt.Tx) error {
		p := []byte(prefix)
		c := tx.Bucket(boltBucket).Cursor()
		for k, v := c.Seek(p); k != nil && bytes.HasPrefix(k, p); k, v = c.Next() {
			entries = append(entries, Entry{Key: string(k), Value: slices.Clone(v)})
		}
		return nil
	})
	return entries, err
}

func (b *boltBackend) Close() error {
	return b.db.Close()
}
