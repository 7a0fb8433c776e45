package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-life-vault/internal/crypto"
	"github.com/MKhiriev/go-life-vault/internal/workers"
)

// encryptedBackend seals every value into a vault envelope before handing
// it to the wrapped backend. Keys are stored as they are.
//
// Sealing and opening wait behind the same gate and derivation pool as the
// vault service, so a failed self-test stops token reads and writes too.
type encryptedBackend struct {
	inner      Backend
	cipher     crypto.Cipher
	passphrase string
	pool       *workers.DerivationPool
	gate       *workers.Gate
}

// NewEncryptedBackend wraps inner so that values are encrypted at rest under
// passphrase. Every derivation runs in pool, and none runs while gate is
// closed.
func NewEncryptedBackend(inner Backend, cipher crypto.Cipher, passphrase string, pool *workers.DerivationPool, gate *workers.Gate) Backend {
	return &encryptedBackend{
		inner:      inner,
		cipher:     cipher,
		passphrase: passphrase,
		pool:       pool,
		gate:       gate,
	}
}

func (e *encryptedBackend) Get(ctx context.Context, key string) ([]byte, error) {
	if !e.gate.Ready() {
		return nil, crypto.ErrCryptoUnavailable
	}

	sealed, err := e.inner.Get(ctx, key)
	if err != nil {
		return nil, err
	}
	return e.open(ctx, sealed)
}

func (e *encryptedBackend) Put(ctx context.Context, key string, value []byte) error {
	if !e.gate.Ready() {
		return crypto.ErrCryptoUnavailable
	}

	var sealed string
	err := e.pool.Do(ctx, func() error {
		var err error
		sealed, err = e.cipher.Encrypt(value, e.passphrase)
		return err
	})
	if err != nil {
		return fmt.Errorf("error sealing value: %w", err)
	}
	return e.inner.Put(ctx, key, []byte(sealed))
}

// Delete needs no key, so it is not gated.
func (e *encryptedBackend) Delete(ctx context.Context, key string) error {
	return e.inner.Delete(ctx, key)
}

func (e *encryptedBackend) List(ctx context.Context, prefix string) ([]Entry, error) {
	if !e.gate.Ready() {
		return nil, crypto.ErrCryptoUnavailable
	}

	entries, err := e.inner.List(ctx, prefix)
	if err != nil {
		return nil, err
	}

	for i := range entries {
		if entries[i].Value, err = e.open(ctx, entries[i].Value); err != nil {
			return nil, fmt.Errorf("%s: %w", entries[i].Key, err)
		}
	}
	return entries, nil
}

func (e *encryptedBackend) Close() error {
	return e.inner.Close()
}

// open reports anything the cipher rejects as a corrupted record. A slot
// that never became free comes back as the context error.
func (e *encryptedBackend) open(ctx context.Context, sealed []byte) ([]byte, error) {
	var value []byte
	err := e.pool.Do(ctx, func() error {
		if err := e.cipher.Decrypt(string(sealed), e.passphrase, &value); err != nil {
			return fmt.Errorf("%w: %w", ErrCorruptedRecord, err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return value, nil
}
