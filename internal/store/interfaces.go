package store

import (
	"context"

	"github.com/MKhiriev/go-life-vault/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// Backend is the minimal durable key-value contract the credential store is
// built on. Implementations must make each Put atomic (a concurrent Get sees
// either the old or the new value) and durable once Put returns.
type Backend interface {
	// Get returns the value stored at key or [ErrNotFound].
	Get(ctx context.Context, key string) ([]byte, error)

	// Put inserts or fully replaces the value at key.
	Put(ctx context.Context, key string, value []byte) error

	// Delete removes key or returns [ErrNotFound].
	Delete(ctx context.Context, key string) error

	// List returns every entry whose key starts with prefix, ordered by key.
	List(ctx context.Context, prefix string) ([]Entry, error)

	// Close releases the underlying resources.
	Close() error
}

// Entry is one key-value pair returned by [Backend.List].
type Entry struct {
	Key   string
	Value []byte
}

// CredentialRepository stores third-party token bundles keyed by
// (accountID, provider).
type CredentialRepository interface {
	// Put inserts or fully replaces the record and returns it as stored,
	// with the key fields and StoredAt filled in by the store.
	Put(ctx context.Context, accountID, provider string, record models.CredentialRecord) (models.CredentialRecord, error)

	// Get returns the record or [ErrNotFound].
	Get(ctx context.Context, accountID, provider string) (models.CredentialRecord, error)

	// Delete removes the record or returns [ErrNotFound].
	Delete(ctx context.Context, accountID, provider string) error

	// List returns all records, or only those of provider when it is not
	// empty. The order is stable for a given store state.
	List(ctx context.Context, provider string) ([]models.CredentialRecord, error)
}
