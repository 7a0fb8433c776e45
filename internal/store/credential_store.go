// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/jonboulle/clockwork"

	"github.com/MKhiriev/go-life-vault/internal/logger"
	"github.com/MKhiriev/go-life-vault/models"
)

const credentialKeyPrefix = "cred/"

// CredentialStore is the keyed token store. Writes to one key are serialized
// and a reader never sees a partially written record. Operations on
// different keys do not block each other.
type CredentialStore struct {
	backend Backend
	locks   *keyLocks
	clock   clockwork.Clock
	logger  *logger.Logger
}

// NewCredentialStore wraps backend. StoredAt timestamps are taken from clock.
func NewCredentialStore(backend Backend, clock clockwork.Clock, log *logger.Logger) *CredentialStore {
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	return &CredentialStore{
		backend: backend,
		locks:   newKeyLocks(),
		clock:   clock,
		logger:  log,
	}
}

// credentialKey escapes both parts so that no (accountID, provider) pair can
// collide with another one, whatever characters the identifiers contain.
func credentialKey(accountID, provider string) string {
	return credentialKeyPrefix + url.PathEscape(provider) + "/" + url.PathEscape(accountID)
}

func providerPrefix(provider string) string {
	if provider == "" {
		return credentialKeyPrefix
	}
	return credentialKeyPrefix + url.PathEscape(provider) + "/"
}

func validateKey(accountID, provider string) error {
	if strings.TrimSpace(accountID) == "" || strings.TrimSpace(provider) == "" {
		return ErrInvalidKey
	}
	return nil
}

func (s *CredentialStore) Put(ctx context.Context, accountID, provider string, record models.CredentialRecord) (models.CredentialRecord, error) {
	if err := validateKey(accountID, provider); err != nil {
		return models.CredentialRecord{}, err
	}
	if record.AccessToken == "" {
		return models.CredentialRecord{}, fmt.Errorf("%w: access token is required", ErrInvalidRecord)
	}
	if record.ExpiresIn < 0 {
		return models.CredentialRecord{}, fmt.Errorf("%w: negative expiresIn", ErrInvalidRecord)
	}

	record.AccountID = accountID
	record.Provider = provider
	record.StoredAt = s.clock.Now().UTC()

	raw, err := json.Marshal(record)
	if err != nil {
		return models.CredentialRecord{}, fmt.Errorf("%w: %w", ErrInvalidRecord, err)
	}

	key := credentialKey(accountID, provider)
	unlock := s.locks.lock(key)
	defer unlock()

	if err = s.backend.Put(ctx, key, raw); err != nil {
		s.logger.Err(err).Str("func", "CredentialStore.Put").Str("provider", provider).Msg("error storing credential record")
		return models.CredentialRecord{}, err
	}

	s.logger.Debug().Str("func", "CredentialStore.Put").Str("provider", provider).Msg("credential record stored")
	return record, nil
}

func (s *CredentialStore) Get(ctx context.Context, accountID, provider string) (models.CredentialRecord, error) {
	if err := validateKey(accountID, provider); err != nil {
		return models.CredentialRecord{}, err
	}

	key := credentialKey(accountID, provider)
	unlock := s.locks.rlock(key)
	raw, err := s.backend.Get(ctx, key)
	unlock()

	if err != nil {
		if !errors.Is(err, ErrNotFound) {
			s.logger.Err(err).Str("func", "CredentialStore.Get").Str("provider", provider).Msg("error reading credential record")
		}
		return models.CredentialRecord{}, err
	}

	return decodeRecord(raw)
}

func (s *CredentialStore) Delete(ctx context.Context, accountID, provider string) error {
	if err := validateKey(accountID, provider); err != nil {
		return err
	}

	key := credentialKey(accountID, provider)
	unlock := s.locks.lock(key)
	defer unlock()

	err := s.backend.Delete(ctx, key)
	if err != nil && !errors.Is(err, ErrNotFound) {
		s.logger.Err(err).Str("func", "CredentialStore.Delete").Str("provider", provider).Msg("error deleting credential record")
	}
	return err
}

// List reads every matching entry in one backend call; each record in the
// result is a complete committed version.
func (s *CredentialStore) List(ctx context.Context, provider string) ([]models.CredentialRecord, error) {
	entries, err := s.backend.List(ctx, providerPrefix(provider))
	if err != nil {
		s.logger.Err(err).Str("func", "CredentialStore.List").Msg("error listing credential records")
		return nil, err
	}

	records := make([]models.CredentialRecord, 0, len(entries))
	for _, e := range entries {
		rec, err := decodeRecord(e.Value)
		if err != nil {
			s.logger.Err(err).Str("func", "CredentialStore.List").Str("key", e.Key).Msg("unreadable credential record")
			return nil, err
		}
		records = append(records, rec)
	}
	return records, nil
}

func decodeRecord(raw []byte) (models.CredentialRecord, error) {
	var rec models.CredentialRecord
	if err := json.Unmarshal(raw, &rec); err != nil {
		return models.CredentialRecord{}, fmt.Errorf("%w: %w", ErrCorruptedRecord, err)
	}
	return rec, nil
}
