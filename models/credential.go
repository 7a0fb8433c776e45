// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// CredentialRecord is one stored third-party session, typically the result
// of an OAuth code exchange.
//
// The pair (AccountID, Provider) is the record key. AccountID, Provider and
// StoredAt are owned by the credential store: whatever the caller sets there
// is overwritten on put.
type CredentialRecord struct {
	// AccountID is the caller-chosen stable identifier of the connected
	// account (e.g. "google-gmail").
	AccountID string `json:"accountId"`

	// Provider is the issuer of the tokens (e.g. "google").
	Provider string `json:"provider"`

	// AccessToken is the bearer credential presented to the provider.
	AccessToken string `json:"accessToken"`

	// RefreshToken is used to obtain a new access token. Optional.
	RefreshToken string `json:"refreshToken,omitempty"`

	// ExpiresIn is the access token lifetime in seconds from issuance.
	ExpiresIn int64 `json:"expiresIn"`

	// TokenType is usually "Bearer".
	TokenType string `json:"tokenType"`

	// Scope is the space-separated list of granted scopes.
	Scope string `json:"scope"`

	// StoredAt is set by the store when the record is written.
	StoredAt time.Time `json:"storedAt"`
}

// ExpiresAt returns the moment the access token stops being valid, assuming
// it was issued when it was stored. A zero ExpiresIn means the provider did
// not report a lifetime and the zero time is returned.
func (r CredentialRecord) ExpiresAt() time.Time {
	if r.ExpiresIn <= 0 {
		return time.Time{}
	}
	return r.StoredAt.Add(time.Duration(r.ExpiresIn) * time.Second)
}

// Expired reports whether the access token is past its lifetime at now.
// Records without a reported lifetime never expire.
func (r CredentialRecord) Expired(now time.Time) bool {
	exp := r.ExpiresAt()
	return !exp.IsZero() && !now.Before(exp)
}
