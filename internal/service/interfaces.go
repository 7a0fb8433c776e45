package service

import (
	"context"

	"github.com/MKhiriev/go-life-vault/internal/crypto"
	"github.com/MKhiriev/go-life-vault/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// VaultService is the password-based encryption facade used by the rest of
// the application. Every method that derives a key may block while the
// derivation pool is saturated.
type VaultService interface {
	// EncryptData seals data under password.
	EncryptData(ctx context.Context, data any, password string) (models.EncryptResult, error)

	// DecryptInto opens envelope and unmarshals the payload into target.
	// Failures keep their typed cause; use [DecryptData] to obtain the
	// user-facing result.
	DecryptInto(ctx context.Context, envelope, password string, target any) error

	// ChangePassword re-seals the payload of envelope under newPassword.
	ChangePassword(ctx context.Context, envelope, oldPassword, newPassword string) (models.EncryptResult, error)

	// ValidatePassword checks password against the password policy.
	ValidatePassword(password string) crypto.PolicyResult

	// GenerateSecurePassword returns a random password that satisfies the
	// policy. A length of zero selects [DefaultGeneratedLength].
	GenerateSecurePassword(ctx context.Context, length int) (string, error)

	// TestEncryption runs the encryption self-test and opens or closes the
	// crypto gate according to its outcome.
	TestEncryption(ctx context.Context) models.SelfTestResult

	// Ready reports whether the last self-test passed.
	Ready() bool
}

// TokenService stores the OAuth token bundles of connected accounts.
type TokenService interface {
	// StoreTokens inserts or replaces the record of (accountID, provider).
	StoreTokens(ctx context.Context, accountID, provider string, record models.CredentialRecord) error

	// GetTokens returns the record, or nil when none is stored.
	GetTokens(ctx context.Context, accountID, provider string) (*models.CredentialRecord, error)

	// DeleteTokens removes the record. Deleting an absent record succeeds.
	DeleteTokens(ctx context.Context, accountID, provider string) error

	// ListTokens returns all records, or those of provider when not empty.
	ListTokens(ctx context.Context, provider string) ([]models.CredentialRecord, error)
}
