// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-life-vault/internal/config"
	"github.com/MKhiriev/go-life-vault/internal/crypto"
	"github.com/MKhiriev/go-life-vault/internal/logger"
	"github.com/MKhiriev/go-life-vault/internal/workers"
	"github.com/MKhiriev/go-life-vault/models"
)

// DefaultGeneratedLength is the password length used when the caller does
// not ask for one.
const DefaultGeneratedLength = 16

// SelfTestFunc runs the encryption self-test.
type SelfTestFunc func() error

type vaultService struct {
	cipher        crypto.Cipher
	generator     crypto.PasswordGenerator
	policy        crypto.PasswordPolicy
	selfTest      SelfTestFunc
	pool          *workers.DerivationPool
	gate          *workers.Gate
	enforcePolicy bool

	logger *logger.Logger
}

// NewVaultService builds the vault facade. gate is shared with every other
// user of cipher and is expected closed: nothing is encrypted or decrypted
// before [VaultService.TestEncryption] has succeeded once.
func NewVaultService(
	cipher crypto.Cipher,
	generator crypto.PasswordGenerator,
	selfTest SelfTestFunc,
	pool *workers.DerivationPool,
	gate *workers.Gate,
	cfg config.Crypto,
	log *logger.Logger,
) VaultService {
	return &vaultService{
		cipher:        cipher,
		generator:     generator,
		policy:        crypto.DefaultPasswordPolicy(),
		selfTest:      selfTest,
		pool:          pool,
		gate:          gate,
		enforcePolicy: cfg.EnforcePasswordPolicy,
		logger:        log,
	}
}

func (s *vaultService) EncryptData(ctx context.Context, data any, password string) (models.EncryptResult, error) {
	if !s.gate.Ready() {
		return models.EncryptResult{}, ErrCryptoUnavailable
	}
	if err := s.checkPolicy(password); err != nil {
		return models.EncryptResult{}, err
	}

	var envelope string
	err := s.pool.Do(ctx, func() error {
		var err error
		envelope, err = s.cipher.Encrypt(data, password)
		return err
	})
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "vaultService.EncryptData").Msg("encryption failed")
		return models.EncryptResult{}, err
	}

	return models.EncryptResult{Encrypted: envelope}, nil
}

func (s *vaultService) DecryptInto(ctx context.Context, envelope, password string, target any) error {
	if !s.gate.Ready() {
		return ErrCryptoUnavailable
	}

	err := s.pool.Do(ctx, func() error {
		return s.cipher.Decrypt(envelope, password, target)
	})
	if err != nil {
		s.logDecryptFailure(ctx, "vaultService.DecryptInto", err)
	}
	return err
}

func (s *vaultService) ChangePassword(ctx context.Context, envelope, oldPassword, newPassword string) (models.EncryptResult, error) {
	if !s.gate.Ready() {
		return models.EncryptResult{}, ErrCryptoUnavailable
	}
	if err := s.checkPolicy(newPassword); err != nil {
		return models.EncryptResult{}, err
	}

	var payload json.RawMessage
	if err := s.DecryptInto(ctx, envelope, oldPassword, &payload); err != nil {
		return models.EncryptResult{}, err
	}
	defer crypto.Wipe(payload)

	return s.EncryptData(ctx, payload, newPassword)
}

func (s *vaultService) ValidatePassword(password string) crypto.PolicyResult {
	return s.policy.Validate(password)
}

func (s *vaultService) GenerateSecurePassword(ctx context.Context, length int) (string, error) {
	if !s.gate.Ready() {
		return "", ErrCryptoUnavailable
	}
	if length == 0 {
		length = DefaultGeneratedLength
	}

	password, err := s.generator.Password(length)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "vaultService.GenerateSecurePassword").Int("length", length).Msg("password generation failed")
		return "", err
	}
	return password, nil
}

func (s *vaultService) TestEncryption(ctx context.Context) models.SelfTestResult {
	err := s.pool.Do(ctx, func() error {
		return s.selfTest()
	})

	if err != nil {
		s.gate.Close()
		s.logger.Error().Err(err).Str("func", "vaultService.TestEncryption").Msg("encryption self-test failed, crypto gate closed")
		return models.SelfTestResult{Success: false, Error: err.Error()}
	}

	if s.gate.Open() {
		s.logger.Info().Str("func", "vaultService.TestEncryption").Msg("encryption self-test passed, crypto gate open")
	}
	return models.SelfTestResult{Success: true}
}

func (s *vaultService) Ready() bool {
	return s.gate.Ready()
}

func (s *vaultService) checkPolicy(password string) error {
	if !s.enforcePolicy {
		return nil
	}

	res := s.policy.Validate(password)
	if res.Valid {
		return nil
	}
	return fmt.Errorf("%w: %v", ErrWeakPassword, res.Violations)
}

// logDecryptFailure records which branch failed. The distinction stays in
// the logs and never reaches the caller's message.
func (s *vaultService) logDecryptFailure(ctx context.Context, fn string, err error) {
	log := logger.FromContext(ctx)
	switch {
	case errors.Is(err, crypto.ErrMalformedEnvelope):
		log.Warn().Err(err).Str("func", fn).Msg("malformed envelope")
	case errors.Is(err, crypto.ErrDecryptionFailed):
		log.Warn().Str("func", fn).Msg("envelope failed authentication")
	default:
		log.Err(err).Str("func", fn).Msg("decryption failed")
	}
}

// DecryptData opens envelope into a value of type T. On any failure Data is
// nil and Error carries the generic failure message.
func DecryptData[T any](ctx context.Context, svc VaultService, envelope, password string) models.DecryptResult[T] {
	var out T
	if err := svc.DecryptInto(ctx, envelope, password, &out); err != nil {
		return models.DecryptResult[T]{Error: DecryptErrorMessage(err)}
	}
	return models.DecryptResult[T]{Data: &out}
}

// DecryptErrorMessage hides every cryptographic cause behind one message.
// Errors unrelated to the envelope, such as the closed gate, keep their text.
func DecryptErrorMessage(err error) string {
	switch {
	case errors.Is(err, ErrCryptoUnavailable),
		errors.Is(err, context.Canceled),
		errors.Is(err, context.DeadlineExceeded):
		return err.Error()
	}
	return DecryptFailureMessage
}
