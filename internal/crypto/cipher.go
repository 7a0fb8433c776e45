// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// VaultCipher is the private-by-convention implementation of [Cipher]. It
// holds no per-call state: each call generates its own salt and nonce and
// derives its own key, so a single VaultCipher is safe for concurrent use.
type VaultCipher struct {
	rnd     *SecureRandom
	version Version
}

// Option configures a [VaultCipher].
type Option func(*VaultCipher)

// WithVersion selects the envelope version used for new envelopes.
// Decryption always accepts every registered version.
func WithVersion(v Version) Option {
	return func(c *VaultCipher) {
		c.version = v
	}
}

// NewVaultCipher constructs a cipher on top of provider p. The provider is
// probed once, so an environment without entropy fails here with
// [ErrEnvironmentFailure] instead of on the first encryption.
func NewVaultCipher(p Provider, opts ...Option) (*VaultCipher, error) {
	if p == nil || p.Entropy() == nil {
		return nil, fmt.Errorf("%w: no entropy source", ErrEnvironmentFailure)
	}

	c := &VaultCipher{
		rnd:     NewSecureRandom(p),
		version: CurrentVersion,
	}
	for _, opt := range opts {
		opt(c)
	}

	if _, err := lookupSuite(c.version); err != nil {
		return nil, fmt.Errorf("configure envelope version: %w", err)
	}
	if _, err := c.rnd.Bytes(1); err != nil {
		return nil, err
	}

	return c, nil
}

// Version returns the envelope version used for new envelopes.
func (c *VaultCipher) Version() Version {
	return c.version
}

// Encrypt implements [Cipher]. The payload is serialized to UTF-8 JSON and
// sealed under a key derived from password and a fresh salt. The returned
// envelope differs on every call, even for identical inputs.
func (c *VaultCipher) Encrypt(payload any, password string) (string, error) {
	if password == "" {
		return "", ErrEmptyPassword
	}

	plaintext, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrUnsupportedPayload, err)
	}
	defer Wipe(plaintext)

	s := suites[c.version]

	salt, err := c.rnd.Bytes(s.saltLen)
	if err != nil {
		return "", fmt.Errorf("generate salt: %w", err)
	}
	nonce, err := c.rnd.Bytes(s.nonceLen)
	if err != nil {
		return "", fmt.Errorf("generate nonce: %w", err)
	}

	key, err := DeriveKey(password, salt, c.version)
	if err != nil {
		return "", fmt.Errorf("derive key: %w", err)
	}
	defer Wipe(key)

	aead, err := s.newAEAD(key)
	if err != nil {
		return "", fmt.Errorf("%w: create aead: %w", ErrEnvironmentFailure, err)
	}

	env := Envelope{Version: c.version, Salt: salt, Nonce: nonce}
	sealed := aead.Seal(nil, nonce, plaintext, env.additionalData())
	env.Ciphertext, env.Tag = sealed[:len(sealed)-s.tagLen], sealed[len(sealed)-s.tagLen:]

	return EncodeEnvelope(env)
}

// Decrypt implements [Cipher]. Malformed input fails with
// [ErrMalformedEnvelope] before any key is derived. An envelope that does
// not authenticate fails with [ErrDecryptionFailed] and target is left
// untouched. Numbers are decoded as [encoding/json.Number] when target holds
// an interface, so large integers survive the round trip.
func (c *VaultCipher) Decrypt(envelope, password string, target any) error {
	if password == "" {
		return ErrEmptyPassword
	}

	env, err := DecodeEnvelope(envelope)
	if err != nil {
		return err
	}

	key, err := DeriveKey(password, env.Salt, env.Version)
	if err != nil {
		return fmt.Errorf("derive key: %w", err)
	}
	defer Wipe(key)

	aead, err := suites[env.Version].newAEAD(key)
	if err != nil {
		return fmt.Errorf("%w: create aead: %w", ErrEnvironmentFailure, err)
	}

	plaintext, err := aead.Open(nil, env.Nonce, env.sealed(), env.additionalData())
	if err != nil {
		return ErrDecryptionFailed
	}
	defer Wipe(plaintext)

	dec := json.NewDecoder(bytes.NewReader(plaintext))
	dec.UseNumber()
	if err = dec.Decode(target); err != nil {
		return fmt.Errorf("decode payload: %w", err)
	}

	return nil
}

// DecryptAs decrypts envelope into a fresh value of type T.
func DecryptAs[T any](c Cipher, envelope, password string) (T, error) {
	var out T
	if err := c.Decrypt(envelope, password, &out); err != nil {
		var zero T
		return zero, err
	}
	return out, nil
}
