// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"crypto/aes"
	"crypto/cipher"
	"fmt"

	"golang.org/x/crypto/argon2"
	"golang.org/x/crypto/chacha20poly1305"
)

// Version is the envelope format discriminator. Every version pins its key
// derivation cost and its AEAD construction, so envelopes written under an
// older version stay decryptable after the defaults move on.
type Version byte

const (
	// VersionAESGCM is Argon2id(t=1, m=64 MiB, p=4) + AES-256-GCM.
	VersionAESGCM Version = 1
	// VersionXChaCha is Argon2id(t=3, m=64 MiB, p=4) + XChaCha20-Poly1305.
	VersionXChaCha Version = 2

	// CurrentVersion is used for new envelopes unless overridden.
	CurrentVersion = VersionXChaCha
)

const (
	keyLen  = 32 // 256 bits, required by both AEADs
	saltLen = 16
	tagLen  = 16
)

// KDFParams are the Argon2id tuning parameters of one envelope version.
type KDFParams struct {
	Time    uint32
	Memory  uint32 // KiB
	Threads uint8
	KeyLen  uint32
}

// Derive stretches password with salt. The result is deterministic for a
// given (password, salt) pair and must be wiped by the caller after use.
func (p KDFParams) Derive(password, salt []byte) []byte {
	return argon2.IDKey(password, salt, p.Time, p.Memory, p.Threads, p.KeyLen)
}

// suite binds the key derivation and the AEAD of one envelope version.
type suite struct {
	kdf      KDFParams
	saltLen  int
	nonceLen int
	tagLen   int
	newAEAD  func(key []byte) (cipher.AEAD, error)
}

// fixedLen is the length of every envelope field except the ciphertext.
func (s suite) fixedLen() int {
	return 1 + s.saltLen + s.nonceLen + s.tagLen
}

var suites = map[Version]suite{
	VersionAESGCM: {
		kdf:      KDFParams{Time: 1, Memory: 64 * 1024, Threads: 4, KeyLen: keyLen},
		saltLen:  saltLen,
		nonceLen: 12,
		tagLen:   tagLen,
		newAEAD: func(key []byte) (cipher.AEAD, error) {
			block, err := aes.NewCipher(key)
			if err != nil {
				return nil, err
			}
			return cipher.NewGCM(block)
		},
	},
	VersionXChaCha: {
		kdf:      KDFParams{Time: 3, Memory: 64 * 1024, Threads: 4, KeyLen: keyLen},
		saltLen:  saltLen,
		nonceLen: chacha20poly1305.NonceSizeX,
		tagLen:   chacha20poly1305.Overhead,
		newAEAD:  chacha20poly1305.NewX,
	},
}

func lookupSuite(v Version) (suite, error) {
	s, ok := suites[v]
	if !ok {
		return suite{}, fmt.Errorf("%w: %w: %d", ErrMalformedEnvelope, ErrUnknownVersion, v)
	}
	return s, nil
}

// Params returns the key derivation parameters pinned to version v.
func Params(v Version) (KDFParams, error) {
	s, err := lookupSuite(v)
	if err != nil {
		return KDFParams{}, err
	}
	return s.kdf, nil
}

// DeriveKey derives the symmetric key for version v from password and salt.
// The salt length must match the version.
func DeriveKey(password string, salt []byte, v Version) ([]byte, error) {
	s, err := lookupSuite(v)
	if err != nil {
		return nil, err
	}
	if len(salt) != s.saltLen {
		return nil, fmt.Errorf("salt length = %d, want %d", len(salt), s.saltLen)
	}

	pw := []byte(password)
	defer Wipe(pw)

	return s.kdf.Derive(pw, salt), nil
}
