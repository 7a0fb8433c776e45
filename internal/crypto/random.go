// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"crypto/rand"
	"fmt"
	"io"
	"math/big"
)

// MaxPasswordLength is the longest password [SecureRandom.Password] will
// generate.
const MaxPasswordLength = 4096

// Character classes used by [SecureRandom.Password]. Every symbol is
// non-alphanumeric so it satisfies the symbol rule of [PasswordPolicy].
const (
	lowerChars  = "abcdefghijklmnopqrstuvwxyz"
	upperChars  = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	digitChars  = "0123456789"
	symbolChars = "!@#$%^&*()-_=+[]{}<>?/|~"
	allChars    = lowerChars + upperChars + digitChars + symbolChars
)

// Provider is the cryptographic capability injected into the cipher and the
// random generator. Environments without a usable entropy source fail when
// the capability is checked in [NewVaultCipher] instead of at first use.
type Provider interface {
	// Entropy returns the source of cryptographically strong random bytes.
	Entropy() io.Reader
}

type systemProvider struct{}

func (systemProvider) Entropy() io.Reader { return rand.Reader }

// SystemProvider returns the [Provider] backed by the operating system CSPRNG.
func SystemProvider() Provider {
	return systemProvider{}
}

// ReaderProvider adapts an arbitrary reader to [Provider]. It exists mainly
// for tests that need to simulate a broken entropy source.
type ReaderProvider struct {
	R io.Reader
}

// Entropy implements [Provider].
func (p ReaderProvider) Entropy() io.Reader { return p.R }

// SecureRandom produces unpredictable bytes and policy-compliant passwords
// from a [Provider].
type SecureRandom struct {
	r io.Reader
}

// NewSecureRandom constructs a [SecureRandom] reading from p.
func NewSecureRandom(p Provider) *SecureRandom {
	return &SecureRandom{r: p.Entropy()}
}

// Bytes returns n random bytes. A failing entropy source is reported as
// [ErrEnvironmentFailure].
func (s *SecureRandom) Bytes(n int) ([]byte, error) {
	b := make([]byte, n)
	if _, err := io.ReadFull(s.r, b); err != nil {
		return nil, fmt.Errorf("%w: read random bytes: %w", ErrEnvironmentFailure, err)
	}
	return b, nil
}

// Intn returns a uniform random integer in [0, n).
func (s *SecureRandom) Intn(n int) (int, error) {
	v, err := rand.Int(s.r, big.NewInt(int64(n)))
	if err != nil {
		return 0, fmt.Errorf("%w: read random integer: %w", ErrEnvironmentFailure, err)
	}
	return int(v.Int64()), nil
}

// Password returns a random password of exactly length characters that
// always passes [DefaultPasswordPolicy]. One character is taken from each
// class, the rest from the combined alphabet, and the result is shuffled.
//
// Lengths below the policy minimum (8) return [ErrPasswordTooShort]: four
// characters would already cover every class, but the length rule cannot be
// met, so no password is produced. Lengths above [MaxPasswordLength] return
// [ErrPasswordTooLong].
func (s *SecureRandom) Password(length int) (string, error) {
	if length < MinPasswordLength {
		return "", fmt.Errorf("%w: got %d, need at least %d", ErrPasswordTooShort, length, MinPasswordLength)
	}
	if length > MaxPasswordLength {
		return "", fmt.Errorf("%w: got %d, at most %d", ErrPasswordTooLong, length, MaxPasswordLength)
	}

	out := make([]byte, 0, length)
	for _, class := range []string{upperChars, lowerChars, digitChars, symbolChars} {
		c, err := s.pick(class)
		if err != nil {
			return "", err
		}
		out = append(out, c)
	}
	for len(out) < length {
		c, err := s.pick(allChars)
		if err != nil {
			return "", err
		}
		out = append(out, c)
	}

	// Fisher-Yates so the mandatory characters are not always in front.
	for i := len(out) - 1; i > 0; i-- {
		j, err := s.Intn(i + 1)
		if err != nil {
			return "", err
		}
		out[i], out[j] = out[j], out[i]
	}

	return string(out), nil
}

func (s *SecureRandom) pick(alphabet string) (byte, error) {
	i, err := s.Intn(len(alphabet))
	if err != nil {
		return 0, err
	}
	return alphabet[i], nil
}
