// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import "errors"

// Sentinel errors returned by the vault cryptography layer. Callers should
// match them with [errors.Is].
var (
	// ErrDecryptionFailed is returned when the authentication tag of an
	// envelope does not verify. It deliberately covers both a wrong password
	// and a tampered envelope.
	ErrDecryptionFailed = errors.New("incorrect password or corrupted data")

	// ErrMalformedEnvelope is returned when the input is not a valid envelope
	// encoding at all. It is detected before any cryptographic verification
	// and always wraps one of the more specific causes below.
	ErrMalformedEnvelope = errors.New("malformed envelope")

	// ErrInvalidEncoding means the envelope string contains characters outside
	// the envelope alphabet.
	ErrInvalidEncoding = errors.New("invalid envelope encoding")

	// ErrEnvelopeTooShort means the decoded envelope is shorter than the fixed
	// fields of its version.
	ErrEnvelopeTooShort = errors.New("envelope too short")

	// ErrUnknownVersion means the leading version byte is not a registered
	// envelope version.
	ErrUnknownVersion = errors.New("unknown envelope version")

	// ErrEnvironmentFailure is returned when the entropy source or the
	// cryptographic provider is unavailable. It is fatal.
	ErrEnvironmentFailure = errors.New("cryptographic environment unavailable")

	// ErrSelfTestFailed is returned by [RunSelfTest] when the round trip
	// through the cipher does not behave as expected.
	ErrSelfTestFailed = errors.New("encryption self-test failed")

	// ErrEmptyPassword is returned when encrypt or decrypt is called with an
	// empty password.
	ErrEmptyPassword = errors.New("password must not be empty")

	// ErrUnsupportedPayload is returned when a payload cannot be represented
	// as JSON (channels, functions, NaN and infinities).
	ErrUnsupportedPayload = errors.New("payload is not JSON-serializable")

	// ErrPasswordTooShort is returned by the password generator when the
	// requested length cannot satisfy the password policy.
	ErrPasswordTooShort = errors.New("requested password length is below policy minimum")

	// ErrPasswordTooLong is returned by the password generator for lengths
	// above [MaxPasswordLength].
	ErrPasswordTooLong = errors.New("requested password length is above the generator maximum")

	// ErrCryptoUnavailable is returned by every cryptographic operation
	// while the self-test gate is closed.
	ErrCryptoUnavailable = errors.New("cryptography is unavailable: self-test has not passed")
)
