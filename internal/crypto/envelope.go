// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"encoding/base64"
	"fmt"
)

// envelopeEncoding is URL-safe, unpadded and strict, so an envelope can be
// embedded in JSON, query parameters and key-value values, and any change to
// a character changes the decoded bytes or is rejected.
var envelopeEncoding = base64.RawURLEncoding.Strict()

// Envelope is the decoded form of an encrypted payload. Its binary layout is
//
//	version:1 | salt:16 | nonce:12 or 24 | ciphertext:N | tag:16
//
// where nonce length depends on the version.
type Envelope struct {
	Version    Version
	Salt       []byte
	Nonce      []byte
	Ciphertext []byte
	Tag        []byte
}

// EncodeEnvelope serializes e into its text form. Field lengths must match
// the version.
func EncodeEnvelope(e Envelope) (string, error) {
	s, err := lookupSuite(e.Version)
	if err != nil {
		return "", err
	}
	if len(e.Salt) != s.saltLen || len(e.Nonce) != s.nonceLen || len(e.Tag) != s.tagLen {
		return "", fmt.Errorf("envelope fields do not match version %d layout", e.Version)
	}

	raw := make([]byte, 0, s.fixedLen()+len(e.Ciphertext))
	raw = append(raw, byte(e.Version))
	raw = append(raw, e.Salt...)
	raw = append(raw, e.Nonce...)
	raw = append(raw, e.Ciphertext...)
	raw = append(raw, e.Tag...)

	return envelopeEncoding.EncodeToString(raw), nil
}

// DecodeEnvelope parses the text form of an envelope. Every failure wraps
// [ErrMalformedEnvelope] together with one of [ErrInvalidEncoding],
// [ErrEnvelopeTooShort] or [ErrUnknownVersion].
func DecodeEnvelope(text string) (Envelope, error) {
	raw, err := envelopeEncoding.DecodeString(text)
	if err != nil {
		return Envelope{}, fmt.Errorf("%w: %w", ErrMalformedEnvelope, ErrInvalidEncoding)
	}
	if len(raw) == 0 {
		return Envelope{}, fmt.Errorf("%w: %w", ErrMalformedEnvelope, ErrEnvelopeTooShort)
	}

	v := Version(raw[0])
	s, err := lookupSuite(v)
	if err != nil {
		return Envelope{}, err
	}
	if len(raw) < s.fixedLen() {
		return Envelope{}, fmt.Errorf("%w: %w: %d bytes, need at least %d",
			ErrMalformedEnvelope, ErrEnvelopeTooShort, len(raw), s.fixedLen())
	}

	rest := raw[1:]
	salt, rest := rest[:s.saltLen], rest[s.saltLen:]
	nonce, rest := rest[:s.nonceLen], rest[s.nonceLen:]
	ct, tag := rest[:len(rest)-s.tagLen], rest[len(rest)-s.tagLen:]

	return Envelope{
		Version:    v,
		Salt:       salt,
		Nonce:      nonce,
		Ciphertext: ct,
		Tag:        tag,
	}, nil
}

// sealed returns ciphertext with the tag appended, the layout expected by
// [cipher.AEAD.Open].
func (e Envelope) sealed() []byte {
	out := make([]byte, 0, len(e.Ciphertext)+len(e.Tag))
	out = append(out, e.Ciphertext...)
	return append(out, e.Tag...)
}

// additionalData binds the version byte to the authentication tag.
func (e Envelope) additionalData() []byte {
	return []byte{byte(e.Version)}
}
