// Package crypto implements the vault cryptography: password-based
// authenticated encryption of JSON payloads into versioned envelopes, the
// password policy, a policy-compliant password generator and the startup
// self-test.
//
// Plaintext and derived keys never leave the process. Derived keys live only
// for the duration of one Encrypt or Decrypt call and are wiped afterwards.
//
// Key derivation is intentionally slow (Argon2id, 64 MiB). Callers on an
// interactive path should run Encrypt and Decrypt off that path; see the
// workers package for the bounded pool used by the service layer.
package crypto
