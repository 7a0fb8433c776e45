package service

import (
	"errors"

	"github.com/MKhiriev/go-life-vault/internal/crypto"
)

var (
	// ErrWeakPassword is returned by encryption when policy enforcement is
	// enabled and the password violates the policy.
	ErrWeakPassword = errors.New("password does not satisfy the password policy")

	// ErrCryptoUnavailable is returned by every cryptographic operation until
	// the encryption self-test has passed.
	ErrCryptoUnavailable = crypto.ErrCryptoUnavailable
)

// DecryptFailureMessage is the only failure text shown to users for a
// failed decryption.
var DecryptFailureMessage = crypto.ErrDecryptionFailed.Error()
