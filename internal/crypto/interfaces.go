package crypto

//go:generate mockgen -source=interfaces.go -destination=../mock/crypto_mock.go -package=mock

// Cipher turns a JSON-serializable payload into an opaque, tamper-evident
// envelope string and back. It knows nothing about storage or transport.
//
// Scheme:
//
//	salt, nonce = random()                       (fresh on every call)
//	key         = Argon2id(password, salt)       (pinned by envelope version)
//	ct || tag   = AEAD(key, nonce, json(payload), aad=version)
//	envelope    = base64url(version | salt | nonce | ct | tag)
type Cipher interface {
	// Encrypt serializes payload to JSON and seals it under password.
	Encrypt(payload any, password string) (string, error)

	// Decrypt opens envelope with password and unmarshals the payload into
	// target, which must be a non-nil pointer as for json.Unmarshal.
	Decrypt(envelope, password string, target any) error
}

// PasswordGenerator produces random passwords that satisfy the password
// policy.
type PasswordGenerator interface {
	Password(length int) (string, error)
}
