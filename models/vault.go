package models

// EncryptResult is returned by the vault encrypt operation.
type EncryptResult struct {
	Encrypted string `json:"encrypted"`
}

// DecryptResult is returned by the vault decrypt operation. Exactly one of
// Data and Error is set: Data is nil whenever decryption failed, and Error
// never discloses whether the password was wrong or the data corrupted.
type DecryptResult[T any] struct {
	Data  *T     `json:"data"`
	Error string `json:"error,omitempty"`
}

// OK reports whether decryption succeeded.
func (r DecryptResult[T]) OK() bool {
	return r.Error == "" && r.Data != nil
}

// SelfTestResult is the outcome of the startup encryption self-test.
type SelfTestResult struct {
	Success bool   `json:"success"`
	Error   string `json:"error,omitempty"`
}
