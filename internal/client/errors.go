package client

import "errors"

var (
	ErrUnknownCommand   = errors.New("unknown command")
	ErrUsage            = errors.New("invalid usage")
	ErrNoPassword       = errors.New("no password available: set VAULT_PASSWORD or run from a terminal")
	ErrPasswordRejected = errors.New("password does not satisfy the password policy")
	ErrDecryptFailed    = errors.New("decryption failed")
)
