// Package http implements the loopback JSON bridge of the vault daemon.
//
// It exposes the vault operations (encrypt, decrypt, re-key), the password
// policy and generator, the encryption self-test and the OAuth credential
// store to the local dashboard and the browser extension. Cross-cutting
// concerns such as request tracing, access logging and the crypto gate are
// handled in this package before requests reach the service layer.
package http
