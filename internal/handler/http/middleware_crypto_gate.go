package http

import (
	"net/http"

	"github.com/MKhiriev/go-life-vault/internal/logger"
	"github.com/MKhiriev/go-life-vault/internal/service"
)

// withCryptoGate refuses cryptographic routes with 503 until the encryption
// self-test has passed.
func (h *Handler) withCryptoGate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !h.vault.Ready() {
			logger.FromRequest(r).Warn().Str("path", r.URL.Path).Msg("crypto gate closed, request refused")
			writeError(w, r, service.ErrCryptoUnavailable)
			return
		}
		next.ServeHTTP(w, r)
	})
}
