package http

import (
	"net/http"
)

// cryptoHealth reruns the encryption self-test. A failure closes the crypto
// gate until a later run succeeds.
func (h *Handler) cryptoHealth(w http.ResponseWriter, r *http.Request) {
	res := h.vault.TestEncryption(r.Context())

	status := http.StatusOK
	if !res.Success {
		status = http.StatusServiceUnavailable
	}
	writeJSON(w, r, status, res)
}
