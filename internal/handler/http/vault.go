package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/MKhiriev/go-life-vault/internal/crypto"
	"github.com/MKhiriev/go-life-vault/internal/logger"
	"github.com/MKhiriev/go-life-vault/internal/service"
)

type encryptRequest struct {
	Data     json.RawMessage `json:"data"`
	Password string          `json:"password"`
}

type decryptRequest struct {
	Encrypted string `json:"encrypted"`
	Password  string `json:"password"`
}

type decryptResponse struct {
	Data  json.RawMessage `json:"data"`
	Error string          `json:"error,omitempty"`
}

type rekeyRequest struct {
	Encrypted   string `json:"encrypted"`
	OldPassword string `json:"oldPassword"`
	NewPassword string `json:"newPassword"`
}

func (h *Handler) encrypt(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var req encryptRequest
	if err := decodeJSON(w, r, &req); err != nil {
		log.Err(err).Str("func", "*Handler.encrypt").Msg("invalid request body")
		writeError(w, r, err)
		return
	}
	if len(req.Data) == 0 {
		writeError(w, r, ErrMissingData)
		return
	}

	res, err := h.vault.EncryptData(r.Context(), req.Data, req.Password)
	if err != nil {
		log.Err(err).Str("func", "*Handler.encrypt").Msg("error encrypting data")
		writeError(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, res)
}

// decrypt always answers with {data, error}. On failure data is null and
// error is the generic message whatever the cause was.
func (h *Handler) decrypt(w http.ResponseWriter, r *http.Request) {
	var req decryptRequest
	if err := decodeJSON(w, r, &req); err != nil {
		logger.FromRequest(r).Err(err).Str("func", "*Handler.decrypt").Msg("invalid request body")
		writeError(w, r, err)
		return
	}

	var data json.RawMessage
	if err := h.vault.DecryptInto(r.Context(), req.Encrypted, req.Password, &data); err != nil {
		status := statusFromError(err)
		if status == http.StatusBadRequest || status == http.StatusInternalServerError {
			status = http.StatusUnprocessableEntity
		}
		writeJSON(w, r, status, decryptResponse{Error: service.DecryptErrorMessage(err)})
		return
	}

	writeJSON(w, r, http.StatusOK, decryptResponse{Data: data})
}

func (h *Handler) rekey(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var req rekeyRequest
	if err := decodeJSON(w, r, &req); err != nil {
		log.Err(err).Str("func", "*Handler.rekey").Msg("invalid request body")
		writeError(w, r, err)
		return
	}

	res, err := h.vault.ChangePassword(r.Context(), req.Encrypted, req.OldPassword, req.NewPassword)
	if err != nil {
		log.Err(err).Str("func", "*Handler.rekey").Msg("error changing password")
		if errors.Is(err, crypto.ErrDecryptionFailed) || errors.Is(err, crypto.ErrMalformedEnvelope) {
			writeJSON(w, r, http.StatusUnprocessableEntity, errorResponse{Error: service.DecryptFailureMessage})
			return
		}
		writeError(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, res)
}
