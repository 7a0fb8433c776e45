package http

import (
	"net/http"
	"strconv"

	"github.com/MKhiriev/go-life-vault/internal/logger"
)

type validatePasswordRequest struct {
	Password string `json:"password"`
}

type validatePasswordResponse struct {
	Valid      bool     `json:"valid"`
	Violations []string `json:"violations"`
	Messages   []string `json:"messages"`
}

type generatePasswordResponse struct {
	Password string `json:"password"`
}

func (h *Handler) validatePassword(w http.ResponseWriter, r *http.Request) {
	var req validatePasswordRequest
	if err := decodeJSON(w, r, &req); err != nil {
		logger.FromRequest(r).Err(err).Str("func", "*Handler.validatePassword").Msg("invalid request body")
		writeError(w, r, err)
		return
	}

	res := h.vault.ValidatePassword(req.Password)

	resp := validatePasswordResponse{
		Valid:      res.Valid,
		Violations: make([]string, 0, len(res.Violations)),
		Messages:   make([]string, 0, len(res.Violations)),
	}
	for _, v := range res.Violations {
		resp.Violations = append(resp.Violations, string(v))
		resp.Messages = append(resp.Messages, v.Describe())
	}

	writeJSON(w, r, http.StatusOK, resp)
}

// generatePassword reads the optional "length" query parameter. A missing
// parameter selects the default length.
func (h *Handler) generatePassword(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var length int
	if raw := r.URL.Query().Get("length"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			writeError(w, r, ErrInvalidLength)
			return
		}
		length = n
	}

	password, err := h.vault.GenerateSecurePassword(r.Context(), length)
	if err != nil {
		log.Err(err).Str("func", "*Handler.generatePassword").Int("length", length).Msg("error generating password")
		writeError(w, r, err)
		return
	}

	w.Header().Set("Cache-Control", "no-store")
	writeJSON(w, r, http.StatusOK, generatePasswordResponse{Password: password})
}
