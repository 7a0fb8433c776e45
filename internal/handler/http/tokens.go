package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/go-life-vault/internal/logger"
	"github.com/MKhiriev/go-life-vault/models"
)

func (h *Handler) storeTokens(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)
	provider, accountID := chi.URLParam(r, "provider"), chi.URLParam(r, "accountID")

	var record models.CredentialRecord
	if err := decodeJSON(w, r, &record); err != nil {
		log.Err(err).Str("func", "*Handler.storeTokens").Msg("invalid request body")
		writeError(w, r, err)
		return
	}

	if err := h.tokens.StoreTokens(r.Context(), accountID, provider, record); err != nil {
		log.Err(err).Str("func", "*Handler.storeTokens").Str("provider", provider).Msg("error storing tokens")
		writeError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) getTokens(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)
	provider, accountID := chi.URLParam(r, "provider"), chi.URLParam(r, "accountID")

	record, err := h.tokens.GetTokens(r.Context(), accountID, provider)
	if err != nil {
		log.Err(err).Str("func", "*Handler.getTokens").Str("provider", provider).Msg("error reading tokens")
		writeError(w, r, err)
		return
	}
	if record == nil {
		writeJSON(w, r, http.StatusNotFound, errorResponse{Error: "no tokens stored for this account"})
		return
	}

	w.Header().Set("Cache-Control", "no-store")
	writeJSON(w, r, http.StatusOK, record)
}

// deleteTokens is idempotent: deleting an absent record succeeds.
func (h *Handler) deleteTokens(w http.ResponseWriter, r *http.Request) {
	provider, accountID := chi.URLParam(r, "provider"), chi.URLParam(r, "accountID")

	if err := h.tokens.DeleteTokens(r.Context(), accountID, provider); err != nil {
		logger.FromRequest(r).Err(err).Str("func", "*Handler.deleteTokens").Str("provider", provider).Msg("error deleting tokens")
		writeError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// listTokens filters by the optional "provider" query parameter.
func (h *Handler) listTokens(w http.ResponseWriter, r *http.Request) {
	provider := r.URL.Query().Get("provider")

	records, err := h.tokens.ListTokens(r.Context(), provider)
	if err != nil {
		logger.FromRequest(r).Err(err).Str("func", "*Handler.listTokens").Msg("error listing tokens")
		writeError(w, r, err)
		return
	}
	if records == nil {
		records = []models.CredentialRecord{}
	}

	w.Header().Set("Cache-Control", "no-store")
	writeJSON(w, r, http.StatusOK, records)
}
