package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID, withLogging)
	if h.cfg.RequestTimeout > 0 {
		router.Use(middleware.Timeout(h.cfg.RequestTimeout))
	}

	router.Get("/api/version", h.getVersion)
	router.Get("/api/health/crypto", h.cryptoHealth)
	router.Post("/api/password/validate", h.validatePassword)

	// routes that derive keys or draw from the generator
	router.Group(func(r chi.Router) {
		r.Use(h.withCryptoGate)
		r.Post("/api/vault/encrypt", h.encrypt)
		r.Post("/api/vault/decrypt", h.decrypt)
		r.Post("/api/vault/rekey", h.rekey)
		r.Get("/api/password/generate", h.generatePassword)
	})

	router.Get("/api/tokens", h.listTokens)
	router.Put("/api/tokens/{provider}/{accountID}", h.storeTokens)
	router.Get("/api/tokens/{provider}/{accountID}", h.getTokens)
	router.Delete("/api/tokens/{provider}/{accountID}", h.deleteTokens)

	return router
}
