package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID, h.withLogging)

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Post("/api/auth/link", h.requestSignInLink)
		r.Post("/api/auth/link/verify", h.verifySignInLink)
		r.Get("/api/version/", h.getServerVersion)
	})

	// a session narrows authentication to its own subject, an email is
	// accepted otherwise
	router.Group(func(r chi.Router) {
		r.Use(h.optionalAuth)
		r.Post("/api/passkey/auth/options", h.beginAuthentication)
		r.Post("/api/passkey/auth/verify", h.completeAuthentication)
	})

	router.Group(func(r chi.Router) {
		r.Use(h.auth)
		r.Get("/api/passkey/status", h.passkeyStatus)
		r.Post("/api/passkey/register/options", h.beginRegistration)
		r.Post("/api/passkey/register/verify", h.completeRegistration)
		r.Get("/api/user/me", h.getMe)
		r.Patch("/api/user/me", h.updateMe)
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
