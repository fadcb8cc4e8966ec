package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	if h.trustProxyHeaders {
		router.Use(middleware.RealIP)
	}
	router.Use(h.withTraceID)
	router.Use(h.withLogging)
	router.Use(middleware.Recoverer)
	if h.requestTimeout > 0 {
		router.Use(middleware.Timeout(h.requestTimeout))
	}
	router.Use(middleware.Compress(5, "application/json", "text/plain"))

	router.NotFound(notFound)
	router.MethodNotAllowed(notFound)

	router.Get("/api/version", h.getServerVersion)

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Use(h.withRateLimit)
		r.Post("/api/users", h.register)
		r.Post("/api/users/login", h.login)
	})

	router.Group(func(r chi.Router) {
		r.Use(h.auth)

		r.Get("/api/users/current", h.currentUser)
		r.Patch("/api/users/current", h.updateCurrentUser)
		r.Delete("/api/users/logout", h.logout)

		r.Post("/api/contacts", h.createContact)
		r.Get("/api/contacts", h.searchContacts)
		r.Get("/api/contacts/{id}", h.getContact)
		r.Put("/api/contacts/{id}", h.updateContact)
		r.Delete("/api/contacts/{id}", h.deleteContact)
	})

	return router
}
