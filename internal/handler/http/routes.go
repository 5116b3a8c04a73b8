package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/httprate"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)
	router.Use(h.securityHeaders)
	router.Use(httprate.Limit(
		h.cfg.Server.RateLimitRequests,
		h.cfg.Server.RateLimitWindow,
		httprate.WithKeyFuncs(httprate.KeyByIP),
	))

	router.Get("/health", h.health)

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Post("/api/auth/register", h.register)
		r.Post("/api/auth/token", h.token)
		r.Post("/api/users", h.createUser)
		r.Get("/api/users", h.listUsers)
		r.Get("/api/users/{id}", h.userByID)
	})

	// routes behind the auth middleware
	router.Group(func(r chi.Router) {
		r.Use(h.auth)
		r.Get("/api/auth/login", h.currentUser)
		r.Get("/api/users/login", h.currentUser)
		r.Post("/api/data", h.createDataPoint)
		r.Get("/api/data", h.listDataPoints)
		r.Get("/api/data/range", h.dataPointsByRange)
		r.Get("/api/data/{id}", h.dataPointByID)
	})

	return router
}
