package http

import (
	"github.com/MKhiriev/nudge/internal/metrics"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID, h.withLogging, h.withMetrics, withGZip)
	if h.timeout > 0 {
		router.Use(middleware.Timeout(h.timeout))
	}

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Post("/api/user/register", h.register)
		r.Post("/api/user/login", h.login)
		r.Get("/api/health", h.health)
		r.Get("/api/version", h.getServerVersion)
		if h.gatherer != nil {
			r.Handle("/metrics", metrics.Handler(h.gatherer))
		}
	})

	router.Group(func(r chi.Router) {
		r.Use(h.auth, h.rateLimit)

		r.Get("/api/items", h.listActive)
		r.Post("/api/items", h.createItem)
		r.Get("/api/items/archived", h.listArchived)
		r.Delete("/api/items/archived", h.deleteAllArchived)
		r.Post("/api/items/archive", h.archiveAll)
		r.Put("/api/items/{id}", h.updateItem)
		r.Delete("/api/items/{id}", h.deleteItem)
		r.Post("/api/items/{id}/archive", h.archiveItem)
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
