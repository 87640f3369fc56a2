package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Get("/api/version", h.getServerVersion)
		r.Get("/metrics", promhttp.HandlerFor(h.gatherer, promhttp.HandlerOpts{}).ServeHTTP)
	})

	router.Group(func(r chi.Router) {
		r.Use(h.auth)
		r.Use(withGZip)

		r.Post("/api/entries/selection", h.selection)
		r.Post("/api/entries/filter", h.filter)
		r.Post("/api/entries/validate", h.validateCSV)
		r.Put("/api/entries/visibility", h.updateVisibility)
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
