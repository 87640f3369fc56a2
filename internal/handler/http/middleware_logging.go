package http

import (
	"net/http"
	"time"

	"github.com/MKhiriev/parts-registry/internal/logger"
	"github.com/go-chi/chi/v5"
)

// withLogging writes one access log line per request and records the
// request in the HTTP metrics under its chi route pattern.
func (h *Handler) withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		uri := r.RequestURI
		method := r.Method

		lw := &responseWriter{
			ResponseWriter: w,
		}

		next.ServeHTTP(lw, r)

		duration := time.Since(start)
		status := lw.status
		if status == 0 {
			status = http.StatusOK
		}

		h.metrics.ObserveHTTP(routePattern(r), method, status, duration)

		logger.FromRequest(r).Info().
			Str("uri", uri).
			Str("method", method).
			Int("status", status).
			Dur("duration", duration).
			Int("size", lw.size).
			Send()
	})
}

// routePattern returns the matched chi pattern, or "unmatched" when no route
// was found. Raw paths are never used as label values.
func routePattern(r *http.Request) string {
	if rctx := chi.RouteContext(r.Context()); rctx != nil {
		if pattern := rctx.RoutePattern(); pattern != "" {
			return pattern
		}
	}
	return "unmatched"
}
