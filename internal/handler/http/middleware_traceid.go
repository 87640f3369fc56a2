package http

import (
	"context"
	"net/http"

	"github.com/MKhiriev/parts-registry/internal/utils"
)

const traceIDHeader = "X-Trace-ID"

// withTraceID reuses the caller's X-Trace-ID or mints a new one, echoes it
// back in the response and attaches it to the request context and logger.
func (h *Handler) withTraceID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		traceID := r.Header.Get(traceIDHeader)
		if traceID == "" {
			traceID = utils.NewTraceID()
		}

		ctx := context.WithValue(r.Context(), utils.TraceIDCtxKey, traceID)
		ctx = h.logger.WithTraceID(traceID).WithContext(ctx)

		w.Header().Set(traceIDHeader, traceID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
