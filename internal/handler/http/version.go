package http

import (
	"net/http"

	"github.com/MKhiriev/parts-registry/internal/utils"
)

// getServerVersion answers with the build description as JSON, or with the
// bare version string when the client asks for text/plain.
func (h *Handler) getServerVersion(w http.ResponseWriter, r *http.Request) {
	if r.Header.Get("Accept") == "text/plain" {
		w.Header().Set("Content-Type", "text/plain")
		_, _ = w.Write([]byte(h.services.AppInfoService.GetAppVersion(r.Context())))
		return
	}

	_, _ = utils.WriteJSON(w, h.services.AppInfoService.GetAppInfo(r.Context()), http.StatusOK)
}
