package http

import (
	"net/http"
	"strconv"

	"github.com/MKhiriev/parts-registry/internal/logger"
	"github.com/MKhiriev/parts-registry/internal/utils"
	"github.com/MKhiriev/parts-registry/models"
)

// maxCSVBodyBytes bounds uploaded reference lists.
const maxCSVBodyBytes = 8 << 20

// selection resolves a selection descriptor, narrowed by optional filters,
// into its working set.
func (h *Handler) selection(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		h.writeError(w, r, ErrNoUserInContext, http.StatusUnauthorized)
		return
	}

	var req models.SelectionRequest
	if err := utils.DecodeJSON(r, &req); err != nil {
		log.Err(err).Str("func", "*Handler.selection").Msg("invalid JSON was passed")
		utils.WriteError(w, r, "invalid JSON was passed", http.StatusBadRequest)
		return
	}
	if err := h.validator.Validate(ctx, req); err != nil {
		h.writeServiceError(w, r, "*Handler.selection", err)
		return
	}

	ids, err := h.services.SelectionService.WorkingSet(ctx, userID, req.Selection, req.Filters)
	if err != nil {
		h.writeServiceError(w, r, "*Handler.selection", err)
		return
	}

	_, _ = utils.WriteJSON(w, models.NewEntryIDsResponse(ids), http.StatusOK)
}

// filter evaluates filters against every entry the caller can see.
func (h *Handler) filter(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		h.writeError(w, r, ErrNoUserInContext, http.StatusUnauthorized)
		return
	}

	var req models.FilterRequest
	if err := utils.DecodeJSON(r, &req); err != nil {
		log.Err(err).Str("func", "*Handler.filter").Msg("invalid JSON was passed")
		utils.WriteError(w, r, "invalid JSON was passed", http.StatusBadRequest)
		return
	}
	if err := h.validator.Validate(ctx, req); err != nil {
		h.writeServiceError(w, r, "*Handler.filter", err)
		return
	}

	ids, err := h.services.SelectionService.ApplyFilters(ctx, userID, req.Filters)
	if err != nil {
		h.writeServiceError(w, r, "*Handler.filter", err)
		return
	}

	_, _ = utils.WriteJSON(w, models.NewEntryIDsResponse(ids), http.StatusOK)
}

// validateCSV resolves an uploaded CSV of entry references. The query
// parameter checkName switches matching from part numbers to names.
func (h *Handler) validateCSV(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		h.writeError(w, r, ErrNoUserInContext, http.StatusUnauthorized)
		return
	}

	matchByName := false
	if raw := r.URL.Query().Get("checkName"); raw != "" {
		parsed, err := strconv.ParseBool(raw)
		if err != nil {
			utils.WriteError(w, r, "checkName must be a boolean", http.StatusBadRequest)
			return
		}
		matchByName = parsed
	}

	body := http.MaxBytesReader(w, r.Body, maxCSVBodyBytes)
	parsed, err := h.services.CSVService.Validate(ctx, userID, body, matchByName)
	if err != nil {
		h.writeServiceError(w, r, "*Handler.validateCSV", err)
		return
	}

	_, _ = utils.WriteJSON(w, parsed, http.StatusOK)
}

// updateVisibility moves every writable entry of a working set to the
// requested visibility.
func (h *Handler) updateVisibility(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		h.writeError(w, r, ErrNoUserInContext, http.StatusUnauthorized)
		return
	}

	var req models.VisibilityRequest
	if err := utils.DecodeJSON(r, &req); err != nil {
		log.Err(err).Str("func", "*Handler.updateVisibility").Msg("invalid JSON was passed")
		utils.WriteError(w, r, "invalid JSON was passed", http.StatusBadRequest)
		return
	}
	if err := h.validator.Validate(ctx, req); err != nil {
		h.writeServiceError(w, r, "*Handler.updateVisibility", err)
		return
	}

	updated, err := h.services.EntryService.UpdateVisibility(ctx, userID, req.Selection, req.Filters, req.Visibility)
	if err != nil {
		h.writeServiceError(w, r, "*Handler.updateVisibility", err)
		return
	}
	if updated == nil {
		updated = []int64{}
	}

	_, _ = utils.WriteJSON(w, models.VisibilityResponse{Updated: updated}, http.StatusOK)
}

// writeServiceError logs err and answers with the status mapped from it.
// Validation errors are answered with 400.
func (h *Handler) writeServiceError(w http.ResponseWriter, r *http.Request, fn string, err error) {
	status := statusFromError(err)
	if isValidationError(err) {
		status = http.StatusBadRequest
	}

	event := logger.FromRequest(r).Warn()
	if status >= http.StatusInternalServerError {
		event = logger.FromRequest(r).Error()
	}
	event.Err(err).Str("func", fn).Int("status", status).Msg("request failed")

	utils.WriteError(w, r, publicMessage(err, status), status)
}

func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, err error, status int) {
	logger.FromRequest(r).Err(err).Int("status", status).Send()
	utils.WriteError(w, r, err.Error(), status)
}
