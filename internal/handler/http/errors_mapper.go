package http

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/MKhiriev/parts-registry/internal/service"
	"github.com/MKhiriev/parts-registry/internal/validators"
)

// errorStatusMap maps the service error taxonomy onto HTTP statuses. Storage
// errors never reach this layer unwrapped: the services fold them into
// service.ErrUpstreamFailure.
var errorStatusMap = map[error]int{
	service.ErrNotFound:                http.StatusNotFound,
	service.ErrUnauthorized:            http.StatusForbidden,
	service.ErrInvalidArgument:         http.StatusBadRequest,
	service.ErrUpstreamFailure:         http.StatusBadGateway,
	service.ErrTokenIsExpiredOrInvalid: http.StatusUnauthorized,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

// publicMessage is the error text echoed to clients. Validation failures
// describe the offending request field. Caller errors (400, 403, 404) are
// answered with the taxonomy message prefixed by the filter, folder or CSV
// row they concern; the wrapped predicate and storage detail stays in the
// logs. Every other error is reduced to its status text.
func publicMessage(err error, status int) string {
	if isValidationError(err) {
		return err.Error()
	}

	sentinel := callerSentinel(err)
	if sentinel == nil {
		return http.StatusText(status)
	}

	msg := sentinel.Error()

	var rowErr *service.RowError
	if errors.As(err, &rowErr) {
		msg = fmt.Sprintf("csv row %d: %s", rowErr.Row, msg)
	}

	var folderErr *service.FolderError
	if errors.As(err, &folderErr) {
		msg = fmt.Sprintf("folder %q: %s", folderErr.FolderID, msg)
	}

	var filterErr *service.FilterError
	if errors.As(err, &filterErr) {
		if filterErr.SearchType != "" {
			msg = fmt.Sprintf("filter #%d (%s): %s", filterErr.Index, filterErr.SearchType, msg)
		} else {
			msg = fmt.Sprintf("filter #%d: %s", filterErr.Index, msg)
		}
	}

	return msg
}

// callerSentinel returns the taxonomy error err carries when it is the
// caller's fault, or nil.
func callerSentinel(err error) error {
	for _, target := range []error{
		service.ErrInvalidArgument,
		service.ErrNotFound,
		service.ErrUnauthorized,
	} {
		if errors.Is(err, target) {
			return target
		}
	}
	return nil
}

func isValidationError(err error) bool {
	for _, target := range []error{
		validators.ErrInvalidRequest,
		validators.ErrInvalidEntryID,
		validators.ErrMissingFolderID,
		validators.ErrMissingSearchQuery,
		validators.ErrInvalidFilter,
		validators.ErrInvalidVisibility,
	} {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}
