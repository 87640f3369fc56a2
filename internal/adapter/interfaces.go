// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides transport-layer clients for the registry's
// external collaborators.
//
// The primary abstraction is [SearchAdapter], which decouples the selection
// engine from the full-text search subsystem. The package ships an HTTP/REST
// implementation ([NewHTTPSearchAdapter]) guarded by a circuit breaker.
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] for transport-agnostic error
// handling (e.g. [ErrBadRequest] for 400, [ErrSearchUnavailable] for an open
// breaker).
package adapter

import (
	"context"

	"github.com/MKhiriev/parts-registry/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/search_adapter_mock.go -package=mock

// SearchAdapter runs structured queries against the search subsystem.
type SearchAdapter interface {
	// RunSearch submits query on behalf of userID and returns the ordered
	// result page. The search subsystem applies its own read authorization
	// for userID. Returns an error if the request fails, the subsystem
	// responds with a non-2xx status, or the breaker is open.
	RunSearch(ctx context.Context, userID string, query models.SearchQuery) (models.SearchResults, error)
}
