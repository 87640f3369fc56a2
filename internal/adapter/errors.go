package adapter

import "errors"

var (
	ErrBadRequest          = errors.New("bad request")
	ErrUnauthorized        = errors.New("search unauthorized")
	ErrForbidden           = errors.New("forbidden")
	ErrNotFound            = errors.New("not found")
	ErrBadGateway          = errors.New("bad gateway")
	ErrInternalServerError = errors.New("internal server error")

	// ErrSearchUnavailable is returned while the circuit breaker is open or
	// half-open and saturated.
	ErrSearchUnavailable = errors.New("search subsystem unavailable")
	// ErrInvalidSearchAddress is returned by the constructor for an empty or
	// unparseable base URL.
	ErrInvalidSearchAddress = errors.New("invalid search address")
)
