package service

import (
	"errors"
	"fmt"

	"github.com/MKhiriev/parts-registry/internal/store"
	"github.com/MKhiriev/parts-registry/models"
)

// Error taxonomy of the resolution engine. Every error returned by a
// resolver wraps exactly one of these, so the transport layer can map it
// with errors.Is.
var (
	// ErrNotFound is returned when an explicitly named folder or entry does
	// not exist.
	ErrNotFound = errors.New("not found")
	// ErrUnauthorized is returned when the caller lacks the permission the
	// operation requires on an explicitly named resource.
	ErrUnauthorized = errors.New("unauthorized")
	// ErrInvalidArgument is returned for malformed selection descriptors and
	// filters: unparseable folder ids, unknown operators, bad predicates.
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrUpstreamFailure is returned when storage or the search subsystem
	// fails. It is never masked as an empty result.
	ErrUpstreamFailure = errors.New("upstream failure")

	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")
	ErrVersionIsNotSpecified   = errors.New("app version is not specified")
)

// FilterError reports which filter of a pipeline failed. Err wraps one of the
// taxonomy sentinels.
type FilterError struct {
	Index      int
	SearchType models.SearchFilterType
	Err        error
}

func (e *FilterError) Error() string {
	if e.SearchType == "" {
		return fmt.Sprintf("filter #%d: %v", e.Index, e.Err)
	}
	return fmt.Sprintf("filter #%d (%s): %v", e.Index, e.SearchType, e.Err)
}

func (e *FilterError) Unwrap() error {
	return e.Err
}

// FolderError reports the folder a selection failed on. FolderID is the id
// as the caller sent it.
type FolderError struct {
	FolderID string
	Err      error
}

func (e *FolderError) Error() string {
	return fmt.Sprintf("folder %q: %v", e.FolderID, e.Err)
}

func (e *FolderError) Unwrap() error {
	return e.Err
}

// RowError reports the 1-based row of an uploaded CSV that could not be read.
type RowError struct {
	Row int
	Err error
}

func (e *RowError) Error() string {
	return fmt.Sprintf("csv row %d: %v", e.Row, e.Err)
}

func (e *RowError) Unwrap() error {
	return e.Err
}

// upstream wraps a storage or search failure into [ErrUpstreamFailure],
// keeping the cause in the chain.
func upstream(what string, err error) error {
	return fmt.Errorf("%w: %s: %w", ErrUpstreamFailure, what, err)
}

// fromStore maps a repository error onto the taxonomy. Missing rows become
// [ErrNotFound], rejected predicates [ErrInvalidArgument], and everything
// else [ErrUpstreamFailure]. Errors already carrying a taxonomy sentinel pass
// through unchanged.
func fromStore(what string, err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, ErrNotFound), errors.Is(err, ErrUnauthorized),
		errors.Is(err, ErrInvalidArgument), errors.Is(err, ErrUpstreamFailure):
		return err
	case errors.Is(err, store.ErrEntryNotFound), errors.Is(err, store.ErrFolderNotFound):
		return fmt.Errorf("%w: %s: %w", ErrNotFound, what, err)
	case errors.Is(err, store.ErrInvalidPredicate), errors.Is(err, store.ErrInvalidVisibility):
		return fmt.Errorf("%w: %s: %w", ErrInvalidArgument, what, err)
	default:
		return upstream(what, err)
	}
}
