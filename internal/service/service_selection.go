// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/MKhiriev/parts-registry/internal/logger"
	"github.com/MKhiriev/parts-registry/internal/metrics"
	"github.com/MKhiriev/parts-registry/internal/store"
	"github.com/MKhiriev/parts-registry/models"
)

// selectionService turns a selection descriptor into the list of entry ids it
// denotes, and narrows that list with filters.
//
// An explicit id list is trusted as-is: it is neither re-authorized nor
// filtered. Operations that mutate entries re-check write access per entry,
// so the list alone never grants more than read-level discovery.
type selectionService struct {
	transactor    store.Transactor
	folders       FolderResolver
	collections   CollectionResolver
	search        SearchBridge
	filters       FilterService
	universe      UniverseService
	authorization AuthorizationService
	metrics       *metrics.Metrics

	logger *logger.Logger
}

func NewSelectionService(
	transactor store.Transactor,
	folders FolderResolver,
	collections CollectionResolver,
	search SearchBridge,
	filters FilterService,
	universe UniverseService,
	authorization AuthorizationService,
	metrics *metrics.Metrics,
	logger *logger.Logger,
) SelectionService {
	return &selectionService{
		transactor:    transactor,
		folders:       folders,
		collections:   collections,
		search:        search,
		filters:       filters,
		universe:      universe,
		authorization: authorization,
		metrics:       metrics,
		logger:        logger,
	}
}

func (s *selectionService) Resolve(ctx context.Context, userID string, sel models.SelectionContext) ([]int64, error) {
	if sel.HasExplicitEntries() {
		return slices.Clone(sel.Entries), nil
	}

	switch sel.Kind {
	case models.SelectionFolder:
		folderID, err := parseFolderID(sel.FolderID)
		if err != nil {
			return nil, err
		}
		return s.folders.Resolve(ctx, userID, folderID, sel.All, sel.EntryType)

	case models.SelectionSearch:
		return s.search.Resolve(ctx, userID, searchQuery(sel))

	case models.SelectionCollection:
		ids, err := s.collections.Resolve(ctx, userID, sel.FolderID, sel.All, sel.EntryType)
		if err != nil {
			return nil, err
		}
		if ids == nil {
			return []int64{}, nil
		}
		return ids, nil

	default:
		return []int64{}, nil
	}
}

// WorkingSet resolves sel and keeps the ids matched by every filter. The base
// order is preserved. Filters are skipped when the base is already empty.
func (s *selectionService) WorkingSet(ctx context.Context, userID string, sel models.SelectionContext, filters []models.QueryFilter) ([]int64, error) {
	start := time.Now()
	kind := selectionLabel(sel)

	if sel.HasExplicitEntries() {
		ids := slices.Clone(sel.Entries)
		s.metrics.ObserveResolution(kind, len(ids), nil, time.Since(start))
		return ids, nil
	}

	var ids []int64
	err := s.transactor.WithinReadTx(ctx, func(ctx context.Context) error {
		base, err := s.Resolve(ctx, userID, sel)
		if err != nil {
			return err
		}
		if len(base) == 0 || len(filters) == 0 {
			ids = base
			return nil
		}

		matched, err := s.filters.Combine(ctx, filters)
		if err != nil {
			return err
		}
		ids = intersectOrdered(base, matched)
		return nil
	})
	s.metrics.ObserveResolution(kind, len(ids), err, time.Since(start))
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*selectionService.WorkingSet").
			Str("user_id", userID).Str("kind", kind).Msg("working set resolution failed")
		return nil, fromStore("working set", err)
	}

	return ids, nil
}

// ApplyFilters evaluates filters against the whole registry and returns the
// matching entries the caller can see, in ascending id order.
func (s *selectionService) ApplyFilters(ctx context.Context, userID string, filters []models.QueryFilter) ([]int64, error) {
	start := time.Now()

	var ids []int64
	err := s.transactor.WithinReadTx(ctx, func(ctx context.Context) error {
		principal, err := s.authorization.Principal(ctx, userID)
		if err != nil {
			return err
		}

		matched, err := s.filters.Combine(ctx, filters)
		if err != nil {
			return err
		}
		if matched.IsEmpty() {
			ids = []int64{}
			return nil
		}

		visible, err := s.universe.VisibleTo(ctx, principal)
		if err != nil {
			return err
		}
		matched.Retain(visible)
		ids = matched.Sorted()
		return nil
	})
	s.metrics.ObserveResolution("filter", len(ids), err, time.Since(start))
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*selectionService.ApplyFilters").
			Str("user_id", userID).Msg("filter resolution failed")
		return nil, fromStore("filters", err)
	}

	return ids, nil
}

// parseFolderID accepts decimal, 0x-prefixed hexadecimal and 0-prefixed octal
// folder ids.
func parseFolderID(raw string) (int64, error) {
	id, err := strconv.ParseInt(strings.TrimSpace(raw), 0, 64)
	if err != nil {
		return 0, &FolderError{FolderID: raw, Err: fmt.Errorf("%w: malformed folder id", ErrInvalidArgument)}
	}
	return id, nil
}

// searchQuery applies the selection's entry type to the forwarded query. All
// never widens a search.
func searchQuery(sel models.SelectionContext) *models.SearchQuery {
	if sel.SearchQuery == nil || sel.EntryType == nil || len(sel.SearchQuery.EntryTypes) > 0 {
		return sel.SearchQuery
	}

	query := *sel.SearchQuery
	query.EntryTypes = []models.EntryType{*sel.EntryType}
	return &query
}

// intersectOrdered keeps the ids of base present in matched, in base order,
// dropping duplicates.
func intersectOrdered(base []int64, matched models.EntryIDSet) []int64 {
	out := make([]int64, 0, min(len(base), matched.Len()))
	seen := models.NewEntryIDSet()
	for _, id := range base {
		if matched.Has(id) && !seen.Has(id) {
			seen.Add(id)
			out = append(out, id)
		}
	}
	return out
}

func selectionLabel(sel models.SelectionContext) string {
	switch {
	case sel.HasExplicitEntries():
		return "explicit"
	case sel.Kind.Known():
		return string(sel.Kind)
	default:
		return "none"
	}
}
