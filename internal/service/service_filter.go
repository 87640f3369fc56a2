// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/MKhiriev/parts-registry/internal/logger"
	"github.com/MKhiriev/parts-registry/internal/metrics"
	"github.com/MKhiriev/parts-registry/internal/store"
	"github.com/MKhiriev/parts-registry/models"
)

// filterService evaluates each filter into an entry id set and intersects the
// results in order.
type filterService struct {
	filters  store.FilterRepository
	universe UniverseService
	metrics  *metrics.Metrics

	logger *logger.Logger
}

func NewFilterService(filters store.FilterRepository, universe UniverseService, metrics *metrics.Metrics, logger *logger.Logger) FilterService {
	return &filterService{
		filters:  filters,
		universe: universe,
		metrics:  metrics,
		logger:   logger,
	}
}

// Combine returns the intersection of every filter's result set.
//
// Filters are evaluated lazily: as soon as an intermediate result is empty the
// remaining filters are neither validated nor evaluated. A failing filter
// aborts the pipeline with a [*FilterError] naming its position.
func (s *filterService) Combine(ctx context.Context, filters []models.QueryFilter) (models.EntryIDSet, error) {
	log := logger.FromContext(ctx)

	var result models.EntryIDSet
	for i, filter := range filters {
		ids, err := s.evaluate(ctx, filter)
		if err != nil {
			log.Err(err).Str("func", "*filterService.Combine").
				Int("filter_index", i).
				Str("search_type", string(filter.SearchType)).
				Msg("filter evaluation failed")
			return nil, &FilterError{Index: i, SearchType: filter.SearchType, Err: err}
		}

		if result == nil {
			result = ids
		} else {
			result.Retain(ids)
		}

		if result.IsEmpty() {
			if i < len(filters)-1 {
				s.metrics.ObserveShortCircuit()
				log.Debug().Str("func", "*filterService.Combine").
					Int("filter_index", i).
					Int("skipped", len(filters)-i-1).
					Msg("empty intermediate result, skipping remaining filters")
			}
			break
		}
	}

	if result == nil {
		return models.NewEntryIDSet(), nil
	}

	return result, nil
}

func (s *filterService) evaluate(ctx context.Context, filter models.QueryFilter) (models.EntryIDSet, error) {
	if !filter.Operator.Known() {
		return nil, fmt.Errorf("%w: unknown operator %q", ErrInvalidArgument, filter.Operator)
	}

	params := filter.Params
	if len(params) == 0 {
		derived, err := filterParams(filter)
		if err != nil {
			return nil, err
		}
		params = derived
	}

	s.metrics.ObserveFilter(string(filter.Operator))

	if filter.Operator == models.OperatorBoolean {
		want, err := strconv.ParseBool(strings.TrimSpace(filter.Operand))
		if err != nil {
			return nil, fmt.Errorf("%w: boolean operand %q", ErrInvalidArgument, filter.Operand)
		}

		if !want {
			s.metrics.ObserveComplement()
			return s.universe.Complement(ctx, params[0])
		}
		return s.distinct(ctx, params[0])
	}

	union := models.NewEntryIDSet()
	for _, p := range params {
		ids, err := s.distinct(ctx, p)
		if err != nil {
			return nil, err
		}
		union.Union(ids)
	}

	return union, nil
}

func (s *filterService) distinct(ctx context.Context, params models.QueryFilterParams) (models.EntryIDSet, error) {
	ids, err := s.filters.DistinctIDs(ctx, params)
	if err != nil {
		return nil, fromStore("filter params", err)
	}
	return models.NewEntryIDSet(ids...), nil
}
