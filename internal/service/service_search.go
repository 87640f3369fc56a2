package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/parts-registry/internal/adapter"
	"github.com/MKhiriev/parts-registry/internal/logger"
	"github.com/MKhiriev/parts-registry/internal/metrics"
	"github.com/MKhiriev/parts-registry/models"
)

// searchBridge forwards search selections to the search subsystem and keeps
// the identifiers of its hits, in rank order without duplicates.
type searchBridge struct {
	search  adapter.SearchAdapter
	metrics *metrics.Metrics

	logger *logger.Logger
}

// NewSearchBridge builds a bridge over search. A nil adapter means search is
// not configured; every search selection then fails with [ErrUpstreamFailure].
func NewSearchBridge(search adapter.SearchAdapter, metrics *metrics.Metrics, logger *logger.Logger) SearchBridge {
	return &searchBridge{
		search:  search,
		metrics: metrics,
		logger:  logger,
	}
}

func (b *searchBridge) Resolve(ctx context.Context, userID string, query *models.SearchQuery) ([]int64, error) {
	if query == nil {
		return nil, fmt.Errorf("%w: search selection without a query", ErrInvalidArgument)
	}
	if b.search == nil {
		return nil, fmt.Errorf("%w: search is not configured", ErrUpstreamFailure)
	}

	results, err := b.search.RunSearch(ctx, userID, *query)
	if err != nil {
		b.metrics.ObserveSearch(0, err)
		return nil, upstream("search", err)
	}

	seen := models.NewEntryIDSet()
	ids := make([]int64, 0, len(results.Results))
	for _, hit := range results.Results {
		if seen.Has(hit.EntryInfo.ID) {
			continue
		}
		seen.Add(hit.EntryInfo.ID)
		ids = append(ids, hit.EntryInfo.ID)
	}

	b.metrics.ObserveSearch(len(ids), nil)
	logger.FromContext(ctx).Debug().Str("func", "*searchBridge.Resolve").
		Int64("result_count", results.ResultCount).Int("ids", len(ids)).Msg("search resolved")

	return ids, nil
}
