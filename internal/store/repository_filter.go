package store

import (
	"context"

	"github.com/MKhiriev/parts-registry/internal/logger"
	"github.com/MKhiriev/parts-registry/models"
)

// filterRepository evaluates filter params against the predicate sources
// declared in filter_sources.go.
type filterRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewFilterRepository constructs a [FilterRepository] backed by db.
func NewFilterRepository(db *DB, logger *logger.Logger) FilterRepository {
	logger.Debug().Msg("creating filter repository")
	return &filterRepository{
		db:     db,
		logger: logger,
	}
}

// DistinctIDs returns the distinct projection of params. Unknown sources,
// projections or fields are rejected with [ErrInvalidPredicate] before any
// query is sent.
func (r *filterRepository) DistinctIDs(ctx context.Context, params models.QueryFilterParams) ([]int64, error) {
	query, err := positiveQuery(params)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*filterRepository.DistinctIDs").
			Str("from", params.From).Msg("rejected filter params")
		return nil, err
	}
	return r.db.queryIDs(ctx, "*filterRepository.DistinctIDs", query)
}

func (r *filterRepository) ComplementIDs(ctx context.Context, params models.QueryFilterParams) ([]int64, error) {
	query, err := complementQuery(params)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*filterRepository.ComplementIDs").
			Str("from", params.From).Msg("rejected filter params")
		return nil, err
	}
	return r.db.queryIDs(ctx, "*filterRepository.ComplementIDs", query)
}

func (r *filterRepository) AllEntryIDs(ctx context.Context) ([]int64, error) {
	return r.db.queryIDs(ctx, "*filterRepository.AllEntryIDs", buildAllEntryIDsQuery())
}
