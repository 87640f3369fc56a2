package service

import (
	"context"

	"github.com/MKhiriev/parts-registry/internal/logger"
	"github.com/MKhiriev/parts-registry/internal/store"
	"github.com/MKhiriev/parts-registry/models"
)

type universeService struct {
	entries store.EntryRepository
	filters store.FilterRepository

	logger *logger.Logger
}

func NewUniverseService(entries store.EntryRepository, filters store.FilterRepository, logger *logger.Logger) UniverseService {
	return &universeService{
		entries: entries,
		filters: filters,
		logger:  logger,
	}
}

func (s *universeService) All(ctx context.Context) (models.EntryIDSet, error) {
	ids, err := s.filters.AllEntryIDs(ctx)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*universeService.All").Msg("universe lookup failed")
		return nil, fromStore("entry universe", err)
	}
	return models.NewEntryIDSet(ids...), nil
}

// Complement is evaluated by the database as an anti-join; the universe is
// never loaded into memory.
func (s *universeService) Complement(ctx context.Context, params models.QueryFilterParams) (models.EntryIDSet, error) {
	ids, err := s.filters.ComplementIDs(ctx, params)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*universeService.Complement").
			Str("from", params.From).Msg("complement evaluation failed")
		return nil, fromStore("entry complement", err)
	}
	return models.NewEntryIDSet(ids...), nil
}

func (s *universeService) VisibleTo(ctx context.Context, principal models.Principal) (models.EntryIDSet, error) {
	log := logger.FromContext(ctx)

	if principal.Account.IsAdmin() {
		ids, err := s.entries.VisibleEntryIDs(ctx, true, principal.PublicGroupID, nil)
		if err != nil {
			log.Err(err).Str("func", "*universeService.VisibleTo").Msg("visible entries lookup failed")
			return nil, fromStore("visible entries", err)
		}
		return models.NewEntryIDSet(ids...), nil
	}

	owned, err := s.entries.OwnerEntryIDs(ctx, principal.Account.Email, nil)
	if err != nil {
		log.Err(err).Str("func", "*universeService.VisibleTo").Msg("owned entries lookup failed")
		return nil, fromStore("owned entries", err)
	}
	shared, err := s.entries.SharedEntryIDs(ctx, principal, nil)
	if err != nil {
		log.Err(err).Str("func", "*universeService.VisibleTo").Msg("shared entries lookup failed")
		return nil, fromStore("shared entries", err)
	}
	public, err := s.entries.VisibleEntryIDs(ctx, false, principal.PublicGroupID, nil)
	if err != nil {
		log.Err(err).Str("func", "*universeService.VisibleTo").Msg("public entries lookup failed")
		return nil, fromStore("public entries", err)
	}

	visible := models.NewEntryIDSet(owned...)
	visible.Union(models.NewEntryIDSet(shared...))
	visible.Union(models.NewEntryIDSet(public...))

	return visible, nil
}
