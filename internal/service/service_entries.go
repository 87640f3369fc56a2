package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/parts-registry/internal/logger"
	"github.com/MKhiriev/parts-registry/internal/store"
	"github.com/MKhiriev/parts-registry/models"
)

type entryService struct {
	transactor    store.Transactor
	entries       store.EntryRepository
	selection     SelectionService
	authorization AuthorizationService

	logger *logger.Logger
}

func NewEntryService(transactor store.Transactor, entries store.EntryRepository, selection SelectionService, authorization AuthorizationService, logger *logger.Logger) EntryService {
	return &entryService{
		transactor:    transactor,
		entries:       entries,
		selection:     selection,
		authorization: authorization,
		logger:        logger,
	}
}

// UpdateVisibility moves every entry of the working set to visibility and
// returns the ids that changed.
//
// Entries already at the target visibility, entries that no longer exist and
// entries the caller may not write are skipped without error.
func (s *entryService) UpdateVisibility(ctx context.Context, userID string, sel models.SelectionContext, filters []models.QueryFilter, visibility models.Visibility) ([]int64, error) {
	log := logger.FromContext(ctx)

	if !visibility.IsKnown() {
		return nil, fmt.Errorf("%w: visibility %d", ErrInvalidArgument, visibility)
	}

	updated := []int64{}
	err := s.transactor.WithinTx(ctx, func(ctx context.Context) error {
		ids, err := s.selection.WorkingSet(ctx, userID, sel, filters)
		if err != nil {
			return err
		}
		if len(ids) == 0 {
			return nil
		}

		principal, err := s.authorization.Principal(ctx, userID)
		if err != nil {
			return err
		}

		for _, id := range ids {
			entry, err := s.entries.GetEntry(ctx, id)
			if err != nil {
				if errors.Is(err, store.ErrEntryNotFound) {
					continue
				}
				return upstream("entry lookup", err)
			}
			if entry.Visibility == visibility {
				continue
			}

			writable, err := s.authorization.CanWriteEntry(ctx, principal, entry)
			if err != nil {
				return err
			}
			if !writable {
				log.Debug().Str("func", "*entryService.UpdateVisibility").
					Int64("entry_id", id).Str("user_id", userID).Msg("skipping entry without write access")
				continue
			}

			if err = s.entries.UpdateVisibility(ctx, id, visibility); err != nil {
				return fromStore("visibility update", err)
			}
			updated = append(updated, id)
		}
		return nil
	})
	if err != nil {
		log.Err(err).Str("func", "*entryService.UpdateVisibility").Str("user_id", userID).Msg("visibility update failed")
		return nil, fromStore("visibility update", err)
	}

	log.Info().Str("func", "*entryService.UpdateVisibility").Str("user_id", userID).
		Int("updated", len(updated)).Int("visibility", int(visibility)).Msg("visibility updated")

	return updated, nil
}
