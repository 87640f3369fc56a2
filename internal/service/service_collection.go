package service

import (
	"context"
	"errors"

	"github.com/MKhiriev/parts-registry/internal/logger"
	"github.com/MKhiriev/parts-registry/internal/store"
	"github.com/MKhiriev/parts-registry/models"
)

// collectionResolver lists the entries of the virtual per-account
// collections. Collections are incidental discovery: entries the account
// cannot read are never part of them, and an unknown account sees nothing.
type collectionResolver struct {
	entries       store.EntryRepository
	authorization AuthorizationService

	logger *logger.Logger
}

func NewCollectionResolver(entries store.EntryRepository, authorization AuthorizationService, logger *logger.Logger) CollectionResolver {
	return &collectionResolver{
		entries:       entries,
		authorization: authorization,
		logger:        logger,
	}
}

func (r *collectionResolver) Resolve(ctx context.Context, userID, name string, all bool, entryType *models.EntryType) ([]int64, error) {
	log := logger.FromContext(ctx)

	collection := models.ParseCollectionName(name)
	if collection == models.CollectionUnknown {
		log.Debug().Str("func", "*collectionResolver.Resolve").Str("collection", name).Msg("unrecognized collection")
		return nil, nil
	}

	if all {
		entryType = nil
	}

	principal, err := r.authorization.Principal(ctx, userID)
	if err != nil {
		if errors.Is(err, store.ErrAccountNotFound) {
			log.Warn().Str("func", "*collectionResolver.Resolve").Str("user_id", userID).
				Str("collection", string(collection)).Msg("no account for collection owner, returning empty collection")
			return []int64{}, nil
		}
		return nil, err
	}

	var ids []int64
	switch collection {
	case models.CollectionPersonal:
		ids, err = r.entries.OwnerEntryIDs(ctx, principal.Account.Email, entryType)
	case models.CollectionShared:
		ids, err = r.entries.SharedEntryIDs(ctx, principal, entryType)
	case models.CollectionAvailable, models.CollectionFeatured:
		ids, err = r.entries.VisibleEntryIDs(ctx, principal.Account.IsAdmin(), principal.PublicGroupID, entryType)
	}
	if err != nil {
		log.Err(err).Str("func", "*collectionResolver.Resolve").Str("collection", string(collection)).Msg("collection lookup failed")
		return nil, fromStore("collection "+string(collection), err)
	}

	if ids == nil {
		ids = []int64{}
	}
	return ids, nil
}
