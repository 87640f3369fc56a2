package service

import (
	"context"
	"strconv"

	"github.com/MKhiriev/parts-registry/internal/logger"
	"github.com/MKhiriev/parts-registry/internal/store"
	"github.com/MKhiriev/parts-registry/models"
)

// folderResolver lists folder contents for callers that may read the folder.
// A named folder the caller cannot read is a hard failure.
type folderResolver struct {
	folders       store.FolderRepository
	authorization AuthorizationService

	logger *logger.Logger
}

func NewFolderResolver(folders store.FolderRepository, authorization AuthorizationService, logger *logger.Logger) FolderResolver {
	return &folderResolver{
		folders:       folders,
		authorization: authorization,
		logger:        logger,
	}
}

// Resolve returns the members of folderID. Unless the folder is TRANSFERRED
// only entries with visibility OK are listed.
func (r *folderResolver) Resolve(ctx context.Context, userID string, folderID int64, all bool, entryType *models.EntryType) ([]int64, error) {
	log := logger.FromContext(ctx)

	folder, err := r.folders.GetFolder(ctx, folderID)
	if err != nil {
		log.Err(err).Str("func", "*folderResolver.Resolve").Int64("folder_id", folderID).Msg("folder lookup failed")
		return nil, &FolderError{FolderID: strconv.FormatInt(folderID, 10), Err: fromStore("folder", err)}
	}

	principal, err := r.authorization.Principal(ctx, userID)
	if err != nil {
		return nil, err
	}
	if err = r.authorization.ExpectReadFolder(ctx, principal, folder); err != nil {
		return nil, &FolderError{FolderID: strconv.FormatInt(folderID, 10), Err: err}
	}

	if all {
		entryType = nil
	}

	ids, err := r.folders.FolderContentIDs(ctx, folder.ID, entryType, folder.VisibleOnly())
	if err != nil {
		log.Err(err).Str("func", "*folderResolver.Resolve").Int64("folder_id", folderID).Msg("folder contents lookup failed")
		return nil, fromStore("folder contents", err)
	}

	if ids == nil {
		ids = []int64{}
	}
	return ids, nil
}
