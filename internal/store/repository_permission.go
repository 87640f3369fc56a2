package store

import (
	"context"

	"github.com/MKhiriev/parts-registry/internal/logger"
	"github.com/MKhiriev/parts-registry/models"
)

// permissionRepository is the PostgreSQL-backed implementation of
// [PermissionRepository]. Grants live in the "permissions" table; a row
// targets either an entry or a folder and is granted either to an account or
// to a group.
type permissionRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewPermissionRepository constructs a [PermissionRepository] backed by db.
func NewPermissionRepository(db *DB, logger *logger.Logger) PermissionRepository {
	logger.Debug().Msg("creating permission repository")
	return &permissionRepository{
		db:     db,
		logger: logger,
	}
}

// HasEntryPermission reports whether an entry grant exists for the account or
// one of groupIDs. A read check is also satisfied by a write grant.
func (r *permissionRepository) HasEntryPermission(ctx context.Context, entryID, accountID int64, groupIDs []int64, write bool) (bool, error) {
	return r.db.queryExists(ctx, "*permissionRepository.HasEntryPermission",
		buildEntryPermissionQuery(entryID, accountID, groupIDs, write))
}

// HasFolderPermission is the folder counterpart of HasEntryPermission.
func (r *permissionRepository) HasFolderPermission(ctx context.Context, folderID, accountID int64, groupIDs []int64, write bool) (bool, error) {
	return r.db.queryExists(ctx, "*permissionRepository.HasFolderPermission",
		buildFolderPermissionQuery(folderID, accountID, groupIDs, write))
}

func (r *permissionRepository) EntryInReadableFolder(ctx context.Context, entryID int64, account models.Account, groupIDs []int64) (bool, error) {
	return r.db.queryExists(ctx, "*permissionRepository.EntryInReadableFolder",
		buildEntryInReadableFolderQuery(entryID, account, groupIDs))
}
