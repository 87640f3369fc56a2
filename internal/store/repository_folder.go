package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/parts-registry/internal/logger"
	"github.com/MKhiriev/parts-registry/models"
)

// folderRepository is the PostgreSQL-backed implementation of [FolderRepository].
type folderRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewFolderRepository constructs a [FolderRepository] backed by db.
func NewFolderRepository(db *DB, logger *logger.Logger) FolderRepository {
	logger.Debug().Msg("creating folder repository")
	return &folderRepository{
		db:     db,
		logger: logger,
	}
}

// GetFolder returns the folder with the given id or [ErrFolderNotFound].
func (r *folderRepository) GetFolder(ctx context.Context, id int64) (models.Folder, error) {
	log := logger.FromContext(ctx)

	var (
		folder      models.Folder
		description sql.NullString
		folderType  string
	)
	err := r.db.conn(ctx).QueryRowContext(ctx, getFolderByID, id).
		Scan(&folder.ID, &folder.Name, &description, &folder.OwnerEmail, &folderType)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Folder{}, ErrFolderNotFound
	}
	if err != nil {
		log.Err(err).Str("func", "*folderRepository.GetFolder").Int64("folder_id", id).Msg("error fetching folder")
		return models.Folder{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	folder.Description = description.String
	folder.Type = models.FolderType(folderType)
	return folder, nil
}

func (r *folderRepository) FolderContentIDs(ctx context.Context, folderID int64, entryType *models.EntryType, visibleOnly bool) ([]int64, error) {
	return r.db.queryIDs(ctx, "*folderRepository.FolderContentIDs", buildFolderContentIDsQuery(folderID, entryType, visibleOnly))
}
