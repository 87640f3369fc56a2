package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/parts-registry/internal/logger"
	"github.com/MKhiriev/parts-registry/models"
	"github.com/jackc/pgerrcode"
)

// entryRepository is the PostgreSQL-backed implementation of [EntryRepository].
type entryRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewEntryRepository constructs an [EntryRepository] backed by db.
func NewEntryRepository(db *DB, logger *logger.Logger) EntryRepository {
	logger.Debug().Msg("creating entry repository")
	return &entryRepository{
		db:     db,
		logger: logger,
	}
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanEntry(row rowScanner) (models.Entry, error) {
	var (
		entry            models.Entry
		recordType       string
		visibility       int
		shortDescription sql.NullString
	)
	err := row.Scan(&entry.ID, &entry.RecordID, &recordType, &entry.Name, &entry.PartNumber,
		&entry.OwnerEmail, &entry.CreatorEmail, &entry.Status, &visibility, &entry.BioSafetyLevel,
		&shortDescription, &entry.CreationTime, &entry.ModificationTime)
	if err != nil {
		return models.Entry{}, err
	}

	entry.RecordType = models.EntryType(recordType)
	entry.Visibility = models.Visibility(visibility)
	entry.ShortDescription = shortDescription.String
	return entry, nil
}

// GetEntry returns the entry with the given id or [ErrEntryNotFound].
func (r *entryRepository) GetEntry(ctx context.Context, id int64) (models.Entry, error) {
	log := logger.FromContext(ctx)

	entry, err := scanEntry(r.db.conn(ctx).QueryRowContext(ctx, getEntryByID, id))
	if errors.Is(err, sql.ErrNoRows) {
		return models.Entry{}, ErrEntryNotFound
	}
	if err != nil {
		log.Err(err).Str("func", "*entryRepository.GetEntry").Int64("entry_id", id).Msg("error fetching entry")
		return models.Entry{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return entry, nil
}

// GetEntriesByName returns every entry whose name matches (case-insensitive).
func (r *entryRepository) GetEntriesByName(ctx context.Context, name string) ([]models.Entry, error) {
	log := logger.FromContext(ctx)

	rows, err := r.db.conn(ctx).QueryContext(ctx, getEntriesByName, name)
	if err != nil {
		log.Err(err).Str("func", "*entryRepository.GetEntriesByName").Msg("error executing query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	entries := make([]models.Entry, 0)
	for rows.Next() {
		entry, err := scanEntry(rows)
		if err != nil {
			log.Err(err).Str("func", "*entryRepository.GetEntriesByName").Msg("error scanning entry")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		entries = append(entries, entry)
	}

	if err = rows.Err(); err != nil {
		log.Err(err).Str("func", "*entryRepository.GetEntriesByName").Msg("error iterating rows")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return entries, nil
}

// GetEntryByPartNumber returns the entry carrying partNumber or [ErrEntryNotFound].
func (r *entryRepository) GetEntryByPartNumber(ctx context.Context, partNumber string) (models.Entry, error) {
	log := logger.FromContext(ctx)

	entry, err := scanEntry(r.db.conn(ctx).QueryRowContext(ctx, getEntryByPartNumber, partNumber))
	if errors.Is(err, sql.ErrNoRows) {
		return models.Entry{}, ErrEntryNotFound
	}
	if err != nil {
		log.Err(err).Str("func", "*entryRepository.GetEntryByPartNumber").Str("part_number", partNumber).Msg("error fetching entry")
		return models.Entry{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return entry, nil
}

func (r *entryRepository) OwnerEntryIDs(ctx context.Context, ownerEmail string, entryType *models.EntryType) ([]int64, error) {
	return r.db.queryIDs(ctx, "*entryRepository.OwnerEntryIDs", buildOwnerEntryIDsQuery(ownerEmail, entryType))
}

func (r *entryRepository) SharedEntryIDs(ctx context.Context, principal models.Principal, entryType *models.EntryType) ([]int64, error) {
	return r.db.queryIDs(ctx, "*entryRepository.SharedEntryIDs", buildSharedEntryIDsQuery(principal, entryType))
}

func (r *entryRepository) VisibleEntryIDs(ctx context.Context, admin bool, publicGroupID int64, entryType *models.EntryType) ([]int64, error) {
	return r.db.queryIDs(ctx, "*entryRepository.VisibleEntryIDs", buildVisibleEntryIDsQuery(admin, publicGroupID, entryType))
}

// UpdateVisibility sets the visibility flag of one entry.
//
// Error handling:
//   - no row updated → [ErrEntryNotFound].
//   - PostgreSQL check_violation (23514) → [ErrInvalidVisibility].
//   - any other driver error → wrapped [ErrExecutingStatement].
func (r *entryRepository) UpdateVisibility(ctx context.Context, id int64, visibility models.Visibility) error {
	log := logger.FromContext(ctx)

	result, err := r.db.conn(ctx).ExecContext(ctx, updateEntryVisibility, int(visibility), id)
	if err != nil {
		log.Err(err).Str("func", "*entryRepository.UpdateVisibility").Int64("entry_id", id).Msg("error updating visibility")
		switch postgresError(err) {
		case pgerrcode.CheckViolation:
			return ErrInvalidVisibility
		default:
			return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}
	}

	affected, err := result.RowsAffected()
	if err != nil {
		log.Err(err).Str("func", "*entryRepository.UpdateVisibility").Msg("error reading affected rows")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return ErrEntryNotFound
	}

	return nil
}
