package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/parts-registry/internal/logger"
	"github.com/MKhiriev/parts-registry/models"
)

// accountRepository is the PostgreSQL-backed implementation of [AccountRepository].
// It reads the "accounts", "groups" and "account_groups" tables.
type accountRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewAccountRepository constructs an [AccountRepository] backed by db.
func NewAccountRepository(db *DB, logger *logger.Logger) AccountRepository {
	logger.Debug().Msg("creating account repository")
	return &accountRepository{
		db:     db,
		logger: logger,
	}
}

// GetAccountByEmail looks an account up by email (case-insensitive).
// A missing account yields [ErrAccountNotFound].
func (r *accountRepository) GetAccountByEmail(ctx context.Context, email string) (models.Account, error) {
	log := logger.FromContext(ctx)

	var (
		account     models.Account
		firstName   sql.NullString
		lastName    sql.NullString
		accountType string
	)
	err := r.db.conn(ctx).QueryRowContext(ctx, getAccountByEmail, email).
		Scan(&account.ID, &account.Email, &firstName, &lastName, &accountType, &account.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Account{}, ErrAccountNotFound
	}
	if err != nil {
		log.Err(err).Str("func", "*accountRepository.GetAccountByEmail").Msg("error fetching account")
		return models.Account{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	account.FirstName = firstName.String
	account.LastName = lastName.String
	account.Type = models.AccountType(accountType)
	return account, nil
}

// AccountGroupIDs lists the groups the account is an explicit member of.
func (r *accountRepository) AccountGroupIDs(ctx context.Context, accountID int64) ([]int64, error) {
	log := logger.FromContext(ctx)

	rows, err := r.db.conn(ctx).QueryContext(ctx, getAccountGroupIDs, accountID)
	if err != nil {
		log.Err(err).Str("func", "*accountRepository.AccountGroupIDs").Msg("error executing query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	ids := make([]int64, 0)
	for rows.Next() {
		var id int64
		if err = rows.Scan(&id); err != nil {
			log.Err(err).Str("func", "*accountRepository.AccountGroupIDs").Msg("error scanning group id")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		ids = append(ids, id)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return ids, nil
}

// GetPublicGroup returns the system public group. The group is seeded by the
// migrations; if it has been removed it is recreated on the pool, outside any
// read-only transaction bound to ctx.
func (r *accountRepository) GetPublicGroup(ctx context.Context) (models.Group, error) {
	log := logger.FromContext(ctx)

	group, err := scanGroup(r.db.conn(ctx).QueryRowContext(ctx, getGroupByUUID, models.PublicGroupUUID))
	if err == nil {
		return group, nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		log.Err(err).Str("func", "*accountRepository.GetPublicGroup").Msg("error fetching public group")
		return models.Group{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	log.Warn().Str("func", "*accountRepository.GetPublicGroup").Msg("public group is missing, creating it")
	group, err = scanGroup(r.db.QueryRowContext(ctx, getOrCreatePublicGroup, models.PublicGroupUUID))
	if err != nil {
		log.Err(err).Str("func", "*accountRepository.GetPublicGroup").Msg("error creating public group")
		return models.Group{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return group, nil
}

func scanGroup(row rowScanner) (models.Group, error) {
	var (
		group     models.Group
		groupType string
	)
	if err := row.Scan(&group.ID, &group.UUID, &group.Label, &groupType); err != nil {
		return models.Group{}, err
	}
	group.Type = models.GroupType(groupType)
	return group, nil
}
