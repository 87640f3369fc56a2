package store

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/MKhiriev/parts-registry/internal/logger"
	"github.com/MKhiriev/parts-registry/models"
	"github.com/jackc/pgerrcode"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFilterRepository_DistinctIDs(t *testing.T) {
	db, mock := newTestDB(t)
	repo := &filterRepository{db: db, logger: logger.Nop()}

	mock.ExpectQuery(regexp.QuoteMeta("SELECT DISTINCT src.entry_id FROM attachments AS src")).
		WillReturnRows(sqlmock.NewRows([]string{"entry_id"}).AddRow(1).AddRow(4))

	ids, err := repo.DistinctIDs(context.Background(), models.QueryFilterParams{Selection: "entry_id", From: "attachments"})
	require.NoError(t, err)
	assert.Equal(t, []int64{1, 4}, ids)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFilterRepository_DistinctIDs_InvalidParamsSkipQuery(t *testing.T) {
	db, mock := newTestDB(t)
	repo := &filterRepository{db: db, logger: logger.Nop()}

	_, err := repo.DistinctIDs(context.Background(), models.QueryFilterParams{Selection: "id", From: "secrets"})
	assert.ErrorIs(t, err, ErrInvalidPredicate)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFilterRepository_ComplementIDs(t *testing.T) {
	db, mock := newTestDB(t)
	repo := &filterRepository{db: db, logger: logger.Nop()}

	mock.ExpectQuery(regexp.QuoteMeta("WHERE NOT EXISTS (SELECT 1 FROM sequences AS src WHERE src.entry_id = e.id)")).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(2).AddRow(3))

	ids, err := repo.ComplementIDs(context.Background(), models.QueryFilterParams{Selection: "entry_id", From: "sequences"})
	require.NoError(t, err)
	assert.Equal(t, []int64{2, 3}, ids)
}

func TestFilterRepository_QueryErrorIsWrapped(t *testing.T) {
	db, mock := newTestDB(t)
	repo := &filterRepository{db: db, logger: logger.Nop()}

	mock.ExpectQuery("SELECT e.id FROM entries AS e").
		WillReturnError(pgError(pgerrcode.SerializationFailure))

	_, err := repo.AllEntryIDs(context.Background())
	assert.ErrorIs(t, err, ErrExecutingQuery)
}

func TestFilterRepository_ScanError(t *testing.T) {
	db, mock := newTestDB(t)
	repo := &filterRepository{db: db, logger: logger.Nop()}

	mock.ExpectQuery("SELECT e.id FROM entries AS e").
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow("not-a-number"))

	_, err := repo.AllEntryIDs(context.Background())
	assert.ErrorIs(t, err, ErrScanningRows)
}

func TestPermissionRepository_HasEntryPermission(t *testing.T) {
	db, mock := newTestDB(t)
	repo := &permissionRepository{db: db, logger: logger.Nop()}

	mock.ExpectQuery(regexp.QuoteMeta("SELECT EXISTS ( SELECT 1 FROM permissions AS p WHERE p.entry_id = $1 AND (p.account_id = $2 OR p.group_id IN ($3,$4)) AND p.can_write = $5 )")).
		WithArgs(int64(7), int64(1), int64(3), int64(9), true).
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))

	ok, err := repo.HasEntryPermission(context.Background(), 7, 1, []int64{3, 9}, true)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestPermissionRepository_HasFolderPermission_Read(t *testing.T) {
	db, mock := newTestDB(t)
	repo := &permissionRepository{db: db, logger: logger.Nop()}

	mock.ExpectQuery(regexp.QuoteMeta("(p.can_read = $3 OR p.can_write = $4)")).
		WithArgs(int64(5), int64(1), true, true).
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(false))

	ok, err := repo.HasFolderPermission(context.Background(), 5, 1, nil, false)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestPermissionRepository_EntryInReadableFolder(t *testing.T) {
	db, mock := newTestDB(t)
	repo := &permissionRepository{db: db, logger: logger.Nop()}

	account := models.Account{ID: 1, Email: "bob@example.org"}
	mock.ExpectQuery(regexp.QuoteMeta("(f.owner_email = $2 OR EXISTS (SELECT 1 FROM permissions AS p WHERE p.folder_id = f.id AND (p.account_id = $3 OR p.group_id IN ($4))")).
		WithArgs(int64(7), "bob@example.org", int64(1), int64(2), true, true).
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))

	ok, err := repo.EntryInReadableFolder(context.Background(), 7, account, []int64{2})
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestPermissionRepository_ExistsError(t *testing.T) {
	db, mock := newTestDB(t)
	repo := &permissionRepository{db: db, logger: logger.Nop()}

	mock.ExpectQuery("SELECT EXISTS").WillReturnError(errors.New("timeout"))

	_, err := repo.HasEntryPermission(context.Background(), 7, 1, nil, false)
	assert.ErrorIs(t, err, ErrExecutingQuery)
}
