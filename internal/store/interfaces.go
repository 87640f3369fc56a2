// Package store implements PostgreSQL persistence for the registry: entry,
// folder, account and permission lookups plus the distinct-identifier
// projections the filter engine evaluates. Queries are built with squirrel
// and run through the pgx stdlib driver.
package store

import (
	"context"

	"github.com/MKhiriev/parts-registry/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// Transactor scopes a unit of work to a single database transaction. The
// transaction travels in the context handed to fn, so every repository call
// made with that context joins it. Nested calls reuse the outer transaction.
type Transactor interface {
	WithinReadTx(ctx context.Context, fn func(ctx context.Context) error) error
	WithinTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// EntryRepository reads and updates registry entries.
type EntryRepository interface {
	GetEntry(ctx context.Context, id int64) (models.Entry, error)
	GetEntriesByName(ctx context.Context, name string) ([]models.Entry, error)
	GetEntryByPartNumber(ctx context.Context, partNumber string) (models.Entry, error)

	// OwnerEntryIDs lists visible entries owned by ownerEmail.
	// A nil entryType matches every type.
	OwnerEntryIDs(ctx context.Context, ownerEmail string, entryType *models.EntryType) ([]int64, error)
	// SharedEntryIDs lists visible entries other accounts shared with the
	// principal, either directly or through one of its explicit groups.
	SharedEntryIDs(ctx context.Context, principal models.Principal, entryType *models.EntryType) ([]int64, error)
	// VisibleEntryIDs lists visible entries readable by the public group, or
	// every visible entry when admin is true.
	VisibleEntryIDs(ctx context.Context, admin bool, publicGroupID int64, entryType *models.EntryType) ([]int64, error)

	UpdateVisibility(ctx context.Context, id int64, visibility models.Visibility) error
}

// FolderRepository reads folders and their membership.
type FolderRepository interface {
	GetFolder(ctx context.Context, id int64) (models.Folder, error)
	// FolderContentIDs lists the members of a folder. A nil entryType matches
	// every type; visibleOnly restricts the list to entries with visibility OK.
	FolderContentIDs(ctx context.Context, folderID int64, entryType *models.EntryType, visibleOnly bool) ([]int64, error)
}

// AccountRepository is the account and group directory.
type AccountRepository interface {
	GetAccountByEmail(ctx context.Context, email string) (models.Account, error)
	AccountGroupIDs(ctx context.Context, accountID int64) ([]int64, error)
	// GetPublicGroup returns the system public group, creating it on first use.
	GetPublicGroup(ctx context.Context) (models.Group, error)
}

// PermissionRepository answers explicit permission grants. groupIDs are the
// groups whose grants apply to the account (see [models.Principal.ReadGroupIDs]).
type PermissionRepository interface {
	HasEntryPermission(ctx context.Context, entryID, accountID int64, groupIDs []int64, write bool) (bool, error)
	HasFolderPermission(ctx context.Context, folderID, accountID int64, groupIDs []int64, write bool) (bool, error)
	// EntryInReadableFolder reports whether the entry belongs to a folder the
	// account owns or holds a read grant on.
	EntryInReadableFolder(ctx context.Context, entryID int64, account models.Account, groupIDs []int64) (bool, error)
}

// FilterRepository evaluates filter params as distinct-identifier projections.
type FilterRepository interface {
	// DistinctIDs returns the identifiers matching params.
	DistinctIDs(ctx context.Context, params models.QueryFilterParams) ([]int64, error)
	// ComplementIDs returns every entry identifier NOT matching params. The
	// complement is computed by the database as an anti-join, so the
	// universe is streamed rather than materialized by the caller.
	ComplementIDs(ctx context.Context, params models.QueryFilterParams) ([]int64, error)
	// AllEntryIDs returns the identifier universe.
	AllEntryIDs(ctx context.Context) ([]int64, error)
}

// ErrorClassificator classifies driver errors for logging.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}
