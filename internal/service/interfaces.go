package service

import (
	"context"
	"io"

	"github.com/MKhiriev/parts-registry/models"
)

// AuthorizationService is the authorization gate. Can* methods answer a
// question; Expect* methods fail with [ErrUnauthorized] on denial.
type AuthorizationService interface {
	// Principal resolves the acting account, its groups and the public group.
	// An unknown account yields an error wrapping [ErrUnauthorized].
	Principal(ctx context.Context, userID string) (models.Principal, error)

	CanReadEntry(ctx context.Context, principal models.Principal, entry models.Entry) (bool, error)
	CanWriteEntry(ctx context.Context, principal models.Principal, entry models.Entry) (bool, error)
	ExpectReadEntry(ctx context.Context, principal models.Principal, entry models.Entry) error
	ExpectWriteEntry(ctx context.Context, principal models.Principal, entry models.Entry) error

	CanReadFolder(ctx context.Context, principal models.Principal, folder models.Folder) (bool, error)
	CanWriteFolder(ctx context.Context, principal models.Principal, folder models.Folder) (bool, error)
	ExpectReadFolder(ctx context.Context, principal models.Principal, folder models.Folder) error
	ExpectWriteFolder(ctx context.Context, principal models.Principal, folder models.Folder) error
}

// UniverseService supplies identifier universes: every entry, and the entries
// an account may see.
type UniverseService interface {
	All(ctx context.Context) (models.EntryIDSet, error)
	// Complement returns every entry identifier not matching params.
	Complement(ctx context.Context, params models.QueryFilterParams) (models.EntryIDSet, error)
	// VisibleTo returns the entries the principal owns, was granted, or can
	// see through the public group.
	VisibleTo(ctx context.Context, principal models.Principal) (models.EntryIDSet, error)
}

// FilterService evaluates and combines filters.
type FilterService interface {
	// Combine intersects the results of filters in order, stopping at the
	// first empty intermediate result. No filters yield an empty set.
	Combine(ctx context.Context, filters []models.QueryFilter) (models.EntryIDSet, error)
}

// CollectionResolver resolves virtual account-scoped collections.
type CollectionResolver interface {
	// Resolve returns nil (and no error) for unrecognized collection names.
	Resolve(ctx context.Context, userID, name string, all bool, entryType *models.EntryType) ([]int64, error)
}

// FolderResolver resolves folder membership for a reader of the folder.
type FolderResolver interface {
	Resolve(ctx context.Context, userID string, folderID int64, all bool, entryType *models.EntryType) ([]int64, error)
}

// SearchBridge forwards a search query to the search subsystem.
type SearchBridge interface {
	Resolve(ctx context.Context, userID string, query *models.SearchQuery) ([]int64, error)
}

// SelectionService is the top-level resolution entry point.
type SelectionService interface {
	// Resolve computes the base identifier list of sel. It never returns nil
	// on success.
	Resolve(ctx context.Context, userID string, sel models.SelectionContext) ([]int64, error)
	// WorkingSet resolves sel and intersects it with the combined filters,
	// inside one consistent read snapshot.
	WorkingSet(ctx context.Context, userID string, sel models.SelectionContext, filters []models.QueryFilter) ([]int64, error)
	// ApplyFilters combines filters and restricts the result to the entries
	// visible to userID.
	ApplyFilters(ctx context.Context, userID string, filters []models.QueryFilter) ([]int64, error)
}

// CSVService resolves uploaded entry references.
type CSVService interface {
	Validate(ctx context.Context, userID string, r io.Reader, matchByName bool) ([]models.ParsedEntryID, error)
}

// EntryService performs bulk operations on a working set.
type EntryService interface {
	UpdateVisibility(ctx context.Context, userID string, sel models.SelectionContext, filters []models.QueryFilter, visibility models.Visibility) ([]int64, error)
}

// AuthService validates bearer tokens issued by the registry identity service.
type AuthService interface {
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}

type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
	GetAppInfo(ctx context.Context) models.VersionResponse
}
