package service

import (
	"context"
	"fmt"
	"slices"

	"github.com/MKhiriev/parts-registry/internal/store"
	"github.com/MKhiriev/parts-registry/models"
)

// ─────────────────────────────────────────────────────────────────────────────
// Transactor
// ─────────────────────────────────────────────────────────────────────────────

// passthroughTransactor runs fn directly and counts the scopes it opened.
type passthroughTransactor struct {
	readTx int
	tx     int
}

func (p *passthroughTransactor) WithinReadTx(ctx context.Context, fn func(ctx context.Context) error) error {
	p.readTx++
	return fn(ctx)
}

func (p *passthroughTransactor) WithinTx(ctx context.Context, fn func(ctx context.Context) error) error {
	p.tx++
	return fn(ctx)
}

// ─────────────────────────────────────────────────────────────────────────────
// Authorization
// ─────────────────────────────────────────────────────────────────────────────

// stubAuthorization is a function-field AuthorizationService. Nil predicates
// allow everything; a nil principal func resolves every user to a normal
// account with id 1.
type stubAuthorization struct {
	principal     func(userID string) (models.Principal, error)
	canReadEntry  func(entry models.Entry) bool
	canWriteEntry func(entry models.Entry) bool
	canReadFolder func(folder models.Folder) bool
	err           error
}

func (s *stubAuthorization) Principal(_ context.Context, userID string) (models.Principal, error) {
	if s.principal != nil {
		return s.principal(userID)
	}
	return models.Principal{Account: models.Account{ID: 1, Email: userID, Type: models.AccountTypeNormal}, PublicGroupID: 100}, nil
}

func (s *stubAuthorization) CanReadEntry(_ context.Context, _ models.Principal, entry models.Entry) (bool, error) {
	if s.err != nil {
		return false, s.err
	}
	return s.canReadEntry == nil || s.canReadEntry(entry), nil
}

func (s *stubAuthorization) CanWriteEntry(_ context.Context, _ models.Principal, entry models.Entry) (bool, error) {
	if s.err != nil {
		return false, s.err
	}
	return s.canWriteEntry == nil || s.canWriteEntry(entry), nil
}

func (s *stubAuthorization) ExpectReadEntry(ctx context.Context, p models.Principal, entry models.Entry) error {
	ok, err := s.CanReadEntry(ctx, p, entry)
	if err != nil {
		return err
	}
	if !ok {
		return ErrUnauthorized
	}
	return nil
}

func (s *stubAuthorization) ExpectWriteEntry(ctx context.Context, p models.Principal, entry models.Entry) error {
	ok, err := s.CanWriteEntry(ctx, p, entry)
	if err != nil {
		return err
	}
	if !ok {
		return ErrUnauthorized
	}
	return nil
}

func (s *stubAuthorization) CanReadFolder(_ context.Context, _ models.Principal, folder models.Folder) (bool, error) {
	if s.err != nil {
		return false, s.err
	}
	return s.canReadFolder == nil || s.canReadFolder(folder), nil
}

func (s *stubAuthorization) CanWriteFolder(ctx context.Context, p models.Principal, folder models.Folder) (bool, error) {
	return s.CanReadFolder(ctx, p, folder)
}

func (s *stubAuthorization) ExpectReadFolder(ctx context.Context, p models.Principal, folder models.Folder) error {
	ok, err := s.CanReadFolder(ctx, p, folder)
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("%w: folder %d", ErrUnauthorized, folder.ID)
	}
	return nil
}

func (s *stubAuthorization) ExpectWriteFolder(ctx context.Context, p models.Principal, folder models.Folder) error {
	return s.ExpectReadFolder(ctx, p, folder)
}

// ─────────────────────────────────────────────────────────────────────────────
// Filter repository
// ─────────────────────────────────────────────────────────────────────────────

// memoryFilterRepository answers filter params from fixed id lists keyed by
// paramsKey. Unknown keys are rejected like an unknown predicate source.
type memoryFilterRepository struct {
	universe []int64
	sources  map[string][]int64
	failures map[string]error

	distinctCalls   []string
	complementCalls []string
}

// paramsKey renders params as "from" or "from.field cmp value".
func paramsKey(params models.QueryFilterParams) string {
	if params.Criterion == nil {
		return params.From
	}
	c := params.Criterion
	return fmt.Sprintf("%s.%s %s %v", params.From, c.Field, c.Comparator, c.Value)
}

func (r *memoryFilterRepository) DistinctIDs(_ context.Context, params models.QueryFilterParams) ([]int64, error) {
	key := paramsKey(params)
	r.distinctCalls = append(r.distinctCalls, key)

	if err, ok := r.failures[key]; ok {
		return nil, err
	}
	ids, ok := r.sources[key]
	if !ok {
		return nil, fmt.Errorf("%w: unknown source %q", store.ErrInvalidPredicate, key)
	}
	return slices.Clone(ids), nil
}

func (r *memoryFilterRepository) ComplementIDs(_ context.Context, params models.QueryFilterParams) ([]int64, error) {
	key := paramsKey(params)
	r.complementCalls = append(r.complementCalls, key)

	if err, ok := r.failures[key]; ok {
		return nil, err
	}
	ids, ok := r.sources[key]
	if !ok {
		return nil, fmt.Errorf("%w: unknown source %q", store.ErrInvalidPredicate, key)
	}

	positive := models.NewEntryIDSet(ids...)
	var out []int64
	for _, id := range r.universe {
		if !positive.Has(id) {
			out = append(out, id)
		}
	}
	return out, nil
}

func (r *memoryFilterRepository) AllEntryIDs(context.Context) ([]int64, error) {
	return slices.Clone(r.universe), nil
}

// ─────────────────────────────────────────────────────────────────────────────
// Folder repository
// ─────────────────────────────────────────────────────────────────────────────

// memoryFolderRepository stores folders and their member entries.
type memoryFolderRepository struct {
	folders map[int64]models.Folder
	members map[int64][]models.Entry
}

func (r *memoryFolderRepository) GetFolder(_ context.Context, id int64) (models.Folder, error) {
	folder, ok := r.folders[id]
	if !ok {
		return models.Folder{}, store.ErrFolderNotFound
	}
	return folder, nil
}

func (r *memoryFolderRepository) FolderContentIDs(_ context.Context, folderID int64, entryType *models.EntryType, visibleOnly bool) ([]int64, error) {
	ids := []int64{}
	for _, e := range r.members[folderID] {
		if entryType != nil && e.RecordType != *entryType {
			continue
		}
		if visibleOnly && e.Visibility != models.VisibilityOK {
			continue
		}
		ids = append(ids, e.ID)
	}
	return ids, nil
}

// ─────────────────────────────────────────────────────────────────────────────
// Helpers
// ─────────────────────────────────────────────────────────────────────────────

func boolFilter(searchType models.SearchFilterType, operand string) models.QueryFilter {
	return models.QueryFilter{SearchType: searchType, Operator: models.OperatorBoolean, Operand: operand}
}

func paramsFilter(op models.QueryOperator, operand string, params ...models.QueryFilterParams) models.QueryFilter {
	return models.QueryFilter{SearchType: models.FilterCustom, Operator: op, Operand: operand, Params: params}
}

func source(from string) models.QueryFilterParams {
	selection := "entry_id"
	if from == "entries" {
		selection = "id"
	}
	return models.QueryFilterParams{Selection: selection, From: from}
}

func entryTypePtr(t models.EntryType) *models.EntryType {
	return &t
}
