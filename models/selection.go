package models

import "strings"

// SelectionKind tags which payload of a [SelectionContext] is meaningful.
type SelectionKind string

const (
	SelectionFolder     SelectionKind = "FOLDER"
	SelectionSearch     SelectionKind = "SEARCH"
	SelectionCollection SelectionKind = "COLLECTION"
)

// Known reports whether k is one of the defined selection kinds.
// An empty or unknown kind falls back to the explicit entry list.
func (k SelectionKind) Known() bool {
	switch k {
	case SelectionFolder, SelectionSearch, SelectionCollection:
		return true
	}
	return false
}

// SelectionContext describes which entries a caller means: an explicit list,
// a folder, a virtual collection or a search query.
//
// A non-empty Entries list always wins over every other field. All drops the
// EntryType restriction for folder and collection selections; it never
// affects search selections.
type SelectionContext struct {
	All         bool          `json:"all"`
	EntryType   *EntryType    `json:"entry_type,omitempty" validate:"omitempty,entry_type"`
	Kind        SelectionKind `json:"selection_type,omitempty"`
	Entries     []int64       `json:"entries,omitempty"`
	FolderID    string        `json:"folder_id,omitempty"`
	SearchQuery *SearchQuery  `json:"search_query,omitempty"`
}

// HasExplicitEntries reports whether the caller supplied an explicit id list.
func (s SelectionContext) HasExplicitEntries() bool {
	return len(s.Entries) > 0
}

// CollectionName is a virtual, account-scoped grouping of entries.
type CollectionName string

const (
	CollectionUnknown   CollectionName = ""
	CollectionPersonal  CollectionName = "personal"
	CollectionShared    CollectionName = "shared"
	CollectionAvailable CollectionName = "available"
	CollectionFeatured  CollectionName = "featured"
)

// ParseCollectionName maps name (case-insensitive) to a [CollectionName].
// Unrecognized or empty names map to [CollectionUnknown].
func ParseCollectionName(name string) CollectionName {
	switch c := CollectionName(strings.ToLower(strings.TrimSpace(name))); c {
	case CollectionPersonal, CollectionShared, CollectionAvailable, CollectionFeatured:
		return c
	default:
		return CollectionUnknown
	}
}
