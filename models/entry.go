package models

import (
	"strings"
	"time"
)

// EntryType is the record type of a registry entry.
type EntryType string

const (
	EntryTypePart    EntryType = "PART"
	EntryTypePlasmid EntryType = "PLASMID"
	EntryTypeStrain  EntryType = "STRAIN"
	EntryTypeSeed    EntryType = "SEED"
	EntryTypeProtein EntryType = "PROTEIN"
)

var entryTypes = []EntryType{
	EntryTypePart,
	EntryTypePlasmid,
	EntryTypeStrain,
	EntryTypeSeed,
	EntryTypeProtein,
}

// ParseEntryType maps a record type name (case-insensitive) to an [EntryType].
// The second return value is false for unknown names.
func ParseEntryType(name string) (EntryType, bool) {
	for _, t := range entryTypes {
		if strings.EqualFold(string(t), strings.TrimSpace(name)) {
			return t, true
		}
	}
	return "", false
}

// Visibility is the lifecycle flag stored on every entry. Only entries with
// [VisibilityOK] are considered "visible" by folder and collection listings.
type Visibility int

const (
	VisibilityDeleted     Visibility = -1
	VisibilityTransferred Visibility = 4
	VisibilityRemote      Visibility = 5
	VisibilityPending     Visibility = 8
	VisibilityOK          Visibility = 9
	VisibilityDraft       Visibility = 10
)

// IsKnown reports whether v is one of the defined visibility values.
func (v Visibility) IsKnown() bool {
	switch v {
	case VisibilityDeleted, VisibilityTransferred, VisibilityRemote,
		VisibilityPending, VisibilityOK, VisibilityDraft:
		return true
	}
	return false
}

// Entry is a registry record (part, plasmid, strain, seed or protein).
//
// Only the columns the selection engine and the authorization gate need are
// mapped here; sequence, attachment and sample payloads live in their own
// tables and are reached through filter predicate sources.
type Entry struct {
	ID               int64      `json:"id"`
	RecordID         string     `json:"record_id"`
	RecordType       EntryType  `json:"type"`
	Name             string     `json:"name"`
	PartNumber       string     `json:"part_id"`
	OwnerEmail       string     `json:"owner_email"`
	CreatorEmail     string     `json:"creator_email"`
	Status           string     `json:"status"`
	Visibility       Visibility `json:"visibility"`
	BioSafetyLevel   int        `json:"bio_safety_level"`
	ShortDescription string     `json:"short_description"`
	CreationTime     time.Time  `json:"creation_time"`
	ModificationTime time.Time  `json:"modification_time"`
}

// TableName returns the name of the database table
// associated with the Entry model.
func (e Entry) TableName() string {
	return "entries"
}

// PartData is the light-weight transfer view of an entry returned to callers
// that only need to identify a record (e.g. CSV reference validation).
type PartData struct {
	ID     int64     `json:"id"`
	PartID string    `json:"part_id"`
	Name   string    `json:"name"`
	Type   EntryType `json:"type"`
}

// NewPartData builds the transfer view of e.
func NewPartData(e Entry) *PartData {
	return &PartData{
		ID:     e.ID,
		PartID: e.PartNumber,
		Name:   e.Name,
		Type:   e.RecordType,
	}
}

// ParsedEntryID is the per-row result of CSV reference validation.
// Part is nil when no matching readable entry exists for RawToken.
type ParsedEntryID struct {
	RawToken string    `json:"raw_token"`
	Part     *PartData `json:"part,omitempty"`
}

// Resolved reports whether the row resolved to a readable entry.
func (p ParsedEntryID) Resolved() bool {
	return p.Part != nil
}
