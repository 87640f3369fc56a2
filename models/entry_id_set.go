package models

import "slices"

// EntryIDSet is an unordered set of entry identifiers, the common currency of
// every resolver. The zero value is not usable; build sets with
// [NewEntryIDSet]. An empty set is a valid, meaningful result.
type EntryIDSet map[int64]struct{}

// NewEntryIDSet returns a set holding ids; duplicates collapse.
func NewEntryIDSet(ids ...int64) EntryIDSet {
	s := make(EntryIDSet, len(ids))
	for _, id := range ids {
		s[id] = struct{}{}
	}
	return s
}

// Add inserts id into s.
func (s EntryIDSet) Add(id int64) {
	s[id] = struct{}{}
}

// Has reports whether id is in s.
func (s EntryIDSet) Has(id int64) bool {
	_, ok := s[id]
	return ok
}

// Len returns the number of identifiers in s.
func (s EntryIDSet) Len() int {
	return len(s)
}

// IsEmpty reports whether s holds no identifiers.
func (s EntryIDSet) IsEmpty() bool {
	return len(s) == 0
}

// Retain removes from s every identifier not in other (s = s ∩ other).
func (s EntryIDSet) Retain(other EntryIDSet) {
	for id := range s {
		if !other.Has(id) {
			delete(s, id)
		}
	}
}

// Union adds every identifier of other to s (s = s ∪ other).
func (s EntryIDSet) Union(other EntryIDSet) {
	for id := range other {
		s[id] = struct{}{}
	}
}

// Difference returns a new set holding the identifiers of s not in other.
func (s EntryIDSet) Difference(other EntryIDSet) EntryIDSet {
	out := make(EntryIDSet, len(s))
	for id := range s {
		if !other.Has(id) {
			out[id] = struct{}{}
		}
	}
	return out
}

// Clone returns an independent copy of s.
func (s EntryIDSet) Clone() EntryIDSet {
	out := make(EntryIDSet, len(s))
	for id := range s {
		out[id] = struct{}{}
	}
	return out
}

// Sorted returns the identifiers of s in ascending order. It never returns nil.
func (s EntryIDSet) Sorted() []int64 {
	ids := make([]int64, 0, len(s))
	for id := range s {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	return ids
}

// Equal reports whether s and other hold the same identifiers.
func (s EntryIDSet) Equal(other EntryIDSet) bool {
	if len(s) != len(other) {
		return false
	}
	for id := range s {
		if !other.Has(id) {
			return false
		}
	}
	return true
}
