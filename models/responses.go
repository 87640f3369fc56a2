package models

// EntryIDsResponse carries a resolved working set.
type EntryIDsResponse struct {
	Entries []int64 `json:"entries"`
	Count   int     `json:"count"`
}

// NewEntryIDsResponse wraps ids, normalizing nil to an empty list so the
// JSON body always carries an array.
func NewEntryIDsResponse(ids []int64) EntryIDsResponse {
	if ids == nil {
		ids = []int64{}
	}
	return EntryIDsResponse{Entries: ids, Count: len(ids)}
}

// VisibilityResponse lists the entries whose visibility was changed.
type VisibilityResponse struct {
	Updated []int64 `json:"updated"`
}
