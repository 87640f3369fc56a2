package models

// SearchQuery is the structured query forwarded to the external search
// subsystem. The engine never interprets it beyond forwarding.
type SearchQuery struct {
	QueryString string           `json:"query_string"`
	EntryTypes  []EntryType      `json:"entry_types,omitempty" validate:"dive,entry_type"`
	BioSafety   *int             `json:"bio_safety_option,omitempty" validate:"omitempty,gte=1,lte=4"`
	Parameters  SearchParameters `json:"parameters"`
}

// SearchParameters control paging and sorting of search results.
type SearchParameters struct {
	Start         int    `json:"start" validate:"gte=0"`
	Retrieve      int    `json:"retrieve" validate:"gte=0"`
	SortField     string `json:"sort_field,omitempty"`
	SortAscending bool   `json:"sort_ascending"`
}

// SearchResult is one hit returned by the search subsystem.
type SearchResult struct {
	EntryInfo PartData `json:"entry_info"`
	Score     float64  `json:"score"`
	Summary   string   `json:"summary,omitempty"`
}

// SearchResults is the ordered result page of a search.
type SearchResults struct {
	ResultCount int64          `json:"result_count"`
	Results     []SearchResult `json:"results"`
}
