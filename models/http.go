package models

// SelectionRequest is the body of the selection and visibility endpoints:
// which entries the caller means, optionally narrowed by filters.
type SelectionRequest struct {
	Selection SelectionContext `json:"selection"`
	Filters   []QueryFilter    `json:"filters,omitempty"`
}

// VisibilityRequest asks for every entry of the working set to be moved to
// the given visibility.
type VisibilityRequest struct {
	SelectionRequest
	Visibility Visibility `json:"visibility" validate:"visibility"`
}

// FilterRequest is the body of the filter endpoint.
type FilterRequest struct {
	Filters []QueryFilter `json:"filters"`
}
