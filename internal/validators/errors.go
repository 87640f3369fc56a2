package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrInvalidRequest     = errors.New("invalid request")
	ErrInvalidEntryID     = errors.New("entry ids must be positive")
	ErrMissingFolderID    = errors.New("folder selection requires a folder id")
	ErrMissingSearchQuery = errors.New("search selection requires a search query")
	ErrInvalidFilter      = errors.New("invalid filter")
	ErrInvalidVisibility  = errors.New("invalid visibility")
)
