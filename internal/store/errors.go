package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrEntryNotFound is returned when a lookup by id or part number matches
	// no entry.
	ErrEntryNotFound = errors.New("entry was not found")

	// ErrFolderNotFound is returned when a folder id matches no folder.
	ErrFolderNotFound = errors.New("folder was not found")

	// ErrAccountNotFound is returned when no account is registered under the
	// requested email.
	ErrAccountNotFound = errors.New("account was not found")

	// ErrInvalidVisibility is returned when a visibility update is rejected
	// by the entries.visibility check constraint.
	ErrInvalidVisibility = errors.New("invalid visibility value")

	// ErrInvalidPredicate is returned when filter params name an unknown
	// predicate source, a selection that is not the source's id projection,
	// an unknown field, or an ill-formed criterion. The wrapped message names
	// the offending part; it is meant for logs, not for end users.
	ErrInvalidPredicate = errors.New("invalid filter predicate")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a SELECT or similar
	// read-only query against the database fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrBeginningTransaction is returned when the database driver cannot
	// start a new transaction.
	ErrBeginningTransaction = errors.New("failed to begin transaction")

	// ErrCommitingTransaction is returned when committing an open transaction
	// fails. The transaction is considered rolled back at this point.
	ErrCommitingTransaction = errors.New("failed to commit transaction")

	// ErrExecutingStatement is returned when executing a DML statement
	// (INSERT, UPDATE, DELETE) fails.
	ErrExecutingStatement = errors.New("failed to executing statement")

	// ErrScanningRow is returned when scanning column values from a single
	// result row fails.
	ErrScanningRow = errors.New("failed to scan row")

	// ErrScanningRows is returned when scanning column values during
	// multi-row iteration fails, typically mid-result-set.
	ErrScanningRows = errors.New("failed to scan rows")
)
