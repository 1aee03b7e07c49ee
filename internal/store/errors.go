package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrNotFound is returned when a query expected to match exactly one row
	// produces an empty result set, or when a DELETE ... RETURNING removed
	// nothing (already consumed or never existed).
	ErrNotFound = errors.New("record was not found")

	// ErrSubjectHashExists is returned when inserting or updating a subject
	// violates the unique constraint on email_hash.
	ErrSubjectHashExists = errors.New("subject with this email hash already exists")

	// ErrCredentialExists is returned when a credential id is already
	// registered for any subject.
	ErrCredentialExists = errors.New("credential id already exists")

	// ErrCounterNotAdvanced is returned when the conditional counter update
	// matched no row: the presented counter did not exceed the stored
	// non-zero counter.
	ErrCounterNotAdvanced = errors.New("signature counter was not advanced")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails (e.g. invalid argument count or unsupported type).
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a query against the
	// database fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrScanningRow is returned when scanning column values from a single
	// result row into a destination struct fails.
	ErrScanningRow = errors.New("failed to scan row")

	// ErrScanningRows is returned when scanning column values during
	// multi-row iteration fails, typically mid-result-set.
	ErrScanningRows = errors.New("failed to scan rows")
)
