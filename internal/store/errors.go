package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrPropertyNotFound is returned when a query or update targets a
	// property id that does not exist in the database.
	ErrPropertyNotFound = errors.New("property was not found")

	// ErrContactNotFound is returned when a query or update targets a
	// contact id that does not exist in the database.
	ErrContactNotFound = errors.New("contact was not found")

	// ErrNothingPersisted is returned when an INSERT completes without
	// error but the number of affected rows is zero, indicating that no
	// data was actually persisted.
	ErrNothingPersisted = errors.New("no data was persisted")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails (e.g. an empty field set reaching the builder).
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when the database rejects or fails to
	// execute a query for non-constraint reasons.
	ErrExecutingQuery = errors.New("error executing query")

	// ErrScanningRow is returned when a result row cannot be scanned into
	// the destination model.
	ErrScanningRow = errors.New("error scanning row")

	// ErrScanningRows is returned when an error is detected after
	// iterating a result set.
	ErrScanningRows = errors.New("error scanning rows")
)
