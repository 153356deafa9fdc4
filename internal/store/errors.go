package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrItemNotFound is returned when a query or update targets a vault
	// item (identified by id and user_id) that does not exist in the
	// database. A row owned by a different user produces the same error,
	// so callers cannot distinguish "absent" from "not yours".
	ErrItemNotFound = errors.New("vault item was not found")

	// ErrItemNotSaved is returned when an INSERT of a vault item completes
	// without error but the number of affected rows is zero, indicating
	// that no data was actually persisted.
	ErrItemNotSaved = errors.New("vault item was not saved")

	// ErrPinNotFound is returned when no PIN record exists for the
	// requested owner. Callers should redirect to the set-PIN flow.
	ErrPinNotFound = errors.New("pin record was not found")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied. All of them map to a 500 at the HTTP boundary.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails (e.g. an update with no fields to set).
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a SELECT or similar
	// read-only query against the database fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrExecutingStatement is returned when executing a DML statement
	// (INSERT, UPDATE, DELETE) fails.
	ErrExecutingStatement = errors.New("failed to execute statement")

	// ErrScanningRow is returned when scanning column values from a single
	// result row into a destination struct fails.
	ErrScanningRow = errors.New("failed to scan row")

	// ErrScanningRows is returned when scanning column values during
	// multi-row iteration fails, typically mid-result-set.
	ErrScanningRows = errors.New("failed to scan rows")
)
