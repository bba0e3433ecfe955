package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrNotFound is returned when the requested row does not exist.
	ErrNotFound = errors.New("object not found")

	// ErrAlreadyExists is returned when an insert or update violates a
	// unique constraint (username, client name, database name, project name).
	ErrAlreadyExists = errors.New("object with this value already exists")

	// ErrReferenceNotFound is returned when an insert or update points a
	// foreign key at a row that does not exist.
	ErrReferenceNotFound = errors.New("referenced object does not exist")

	// ErrRestricted is returned when a delete is rejected because other rows
	// still reference the target.
	ErrRestricted = errors.New("cannot delete object: it is still referenced by other objects")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	errForeignKeysDisabled = errors.New("sqlite foreign key enforcement is off")

	// ErrExecutingQuery is returned when executing a query against the
	// database fails for a reason that is not a known constraint.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrExecutingStatement is returned when the result of a DML statement
	// cannot be inspected.
	ErrExecutingStatement = errors.New("failed to executing statement")

	// ErrScanningRows is returned when scanning column values during
	// multi-row iteration fails.
	ErrScanningRows = errors.New("failed to scan rows")
)
