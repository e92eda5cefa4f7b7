package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrEmailAlreadyExists is returned when an identity with the same
	// (case-insensitive) email is already stored.
	ErrEmailAlreadyExists = errors.New("email already exists")

	// ErrIdentityNotFound is returned when a lookup matches no identity.
	ErrIdentityNotFound = errors.New("identity was not found")

	// ErrNoteNotFound is returned when a lookup or update targets a note that
	// does not exist.
	ErrNoteNotFound = errors.New("note was not found")

	// ErrOTPNotFound is returned when no active one-time code matches.
	ErrOTPNotFound = errors.New("otp record was not found")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a SELECT or a
	// RETURNING statement fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrExecutingStatement is returned when executing a DML statement
	// without a result set (UPDATE, DELETE) fails.
	ErrExecutingStatement = errors.New("failed to execute statement")

	// ErrScanningRow is returned when scanning a single result row fails.
	ErrScanningRow = errors.New("failed to scan row")

	// ErrScanningRows is returned when multi-row iteration fails.
	ErrScanningRows = errors.New("failed to scan rows")
)
