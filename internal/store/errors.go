package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrEmailAlreadyExists is returned when a user with the same e-mail is
	// already registered.
	ErrEmailAlreadyExists = errors.New("email already exists")

	// ErrGoogleAccountAlreadyLinked is returned when a Google account is
	// already linked to another user.
	ErrGoogleAccountAlreadyLinked = errors.New("google account already linked")

	// ErrUserNotFound is returned when a user lookup matches no record.
	ErrUserNotFound = errors.New("no user was found")

	// ErrHistoryNotFound is returned when no history record with the given id
	// belongs to the given user.
	ErrHistoryNotFound = errors.New("history was not found")

	// ErrAnalysisNotFound is returned when no analysis with the given id
	// belongs to the given user.
	ErrAnalysisNotFound = errors.New("analysis was not found")

	// ErrFileNotFound is returned when a stored upload does not exist on disk.
	ErrFileNotFound = errors.New("stored file was not found")

	// ErrFileAlreadyExists is returned when a stored name is reused.
	ErrFileAlreadyExists = errors.New("stored file already exists")

	// ErrInvalidFileName is returned for stored names that would escape the
	// upload directory.
	ErrInvalidFileName = errors.New("invalid stored file name")

	// ErrSessionNotFound is returned when the CLI has no saved session.
	ErrSessionNotFound = errors.New("local session not found")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a SQL query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a SELECT or similar
	// read-only query against the database fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrExecutingStatement is returned when executing a DML statement
	// (INSERT, UPDATE, DELETE) fails.
	ErrExecutingStatement = errors.New("failed to executing statement")

	// ErrScanningRow is returned when scanning a single result row fails.
	ErrScanningRow = errors.New("failed to scan row")

	// ErrScanningRows is returned when iterating a multi-row result fails.
	ErrScanningRows = errors.New("failed to scan rows")
)
