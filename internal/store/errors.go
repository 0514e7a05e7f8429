package store

import "errors"

// Domain errors surfaced by repositories. Handlers map them to HTTP
// statuses; see the errors_mapper files in the handler packages.
var (
	// ErrUserNotFound indicates that no user record has the requested id.
	ErrUserNotFound = errors.New("user not found")

	// ErrPostNotFound indicates that no post record has the requested id.
	ErrPostNotFound = errors.New("post not found")

	// ErrEmailAlreadyExists indicates a unique-email violation on user
	// creation.
	ErrEmailAlreadyExists = errors.New("email already exists")
)

// Infrastructure errors wrapping failures of the SQL backend.
var (
	// ErrBuildingSQLQuery indicates the query builder produced an error.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery indicates a driver-level execution failure.
	ErrExecutingQuery = errors.New("error executing query")

	// ErrScanningRow indicates a row scan failure.
	ErrScanningRow = errors.New("error scanning row")
)
