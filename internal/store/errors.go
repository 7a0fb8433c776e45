package store

import "errors"

// Sentinel errors returned by the credential store and its backends.
// Callers should use [errors.Is] to match against these values.
var (
	// ErrNotFound is returned when the requested key or credential record
	// does not exist.
	ErrNotFound = errors.New("record was not found")

	// ErrInvalidKey is returned when the account identifier or the provider
	// is empty.
	ErrInvalidKey = errors.New("account id and provider must not be empty")

	// ErrInvalidRecord is returned when a credential record misses its
	// access token or carries a negative lifetime.
	ErrInvalidRecord = errors.New("invalid credential record")

	// ErrUnknownBackend is returned by [NewStorages] for an unsupported
	// backend name.
	ErrUnknownBackend = errors.New("unknown storage backend")

	// ErrCorruptedRecord is returned when a stored value cannot be decoded
	// back into a credential record.
	ErrCorruptedRecord = errors.New("stored credential record is corrupted")
)

// Low-level database operation errors. These wrap the driver error when a
// SQL-level operation fails.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a SELECT fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrExecutingStatement is returned when executing an INSERT or DELETE
	// fails.
	ErrExecutingStatement = errors.New("failed to executing statement")

	// ErrScanningRow is returned when scanning a single result row fails.
	ErrScanningRow = errors.New("failed to scan row")

	// ErrScanningRows is returned when scanning fails mid-result-set.
	ErrScanningRows = errors.New("failed to scan rows")
)
