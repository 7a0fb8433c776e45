package store

import (
	"errors"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
)

// PostgresErrorClassifier implements [ErrorClassificator] for the vault_kv
// statements. Each of them is a single idempotent statement (select, upsert,
// delete, prefix scan), so repeating one after a transient failure can never
// apply a change twice.
type PostgresErrorClassifier struct{}

// NewPostgresErrorClassifier constructs a [PostgresErrorClassifier].
func NewPostgresErrorClassifier() *PostgresErrorClassifier {
	return &PostgresErrorClassifier{}
}

// Classify reports [Retryable] for:
//   - statements pgx never sent (pgconn.SafeToRetry)
//   - the whole of class 08 (connection exceptions) and class 40
//     (transaction rollback: the upsert racing another upsert of the same
//     key under serializable isolation, or a deadlock)
//   - a server that is starting up, shutting down or out of connection
//     slots
//   - lock_not_available, raised when a statement timeout hits a row lock
//     held by a concurrent write
//
// Everything else, including a missing vault_kv table before migrations ran,
// is [NonRetryable].
func (c *PostgresErrorClassifier) Classify(err error) ErrorClassification {
	if err == nil {
		return NonRetryable
	}
	if pgconn.SafeToRetry(err) {
		return Retryable
	}

	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return NonRetryable
	}

	switch {
	case pgerrcode.IsConnectionException(pgErr.Code),
		pgerrcode.IsTransactionRollback(pgErr.Code):
		return Retryable
	}

	switch pgErr.Code {
	case pgerrcode.CannotConnectNow,
		pgerrcode.AdminShutdown,
		pgerrcode.TooManyConnections,
		pgerrcode.LockNotAvailable:
		return Retryable
	}

	return NonRetryable
}

// pgCode returns the SQLSTATE of err, or "" when err did not come from the
// server.
func pgCode(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code
	}
	return ""
}
