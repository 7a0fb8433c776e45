package store

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/go-life-vault/internal/logger"
)

type sqlBackend struct {
	db     *DB
	logger *logger.Logger
}

// NewSQLBackend builds a [Backend] on top of a migrated SQLite or PostgreSQL
// connection.
func NewSQLBackend(db *DB, log *logger.Logger) Backend {
	return &sqlBackend{db: db, logger: log}
}

func (s *sqlBackend) Get(ctx context.Context, key string) ([]byte, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildGetEntryQuery(s.db.builder(), key)
	if err != nil {
		log.Err(err).Str("func", "sqlBackend.Get").Msg("error building query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var value []byte
	err = s.db.withRetry(ctx, func(ctx context.Context) error {
		return s.db.QueryRowContext(ctx, query, args...).Scan(&value)
	})
	if isNoRows(err) {
		return nil, ErrNotFound
	}
	if err != nil {
		log.Err(err).Str("func", "sqlBackend.Get").Msg("error reading entry")
		return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return value, nil
}

func (s *sqlBackend) Put(ctx context.Context, key string, value []byte) error {
	log := logger.FromContext(ctx)

	query, args, err := buildUpsertEntryQuery(s.db.builder(), key, value, time.Now().UTC())
	if err != nil {
		log.Err(err).Str("func", "sqlBackend.Put").Msg("error building query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	err = s.db.withRetry(ctx, func(ctx context.Context) error {
		_, err := s.db.ExecContext(ctx, query, args...)
		return err
	})
	if err != nil {
		log.Err(err).Str("func", "sqlBackend.Put").Str("pg_code", pgCode(err)).Msg("error writing entry")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

func (s *sqlBackend) Delete(ctx context.Context, key string) error {
	log := logger.FromContext(ctx)

	query, args, err := buildDeleteEntryQuery(s.db.builder(), key)
	if err != nil {
		log.Err(err).Str("func", "sqlBackend.Delete").Msg("error building query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var affected int64
	err = s.db.withRetry(ctx, func(ctx context.Context) error {
		res, err := s.db.ExecContext(ctx, query, args...)
		if err != nil {
			return err
		}
		affected, err = res.RowsAffected()
		return err
	})
	if err != nil {
		log.Err(err).Str("func", "sqlBackend.Delete").Msg("error deleting entry")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return ErrNotFound
	}

	return nil
}

func (s *sqlBackend) List(ctx context.Context, prefix string) ([]Entry, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildListEntriesQuery(s.db.builder(), prefix)
	if err != nil {
		log.Err(err).Str("func", "sqlBackend.List").Msg("error building query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var entries []Entry
	err = s.db.withRetry(ctx, func(ctx context.Context) error {
		entries = entries[:0]

		rows, err := s.db.QueryContext(ctx, query, args...)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
		}
		defer rows.Close()

		for rows.Next() {
			var e Entry
			if err := rows.Scan(&e.Key, &e.Value); err != nil {
				return fmt.Errorf("%w: %w", ErrScanningRows, err)
			}
			entries = append(entries, e)
		}
		return rows.Err()
	})
	if err != nil {
		log.Err(err).Str("func", "sqlBackend.List").Msg("error listing entries")
		return nil, err
	}

	return entries, nil
}

func (s *sqlBackend) Close() error {
	return s.db.Close()
}
