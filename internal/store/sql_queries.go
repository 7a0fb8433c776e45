package store

import (
	"time"
	"unicode/utf8"

	sq "github.com/Masterminds/squirrel"
)

const (
	kvTable       = "vault_kv"
	kvKeyColumn   = "entry_key"
	kvValueColumn = "entry_value"
	kvUpdatedAt   = "updated_at"

	upsertKVSuffix = "ON CONFLICT (" + kvKeyColumn + ") DO UPDATE SET " +
		kvValueColumn + " = excluded." + kvValueColumn + ", " +
		kvUpdatedAt + " = excluded." + kvUpdatedAt
)

func buildGetEntryQuery(b sq.StatementBuilderType, key string) (string, []any, error) {
	return b.Select(kvValueColumn).
		From(kvTable).
		Where(sq.Eq{kvKeyColumn: key}).
		ToSql()
}

// buildUpsertEntryQuery replaces the row in a single statement so readers
// never observe a missing key between delete and insert.
func buildUpsertEntryQuery(b sq.StatementBuilderType, key string, value []byte, now time.Time) (string, []any, error) {
	return b.Insert(kvTable).
		Columns(kvKeyColumn, kvValueColumn, kvUpdatedAt).
		Values(key, value, now).
		Suffix(upsertKVSuffix).
		ToSql()
}

func buildDeleteEntryQuery(b sq.StatementBuilderType, key string) (string, []any, error) {
	return b.Delete(kvTable).
		Where(sq.Eq{kvKeyColumn: key}).
		ToSql()
}

// buildListEntriesQuery compares the leading characters instead of using LIKE
// so that '%' and '_' in escaped keys stay literal.
func buildListEntriesQuery(b sq.StatementBuilderType, prefix string) (string, []any, error) {
	q := b.Select(kvKeyColumn, kvValueColumn).
		From(kvTable).
		OrderBy(kvKeyColumn)

	if prefix != "" {
		q = q.Where("substr("+kvKeyColumn+", 1, ?) = ?", utf8.RuneCountInString(prefix), prefix)
	}

	return q.ToSql()
}
