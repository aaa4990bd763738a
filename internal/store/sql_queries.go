package store

import (
	"time"

	sq "github.com/Masterminds/squirrel"
)

const (
	kvTable       = "kv_store"
	kvKeyColumn   = "key_name"
	kvValueColumn = "value"
	kvTimeColumn  = "updated_at"

	upsertConflictClause = "ON CONFLICT(" + kvKeyColumn + ") DO UPDATE SET " +
		kvValueColumn + " = excluded." + kvValueColumn + ", " +
		kvTimeColumn + " = excluded." + kvTimeColumn
)

// sqlite uses "?" placeholders, squirrel's default
var psql = sq.StatementBuilder.PlaceholderFormat(sq.Question)

func selectValueQuery(key string) (string, []any, error) {
	return psql.
		Select(kvValueColumn).
		From(kvTable).
		Where(sq.Eq{kvKeyColumn: key}).
		ToSql()
}

func upsertValueQuery(key, value string, now time.Time) (string, []any, error) {
	return psql.
		Insert(kvTable).
		Columns(kvKeyColumn, kvValueColumn, kvTimeColumn).
		Values(key, value, now.UTC()).
		Suffix(upsertConflictClause).
		ToSql()
}

func deleteValueQuery(key string) (string, []any, error) {
	return psql.
		Delete(kvTable).
		Where(sq.Eq{kvKeyColumn: key}).
		ToSql()
}
