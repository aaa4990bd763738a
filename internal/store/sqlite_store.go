package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-relief-sync/internal/logger"
)

// sqliteStore is the SQLite-backed [KeyValueStore]. Every Set is one
// upsert statement, so a single key write is atomic.
type sqliteStore struct {
	db     *DB
	logger *logger.Logger
	now    func() time.Time
}

// NewSQLiteStore returns a [KeyValueStore] over an opened and migrated DB.
func NewSQLiteStore(db *DB, log *logger.Logger) KeyValueStore {
	log.Debug().Msg("creating sqlite key-value store")
	return &sqliteStore{
		db:     db,
		logger: log,
		now:    time.Now,
	}
}

func (s *sqliteStore) Get(ctx context.Context, key string) (string, error) {
	query, args, err := selectValueQuery(key)
	if err != nil {
		s.logger.Err(err).Str("func", "*sqliteStore.Get").Msg("error building query")
		return "", fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var value string
	err = s.db.QueryRowContext(ctx, query, args...).Scan(&value)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return "", ErrKeyNotFound
	case err != nil:
		s.logger.Err(err).Str("func", "*sqliteStore.Get").Str("key", key).Msg("error reading value")
		return "", fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return value, nil
}

func (s *sqliteStore) Set(ctx context.Context, key, value string) error {
	query, args, err := upsertValueQuery(key, value, s.now())
	if err != nil {
		s.logger.Err(err).Str("func", "*sqliteStore.Set").Msg("error building query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = s.db.ExecContext(ctx, query, args...); err != nil {
		s.logger.Err(err).Str("func", "*sqliteStore.Set").Str("key", key).Msg("error writing value")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

func (s *sqliteStore) Delete(ctx context.Context, key string) error {
	query, args, err := deleteValueQuery(key)
	if err != nil {
		s.logger.Err(err).Str("func", "*sqliteStore.Delete").Msg("error building query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = s.db.ExecContext(ctx, query, args...); err != nil {
		s.logger.Err(err).Str("func", "*sqliteStore.Delete").Str("key", key).Msg("error deleting value")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}
