package store

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"testing"
	"time"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/MKhiriev/go-relief-sync/internal/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var fixedNow = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

func newTestSQLiteStore(t *testing.T) (*sqliteStore, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	return &sqliteStore{
		db:     &DB{DB: db, logger: logger.Nop()},
		logger: logger.Nop(),
		now:    func() time.Time { return fixedNow },
	}, mock
}

func TestSQLiteStore_Get(t *testing.T) {
	s, mock := newTestSQLiteStore(t)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT value FROM kv_store WHERE key_name = ?")).
		WithArgs("region").
		WillReturnRows(sqlmock.NewRows([]string{"value"}).AddRow("ZS"))

	got, err := s.Get(context.Background(), "region")
	require.NoError(t, err)
	assert.Equal(t, "ZS", got)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSQLiteStore_Get_NotFound(t *testing.T) {
	s, mock := newTestSQLiteStore(t)

	mock.ExpectQuery("SELECT value FROM kv_store").
		WithArgs("region").
		WillReturnError(sql.ErrNoRows)

	_, err := s.Get(context.Background(), "region")
	assert.ErrorIs(t, err, ErrKeyNotFound)
}

func TestSQLiteStore_Get_DBError(t *testing.T) {
	s, mock := newTestSQLiteStore(t)

	mock.ExpectQuery("SELECT value FROM kv_store").
		WithArgs("region").
		WillReturnError(errors.New("database is locked"))

	_, err := s.Get(context.Background(), "region")
	assert.ErrorIs(t, err, ErrExecutingQuery)
	assert.NotErrorIs(t, err, ErrKeyNotFound)
}

func TestSQLiteStore_Set_Upserts(t *testing.T) {
	s, mock := newTestSQLiteStore(t)

	mock.ExpectExec(regexp.QuoteMeta(
		"INSERT INTO kv_store (key_name,value,updated_at) VALUES (?,?,?) ON CONFLICT(key_name) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at",
	)).
		WithArgs("shelters", `[{"id":1}]`, fixedNow).
		WillReturnResult(sqlmock.NewResult(1, 1))

	require.NoError(t, s.Set(context.Background(), "shelters", `[{"id":1}]`))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSQLiteStore_Set_DBError(t *testing.T) {
	s, mock := newTestSQLiteStore(t)

	mock.ExpectExec("INSERT INTO kv_store").
		WithArgs("shelters", "[]", sqlmock.AnyArg()).
		WillReturnError(errors.New("disk full"))

	err := s.Set(context.Background(), "shelters", "[]")
	assert.ErrorIs(t, err, ErrExecutingStatement)
}

func TestSQLiteStore_Delete(t *testing.T) {
	s, mock := newTestSQLiteStore(t)

	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM kv_store WHERE key_name = ?")).
		WithArgs("deviceToken").
		WillReturnResult(sqlmock.NewResult(0, 0))

	require.NoError(t, s.Delete(context.Background(), "deviceToken"))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSQLiteStore_Delete_DBError(t *testing.T) {
	s, mock := newTestSQLiteStore(t)

	mock.ExpectExec("DELETE FROM kv_store").
		WithArgs("deviceToken").
		WillReturnError(errors.New("boom"))

	assert.ErrorIs(t, s.Delete(context.Background(), "deviceToken"), ErrExecutingStatement)
}
