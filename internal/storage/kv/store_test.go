package kv

import (
	"context"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStore_Get_Present(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT value FROM kv WHERE key = ?`)).
		WithArgs("teachdesk_projects").
		WillReturnRows(sqlmock.NewRows([]string{"value"}).AddRow(`[]`))

	s := NewStore(db)
	value, ok, err := s.Get(context.Background(), "teachdesk_projects")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, `[]`, value)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestStore_Get_Absent(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT value FROM kv WHERE key = ?`)).
		WithArgs("missing").
		WillReturnRows(sqlmock.NewRows([]string{"value"}))

	s := NewStore(db)
	value, ok, err := s.Get(context.Background(), "missing")
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Empty(t, value)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestStore_Set(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO kv (key, value) VALUES (?, ?) ON CONFLICT (key) DO UPDATE SET value = excluded.value`)).
		WithArgs("session", `{"id":"u1"}`).
		WillReturnResult(sqlmock.NewResult(1, 1))

	s := NewStore(db)
	require.NoError(t, s.Set(context.Background(), "session", `{"id":"u1"}`))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestStore_Delete_Absent(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM kv WHERE key = ?`)).
		WithArgs("session").
		WillReturnResult(sqlmock.NewResult(0, 0))

	s := NewStore(db)
	require.NoError(t, s.Delete(context.Background(), "session"))
	assert.NoError(t, mock.ExpectationsWereMet())
}
