// file: repository/postgres_storage_test.go

package repository

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPostgresStorage_GetItem(t *testing.T) {
	db, dbMock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()
	storage := NewPostgresStorage(db)

	t.Run("found", func(t *testing.T) {
		dbMock.ExpectQuery("SELECT item_value FROM session_items").
			WithArgs("token").
			WillReturnRows(sqlmock.NewRows([]string{"item_value"}).AddRow("abc"))

		value, err := storage.GetItem(context.Background(), "token")
		assert.NoError(t, err)
		assert.Equal(t, "abc", value)
	})

	t.Run("not found", func(t *testing.T) {
		dbMock.ExpectQuery("SELECT item_value FROM session_items").
			WithArgs("token").
			WillReturnError(sql.ErrNoRows)

		_, err := storage.GetItem(context.Background(), "token")
		assert.ErrorIs(t, err, ErrItemNotFound)
	})

	assert.NoError(t, dbMock.ExpectationsWereMet())
}

func TestPostgresStorage_SetItems(t *testing.T) {
	t.Run("commits every item in one transaction", func(t *testing.T) {
		db, dbMock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		dbMock.ExpectBegin()
		dbMock.ExpectExec("INSERT INTO session_items").WithArgs("perms", `["ALUNOS"]`).WillReturnResult(sqlmock.NewResult(0, 1))
		dbMock.ExpectExec("INSERT INTO session_items").WithArgs("token", "abc").WillReturnResult(sqlmock.NewResult(0, 1))
		dbMock.ExpectCommit()

		err = NewPostgresStorage(db).SetItems(context.Background(), map[string]string{
			"token": "abc",
			"perms": `["ALUNOS"]`,
		})
		assert.NoError(t, err)
		assert.NoError(t, dbMock.ExpectationsWereMet())
	})

	t.Run("rolls back when one write fails", func(t *testing.T) {
		db, dbMock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		dbMock.ExpectBegin()
		dbMock.ExpectExec("INSERT INTO session_items").WithArgs("perms", "[]").WillReturnResult(sqlmock.NewResult(0, 1))
		dbMock.ExpectExec("INSERT INTO session_items").WithArgs("token", "abc").WillReturnError(errors.New("disk full"))
		dbMock.ExpectRollback()

		err = NewPostgresStorage(db).SetItems(context.Background(), map[string]string{
			"token": "abc",
			"perms": "[]",
		})
		assert.Error(t, err)
		assert.NoError(t, dbMock.ExpectationsWereMet())
	})
}

func TestPostgresStorage_RemoveItems(t *testing.T) {
	db, dbMock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	dbMock.ExpectBegin()
	dbMock.ExpectExec("DELETE FROM session_items").WithArgs("token").WillReturnResult(sqlmock.NewResult(0, 1))
	dbMock.ExpectExec("DELETE FROM session_items").WithArgs("perms").WillReturnResult(sqlmock.NewResult(0, 0))
	dbMock.ExpectCommit()

	err = NewPostgresStorage(db).RemoveItems(context.Background(), "token", "perms")
	assert.NoError(t, err)
	assert.NoError(t, dbMock.ExpectationsWereMet())
}
