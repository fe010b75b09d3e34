package database_test

import (
	"context"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"job-portal/internal/database"
	"job-portal/internal/database/sqldb"
)

func TestWithTx_Commit(t *testing.T) {
	raw, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer raw.Close()

	mock.ExpectBegin()
	mock.ExpectExec("UPDATE jobs").WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	err = database.WithTx(context.Background(), sqldb.Wrap(raw), func(q database.Querier) error {
		_, err := q.Exec(context.Background(), "UPDATE jobs SET salary = $1", "1")
		return err
	})
	require.NoError(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestWithTx_RollbackOnError(t *testing.T) {
	raw, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer raw.Close()

	mock.ExpectBegin()
	mock.ExpectRollback()

	boom := errors.New("boom")
	err = database.WithTx(context.Background(), sqldb.Wrap(raw), func(database.Querier) error {
		return boom
	})
	assert.ErrorIs(t, err, boom)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestWithTx_BeginFailure(t *testing.T) {
	raw, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer raw.Close()

	mock.ExpectBegin().WillReturnError(errors.New("too many connections"))

	called := false
	err = database.WithTx(context.Background(), sqldb.Wrap(raw), func(database.Querier) error {
		called = true
		return nil
	})
	require.Error(t, err)
	assert.False(t, called)
	require.NoError(t, mock.ExpectationsWereMet())
}
