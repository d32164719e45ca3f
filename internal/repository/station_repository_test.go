package repository

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClaimTx(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectBegin()
	mock.ExpectExec("UPDATE stations SET is_active=0").
		WithArgs(uint64(9), uint64(3)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	tx, err := db.Begin()
	require.NoError(t, err)

	repo := NewStationRepo(db)
	assert.NoError(t, repo.ClaimTx(context.Background(), tx, 3, 9))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestClaimTxOccupied(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectBegin()
	// No free row matches: the station was claimed by a concurrent commit.
	mock.ExpectExec("UPDATE stations SET is_active=0").
		WithArgs(uint64(9), uint64(3)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	tx, err := db.Begin()
	require.NoError(t, err)

	repo := NewStationRepo(db)
	assert.ErrorIs(t, repo.ClaimTx(context.Background(), tx, 3, 9), ErrStationOccupied)
	assert.NoError(t, mock.ExpectationsWereMet())
}
