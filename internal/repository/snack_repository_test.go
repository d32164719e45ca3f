package repository

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAdjustStockTx(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectBegin()
	mock.ExpectExec("UPDATE snacks SET stock_quantity=stock_quantity").
		WithArgs(int32(-2), uint64(9), uint64(5), int32(-2)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	tx, err := db.Begin()
	require.NoError(t, err)

	repo := NewSnackRepo(db)
	assert.NoError(t, repo.AdjustStockTx(context.Background(), tx, 5, -2, 9))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAdjustStockTxInsufficient(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectBegin()
	// The guard refuses a decrement that would drive stock below zero.
	mock.ExpectExec("UPDATE snacks SET stock_quantity=stock_quantity").
		WithArgs(int32(-10), uint64(9), uint64(5), int32(-10)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	tx, err := db.Begin()
	require.NoError(t, err)

	repo := NewSnackRepo(db)
	assert.ErrorIs(t, repo.AdjustStockTx(context.Background(), tx, 5, -10, 9), ErrInsufficientStock)
	assert.NoError(t, mock.ExpectationsWereMet())
}
