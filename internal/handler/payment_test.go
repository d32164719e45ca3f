package handler

import (
	"net/http"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iliyamo/gaming-lounge-backend/internal/repository"
)

func TestPaymentCreateDefaultsToPending(t *testing.T) {
	db, mock := newMockDB(t)
	h := NewPaymentHandler(repository.NewPaymentRepo(db), repository.NewSessionRepo(db))

	mock.ExpectQuery("FROM gaming_sessions").WillReturnRows(activeSessionRow())
	mock.ExpectExec("INSERT INTO payments").
		WithArgs(sqlmock.AnyArg(), sqlmock.AnyArg(), "CASH", "PENDING",
			sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(11, 1))

	c, rec := newTestContext(http.MethodPost, "/v1/payments",
		`{"session_id":8,"amount_paid":"100.00","payment_method":"CASH"}`)
	require.NoError(t, h.Create(c))

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), `"payment_status":"PENDING"`)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPaymentCreateRejectsUnknownStatus(t *testing.T) {
	db, mock := newMockDB(t)
	h := NewPaymentHandler(repository.NewPaymentRepo(db), repository.NewSessionRepo(db))

	c, rec := newTestContext(http.MethodPost, "/v1/payments",
		`{"session_id":8,"amount_paid":"100.00","payment_method":"CASH","payment_status":"SETTLED"}`)
	require.NoError(t, h.Create(c))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.NoError(t, mock.ExpectationsWereMet())
}
