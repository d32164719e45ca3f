package handler

import (
	"database/sql"
	"net/http"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iliyamo/gaming-lounge-backend/internal/repository"
)

func newServicePriceHandler(db *sql.DB) *ServicePriceHandler {
	return NewServicePriceHandler(
		repository.NewServicePriceRepo(db),
		repository.NewServiceTypeRepo(db),
		repository.NewGameTypeRepo(db),
		repository.NewDurationRepo(db),
	)
}

func TestServicePriceCreateAcceptsZeroPrice(t *testing.T) {
	db, mock := newMockDB(t)
	h := newServicePriceHandler(db)

	mock.ExpectQuery("FROM service_types").WillReturnRows(
		sqlmock.NewRows([]string{"id", "name", "description", "created_by", "updated_by", "created_at", "updated_at", "archive"}).
			AddRow(int64(1), "Console", nil, nil, nil, testTime(), testTime(), false))
	mock.ExpectQuery("FROM game_types").WillReturnRows(
		sqlmock.NewRows([]string{"id", "name", "description", "service_type_id", "created_by", "updated_by", "created_at", "updated_at", "archive"}).
			AddRow(int64(2), "PS5", nil, int64(1), nil, nil, testTime(), testTime(), false))
	mock.ExpectQuery("FROM durations").WillReturnRows(
		sqlmock.NewRows([]string{"id", "type", "duration", "created_by", "updated_by", "created_at", "updated_at", "archive"}).
			AddRow(int64(3), "HOUR", "1", nil, nil, testTime(), testTime(), false))
	mock.ExpectExec("INSERT INTO service_prices").WillReturnResult(sqlmock.NewResult(5, 1))

	c, rec := newTestContext(http.MethodPost, "/v1/service-prices",
		`{"service_type_id":1,"game_type_id":2,"duration_id":3,"player_count":1,"max_player_count":2,"price":"0"}`)
	require.NoError(t, h.Create(c))

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestServicePriceCreateRejectsNegativePrice(t *testing.T) {
	db, mock := newMockDB(t)
	h := newServicePriceHandler(db)

	c, rec := newTestContext(http.MethodPost, "/v1/service-prices",
		`{"service_type_id":1,"game_type_id":2,"duration_id":3,"max_player_count":2,"price":"-1"}`)
	require.NoError(t, h.Create(c))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "price must not be negative")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestServicePriceCreateRejectsZeroPlayerCount(t *testing.T) {
	db, mock := newMockDB(t)
	h := newServicePriceHandler(db)

	c, rec := newTestContext(http.MethodPost, "/v1/service-prices",
		`{"service_type_id":1,"game_type_id":2,"duration_id":3,"player_count":0,"max_player_count":2,"price":"100.00"}`)
	require.NoError(t, h.Create(c))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "player_count must be at least 1")
	assert.NoError(t, mock.ExpectationsWereMet())
}
