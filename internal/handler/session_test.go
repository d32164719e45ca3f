package handler

import (
	"database/sql"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iliyamo/gaming-lounge-backend/internal/pricing"
	"github.com/iliyamo/gaming-lounge-backend/internal/repository"
)

func newSessionHandler(db *sql.DB) *SessionHandler {
	return NewSessionHandler(
		repository.NewSessionRepo(db),
		repository.NewStationRepo(db),
		repository.NewDurationRepo(db),
		repository.NewSnackRepo(db),
		repository.NewUserRepo(db),
		pricing.NewResolver(repository.NewServiceTypeRepo(db), repository.NewServicePriceRepo(db)),
		false,
	)
}

func TestSessionCreateUnknownUser(t *testing.T) {
	db, mock := newMockDB(t)
	h := newSessionHandler(db)

	mock.ExpectQuery("SELECT (.+) FROM users").WillReturnError(sql.ErrNoRows)

	c, rec := newTestContext(http.MethodPost, "/v1/sessions",
		`{"user_id":77,"station_id":2,"duration_id":3,"number_of_players":2}`)
	require.NoError(t, h.Create(c))

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "user not found")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSessionUpdateNotesOnlyKeepsPrice(t *testing.T) {
	db, mock := newMockDB(t)
	h := newSessionHandler(db)

	mock.ExpectBegin()
	mock.ExpectQuery("FROM gaming_sessions (.+) FOR UPDATE").WillReturnRows(activeSessionRow())
	// No pricing-table or station reads may happen on a notes-only update;
	// any would fail the expectation set.
	mock.ExpectExec("UPDATE gaming_sessions SET station_id=").WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	c, rec := newTestContext(http.MethodPut, "/v1/sessions/8", `{"notes":"regular, pays cash"}`)
	c.SetParamNames("id")
	c.SetParamValues("8")
	require.NoError(t, h.Update(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	var resp struct {
		Item sessionResp `json:"item"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "150.00", resp.Item.CalculatedGamingCost)
	assert.Equal(t, "180.00", resp.Item.TotalSessionCost)
	assert.Equal(t, "regular, pays cash", resp.Item.Notes)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSessionUpdateClosedSessionRejected(t *testing.T) {
	db, mock := newMockDB(t)
	h := newSessionHandler(db)

	row := sqlmock.NewRows(sessionTestCols).AddRow(
		int64(8), int64(7), int64(2), int64(3), int64(2),
		testTime(), testTime(), "150.00", "150.00", "COMPLETED", false, "",
		nil, nil, testTime(), testTime(), true,
	)
	mock.ExpectBegin()
	mock.ExpectQuery("FROM gaming_sessions (.+) FOR UPDATE").WillReturnRows(row)
	mock.ExpectRollback()

	c, rec := newTestContext(http.MethodPut, "/v1/sessions/8", `{"notes":"late edit"}`)
	c.SetParamNames("id")
	c.SetParamValues("8")
	require.NoError(t, h.Update(c))

	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.NoError(t, mock.ExpectationsWereMet())
}
