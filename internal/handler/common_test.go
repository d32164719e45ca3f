package handler

import (
	"database/sql"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
)

// newTestContext builds an echo context carrying a JSON body and the
// user_id the JWT middleware would have set.
func newTestContext(method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set("user_id", uint64(1))
	return c, rec
}

func newMockDB(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return db, mock
}

var sessionTestCols = []string{
	"id", "user_id", "station_id", "duration_id", "number_of_players",
	"check_in_time", "check_out_time", "calculated_gaming_cost",
	"total_session_cost", "session_status", "is_walk_in_customer", "notes",
	"created_by", "updated_by", "created_at", "updated_at", "archive",
}

// testTime is a fixed instant for rows where the value does not matter.
func testTime() time.Time {
	return time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)
}

// activeSessionRow is a single ACTIVE session with a 150.00 gaming cost and
// a 30.00 snack share on top.
func activeSessionRow() *sqlmock.Rows {
	checkIn := time.Date(2026, 9, 1, 10, 0, 0, 0, time.UTC)
	checkOut := checkIn.Add(2 * time.Hour)
	return sqlmock.NewRows(sessionTestCols).AddRow(
		int64(8), int64(7), int64(2), int64(3), int64(2),
		checkIn, checkOut, "150.00",
		"180.00", "ACTIVE", false, "old notes",
		nil, nil, checkIn, checkIn, false,
	)
}
