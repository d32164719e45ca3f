package pricing

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iliyamo/gaming-lounge-backend/internal/model"
)

func TestWindow(t *testing.T) {
	checkIn := time.Date(2024, 1, 1, 10, 0, 0, 0, time.UTC)

	cases := []struct {
		name  string
		typ   string
		value string
		want  time.Time
	}{
		{"two hours", model.DurationHour, "2", time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)},
		{"ninety minutes", model.DurationMinute, "90", time.Date(2024, 1, 1, 11, 30, 0, 0, time.UTC)},
		{"fractional hours", model.DurationHour, "1.5", time.Date(2024, 1, 1, 11, 30, 0, 0, time.UTC)},
		{"fractional minutes", model.DurationMinute, "0.5", time.Date(2024, 1, 1, 10, 0, 30, 0, time.UTC)},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			d := model.Duration{ID: 1, Type: tc.typ, Duration: decimal.RequireFromString(tc.value)}
			got, err := Window(d, checkIn)
			require.NoError(t, err)
			assert.True(t, got.Equal(tc.want), "got %s want %s", got, tc.want)
		})
	}
}

func TestWindowUnknownType(t *testing.T) {
	d := model.Duration{ID: 7, Type: "DAY", Duration: decimal.NewFromInt(1)}
	_, err := Window(d, time.Now())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "DAY")
}
