package pricing

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/iliyamo/gaming-lounge-backend/internal/model"
)

// Window computes the check-out instant for a session checked in at the
// given instant with the given duration catalog entry. Duration values are
// decimals and may be fractional; the value is scaled to nanoseconds so
// sub-minute precision survives into the stored timestamp. An unknown
// duration type is a configuration error and is reported, never defaulted.
func Window(d model.Duration, checkIn time.Time) (time.Time, error) {
	var unit time.Duration
	switch d.Type {
	case model.DurationMinute:
		unit = time.Minute
	case model.DurationHour:
		unit = time.Hour
	default:
		return time.Time{}, fmt.Errorf("unknown duration type %q for duration %d", d.Type, d.ID)
	}
	nanos := d.Duration.Mul(decimal.NewFromInt(int64(unit))).IntPart()
	return checkIn.Add(time.Duration(nanos)), nil
}
