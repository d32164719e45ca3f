package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Duration unit types. No other units exist; an unrecognized value stored
// in the database is a configuration error and must fail loudly.
const (
	DurationMinute = "MINUTE"
	DurationHour   = "HOUR"
)

// Duration is a catalog entry for a bookable time unit. The value is a
// decimal so fractional durations (e.g. 1.5 hours, 90.5 minutes) keep
// their precision through checkout-time computation.
type Duration struct {
	ID        uint64          // durations.id
	Type      string          // durations.type (MINUTE|HOUR)
	Duration  decimal.Decimal // durations.duration
	CreatedBy *uint64         // durations.created_by (nullable)
	UpdatedBy *uint64         // durations.updated_by (nullable)
	CreatedAt time.Time       // durations.created_at
	UpdatedAt time.Time       // durations.updated_at
	Archive   bool            // durations.archive
}
