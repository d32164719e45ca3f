package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Gaming session lifecycle states. A session is created ACTIVE at check-in
// and moves to exactly one terminal state on closure; terminal sessions are
// always archived.
const (
	SessionActive    = "ACTIVE"
	SessionCompleted = "COMPLETED"
	SessionCancelled = "CANCELLED"
)

// GamingSession is a single customer's occupancy of a station for a bounded
// duration. While a session is ACTIVE its station's is_active flag is false;
// the session handlers maintain that invariant transactionally.
//
// CalculatedGamingCost is the price resolved from the pricing table at
// check-in (or at the last recalculation). TotalSessionCost starts equal to
// it and grows as snack line items are attached.
type GamingSession struct {
	ID                   uint64          // gaming_sessions.id
	UserID               uint64          // gaming_sessions.user_id
	StationID            uint64          // gaming_sessions.station_id
	DurationID           uint64          // gaming_sessions.duration_id
	NumberOfPlayers      uint32          // gaming_sessions.number_of_players
	CheckInTime          time.Time       // gaming_sessions.check_in_time
	CheckOutTime         *time.Time      // gaming_sessions.check_out_time (nullable)
	CalculatedGamingCost decimal.Decimal // gaming_sessions.calculated_gaming_cost
	TotalSessionCost     decimal.Decimal // gaming_sessions.total_session_cost
	SessionStatus        string          // gaming_sessions.session_status
	IsWalkInCustomer     bool            // gaming_sessions.is_walk_in_customer
	Notes                string          // gaming_sessions.notes
	CreatedBy            *uint64         // gaming_sessions.created_by (nullable)
	UpdatedBy            *uint64         // gaming_sessions.updated_by (nullable)
	CreatedAt            time.Time       // gaming_sessions.created_at
	UpdatedAt            time.Time       // gaming_sessions.updated_at
	Archive              bool            // gaming_sessions.archive
}

// IsTerminalStatus reports whether s names a terminal session state.
func IsTerminalStatus(s string) bool {
	return s == SessionCompleted || s == SessionCancelled
}
