package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// SessionSnack is a snack line item attached to a gaming session.
// UnitPriceAtTime is a snapshot of the snack's catalog price taken when the
// line was created; later catalog price changes never alter past lines.
type SessionSnack struct {
	ID              uint64          // session_snacks.id
	GamingSessionID uint64          // session_snacks.gaming_session_id
	SnackID         uint64          // session_snacks.snack_id
	Quantity        uint32          // session_snacks.quantity
	UnitPriceAtTime decimal.Decimal // session_snacks.unit_price_at_time
	TotalCost       decimal.Decimal // session_snacks.total_cost
	CreatedBy       *uint64         // session_snacks.created_by (nullable)
	UpdatedBy       *uint64         // session_snacks.updated_by (nullable)
	CreatedAt       time.Time       // session_snacks.created_at
	UpdatedAt       time.Time       // session_snacks.updated_at
	Archive         bool            // session_snacks.archive
}

// Recalculate enforces the line-total invariant: total_cost is always
// quantity x unit_price_at_time. Repositories call this before every write.
func (s *SessionSnack) Recalculate() {
	s.TotalCost = s.UnitPriceAtTime.Mul(decimal.NewFromInt(int64(s.Quantity)))
}
