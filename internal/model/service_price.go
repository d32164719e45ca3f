package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// ServicePrice is one row of the multi-dimensional pricing table: a priced
// combination of service type, game type, duration and player-count range.
// The five dimensions are unique together.
//
// PlayerCount is the lower bound of the player interval and may be nil,
// meaning "any count up to MaxPlayerCount". A lookup for player count P
// matches when PlayerCount <= P <= MaxPlayerCount (or P <= MaxPlayerCount
// when the lower bound is nil). The interval only participates in lookups
// for console-class service types.
type ServicePrice struct {
	ID             uint64          // service_prices.id
	ServiceTypeID  uint64          // service_prices.service_type_id
	GameTypeID     uint64          // service_prices.game_type_id
	DurationID     uint64          // service_prices.duration_id
	PlayerCount    *uint32         // service_prices.player_count (nullable)
	MaxPlayerCount uint32          // service_prices.max_player_count
	Price          decimal.Decimal // service_prices.price
	CreatedBy      *uint64         // service_prices.created_by (nullable)
	UpdatedBy      *uint64         // service_prices.updated_by (nullable)
	CreatedAt      time.Time       // service_prices.created_at
	UpdatedAt      time.Time       // service_prices.updated_at
	Archive        bool            // service_prices.archive
}

// MatchesPlayerCount reports whether the given player count falls inside
// this row's [PlayerCount, MaxPlayerCount] interval.
func (p ServicePrice) MatchesPlayerCount(count uint32) bool {
	if p.PlayerCount == nil {
		return count <= p.MaxPlayerCount
	}
	return *p.PlayerCount <= count && count <= p.MaxPlayerCount
}
