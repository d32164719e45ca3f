// Package pricing implements the session pricing core: resolving a price
// from the multi-dimensional service_prices table and computing the
// check-in/check-out window from a duration catalog entry. Both operations
// are pure with respect to the store; the resolver reads through small
// source interfaces so the matching rules can be tested without a database.
package pricing

import (
	"context"
	"errors"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/iliyamo/gaming-lounge-backend/internal/model"
)

// ErrPriceNotConfigured is returned when no service_prices row matches the
// requested dimensions. The wrapped message enumerates every dimension so
// operators can see exactly which table row is missing.
var ErrPriceNotConfigured = errors.New("price not configured")

// ErrPriceAmbiguous is returned when more than one row survives matching.
// The uniqueness constraint on the pricing table makes this unreachable in
// a well-formed catalog, so it always indicates misconfiguration rather
// than a tie to break by policy.
var ErrPriceAmbiguous = errors.New("ambiguous price configuration")

// Lookup carries the four pricing dimensions of a session.
type Lookup struct {
	ServiceTypeID uint64
	GameTypeID    uint64
	DurationID    uint64
	PlayerCount   uint32
}

// ServiceTypeSource loads a service type by id. Implemented by
// repository.ServiceTypeRepo.
type ServiceTypeSource interface {
	GetByID(ctx context.Context, id uint64) (model.ServiceType, error)
}

// PriceSource returns the non-archived pricing rows matching the three
// always-required dimensions. Implemented by repository.ServicePriceRepo.
type PriceSource interface {
	FindForDimensions(ctx context.Context, serviceTypeID, gameTypeID, durationID uint64) ([]model.ServicePrice, error)
}

// matchRules maps a service-type class to the dimension set a candidate row
// must satisfy beyond the SQL-level {service_type, game_type, duration}
// filter. Console-class pricing additionally requires the requested player
// count to fall inside the row's player interval; every other class prices
// flat regardless of group size. Expressing this as an explicit table keeps
// the per-class behavior in one place instead of conditionally mutating a
// query.
var matchRules = map[bool]struct{ playerInterval bool }{
	true:  {playerInterval: true},  // console-class
	false: {playerInterval: false}, // flat-priced
}

// Resolver resolves session prices against the pricing table.
type Resolver struct {
	ServiceTypes ServiceTypeSource
	Prices       PriceSource
}

// NewResolver returns a Resolver reading from the given sources.
func NewResolver(st ServiceTypeSource, p PriceSource) *Resolver {
	return &Resolver{ServiceTypes: st, Prices: p}
}

// Resolve looks up the single applicable price for the given dimensions.
// The service type must exist (its repository's not-found error is passed
// through untouched). Zero matching rows yields ErrPriceNotConfigured
// wrapped with all attempted dimensions; more than one yields
// ErrPriceAmbiguous. The returned price is the row's value verbatim, with
// no rounding or conversion.
func (r *Resolver) Resolve(ctx context.Context, l Lookup) (decimal.Decimal, error) {
	st, err := r.ServiceTypes.GetByID(ctx, l.ServiceTypeID)
	if err != nil {
		return decimal.Zero, err
	}
	rows, err := r.Prices.FindForDimensions(ctx, l.ServiceTypeID, l.GameTypeID, l.DurationID)
	if err != nil {
		return decimal.Zero, err
	}
	rule := matchRules[st.IsConsoleClass()]
	matched := rows[:0:0]
	for _, row := range rows {
		if rule.playerInterval && !row.MatchesPlayerCount(l.PlayerCount) {
			continue
		}
		matched = append(matched, row)
	}
	switch len(matched) {
	case 0:
		return decimal.Zero, fmt.Errorf("%w for service_type=%d game_type=%d duration=%d player_count=%d",
			ErrPriceNotConfigured, l.ServiceTypeID, l.GameTypeID, l.DurationID, l.PlayerCount)
	case 1:
		return matched[0].Price, nil
	default:
		return decimal.Zero, fmt.Errorf("%w: %d rows match service_type=%d game_type=%d duration=%d player_count=%d",
			ErrPriceAmbiguous, len(matched), l.ServiceTypeID, l.GameTypeID, l.DurationID, l.PlayerCount)
	}
}
