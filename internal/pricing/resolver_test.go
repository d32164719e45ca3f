package pricing

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iliyamo/gaming-lounge-backend/internal/model"
)

type stubServiceTypes struct {
	st  model.ServiceType
	err error
}

func (s stubServiceTypes) GetByID(ctx context.Context, id uint64) (model.ServiceType, error) {
	return s.st, s.err
}

type stubPrices struct {
	rows []model.ServicePrice
	err  error
}

func (s stubPrices) FindForDimensions(ctx context.Context, serviceTypeID, gameTypeID, durationID uint64) ([]model.ServicePrice, error) {
	return s.rows, s.err
}

func uptr(v uint32) *uint32 { return &v }

func price(lower *uint32, max uint32, amount string) model.ServicePrice {
	return model.ServicePrice{
		ServiceTypeID:  1,
		GameTypeID:     2,
		DurationID:     3,
		PlayerCount:    lower,
		MaxPlayerCount: max,
		Price:          decimal.RequireFromString(amount),
	}
}

func TestResolveConsolePicksPlayerInterval(t *testing.T) {
	r := NewResolver(
		stubServiceTypes{st: model.ServiceType{ID: 1, Name: "Console"}},
		stubPrices{rows: []model.ServicePrice{
			price(uptr(1), 2, "100.00"),
			price(uptr(3), 4, "160.00"),
		}},
	)

	got, err := r.Resolve(context.Background(), Lookup{ServiceTypeID: 1, GameTypeID: 2, DurationID: 3, PlayerCount: 3})
	require.NoError(t, err)
	assert.True(t, got.Equal(decimal.RequireFromString("160.00")), "got %s", got)

	got, err = r.Resolve(context.Background(), Lookup{ServiceTypeID: 1, GameTypeID: 2, DurationID: 3, PlayerCount: 2})
	require.NoError(t, err)
	assert.True(t, got.Equal(decimal.RequireFromString("100.00")), "got %s", got)
}

func TestResolveConsoleNilLowerBound(t *testing.T) {
	r := NewResolver(
		stubServiceTypes{st: model.ServiceType{ID: 1, Name: "CONSOLE"}},
		stubPrices{rows: []model.ServicePrice{price(nil, 4, "120.00")}},
	)

	got, err := r.Resolve(context.Background(), Lookup{ServiceTypeID: 1, GameTypeID: 2, DurationID: 3, PlayerCount: 1})
	require.NoError(t, err)
	assert.True(t, got.Equal(decimal.RequireFromString("120.00")))

	_, err = r.Resolve(context.Background(), Lookup{ServiceTypeID: 1, GameTypeID: 2, DurationID: 3, PlayerCount: 5})
	assert.ErrorIs(t, err, ErrPriceNotConfigured)
}

func TestResolveFlatIgnoresPlayerCount(t *testing.T) {
	// A VR row whose interval would not match the requested count still
	// resolves because non-console classes price flat.
	r := NewResolver(
		stubServiceTypes{st: model.ServiceType{ID: 4, Name: "VR"}},
		stubPrices{rows: []model.ServicePrice{price(uptr(1), 1, "250.00")}},
	)

	got, err := r.Resolve(context.Background(), Lookup{ServiceTypeID: 4, GameTypeID: 2, DurationID: 3, PlayerCount: 4})
	require.NoError(t, err)
	assert.True(t, got.Equal(decimal.RequireFromString("250.00")))
}

func TestResolveNotConfiguredNamesDimensions(t *testing.T) {
	r := NewResolver(
		stubServiceTypes{st: model.ServiceType{ID: 1, Name: "Console"}},
		stubPrices{},
	)

	_, err := r.Resolve(context.Background(), Lookup{ServiceTypeID: 1, GameTypeID: 2, DurationID: 3, PlayerCount: 4})
	require.ErrorIs(t, err, ErrPriceNotConfigured)
	assert.Contains(t, err.Error(), "service_type=1")
	assert.Contains(t, err.Error(), "game_type=2")
	assert.Contains(t, err.Error(), "duration=3")
	assert.Contains(t, err.Error(), "player_count=4")
}

func TestResolveAmbiguous(t *testing.T) {
	r := NewResolver(
		stubServiceTypes{st: model.ServiceType{ID: 1, Name: "Console"}},
		stubPrices{rows: []model.ServicePrice{
			price(uptr(1), 4, "100.00"),
			price(uptr(2), 3, "140.00"),
		}},
	)

	_, err := r.Resolve(context.Background(), Lookup{ServiceTypeID: 1, GameTypeID: 2, DurationID: 3, PlayerCount: 2})
	assert.ErrorIs(t, err, ErrPriceAmbiguous)
}

func TestResolvePassesThroughServiceTypeError(t *testing.T) {
	sentinel := errors.New("service type not found")
	r := NewResolver(stubServiceTypes{err: sentinel}, stubPrices{})

	_, err := r.Resolve(context.Background(), Lookup{ServiceTypeID: 99})
	assert.ErrorIs(t, err, sentinel)
}
