package model

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestSessionSnackRecalculate(t *testing.T) {
	l := SessionSnack{
		Quantity:        3,
		UnitPriceAtTime: decimal.RequireFromString("40.50"),
		TotalCost:       decimal.RequireFromString("1.00"), // stale, must be replaced
	}
	l.Recalculate()
	assert.True(t, l.TotalCost.Equal(decimal.RequireFromString("121.50")), "got %s", l.TotalCost)

	l.Quantity = 0
	l.Recalculate()
	assert.True(t, l.TotalCost.IsZero())
}
