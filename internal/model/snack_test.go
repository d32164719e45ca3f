package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSnackNeedsRestock(t *testing.T) {
	s := Snack{StockQuantity: 10, RestockLevel: 5}
	assert.False(t, s.NeedsRestock())

	s.StockQuantity = 5
	assert.True(t, s.NeedsRestock(), "boundary counts as needing restock")

	s.StockQuantity = 0
	assert.True(t, s.NeedsRestock())
}

func TestValidSnackCategory(t *testing.T) {
	assert.True(t, ValidSnackCategory(SnackCategoryDrinks))
	assert.True(t, ValidSnackCategory(SnackCategoryMeals))
	assert.False(t, ValidSnackCategory("drinks"))
	assert.False(t, ValidSnackCategory(""))
}
