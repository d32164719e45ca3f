package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Snack categories.
const (
	SnackCategoryDrinks = "DRINKS"
	SnackCategorySnacks = "SNACKS"
	SnackCategoryMeals  = "MEALS"
)

// Snack is a sellable inventory item.
type Snack struct {
	ID            uint64          // snacks.id
	Name          string          // snacks.name
	Description   *string         // snacks.description (nullable)
	Category      string          // snacks.category
	UnitPrice     decimal.Decimal // snacks.unit_price
	StockQuantity int32           // snacks.stock_quantity
	RestockLevel  int32           // snacks.restock_level
	IsAvailable   bool            // snacks.is_available
	CreatedBy     *uint64         // snacks.created_by (nullable)
	UpdatedBy     *uint64         // snacks.updated_by (nullable)
	CreatedAt     time.Time       // snacks.created_at
	UpdatedAt     time.Time       // snacks.updated_at
	Archive       bool            // snacks.archive
}

// NeedsRestock reports whether the stock has fallen to the restock level.
func (s Snack) NeedsRestock() bool {
	return s.StockQuantity <= s.RestockLevel
}

// ValidSnackCategory reports whether c is a known snack category.
func ValidSnackCategory(c string) bool {
	return c == SnackCategoryDrinks || c == SnackCategorySnacks || c == SnackCategoryMeals
}
