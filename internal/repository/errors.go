// Package repository defines error types that are reused across multiple
// repositories. These sentinel values let handlers distinguish failure
// scenarios without string matching: each missing referenced entity has its
// own not-found sentinel so session creation can name exactly which
// reference was bad, and conflict-style sentinels map to HTTP 409.
package repository

import "errors"

// Not-found sentinels, one per referenced entity. Handlers translate these
// into 404 responses naming the entity.
var (
	ErrUserNotFound         = errors.New("user not found")
	ErrProfileNotFound      = errors.New("user profile not found")
	ErrRoleNotFound         = errors.New("role not found")
	ErrServiceTypeNotFound  = errors.New("service type not found")
	ErrGameTypeNotFound     = errors.New("game type not found")
	ErrStationNotFound      = errors.New("station not found")
	ErrDurationNotFound     = errors.New("duration not found")
	ErrServicePriceNotFound = errors.New("service price not found")
	ErrSessionNotFound      = errors.New("session not found")
	ErrSessionSnackNotFound = errors.New("session snack not found")
	ErrSnackNotFound        = errors.New("snack not found")
	ErrPaymentNotFound      = errors.New("payment not found")
)

// ErrStationOccupied is returned by StationRepo.ClaimTx when the target
// station is already occupied by a live session. Handlers translate this
// into HTTP 409.
var ErrStationOccupied = errors.New("station occupied")

// ErrDuplicate signals a unique-constraint violation on a catalog write,
// such as creating a second service type with the same name. Handlers
// translate this into HTTP 409.
var ErrDuplicate = errors.New("duplicate entry")

// ErrInsufficientStock is returned by SnackRepo.AdjustStockTx when the
// adjustment would drive stock_quantity below zero.
var ErrInsufficientStock = errors.New("insufficient stock")
