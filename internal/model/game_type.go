package model

import "time"

// GameType is a specific platform within a service type (e.g. PS5, Xbox,
// Meta Quest under Console). Names are unique per service type.
type GameType struct {
	ID            uint64    // game_types.id
	Name          string    // game_types.name
	Description   *string   // game_types.description (nullable)
	ServiceTypeID uint64    // game_types.service_type_id
	CreatedBy     *uint64   // game_types.created_by (nullable)
	UpdatedBy     *uint64   // game_types.updated_by (nullable)
	CreatedAt     time.Time // game_types.created_at
	UpdatedAt     time.Time // game_types.updated_at
	Archive       bool      // game_types.archive
}
