package model

import "time"

// Station is a physical bookable resource (console seat, PC, pool table).
// IsActive is the occupancy flag: true means the station is free, false
// means a live session currently occupies it. Only the session lifecycle
// flips this flag; catalog updates never touch it.
type Station struct {
	ID            uint64    // stations.id
	Name          string    // stations.name
	Description   *string   // stations.description (nullable)
	GameTypeID    uint64    // stations.game_type_id
	ServiceTypeID uint64    // stations.service_type_id
	IsActive      bool      // stations.is_active (true = free)
	CreatedBy     *uint64   // stations.created_by (nullable)
	UpdatedBy     *uint64   // stations.updated_by (nullable)
	CreatedAt     time.Time // stations.created_at
	UpdatedAt     time.Time // stations.updated_at
	Archive       bool      // stations.archive
}
