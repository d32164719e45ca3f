package model

import (
	"strings"
	"time"
)

// ConsoleServiceTypeName marks the service type whose pricing depends on
// the player count. The comparison is case-insensitive on the name.
const ConsoleServiceTypeName = "CONSOLE"

// ServiceType is the root of the catalog (e.g. Console, VR, Pool, Driving).
// Whether player count matters for pricing is derived from the name.
//
// Fields:
//
//	ID          – primary key identifier.
//	Name        – unique service type name.
//	Description – optional free-text description.
type ServiceType struct {
	ID          uint64    // service_types.id
	Name        string    // service_types.name
	Description *string   // service_types.description (nullable)
	CreatedBy   *uint64   // service_types.created_by (nullable)
	UpdatedBy   *uint64   // service_types.updated_by (nullable)
	CreatedAt   time.Time // service_types.created_at
	UpdatedAt   time.Time // service_types.updated_at
	Archive     bool      // service_types.archive
}

// IsConsoleClass reports whether sessions of this service type are priced
// per player-count interval rather than flat.
func (s ServiceType) IsConsoleClass() bool {
	return strings.EqualFold(s.Name, ConsoleServiceTypeName)
}
