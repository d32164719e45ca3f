package model

import "time"

// User is an operator or customer account. Password hashes are bcrypt.
// Role assignments live in user_roles; a user may hold several roles.
type User struct {
	ID           uint64    // users.id
	Username     string    // users.username
	Email        string    // users.email
	PasswordHash string    // users.password_hash
	FirstName    string    // users.first_name
	LastName     string    // users.last_name
	IsActive     bool      // users.is_active
	CreatedAt    time.Time // users.created_at
	UpdatedAt    time.Time // users.updated_at
	Archive      bool      // users.archive
}

// UserProfile carries the contact details attached 1:1 to a user.
type UserProfile struct {
	ID          uint64     // user_profiles.id
	UserID      uint64     // user_profiles.user_id
	PhoneNumber *string    // user_profiles.phone_number (nullable)
	Address     *string    // user_profiles.address (nullable)
	DateOfBirth *time.Time // user_profiles.date_of_birth (nullable)
	CreatedBy   *uint64    // user_profiles.created_by (nullable)
	UpdatedBy   *uint64    // user_profiles.updated_by (nullable)
	CreatedAt   time.Time  // user_profiles.created_at
	UpdatedAt   time.Time  // user_profiles.updated_at
	Archive     bool       // user_profiles.archive
}

// Role names seeded by migration.
const (
	RoleAdmin = "ADMIN"
	RoleStaff = "STAFF"
)

// Role is a named authorization group (ADMIN, STAFF).
type Role struct {
	ID          uint64    // roles.id
	Name        string    // roles.name
	Description *string   // roles.description (nullable)
	CreatedAt   time.Time // roles.created_at
	UpdatedAt   time.Time // roles.updated_at
	Archive     bool      // roles.archive
}

// UserRole links a user to a role; unique per (user, role) pair.
type UserRole struct {
	ID        uint64    // user_roles.id
	UserID    uint64    // user_roles.user_id
	RoleID    uint64    // user_roles.role_id
	CreatedAt time.Time // user_roles.created_at
	UpdatedAt time.Time // user_roles.updated_at
	Archive   bool      // user_roles.archive
}
