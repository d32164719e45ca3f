package repository

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/iliyamo/gaming-lounge-backend/internal/model"
)

// RoleRepo reads the role catalog and manages user-role assignments.
// Roles themselves are seeded by migration and rarely change.
type RoleRepo struct{ DB *sql.DB }

func NewRoleRepo(db *sql.DB) *RoleRepo { return &RoleRepo{DB: db} }

// List returns all non-archived roles.
func (r *RoleRepo) List(ctx context.Context) ([]model.Role, error) {
	rows, err := r.DB.QueryContext(ctx,
		"SELECT id,name,description,created_at,updated_at,archive FROM roles WHERE archive=0 ORDER BY id DESC")
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	out := make([]model.Role, 0)
	for rows.Next() {
		var ro model.Role
		if err := rows.Scan(&ro.ID, &ro.Name, &ro.Description, &ro.CreatedAt, &ro.UpdatedAt, &ro.Archive); err != nil {
			return nil, err
		}
		out = append(out, ro)
	}
	return out, rows.Err()
}

// GetByName fetches a role by its unique name.
func (r *RoleRepo) GetByName(ctx context.Context, name string) (model.Role, error) {
	var ro model.Role
	err := r.DB.QueryRowContext(ctx,
		"SELECT id,name,description,created_at,updated_at,archive FROM roles WHERE name=? LIMIT 1",
		strings.ToUpper(strings.TrimSpace(name))).
		Scan(&ro.ID, &ro.Name, &ro.Description, &ro.CreatedAt, &ro.UpdatedAt, &ro.Archive)
	if errors.Is(err, sql.ErrNoRows) {
		return ro, ErrRoleNotFound
	}
	return ro, err
}

// Assign links a user to a role; duplicate pairs map to ErrDuplicate.
func (r *RoleRepo) Assign(ctx context.Context, userID, roleID uint64, createdBy *uint64) error {
	_, err := r.DB.ExecContext(ctx,
		"INSERT INTO user_roles (user_id, role_id, created_by, updated_by) VALUES (?,?,?,?)",
		userID, roleID, createdBy, createdBy)
	if err != nil && strings.Contains(strings.ToLower(err.Error()), "1062") {
		return ErrDuplicate
	}
	return err
}

// NamesForUser returns the role names assigned to a user, alphabetical.
// A user with no assignments gets an empty slice, not an error.
func (r *RoleRepo) NamesForUser(ctx context.Context, userID uint64) ([]string, error) {
	rows, err := r.DB.QueryContext(ctx,
		`SELECT ro.name FROM user_roles ur
		 JOIN roles ro ON ro.id = ur.role_id
		 WHERE ur.user_id = ? AND ur.archive = 0 AND ro.archive = 0
		 ORDER BY ro.name`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	names := make([]string, 0)
	for rows.Next() {
		var n string
		if err := rows.Scan(&n); err != nil {
			return nil, err
		}
		names = append(names, n)
	}
	return names, rows.Err()
}
