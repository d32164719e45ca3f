package repository

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/iliyamo/gaming-lounge-backend/internal/model"
)

// ServiceTypeRepo provides CRUD operations on the service_types catalog.
// Service types are the root of the pricing hierarchy; the session pricing
// resolver reads through GetByID to classify a lookup as console or flat.
type ServiceTypeRepo struct{ DB *sql.DB }

func NewServiceTypeRepo(db *sql.DB) *ServiceTypeRepo { return &ServiceTypeRepo{DB: db} }

const serviceTypeCols = "id,name,description,created_by,updated_by,created_at,updated_at,archive"

type rowScanner interface{ Scan(dest ...any) error }

func scanServiceType(row rowScanner) (model.ServiceType, error) {
	var st model.ServiceType
	err := row.Scan(&st.ID, &st.Name, &st.Description, &st.CreatedBy, &st.UpdatedBy,
		&st.CreatedAt, &st.UpdatedAt, &st.Archive)
	return st, err
}

// List returns all non-archived service types, newest first.
func (r *ServiceTypeRepo) List(ctx context.Context) ([]model.ServiceType, error) {
	rows, err := r.DB.QueryContext(ctx,
		"SELECT "+serviceTypeCols+" FROM service_types WHERE archive=0 ORDER BY id DESC")
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	out := make([]model.ServiceType, 0)
	for rows.Next() {
		st, err := scanServiceType(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, st)
	}
	return out, rows.Err()
}

// GetByID fetches a service type by id regardless of archive state, so
// historical references from archived sessions stay resolvable.
func (r *ServiceTypeRepo) GetByID(ctx context.Context, id uint64) (model.ServiceType, error) {
	st, err := scanServiceType(r.DB.QueryRowContext(ctx,
		"SELECT "+serviceTypeCols+" FROM service_types WHERE id=? LIMIT 1", id))
	if errors.Is(err, sql.ErrNoRows) {
		return st, ErrServiceTypeNotFound
	}
	return st, err
}

// Create inserts a service type; duplicate names map to ErrDuplicate.
func (r *ServiceTypeRepo) Create(ctx context.Context, st *model.ServiceType) error {
	res, err := r.DB.ExecContext(ctx,
		"INSERT INTO service_types (name, description, created_by, updated_by) VALUES (?,?,?,?)",
		st.Name, st.Description, st.CreatedBy, st.UpdatedBy)
	if err != nil {
		if strings.Contains(strings.ToLower(err.Error()), "1062") {
			return ErrDuplicate
		}
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	st.ID = uint64(id)
	return nil
}

// Update rewrites name and description and stamps the updater.
func (r *ServiceTypeRepo) Update(ctx context.Context, st *model.ServiceType) error {
	res, err := r.DB.ExecContext(ctx,
		"UPDATE service_types SET name=?, description=?, updated_by=? WHERE id=?",
		st.Name, st.Description, st.UpdatedBy, st.ID)
	if err != nil {
		if strings.Contains(strings.ToLower(err.Error()), "1062") {
			return ErrDuplicate
		}
		return err
	}
	return requireRow(res, ErrServiceTypeNotFound)
}

// Archive soft-deletes a service type.
func (r *ServiceTypeRepo) Archive(ctx context.Context, id, updatedBy uint64) error {
	res, err := r.DB.ExecContext(ctx,
		"UPDATE service_types SET archive=1, updated_by=? WHERE id=? AND archive=0", updatedBy, id)
	if err != nil {
		return err
	}
	return requireRow(res, ErrServiceTypeNotFound)
}
