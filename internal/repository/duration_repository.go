package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/iliyamo/gaming-lounge-backend/internal/model"
)

// DurationRepo provides CRUD operations on the durations catalog.
type DurationRepo struct{ DB *sql.DB }

func NewDurationRepo(db *sql.DB) *DurationRepo { return &DurationRepo{DB: db} }

const durationCols = "id,type,duration,created_by,updated_by,created_at,updated_at,archive"

func scanDuration(row rowScanner) (model.Duration, error) {
	var d model.Duration
	err := row.Scan(&d.ID, &d.Type, &d.Duration, &d.CreatedBy, &d.UpdatedBy,
		&d.CreatedAt, &d.UpdatedAt, &d.Archive)
	return d, err
}

// List returns all non-archived durations, newest first.
func (r *DurationRepo) List(ctx context.Context) ([]model.Duration, error) {
	rows, err := r.DB.QueryContext(ctx,
		"SELECT "+durationCols+" FROM durations WHERE archive=0 ORDER BY id DESC")
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	out := make([]model.Duration, 0)
	for rows.Next() {
		d, err := scanDuration(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, d)
	}
	return out, rows.Err()
}

// GetByID fetches a duration by id regardless of archive state.
func (r *DurationRepo) GetByID(ctx context.Context, id uint64) (model.Duration, error) {
	d, err := scanDuration(r.DB.QueryRowContext(ctx,
		"SELECT "+durationCols+" FROM durations WHERE id=? LIMIT 1", id))
	if errors.Is(err, sql.ErrNoRows) {
		return d, ErrDurationNotFound
	}
	return d, err
}

// Create inserts a duration catalog entry.
func (r *DurationRepo) Create(ctx context.Context, d *model.Duration) error {
	res, err := r.DB.ExecContext(ctx,
		"INSERT INTO durations (type, duration, created_by, updated_by) VALUES (?,?,?,?)",
		d.Type, d.Duration, d.CreatedBy, d.UpdatedBy)
	if err != nil {
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	d.ID = uint64(id)
	return nil
}

// Update rewrites type and value and stamps the updater.
func (r *DurationRepo) Update(ctx context.Context, d *model.Duration) error {
	res, err := r.DB.ExecContext(ctx,
		"UPDATE durations SET type=?, duration=?, updated_by=? WHERE id=?",
		d.Type, d.Duration, d.UpdatedBy, d.ID)
	if err != nil {
		return err
	}
	return requireRow(res, ErrDurationNotFound)
}

// Archive soft-deletes a duration.
func (r *DurationRepo) Archive(ctx context.Context, id, updatedBy uint64) error {
	res, err := r.DB.ExecContext(ctx,
		"UPDATE durations SET archive=1, updated_by=? WHERE id=? AND archive=0", updatedBy, id)
	if err != nil {
		return err
	}
	return requireRow(res, ErrDurationNotFound)
}
