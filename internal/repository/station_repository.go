package repository

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/iliyamo/gaming-lounge-backend/internal/model"
)

// StationRepo provides CRUD and occupancy operations on stations. The
// occupancy flag (is_active, true = free) participates in the session
// check-and-set: session creation must read the station with a row lock
// and flip the flag inside the same transaction, so the lock-taking reads
// and the flag writes are exposed as Tx variants.
type StationRepo struct{ DB *sql.DB }

func NewStationRepo(db *sql.DB) *StationRepo { return &StationRepo{DB: db} }

const stationCols = "id,name,description,game_type_id,service_type_id,is_active,created_by,updated_by,created_at,updated_at,archive"

func scanStation(row rowScanner) (model.Station, error) {
	var s model.Station
	err := row.Scan(&s.ID, &s.Name, &s.Description, &s.GameTypeID, &s.ServiceTypeID,
		&s.IsActive, &s.CreatedBy, &s.UpdatedBy, &s.CreatedAt, &s.UpdatedAt, &s.Archive)
	return s, err
}

// List returns all non-archived stations, newest first.
func (r *StationRepo) List(ctx context.Context) ([]model.Station, error) {
	return r.list(ctx, "SELECT "+stationCols+" FROM stations WHERE archive=0 ORDER BY id DESC")
}

// ListFree returns non-archived stations currently free for booking. Used
// by the session dropdowns endpoint.
func (r *StationRepo) ListFree(ctx context.Context) ([]model.Station, error) {
	return r.list(ctx, "SELECT "+stationCols+" FROM stations WHERE archive=0 AND is_active=1 ORDER BY name")
}

func (r *StationRepo) list(ctx context.Context, q string) ([]model.Station, error) {
	rows, err := r.DB.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	out := make([]model.Station, 0)
	for rows.Next() {
		s, err := scanStation(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, rows.Err()
}

// GetByID fetches a station by id regardless of archive state.
func (r *StationRepo) GetByID(ctx context.Context, id uint64) (model.Station, error) {
	s, err := scanStation(r.DB.QueryRowContext(ctx,
		"SELECT "+stationCols+" FROM stations WHERE id=? LIMIT 1", id))
	if errors.Is(err, sql.ErrNoRows) {
		return s, ErrStationNotFound
	}
	return s, err
}

// GetForUpdateTx loads a non-archived station under a row-level lock. Two
// concurrent session creates against the same station serialize here; the
// loser sees the flipped occupancy flag after the winner commits.
func (r *StationRepo) GetForUpdateTx(ctx context.Context, tx *sql.Tx, id uint64) (model.Station, error) {
	s, err := scanStation(tx.QueryRowContext(ctx,
		"SELECT "+stationCols+" FROM stations WHERE id=? AND archive=0 LIMIT 1 FOR UPDATE", id))
	if errors.Is(err, sql.ErrNoRows) {
		return s, ErrStationNotFound
	}
	return s, err
}

// ClaimTx flips a free station to occupied inside an open transaction.
// The UPDATE only matches a free row, so the database is the final arbiter
// of the check-and-set: a station claimed by a concurrent commit yields
// ErrStationOccupied.
func (r *StationRepo) ClaimTx(ctx context.Context, tx *sql.Tx, id, updatedBy uint64) error {
	res, err := tx.ExecContext(ctx,
		"UPDATE stations SET is_active=0, updated_by=? WHERE id=? AND is_active=1 AND archive=0",
		updatedBy, id)
	if err != nil {
		return err
	}
	return requireRow(res, ErrStationOccupied)
}

// SetActiveTx flips the occupancy flag inside an open transaction.
func (r *StationRepo) SetActiveTx(ctx context.Context, tx *sql.Tx, id uint64, active bool, updatedBy uint64) error {
	res, err := tx.ExecContext(ctx,
		"UPDATE stations SET is_active=?, updated_by=? WHERE id=?", active, updatedBy, id)
	if err != nil {
		return err
	}
	return requireRow(res, ErrStationNotFound)
}

// Create inserts a station; duplicate names map to ErrDuplicate.
func (r *StationRepo) Create(ctx context.Context, s *model.Station) error {
	res, err := r.DB.ExecContext(ctx,
		"INSERT INTO stations (name, description, game_type_id, service_type_id, is_active, created_by, updated_by) VALUES (?,?,?,?,?,?,?)",
		s.Name, s.Description, s.GameTypeID, s.ServiceTypeID, s.IsActive, s.CreatedBy, s.UpdatedBy)
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
	s.ID = uint64(id)
	return nil
}

// Update rewrites the catalog fields of a station. The occupancy flag is
// deliberately excluded; only the session lifecycle may flip it.
func (r *StationRepo) Update(ctx context.Context, s *model.Station) error {
	res, err := r.DB.ExecContext(ctx,
		"UPDATE stations SET name=?, description=?, game_type_id=?, service_type_id=?, updated_by=? WHERE id=?",
		s.Name, s.Description, s.GameTypeID, s.ServiceTypeID, s.UpdatedBy, s.ID)
	if err != nil {
		if strings.Contains(strings.ToLower(err.Error()), "1062") {
			return ErrDuplicate
		}
		return err
	}
	return requireRow(res, ErrStationNotFound)
}

// Archive soft-deletes a station.
func (r *StationRepo) Archive(ctx context.Context, id, updatedBy uint64) error {
	res, err := r.DB.ExecContext(ctx,
		"UPDATE stations SET archive=1, updated_by=? WHERE id=? AND archive=0", updatedBy, id)
	if err != nil {
		return err
	}
	return requireRow(res, ErrStationNotFound)
}
