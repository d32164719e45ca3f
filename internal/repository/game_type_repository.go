package repository

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/iliyamo/gaming-lounge-backend/internal/model"
)

// GameTypeRepo provides CRUD operations on the game_types catalog.
type GameTypeRepo struct{ DB *sql.DB }

func NewGameTypeRepo(db *sql.DB) *GameTypeRepo { return &GameTypeRepo{DB: db} }

const gameTypeCols = "id,name,description,service_type_id,created_by,updated_by,created_at,updated_at,archive"

func scanGameType(row rowScanner) (model.GameType, error) {
	var gt model.GameType
	err := row.Scan(&gt.ID, &gt.Name, &gt.Description, &gt.ServiceTypeID,
		&gt.CreatedBy, &gt.UpdatedBy, &gt.CreatedAt, &gt.UpdatedAt, &gt.Archive)
	return gt, err
}

// List returns all non-archived game types, newest first.
func (r *GameTypeRepo) List(ctx context.Context) ([]model.GameType, error) {
	rows, err := r.DB.QueryContext(ctx,
		"SELECT "+gameTypeCols+" FROM game_types WHERE archive=0 ORDER BY id DESC")
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	out := make([]model.GameType, 0)
	for rows.Next() {
		gt, err := scanGameType(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, gt)
	}
	return out, rows.Err()
}

// GetByID fetches a game type by id regardless of archive state.
func (r *GameTypeRepo) GetByID(ctx context.Context, id uint64) (model.GameType, error) {
	gt, err := scanGameType(r.DB.QueryRowContext(ctx,
		"SELECT "+gameTypeCols+" FROM game_types WHERE id=? LIMIT 1", id))
	if errors.Is(err, sql.ErrNoRows) {
		return gt, ErrGameTypeNotFound
	}
	return gt, err
}

// Create inserts a game type; duplicate (name, service_type) pairs map to
// ErrDuplicate.
func (r *GameTypeRepo) Create(ctx context.Context, gt *model.GameType) error {
	res, err := r.DB.ExecContext(ctx,
		"INSERT INTO game_types (name, description, service_type_id, created_by, updated_by) VALUES (?,?,?,?,?)",
		gt.Name, gt.Description, gt.ServiceTypeID, gt.CreatedBy, gt.UpdatedBy)
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
	gt.ID = uint64(id)
	return nil
}

// Update rewrites the mutable fields and stamps the updater.
func (r *GameTypeRepo) Update(ctx context.Context, gt *model.GameType) error {
	res, err := r.DB.ExecContext(ctx,
		"UPDATE game_types SET name=?, description=?, service_type_id=?, updated_by=? WHERE id=?",
		gt.Name, gt.Description, gt.ServiceTypeID, gt.UpdatedBy, gt.ID)
	if err != nil {
		if strings.Contains(strings.ToLower(err.Error()), "1062") {
			return ErrDuplicate
		}
		return err
	}
	return requireRow(res, ErrGameTypeNotFound)
}

// Archive soft-deletes a game type.
func (r *GameTypeRepo) Archive(ctx context.Context, id, updatedBy uint64) error {
	res, err := r.DB.ExecContext(ctx,
		"UPDATE game_types SET archive=1, updated_by=? WHERE id=? AND archive=0", updatedBy, id)
	if err != nil {
		return err
	}
	return requireRow(res, ErrGameTypeNotFound)
}
