package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/iliyamo/gaming-lounge-backend/internal/model"
)

// SnackRepo provides CRUD and stock operations on the snacks inventory.
// Stock adjustments run inside the snack-attachment transaction so a line
// item and its stock decrement commit or roll back together.
type SnackRepo struct{ DB *sql.DB }

func NewSnackRepo(db *sql.DB) *SnackRepo { return &SnackRepo{DB: db} }

const snackCols = "id,name,description,category,unit_price,stock_quantity,restock_level,is_available,created_by,updated_by,created_at,updated_at,archive"

func scanSnack(row rowScanner) (model.Snack, error) {
	var s model.Snack
	err := row.Scan(&s.ID, &s.Name, &s.Description, &s.Category, &s.UnitPrice,
		&s.StockQuantity, &s.RestockLevel, &s.IsAvailable,
		&s.CreatedBy, &s.UpdatedBy, &s.CreatedAt, &s.UpdatedAt, &s.Archive)
	return s, err
}

// List returns all non-archived snacks, newest first.
func (r *SnackRepo) List(ctx context.Context) ([]model.Snack, error) {
	rows, err := r.DB.QueryContext(ctx,
		"SELECT "+snackCols+" FROM snacks WHERE archive=0 ORDER BY id DESC")
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	out := make([]model.Snack, 0)
	for rows.Next() {
		s, err := scanSnack(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, rows.Err()
}

// GetByID fetches a snack by id regardless of archive state.
func (r *SnackRepo) GetByID(ctx context.Context, id uint64) (model.Snack, error) {
	s, err := scanSnack(r.DB.QueryRowContext(ctx,
		"SELECT "+snackCols+" FROM snacks WHERE id=? LIMIT 1", id))
	if errors.Is(err, sql.ErrNoRows) {
		return s, ErrSnackNotFound
	}
	return s, err
}

// GetForUpdateTx loads a non-archived snack under a row lock so stock
// checks and decrements serialize across concurrent attachments.
func (r *SnackRepo) GetForUpdateTx(ctx context.Context, tx *sql.Tx, id uint64) (model.Snack, error) {
	s, err := scanSnack(tx.QueryRowContext(ctx,
		"SELECT "+snackCols+" FROM snacks WHERE id=? AND archive=0 LIMIT 1 FOR UPDATE", id))
	if errors.Is(err, sql.ErrNoRows) {
		return s, ErrSnackNotFound
	}
	return s, err
}

// AdjustStockTx changes stock_quantity by delta (negative to consume)
// inside an open transaction. The UPDATE refuses to drive stock below zero
// and reports ErrInsufficientStock instead; callers hold the snack row lock,
// so a missed row can only mean the guard fired.
func (r *SnackRepo) AdjustStockTx(ctx context.Context, tx *sql.Tx, id uint64, delta int32, updatedBy uint64) error {
	res, err := tx.ExecContext(ctx,
		"UPDATE snacks SET stock_quantity=stock_quantity+?, updated_by=? WHERE id=? AND stock_quantity+? >= 0",
		delta, updatedBy, id, delta)
	if err != nil {
		return err
	}
	return requireRow(res, ErrInsufficientStock)
}

// Create inserts a snack.
func (r *SnackRepo) Create(ctx context.Context, s *model.Snack) error {
	res, err := r.DB.ExecContext(ctx,
		"INSERT INTO snacks (name, description, category, unit_price, stock_quantity, restock_level, is_available, created_by, updated_by) VALUES (?,?,?,?,?,?,?,?,?)",
		s.Name, s.Description, s.Category, s.UnitPrice, s.StockQuantity, s.RestockLevel, s.IsAvailable, s.CreatedBy, s.UpdatedBy)
	if err != nil {
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	s.ID = uint64(id)
	return nil
}

// Update rewrites the mutable fields and stamps the updater.
func (r *SnackRepo) Update(ctx context.Context, s *model.Snack) error {
	res, err := r.DB.ExecContext(ctx,
		"UPDATE snacks SET name=?, description=?, category=?, unit_price=?, stock_quantity=?, restock_level=?, is_available=?, updated_by=? WHERE id=?",
		s.Name, s.Description, s.Category, s.UnitPrice, s.StockQuantity, s.RestockLevel, s.IsAvailable, s.UpdatedBy, s.ID)
	if err != nil {
		return err
	}
	return requireRow(res, ErrSnackNotFound)
}

// Archive soft-deletes a snack. Historical session_snacks keep pointing at
// it; GetByID still resolves archived rows.
func (r *SnackRepo) Archive(ctx context.Context, id, updatedBy uint64) error {
	res, err := r.DB.ExecContext(ctx,
		"UPDATE snacks SET archive=1, updated_by=? WHERE id=? AND archive=0", updatedBy, id)
	if err != nil {
		return err
	}
	return requireRow(res, ErrSnackNotFound)
}
