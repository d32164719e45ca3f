package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/iliyamo/gaming-lounge-backend/internal/model"
)

// SessionSnackRepo persists snack line items. Writes run inside the same
// transaction that decrements stock and bumps the session total, so they
// are Tx variants. Recalculate is applied before every write to keep
// total_cost = quantity x unit_price_at_time.
type SessionSnackRepo struct{ DB *sql.DB }

func NewSessionSnackRepo(db *sql.DB) *SessionSnackRepo { return &SessionSnackRepo{DB: db} }

const sessionSnackCols = "id,gaming_session_id,snack_id,quantity,unit_price_at_time,total_cost,created_by,updated_by,created_at,updated_at,archive"

func scanSessionSnack(row rowScanner) (model.SessionSnack, error) {
	var l model.SessionSnack
	err := row.Scan(&l.ID, &l.GamingSessionID, &l.SnackID, &l.Quantity,
		&l.UnitPriceAtTime, &l.TotalCost,
		&l.CreatedBy, &l.UpdatedBy, &l.CreatedAt, &l.UpdatedAt, &l.Archive)
	return l, err
}

// CreateTx inserts a line item inside an open transaction.
func (r *SessionSnackRepo) CreateTx(ctx context.Context, tx *sql.Tx, l *model.SessionSnack) error {
	l.Recalculate()
	res, err := tx.ExecContext(ctx,
		"INSERT INTO session_snacks (gaming_session_id, snack_id, quantity, unit_price_at_time, total_cost, created_by, updated_by) VALUES (?,?,?,?,?,?,?)",
		l.GamingSessionID, l.SnackID, l.Quantity, l.UnitPriceAtTime, l.TotalCost, l.CreatedBy, l.UpdatedBy)
	if err != nil {
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	l.ID = uint64(id)
	return nil
}

// GetByID fetches a line item by id regardless of archive state.
func (r *SessionSnackRepo) GetByID(ctx context.Context, id uint64) (model.SessionSnack, error) {
	l, err := scanSessionSnack(r.DB.QueryRowContext(ctx,
		"SELECT "+sessionSnackCols+" FROM session_snacks WHERE id=? LIMIT 1", id))
	if errors.Is(err, sql.ErrNoRows) {
		return l, ErrSessionSnackNotFound
	}
	return l, err
}

// GetForUpdateTx loads a non-archived line item under a row lock.
func (r *SessionSnackRepo) GetForUpdateTx(ctx context.Context, tx *sql.Tx, id uint64) (model.SessionSnack, error) {
	l, err := scanSessionSnack(tx.QueryRowContext(ctx,
		"SELECT "+sessionSnackCols+" FROM session_snacks WHERE id=? AND archive=0 LIMIT 1 FOR UPDATE", id))
	if errors.Is(err, sql.ErrNoRows) {
		return l, ErrSessionSnackNotFound
	}
	return l, err
}

// UpdateTx rewrites the quantity of a line item inside an open
// transaction. The price snapshot never changes after creation.
func (r *SessionSnackRepo) UpdateTx(ctx context.Context, tx *sql.Tx, l *model.SessionSnack) error {
	l.Recalculate()
	res, err := tx.ExecContext(ctx,
		"UPDATE session_snacks SET quantity=?, total_cost=?, updated_by=? WHERE id=?",
		l.Quantity, l.TotalCost, l.UpdatedBy, l.ID)
	if err != nil {
		return err
	}
	return requireRow(res, ErrSessionSnackNotFound)
}

// ArchiveTx soft-deletes a line item inside an open transaction. The
// caller restores stock and reduces the session total alongside.
func (r *SessionSnackRepo) ArchiveTx(ctx context.Context, tx *sql.Tx, id, updatedBy uint64) error {
	res, err := tx.ExecContext(ctx,
		"UPDATE session_snacks SET archive=1, updated_by=? WHERE id=? AND archive=0", updatedBy, id)
	if err != nil {
		return err
	}
	return requireRow(res, ErrSessionSnackNotFound)
}

// ListBySession returns the non-archived line items of one session.
func (r *SessionSnackRepo) ListBySession(ctx context.Context, sessionID uint64) ([]model.SessionSnack, error) {
	rows, err := r.DB.QueryContext(ctx,
		"SELECT "+sessionSnackCols+" FROM session_snacks WHERE gaming_session_id=? AND archive=0 ORDER BY id", sessionID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	out := make([]model.SessionSnack, 0)
	for rows.Next() {
		l, err := scanSessionSnack(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, l)
	}
	return out, rows.Err()
}
