package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/iliyamo/gaming-lounge-backend/internal/model"
)

// PaymentRepo persists ledger entries. The ledger is additive: entries are
// only ever inserted, never mutated, and recording one touches nothing on
// the session row.
type PaymentRepo struct{ DB *sql.DB }

func NewPaymentRepo(db *sql.DB) *PaymentRepo { return &PaymentRepo{DB: db} }

const paymentCols = "id,session_id,amount_paid,payment_method,payment_status,transaction_reference,created_by,updated_by,created_at,updated_at,archive"

func scanPayment(row rowScanner) (model.Payment, error) {
	var p model.Payment
	err := row.Scan(&p.ID, &p.SessionID, &p.AmountPaid, &p.PaymentMethod, &p.PaymentStatus,
		&p.TransactionReference, &p.CreatedBy, &p.UpdatedBy, &p.CreatedAt, &p.UpdatedAt, &p.Archive)
	return p, err
}

// Create appends a ledger entry.
func (r *PaymentRepo) Create(ctx context.Context, p *model.Payment) error {
	res, err := r.DB.ExecContext(ctx,
		"INSERT INTO payments (session_id, amount_paid, payment_method, payment_status, transaction_reference, created_by, updated_by) VALUES (?,?,?,?,?,?,?)",
		p.SessionID, p.AmountPaid, p.PaymentMethod, p.PaymentStatus, p.TransactionReference, p.CreatedBy, p.UpdatedBy)
	if err != nil {
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	p.ID = uint64(id)
	return nil
}

// GetByID fetches a ledger entry by id.
func (r *PaymentRepo) GetByID(ctx context.Context, id uint64) (model.Payment, error) {
	p, err := scanPayment(r.DB.QueryRowContext(ctx,
		"SELECT "+paymentCols+" FROM payments WHERE id=? LIMIT 1", id))
	if errors.Is(err, sql.ErrNoRows) {
		return p, ErrPaymentNotFound
	}
	return p, err
}

// ListBySession returns the ledger entries of one session in insertion
// order.
func (r *PaymentRepo) ListBySession(ctx context.Context, sessionID uint64) ([]model.Payment, error) {
	rows, err := r.DB.QueryContext(ctx,
		"SELECT "+paymentCols+" FROM payments WHERE session_id=? AND archive=0 ORDER BY id", sessionID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	out := make([]model.Payment, 0)
	for rows.Next() {
		p, err := scanPayment(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}
