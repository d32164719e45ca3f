package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/shopspring/decimal"

	"github.com/iliyamo/gaming-lounge-backend/internal/model"
)

// SessionRepo provides persistence for gaming sessions. Session creation
// and closure run inside handler-managed transactions together with the
// station occupancy flip, so the write paths are exposed as Tx variants.
type SessionRepo struct{ DB *sql.DB }

func NewSessionRepo(db *sql.DB) *SessionRepo { return &SessionRepo{DB: db} }

const sessionCols = "id,user_id,station_id,duration_id,number_of_players,check_in_time,check_out_time,calculated_gaming_cost,total_session_cost,session_status,is_walk_in_customer,notes,created_by,updated_by,created_at,updated_at,archive"

func scanSession(row rowScanner) (model.GamingSession, error) {
	var (
		s     model.GamingSession
		out   sql.NullTime
		notes sql.NullString
	)
	err := row.Scan(&s.ID, &s.UserID, &s.StationID, &s.DurationID, &s.NumberOfPlayers,
		&s.CheckInTime, &out, &s.CalculatedGamingCost, &s.TotalSessionCost,
		&s.SessionStatus, &s.IsWalkInCustomer, &notes,
		&s.CreatedBy, &s.UpdatedBy, &s.CreatedAt, &s.UpdatedAt, &s.Archive)
	if out.Valid {
		t := out.Time.UTC()
		s.CheckOutTime = &t
	}
	s.Notes = notes.String
	return s, err
}

// CreateTx inserts a session inside an open transaction and reads back the
// database-assigned timestamps.
func (r *SessionRepo) CreateTx(ctx context.Context, tx *sql.Tx, s *model.GamingSession) error {
	res, err := tx.ExecContext(ctx,
		"INSERT INTO gaming_sessions (user_id, station_id, duration_id, number_of_players, check_in_time, check_out_time, calculated_gaming_cost, total_session_cost, session_status, is_walk_in_customer, notes, created_by, updated_by) VALUES (?,?,?,?,?,?,?,?,?,?,?,?,?)",
		s.UserID, s.StationID, s.DurationID, s.NumberOfPlayers,
		s.CheckInTime, s.CheckOutTime, s.CalculatedGamingCost, s.TotalSessionCost,
		s.SessionStatus, s.IsWalkInCustomer, s.Notes, s.CreatedBy, s.UpdatedBy)
	if err != nil {
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	s.ID = uint64(id)
	return tx.QueryRowContext(ctx,
		"SELECT created_at, updated_at FROM gaming_sessions WHERE id=?", s.ID).
		Scan(&s.CreatedAt, &s.UpdatedAt)
}

// GetByID fetches a session by id regardless of archive state.
func (r *SessionRepo) GetByID(ctx context.Context, id uint64) (model.GamingSession, error) {
	s, err := scanSession(r.DB.QueryRowContext(ctx,
		"SELECT "+sessionCols+" FROM gaming_sessions WHERE id=? LIMIT 1", id))
	if errors.Is(err, sql.ErrNoRows) {
		return s, ErrSessionNotFound
	}
	return s, err
}

// GetForUpdateTx loads a session under a row lock so concurrent snack
// attachments and closures against the same session serialize.
func (r *SessionRepo) GetForUpdateTx(ctx context.Context, tx *sql.Tx, id uint64) (model.GamingSession, error) {
	s, err := scanSession(tx.QueryRowContext(ctx,
		"SELECT "+sessionCols+" FROM gaming_sessions WHERE id=? LIMIT 1 FOR UPDATE", id))
	if errors.Is(err, sql.ErrNoRows) {
		return s, ErrSessionNotFound
	}
	return s, err
}

// UpdateTx rewrites the booking dimensions and recomputed costs of a
// session inside an open transaction. Status and archive are untouched;
// closure owns those.
func (r *SessionRepo) UpdateTx(ctx context.Context, tx *sql.Tx, s *model.GamingSession) error {
	res, err := tx.ExecContext(ctx,
		"UPDATE gaming_sessions SET station_id=?, duration_id=?, number_of_players=?, check_in_time=?, check_out_time=?, calculated_gaming_cost=?, total_session_cost=?, is_walk_in_customer=?, notes=?, updated_by=? WHERE id=?",
		s.StationID, s.DurationID, s.NumberOfPlayers, s.CheckInTime, s.CheckOutTime,
		s.CalculatedGamingCost, s.TotalSessionCost, s.IsWalkInCustomer, s.Notes, s.UpdatedBy, s.ID)
	if err != nil {
		return err
	}
	return requireRow(res, ErrSessionNotFound)
}

// CloseTx moves a session to a terminal status and archives it inside an
// open transaction. The caller flips the station's occupancy flag back in
// the same transaction.
func (r *SessionRepo) CloseTx(ctx context.Context, tx *sql.Tx, id uint64, status string, closedAt time.Time, updatedBy uint64) error {
	res, err := tx.ExecContext(ctx,
		"UPDATE gaming_sessions SET session_status=?, check_out_time=?, archive=1, updated_by=? WHERE id=? AND session_status=?",
		status, closedAt, updatedBy, id, model.SessionActive)
	if err != nil {
		return err
	}
	return requireRow(res, ErrSessionNotFound)
}

// AddToTotalTx adjusts total_session_cost by delta (negative to reduce)
// inside an open transaction. Used by snack attachment and line updates.
func (r *SessionRepo) AddToTotalTx(ctx context.Context, tx *sql.Tx, id uint64, delta decimal.Decimal, updatedBy uint64) error {
	res, err := tx.ExecContext(ctx,
		"UPDATE gaming_sessions SET total_session_cost=total_session_cost+?, updated_by=? WHERE id=?",
		delta, updatedBy, id)
	if err != nil {
		return err
	}
	return requireRow(res, ErrSessionNotFound)
}

// ExtendCheckOutTx pushes the expected check-out time forward and adds the
// extension's cost to both cost columns inside an open transaction.
func (r *SessionRepo) ExtendCheckOutTx(ctx context.Context, tx *sql.Tx, id uint64, newCheckOut time.Time, extraCost decimal.Decimal, updatedBy uint64) error {
	res, err := tx.ExecContext(ctx,
		"UPDATE gaming_sessions SET check_out_time=?, calculated_gaming_cost=calculated_gaming_cost+?, total_session_cost=total_session_cost+?, updated_by=? WHERE id=? AND session_status=?",
		newCheckOut, extraCost, extraCost, updatedBy, id, model.SessionActive)
	if err != nil {
		return err
	}
	return requireRow(res, ErrSessionNotFound)
}

// List returns non-archived sessions, newest first.
func (r *SessionRepo) List(ctx context.Context) ([]model.GamingSession, error) {
	return r.list(ctx,
		"SELECT "+sessionCols+" FROM gaming_sessions WHERE archive=0 ORDER BY id DESC")
}

// ListActive returns sessions currently in progress.
func (r *SessionRepo) ListActive(ctx context.Context) ([]model.GamingSession, error) {
	return r.list(ctx,
		"SELECT "+sessionCols+" FROM gaming_sessions WHERE session_status=? AND archive=0 ORDER BY check_in_time",
		model.SessionActive)
}

// ListPast returns closed sessions, most recent first.
func (r *SessionRepo) ListPast(ctx context.Context) ([]model.GamingSession, error) {
	return r.list(ctx,
		"SELECT "+sessionCols+" FROM gaming_sessions WHERE session_status IN (?,?) ORDER BY check_in_time DESC",
		model.SessionCompleted, model.SessionCancelled)
}

func (r *SessionRepo) list(ctx context.Context, q string, args ...any) ([]model.GamingSession, error) {
	rows, err := r.DB.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	out := make([]model.GamingSession, 0)
	for rows.Next() {
		s, err := scanSession(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, rows.Err()
}

// SessionDetail is the fully joined view of a session returned by the
// detail endpoint: the session row plus its snack lines and payments.
type SessionDetail struct {
	ID                   uint64          `json:"id"`
	UserID               uint64          `json:"user_id"`
	StationID            uint64          `json:"station_id"`
	StationName          string          `json:"station_name"`
	DurationID           uint64          `json:"duration_id"`
	NumberOfPlayers      uint32          `json:"number_of_players"`
	CheckInTime          time.Time       `json:"check_in_time"`
	CheckOutTime         *time.Time      `json:"check_out_time,omitempty"`
	CalculatedGamingCost decimal.Decimal `json:"calculated_gaming_cost"`
	TotalSessionCost     decimal.Decimal `json:"total_session_cost"`
	SessionStatus        string          `json:"session_status"`
	IsWalkInCustomer     bool            `json:"is_walk_in_customer"`
	Notes                string          `json:"notes,omitempty"`
	Snacks               []SnackLine     `json:"snacks"`
	Payments             []PaymentLine   `json:"payments"`
	AmountPaid           decimal.Decimal `json:"amount_paid"`
	BalanceDue           decimal.Decimal `json:"balance_due"`
}

// SnackLine is one snack entry inside a session detail.
type SnackLine struct {
	ID              uint64          `json:"id"`
	SnackID         uint64          `json:"snack_id"`
	SnackName       string          `json:"snack_name"`
	Quantity        uint32          `json:"quantity"`
	UnitPriceAtTime decimal.Decimal `json:"unit_price_at_time"`
	TotalCost       decimal.Decimal `json:"total_cost"`
}

// PaymentLine is one ledger entry inside a session detail.
type PaymentLine struct {
	ID                   uint64          `json:"id"`
	AmountPaid           decimal.Decimal `json:"amount_paid"`
	PaymentMethod        string          `json:"payment_method"`
	PaymentStatus        string          `json:"payment_status"`
	TransactionReference *string         `json:"transaction_reference,omitempty"`
	CreatedAt            time.Time       `json:"created_at"`
}

// Detail assembles the joined view of one session. Amount paid counts only
// COMPLETED ledger entries; balance due is total cost minus that.
func (r *SessionRepo) Detail(ctx context.Context, id uint64) (SessionDetail, error) {
	var (
		d     SessionDetail
		out   sql.NullTime
		notes sql.NullString
	)
	err := r.DB.QueryRowContext(ctx,
		`SELECT gs.id, gs.user_id, gs.station_id, st.name, gs.duration_id,
		        gs.number_of_players, gs.check_in_time, gs.check_out_time,
		        gs.calculated_gaming_cost, gs.total_session_cost, gs.session_status,
		        gs.is_walk_in_customer, gs.notes
		 FROM gaming_sessions gs
		 JOIN stations st ON st.id = gs.station_id
		 WHERE gs.id=? LIMIT 1`, id).
		Scan(&d.ID, &d.UserID, &d.StationID, &d.StationName, &d.DurationID,
			&d.NumberOfPlayers, &d.CheckInTime, &out,
			&d.CalculatedGamingCost, &d.TotalSessionCost, &d.SessionStatus,
			&d.IsWalkInCustomer, &notes)
	if errors.Is(err, sql.ErrNoRows) {
		return d, ErrSessionNotFound
	}
	if err != nil {
		return d, err
	}
	if out.Valid {
		t := out.Time.UTC()
		d.CheckOutTime = &t
	}
	d.Notes = notes.String

	snacks, err := r.DB.QueryContext(ctx,
		`SELECT ss.id, ss.snack_id, sn.name, ss.quantity, ss.unit_price_at_time, ss.total_cost
		 FROM session_snacks ss
		 JOIN snacks sn ON sn.id = ss.snack_id
		 WHERE ss.gaming_session_id=? AND ss.archive=0
		 ORDER BY ss.id`, id)
	if err != nil {
		return d, err
	}
	defer snacks.Close()
	d.Snacks = make([]SnackLine, 0)
	for snacks.Next() {
		var l SnackLine
		if err := snacks.Scan(&l.ID, &l.SnackID, &l.SnackName, &l.Quantity, &l.UnitPriceAtTime, &l.TotalCost); err != nil {
			return d, err
		}
		d.Snacks = append(d.Snacks, l)
	}
	if err := snacks.Err(); err != nil {
		return d, err
	}

	pays, err := r.DB.QueryContext(ctx,
		`SELECT id, amount_paid, payment_method, payment_status, transaction_reference, created_at
		 FROM payments
		 WHERE session_id=? AND archive=0
		 ORDER BY id`, id)
	if err != nil {
		return d, err
	}
	defer pays.Close()
	d.Payments = make([]PaymentLine, 0)
	d.AmountPaid = decimal.Zero
	for pays.Next() {
		var l PaymentLine
		if err := pays.Scan(&l.ID, &l.AmountPaid, &l.PaymentMethod, &l.PaymentStatus, &l.TransactionReference, &l.CreatedAt); err != nil {
			return d, err
		}
		d.Payments = append(d.Payments, l)
		if l.PaymentStatus == model.PaymentCompleted {
			d.AmountPaid = d.AmountPaid.Add(l.AmountPaid)
		}
	}
	if err := pays.Err(); err != nil {
		return d, err
	}
	d.BalanceDue = d.TotalSessionCost.Sub(d.AmountPaid)
	return d, nil
}
