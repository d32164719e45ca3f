package repository

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/iliyamo/gaming-lounge-backend/internal/model"
)

// ServicePriceRepo provides CRUD and lookup operations on the pricing
// table. FindForDimensions is the read side of the pricing resolver: it
// narrows candidates by the three always-required dimensions and leaves
// player-interval matching to the resolver's rule table.
type ServicePriceRepo struct{ DB *sql.DB }

func NewServicePriceRepo(db *sql.DB) *ServicePriceRepo { return &ServicePriceRepo{DB: db} }

const servicePriceCols = "id,service_type_id,game_type_id,duration_id,player_count,max_player_count,price,created_by,updated_by,created_at,updated_at,archive"

func scanServicePrice(row rowScanner) (model.ServicePrice, error) {
	var (
		p  model.ServicePrice
		pc sql.NullInt64
	)
	err := row.Scan(&p.ID, &p.ServiceTypeID, &p.GameTypeID, &p.DurationID, &pc,
		&p.MaxPlayerCount, &p.Price, &p.CreatedBy, &p.UpdatedBy, &p.CreatedAt, &p.UpdatedAt, &p.Archive)
	if pc.Valid {
		v := uint32(pc.Int64)
		p.PlayerCount = &v
	}
	return p, err
}

// FindForDimensions returns the non-archived rows matching the service
// type, game type and duration dimensions.
func (r *ServicePriceRepo) FindForDimensions(ctx context.Context, serviceTypeID, gameTypeID, durationID uint64) ([]model.ServicePrice, error) {
	rows, err := r.DB.QueryContext(ctx,
		"SELECT "+servicePriceCols+" FROM service_prices WHERE archive=0 AND service_type_id=? AND game_type_id=? AND duration_id=?",
		serviceTypeID, gameTypeID, durationID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	out := make([]model.ServicePrice, 0)
	for rows.Next() {
		p, err := scanServicePrice(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

// List returns all non-archived pricing rows, newest first.
func (r *ServicePriceRepo) List(ctx context.Context) ([]model.ServicePrice, error) {
	rows, err := r.DB.QueryContext(ctx,
		"SELECT "+servicePriceCols+" FROM service_prices WHERE archive=0 ORDER BY id DESC")
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	out := make([]model.ServicePrice, 0)
	for rows.Next() {
		p, err := scanServicePrice(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

// GetByID fetches a pricing row by id regardless of archive state.
func (r *ServicePriceRepo) GetByID(ctx context.Context, id uint64) (model.ServicePrice, error) {
	p, err := scanServicePrice(r.DB.QueryRowContext(ctx,
		"SELECT "+servicePriceCols+" FROM service_prices WHERE id=? LIMIT 1", id))
	if errors.Is(err, sql.ErrNoRows) {
		return p, ErrServicePriceNotFound
	}
	return p, err
}

// Create inserts a pricing row; a duplicate dimension tuple maps to
// ErrDuplicate via the table's unique index.
func (r *ServicePriceRepo) Create(ctx context.Context, p *model.ServicePrice) error {
	res, err := r.DB.ExecContext(ctx,
		"INSERT INTO service_prices (service_type_id, game_type_id, duration_id, player_count, max_player_count, price, created_by, updated_by) VALUES (?,?,?,?,?,?,?,?)",
		p.ServiceTypeID, p.GameTypeID, p.DurationID, p.PlayerCount, p.MaxPlayerCount, p.Price, p.CreatedBy, p.UpdatedBy)
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
	p.ID = uint64(id)
	return nil
}

// Update rewrites a pricing row and stamps the updater.
func (r *ServicePriceRepo) Update(ctx context.Context, p *model.ServicePrice) error {
	res, err := r.DB.ExecContext(ctx,
		"UPDATE service_prices SET service_type_id=?, game_type_id=?, duration_id=?, player_count=?, max_player_count=?, price=?, updated_by=? WHERE id=?",
		p.ServiceTypeID, p.GameTypeID, p.DurationID, p.PlayerCount, p.MaxPlayerCount, p.Price, p.UpdatedBy, p.ID)
	if err != nil {
		if strings.Contains(strings.ToLower(err.Error()), "1062") {
			return ErrDuplicate
		}
		return err
	}
	return requireRow(res, ErrServicePriceNotFound)
}

// Archive soft-deletes a pricing row.
func (r *ServicePriceRepo) Archive(ctx context.Context, id, updatedBy uint64) error {
	res, err := r.DB.ExecContext(ctx,
		"UPDATE service_prices SET archive=1, updated_by=? WHERE id=? AND archive=0", updatedBy, id)
	if err != nil {
		return err
	}
	return requireRow(res, ErrServicePriceNotFound)
}
