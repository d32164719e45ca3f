package repository

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/iliyamo/gaming-lounge-backend/internal/model"
	"github.com/iliyamo/gaming-lounge-backend/internal/utils"
)

// UserRepo provides account and profile access on the users and
// user_profiles tables.
type UserRepo struct{ DB *sql.DB }

func NewUserRepo(db *sql.DB) *UserRepo { return &UserRepo{DB: db} }

var ErrUsernameExists = errors.New("username already exists")

// Create inserts a user with a bcrypt-hashed password and returns its ID.
func (r *UserRepo) Create(ctx context.Context, username, email, password, firstName, lastName string, cost int) (uint64, error) {
	username = strings.ToLower(strings.TrimSpace(username))
	hash, err := utils.HashPassword(password, cost)
	if err != nil {
		return 0, err
	}
	res, err := r.DB.ExecContext(ctx,
		"INSERT INTO users (username, email, password_hash, first_name, last_name) VALUES (?,?,?,?,?)",
		username, strings.TrimSpace(email), hash, firstName, lastName)
	if err != nil {
		if strings.Contains(strings.ToLower(err.Error()), "1062") {
			return 0, ErrUsernameExists
		}
		return 0, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, err
	}
	return uint64(id), nil
}

const userCols = "id,username,email,password_hash,first_name,last_name,is_active,created_at,updated_at,archive"

func scanUser(row *sql.Row) (model.User, error) {
	var u model.User
	err := row.Scan(&u.ID, &u.Username, &u.Email, &u.PasswordHash, &u.FirstName,
		&u.LastName, &u.IsActive, &u.CreatedAt, &u.UpdatedAt, &u.Archive)
	return u, err
}

// GetByUsername fetches a user by normalized username.
func (r *UserRepo) GetByUsername(ctx context.Context, username string) (model.User, error) {
	username = strings.ToLower(strings.TrimSpace(username))
	u, err := scanUser(r.DB.QueryRowContext(ctx,
		"SELECT "+userCols+" FROM users WHERE username=? LIMIT 1", username))
	if errors.Is(err, sql.ErrNoRows) {
		return u, ErrUserNotFound
	}
	return u, err
}

// GetByID fetches a user by id regardless of archive state.
func (r *UserRepo) GetByID(ctx context.Context, id uint64) (model.User, error) {
	u, err := scanUser(r.DB.QueryRowContext(ctx,
		"SELECT "+userCols+" FROM users WHERE id=? LIMIT 1", id))
	if errors.Is(err, sql.ErrNoRows) {
		return u, ErrUserNotFound
	}
	return u, err
}

const profileCols = "id,user_id,phone_number,address,date_of_birth,created_by,updated_by,created_at,updated_at,archive"

type profileScanner interface{ Scan(dest ...any) error }

func scanProfile(row profileScanner) (model.UserProfile, error) {
	var (
		p   model.UserProfile
		dob sql.NullTime
	)
	err := row.Scan(&p.ID, &p.UserID, &p.PhoneNumber, &p.Address, &dob,
		&p.CreatedBy, &p.UpdatedBy, &p.CreatedAt, &p.UpdatedAt, &p.Archive)
	if dob.Valid {
		t := dob.Time
		p.DateOfBirth = &t
	}
	return p, err
}

// CreateProfile inserts the 1:1 profile row for a user.
func (r *UserRepo) CreateProfile(ctx context.Context, p *model.UserProfile) error {
	res, err := r.DB.ExecContext(ctx,
		"INSERT INTO user_profiles (user_id, phone_number, address, date_of_birth, created_by, updated_by) VALUES (?,?,?,?,?,?)",
		p.UserID, p.PhoneNumber, p.Address, p.DateOfBirth, p.CreatedBy, p.UpdatedBy)
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

// GetProfile fetches a profile row by its own id.
func (r *UserRepo) GetProfile(ctx context.Context, id uint64) (model.UserProfile, error) {
	p, err := scanProfile(r.DB.QueryRowContext(ctx,
		"SELECT "+profileCols+" FROM user_profiles WHERE id=? LIMIT 1", id))
	if errors.Is(err, sql.ErrNoRows) {
		return p, ErrProfileNotFound
	}
	return p, err
}

// GetProfileByUserID fetches the profile attached to a user.
func (r *UserRepo) GetProfileByUserID(ctx context.Context, userID uint64) (model.UserProfile, error) {
	p, err := scanProfile(r.DB.QueryRowContext(ctx,
		"SELECT "+profileCols+" FROM user_profiles WHERE user_id=? LIMIT 1", userID))
	if errors.Is(err, sql.ErrNoRows) {
		return p, ErrProfileNotFound
	}
	return p, err
}

// ListProfiles returns all non-archived profiles, newest first.
func (r *UserRepo) ListProfiles(ctx context.Context) ([]model.UserProfile, error) {
	rows, err := r.DB.QueryContext(ctx,
		"SELECT "+profileCols+" FROM user_profiles WHERE archive=0 ORDER BY id DESC")
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	out := make([]model.UserProfile, 0)
	for rows.Next() {
		p, err := scanProfile(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

// UpdateProfile rewrites the mutable profile fields and stamps the updater.
func (r *UserRepo) UpdateProfile(ctx context.Context, p *model.UserProfile) error {
	res, err := r.DB.ExecContext(ctx,
		"UPDATE user_profiles SET phone_number=?, address=?, date_of_birth=?, updated_by=? WHERE id=?",
		p.PhoneNumber, p.Address, p.DateOfBirth, p.UpdatedBy, p.ID)
	if err != nil {
		return err
	}
	return requireRow(res, ErrProfileNotFound)
}

// ArchiveProfile soft-deletes a profile.
func (r *UserRepo) ArchiveProfile(ctx context.Context, id, updatedBy uint64) error {
	res, err := r.DB.ExecContext(ctx,
		"UPDATE user_profiles SET archive=1, updated_by=? WHERE id=? AND archive=0", updatedBy, id)
	if err != nil {
		return err
	}
	return requireRow(res, ErrProfileNotFound)
}

// requireRow converts a zero-rows-affected update into the given sentinel.
func requireRow(res sql.Result, notFound error) error {
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return notFound
	}
	return nil
}
