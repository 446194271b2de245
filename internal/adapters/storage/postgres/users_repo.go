package postgres

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	"animal-rescue-portal/internal/domain/users"
)

// UsersRepo implementa users.Repository y users.SessionRepository.
type UsersRepo struct {
	db *sql.DB
}

func NewUsersRepo(db *sql.DB) *UsersRepo {
	return &UsersRepo{db: db}
}

func (r *UsersRepo) Create(ctx context.Context, u users.User) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO users (id, username, email, password_hash, created_at)
		VALUES ($1,$2,$3,$4,$5)
	`, u.ID, u.Username, u.Email, u.PasswordHash, u.CreatedAt)
	if isUniqueViolation(err) {
		return users.ErrUserExists
	}
	return err
}

func (r *UsersRepo) GetByID(ctx context.Context, id string) (users.User, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return users.User{}, users.ErrNotFound
	}
	return r.getOne(ctx, `
		SELECT id, username, email, password_hash, created_at
		FROM users WHERE id = $1
	`, id)
}

func (r *UsersRepo) GetByUsername(ctx context.Context, username string) (users.User, error) {
	return r.getOne(ctx, `
		SELECT id, username, email, password_hash, created_at
		FROM users WHERE username = $1
	`, username)
}

func (r *UsersRepo) getOne(ctx context.Context, query string, arg string) (users.User, error) {
	var u users.User
	err := r.db.QueryRowContext(ctx, query, arg).Scan(&u.ID, &u.Username, &u.Email, &u.PasswordHash, &u.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return users.User{}, users.ErrNotFound
	}
	if err != nil {
		return users.User{}, err
	}
	return u, nil
}

func (r *UsersRepo) ExistsByUsernameOrEmail(ctx context.Context, username, email string) (bool, error) {
	var exists bool
	err := r.db.QueryRowContext(ctx, `
		SELECT EXISTS (SELECT 1 FROM users WHERE username = $1 OR email = $2)
	`, username, email).Scan(&exists)
	return exists, err
}

func (r *UsersRepo) CreateSession(ctx context.Context, s users.Session) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO sessions (id, user_id, created_at, expires_at)
		VALUES ($1,$2,$3,$4)
	`, s.ID, s.UserID, s.CreatedAt, s.ExpiresAt)
	return err
}

func (r *UsersRepo) GetSession(ctx context.Context, id string) (users.Session, error) {
	var s users.Session
	err := r.db.QueryRowContext(ctx, `
		SELECT id, user_id, created_at, expires_at
		FROM sessions WHERE id = $1
	`, id).Scan(&s.ID, &s.UserID, &s.CreatedAt, &s.ExpiresAt)
	if errors.Is(err, sql.ErrNoRows) {
		return users.Session{}, users.ErrNotFound
	}
	if err != nil {
		return users.Session{}, err
	}
	return s, nil
}

func (r *UsersRepo) DeleteSession(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM sessions WHERE id = $1`, id)
	if err != nil {
		return err
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return users.ErrNotFound
	}
	return nil
}

func (r *UsersRepo) DeleteExpiredSessions(ctx context.Context, before time.Time) (int64, error) {
	res, err := r.db.ExecContext(ctx, `DELETE FROM sessions WHERE expires_at <= $1`, before)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}
