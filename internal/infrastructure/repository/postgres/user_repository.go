package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/lucasveiga/palpiteiro/internal/domain/user"
)

type userTableModel struct {
	ID           string       `db:"id"`
	Username     string       `db:"username"`
	PasswordHash string       `db:"password_hash"`
	IsAdmin      bool         `db:"is_admin"`
	CreatedAt    time.Time    `db:"created_at"`
	LastAccessAt sql.NullTime `db:"last_access_at"`
}

type UserRepository struct {
	db *sqlx.DB
}

func NewUserRepository(db *sqlx.DB) *UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) Create(ctx context.Context, u *user.User) error {
	const insert = `
INSERT INTO users (id, username, password_hash, is_admin, created_at)
VALUES ($1, $2, $3, $4, $5)`

	if _, err := r.db.ExecContext(ctx, insert,
		u.ID, u.Username, u.PasswordHash, u.IsAdmin, u.CreatedAt); err != nil {
		return fmt.Errorf("insert user %s: %w", u.Username, err)
	}
	return nil
}

func (r *UserRepository) GetByUsername(ctx context.Context, username string) (*user.User, error) {
	var row userTableModel
	err := r.db.GetContext(ctx, &row, `SELECT * FROM users WHERE username = $1`, username)
	if isNotFound(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("select user %s: %w", username, err)
	}

	out := &user.User{
		ID:           row.ID,
		Username:     row.Username,
		PasswordHash: row.PasswordHash,
		IsAdmin:      row.IsAdmin,
		CreatedAt:    row.CreatedAt,
	}
	if row.LastAccessAt.Valid {
		out.LastAccessAt = row.LastAccessAt.Time
	}
	return out, nil
}

func (r *UserRepository) UpdateLastAccess(ctx context.Context, username string, at time.Time) error {
	const update = `UPDATE users SET last_access_at = $2 WHERE username = $1`

	if _, err := r.db.ExecContext(ctx, update, username, at); err != nil {
		return fmt.Errorf("update last access %s: %w", username, err)
	}
	return nil
}
