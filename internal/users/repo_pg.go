package users

import (
	"context"
	"database/sql"
	"errors"
)

// PGRepo implements Repo using Postgres.
type PGRepo struct {
	DB *sql.DB
}

// GetOrCreate upserts the user row and refreshes last_login in one statement.
func (r *PGRepo) GetOrCreate(ctx context.Context, email string) (User, error) {
	const query = `
INSERT INTO users (email, created_at, last_login)
VALUES ($1, now(), now())
ON CONFLICT (email) DO UPDATE SET last_login = now()
RETURNING email, created_at, last_login`
	var user User
	var lastLogin sql.NullTime
	err := r.DB.QueryRowContext(ctx, query, email).Scan(
		&user.Email,
		&user.CreatedAt,
		&lastLogin,
	)
	if err != nil {
		return User{}, err
	}
	if lastLogin.Valid {
		user.LastLogin = &lastLogin.Time
	}
	return user, nil
}

// GetByEmail fetches a user without touching last_login.
func (r *PGRepo) GetByEmail(ctx context.Context, email string) (User, error) {
	const query = `
SELECT email, created_at, last_login
FROM users
WHERE email = $1
LIMIT 1`
	var user User
	var lastLogin sql.NullTime
	err := r.DB.QueryRowContext(ctx, query, email).Scan(
		&user.Email,
		&user.CreatedAt,
		&lastLogin,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return User{}, ErrNotFound
		}
		return User{}, err
	}
	if lastLogin.Valid {
		user.LastLogin = &lastLogin.Time
	}
	return user, nil
}

var _ Repo = (*PGRepo)(nil)
