package resumes

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
)

// PGRepo implements Repo using Postgres.
type PGRepo struct {
	DB *sql.DB
}

// SaveActive runs the deactivate-then-insert pair in a single transaction so
// a failure between the two cannot leave the user with zero or two active rows.
func (r *PGRepo) SaveActive(ctx context.Context, resume Resume) error {
	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin resume save: %w", err)
	}
	defer tx.Rollback()

	const deactivate = `
UPDATE resumes
SET is_active = FALSE
WHERE user_email = $1 AND is_active`
	if _, err := tx.ExecContext(ctx, deactivate, resume.UserEmail); err != nil {
		return fmt.Errorf("deactivate prior resumes: %w", err)
	}

	const insert = `
INSERT INTO resumes (id, user_email, file_name, content, uploaded_at, is_active)
VALUES ($1, $2, $3, $4, $5, TRUE)`
	if _, err := tx.ExecContext(ctx, insert,
		resume.ID,
		resume.UserEmail,
		resume.FileName,
		resume.Content,
		resume.UploadedAt,
	); err != nil {
		return fmt.Errorf("insert resume: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit resume save: %w", err)
	}
	return nil
}

// GetActive returns the single active resume for a user, if any.
func (r *PGRepo) GetActive(ctx context.Context, userEmail string) (Resume, error) {
	const query = `
SELECT id, user_email, file_name, content, uploaded_at, is_active
FROM resumes
WHERE user_email = $1 AND is_active
LIMIT 1`
	var resume Resume
	err := r.DB.QueryRowContext(ctx, query, userEmail).Scan(
		&resume.ID,
		&resume.UserEmail,
		&resume.FileName,
		&resume.Content,
		&resume.UploadedAt,
		&resume.IsActive,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Resume{}, ErrNotFound
		}
		return Resume{}, err
	}
	return resume, nil
}

var _ Repo = (*PGRepo)(nil)
