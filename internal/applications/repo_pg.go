package applications

import (
	"context"
	"database/sql"
)

// PGRepo implements Repo using Postgres.
type PGRepo struct {
	DB *sql.DB
}

// Create inserts one application row.
func (r *PGRepo) Create(ctx context.Context, app Application) error {
	const query = `
INSERT INTO applications (
    id,
    user_email,
    company_name,
    role,
    job_description,
    status,
    resume_review,
    cover_letter,
    networking_email,
    created_at
) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`

	status := app.Status
	if status == "" {
		status = StatusCreated
	}

	_, err := r.DB.ExecContext(ctx, query,
		app.ID,
		app.UserEmail,
		app.CompanyName,
		app.Role,
		app.JobDescription,
		status,
		nullableText(app.ResumeReview),
		nullableText(app.CoverLetter),
		nullableText(app.NetworkingEmail),
		app.CreatedAt,
	)
	return err
}

// ListByUser returns a user's applications newest first.
func (r *PGRepo) ListByUser(ctx context.Context, userEmail string) ([]Application, error) {
	const query = `
SELECT id, user_email, company_name, role, job_description, status, resume_review, cover_letter, networking_email, created_at
FROM applications
WHERE user_email = $1
ORDER BY created_at DESC`

	rows, err := r.DB.QueryContext(ctx, query, userEmail)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Application
	for rows.Next() {
		var app Application
		var review, cover, email sql.NullString
		if err := rows.Scan(
			&app.ID,
			&app.UserEmail,
			&app.CompanyName,
			&app.Role,
			&app.JobDescription,
			&app.Status,
			&review,
			&cover,
			&email,
			&app.CreatedAt,
		); err != nil {
			return nil, err
		}
		if review.Valid {
			app.ResumeReview = &review.String
		}
		if cover.Valid {
			app.CoverLetter = &cover.String
		}
		if email.Valid {
			app.NetworkingEmail = &email.String
		}
		out = append(out, app)
	}
	return out, rows.Err()
}

func nullableText(value *string) any {
	if value == nil || *value == "" {
		return nil
	}
	return *value
}

var _ Repo = (*PGRepo)(nil)
