package applications

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
)

func TestPGRepoCreateInsertsOneArtifact(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	repo := &PGRepo{DB: db}
	cover := "Dear team"
	app := Application{
		ID:             "app-1",
		UserEmail:      "a@example.com",
		CompanyName:    "Acme",
		Role:           "Engineer",
		JobDescription: "jd",
		Status:         StatusCreated,
		CoverLetter:    &cover,
		CreatedAt:      time.Now().UTC(),
	}

	mock.ExpectExec("INSERT INTO applications").
		WithArgs(
			app.ID,
			app.UserEmail,
			app.CompanyName,
			app.Role,
			app.JobDescription,
			app.Status,
			nil,   // resume_review
			cover, // cover_letter
			nil,   // networking_email
			app.CreatedAt,
		).
		WillReturnResult(sqlmock.NewResult(1, 1))

	if err := repo.Create(context.Background(), app); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("ExpectationsWereMet: %v", err)
	}
}

func TestPGRepoListByUserScansNullArtifacts(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	repo := &PGRepo{DB: db}
	now := time.Now().UTC()

	rows := sqlmock.NewRows([]string{
		"id", "user_email", "company_name", "role", "job_description",
		"status", "resume_review", "cover_letter", "networking_email", "created_at",
	}).
		AddRow("app-2", "a@example.com", "Acme", "Engineer", "jd", StatusCreated, nil, "letter", nil, now).
		AddRow("app-1", "a@example.com", "Beta", "Analyst", "jd2", StatusCreated, "review", nil, nil, now.Add(-time.Hour))

	mock.ExpectQuery("SELECT id, user_email, company_name").
		WithArgs("a@example.com").
		WillReturnRows(rows)

	got, err := repo.ListByUser(context.Background(), "a@example.com")
	if err != nil {
		t.Fatalf("ListByUser: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(got))
	}
	if got[0].CoverLetter == nil || *got[0].CoverLetter != "letter" {
		t.Fatalf("cover letter not scanned: %+v", got[0])
	}
	if got[0].ResumeReview != nil || got[0].NetworkingEmail != nil {
		t.Fatalf("null columns should stay nil: %+v", got[0])
	}
	if got[1].ResumeReview == nil || *got[1].ResumeReview != "review" {
		t.Fatalf("resume review not scanned: %+v", got[1])
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("ExpectationsWereMet: %v", err)
	}
}
