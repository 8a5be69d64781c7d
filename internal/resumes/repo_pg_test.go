package resumes

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
)

func TestPGRepoSaveActiveDeactivatesThenInsertsInOneTx(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	repo := &PGRepo{DB: db}
	resume := Resume{
		ID:         "resume-1",
		UserEmail:  "a@example.com",
		FileName:   "resume.pdf",
		Content:    []byte("%PDF-1.4"),
		UploadedAt: time.Now().UTC(),
		IsActive:   true,
	}

	mock.ExpectBegin()
	mock.ExpectExec("UPDATE resumes").
		WithArgs(resume.UserEmail).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("INSERT INTO resumes").
		WithArgs(
			resume.ID,
			resume.UserEmail,
			resume.FileName,
			resume.Content,
			resume.UploadedAt,
		).
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectCommit()

	if err := repo.SaveActive(context.Background(), resume); err != nil {
		t.Fatalf("SaveActive: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("ExpectationsWereMet: %v", err)
	}
}

func TestPGRepoSaveActiveRollsBackOnInsertFailure(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	repo := &PGRepo{DB: db}

	mock.ExpectBegin()
	mock.ExpectExec("UPDATE resumes").
		WithArgs("a@example.com").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("INSERT INTO resumes").
		WillReturnError(errors.New("disk full"))
	mock.ExpectRollback()

	resume := Resume{ID: "resume-1", UserEmail: "a@example.com", FileName: "resume.pdf", Content: []byte("x"), UploadedAt: time.Now().UTC()}
	if err := repo.SaveActive(context.Background(), resume); err == nil {
		t.Fatalf("expected error from failed insert")
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("ExpectationsWereMet: %v", err)
	}
}

func TestPGRepoGetActiveMapsNoRowsToNotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	repo := &PGRepo{DB: db}

	mock.ExpectQuery("SELECT id, user_email, file_name, content, uploaded_at, is_active").
		WithArgs("a@example.com").
		WillReturnRows(sqlmock.NewRows([]string{"id", "user_email", "file_name", "content", "uploaded_at", "is_active"}))

	if _, err := repo.GetActive(context.Background(), "a@example.com"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("ExpectationsWereMet: %v", err)
	}
}
