package resumes

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Service contains business logic for resumes.
type Service struct {
	Repo Repo
}

// NewService constructs a Service.
func NewService(repo Repo) *Service {
	return &Service{Repo: repo}
}

// Save validates and stores a new resume as the user's active one. Prior
// resumes are kept but deactivated.
func (s *Service) Save(ctx context.Context, userEmail string, content []byte, fileName string) (Resume, error) {
	if s == nil || s.Repo == nil {
		return Resume{}, errors.New("resumes service not configured")
	}
	if strings.TrimSpace(userEmail) == "" {
		return Resume{}, ErrInvalidInput
	}
	if len(content) == 0 {
		return Resume{}, ErrEmptyContent
	}
	if strings.TrimSpace(fileName) == "" {
		fileName = "resume.pdf"
	}

	resume := Resume{
		ID:         uuid.NewString(),
		UserEmail:  userEmail,
		FileName:   fileName,
		Content:    content,
		UploadedAt: time.Now().UTC(),
		IsActive:   true,
	}
	if err := s.Repo.SaveActive(ctx, resume); err != nil {
		return Resume{}, err
	}
	return resume, nil
}

// Active returns the user's active resume.
func (s *Service) Active(ctx context.Context, userEmail string) (Resume, error) {
	if s == nil || s.Repo == nil {
		return Resume{}, errors.New("resumes service not configured")
	}
	if strings.TrimSpace(userEmail) == "" {
		return Resume{}, ErrInvalidInput
	}
	return s.Repo.GetActive(ctx, userEmail)
}
