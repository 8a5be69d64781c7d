package applications

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// NewApplication captures the required job-details form plus at most one
// generated artifact.
type NewApplication struct {
	UserEmail       string
	CompanyName     string
	Role            string
	JobDescription  string
	ResumeReview    *string
	CoverLetter     *string
	NetworkingEmail *string
}

// Service contains business logic for applications.
type Service struct {
	Repo Repo
}

// NewService constructs a Service.
func NewService(repo Repo) *Service {
	return &Service{Repo: repo}
}

// Create validates and inserts one application row. Repeated actions for the
// same company and role insert new rows rather than updating old ones.
func (s *Service) Create(ctx context.Context, input NewApplication) (Application, error) {
	if s == nil || s.Repo == nil {
		return Application{}, errors.New("applications service not configured")
	}
	if strings.TrimSpace(input.UserEmail) == "" {
		return Application{}, fmt.Errorf("%w: user email is required", ErrInvalidInput)
	}
	if field, ok := missingField(input); !ok {
		return Application{}, fmt.Errorf("%w: %s is required", ErrInvalidInput, field)
	}

	app := Application{
		ID:              uuid.NewString(),
		UserEmail:       input.UserEmail,
		CompanyName:     strings.TrimSpace(input.CompanyName),
		Role:            strings.TrimSpace(input.Role),
		JobDescription:  strings.TrimSpace(input.JobDescription),
		Status:          StatusCreated,
		ResumeReview:    input.ResumeReview,
		CoverLetter:     input.CoverLetter,
		NetworkingEmail: input.NetworkingEmail,
		CreatedAt:       time.Now().UTC(),
	}
	if err := s.Repo.Create(ctx, app); err != nil {
		return Application{}, err
	}
	return app, nil
}

// ListByUser returns a user's applications newest first.
func (s *Service) ListByUser(ctx context.Context, userEmail string) ([]Application, error) {
	if s == nil || s.Repo == nil {
		return nil, errors.New("applications service not configured")
	}
	if strings.TrimSpace(userEmail) == "" {
		return nil, fmt.Errorf("%w: user email is required", ErrInvalidInput)
	}
	return s.Repo.ListByUser(ctx, userEmail)
}

// missingField names the first empty required field, or ok=true if all are set.
func missingField(input NewApplication) (string, bool) {
	switch {
	case strings.TrimSpace(input.CompanyName) == "":
		return "company name", false
	case strings.TrimSpace(input.Role) == "":
		return "role", false
	case strings.TrimSpace(input.JobDescription) == "":
		return "job description", false
	}
	return "", true
}
