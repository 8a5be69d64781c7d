package assistant

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"jobapp-backend/internal/applications"
	"jobapp-backend/internal/generate"
	"jobapp-backend/internal/resumes"
	"jobapp-backend/internal/shared/telemetry"
	"jobapp-backend/internal/users"
)

// Action is one of the three supported generation actions.
type Action string

const (
	ActionResumeReview    Action = "resume_review"
	ActionCoverLetter     Action = "cover_letter"
	ActionNetworkingEmail Action = "networking_email"
)

var (
	// ErrNoActiveResume means the user must upload a resume before generating.
	ErrNoActiveResume = errors.New("please upload a resume first")
	// ErrUnknownAction means the action name is not one of the three supported.
	ErrUnknownAction = errors.New("unknown action")
)

// JobDetails is the job-application form: all three fields are required.
type JobDetails struct {
	Company        string
	Role           string
	JobDescription string
}

// Result is the outcome of one successful generation action.
type Result struct {
	Action      Action
	Text        string
	Application applications.Application
}

// Extractor turns resume bytes into best-effort plain text.
type Extractor func(ctx context.Context, content []byte) string

// Service ties the active resume, the job-details form, and a prompt template
// through the generation pipeline, persisting the result.
type Service struct {
	Users        *users.Service
	Resumes      *resumes.Service
	Applications *applications.Service
	Pipeline     *generate.Pipeline
	Extract      Extractor
}

// Run executes one generation action end to end. Nothing is persisted unless
// generation succeeds.
func (s *Service) Run(ctx context.Context, email string, action Action, details JobDetails, cache *Cache) (Result, error) {
	if s == nil || s.Users == nil || s.Resumes == nil || s.Applications == nil || s.Pipeline == nil {
		return Result{}, errors.New("assistant service not configured")
	}

	user, err := s.Users.GetOrCreate(ctx, email)
	if err != nil {
		return Result{}, err
	}

	resumeText, err := s.activeResumeText(ctx, cache, user.Email)
	if err != nil {
		return Result{}, err
	}
	if strings.TrimSpace(resumeText) == "" {
		return Result{}, ErrNoActiveResume
	}

	if err := validateDetails(details); err != nil {
		return Result{}, err
	}

	tmpl, fields, err := promptFor(action, resumeText, details)
	if err != nil {
		return Result{}, err
	}

	text, err := s.Pipeline.Generate(ctx, tmpl, fields)
	if err != nil {
		return Result{}, err
	}

	input := applications.NewApplication{
		UserEmail:      user.Email,
		CompanyName:    details.Company,
		Role:           details.Role,
		JobDescription: details.JobDescription,
	}
	switch action {
	case ActionResumeReview:
		input.ResumeReview = &text
	case ActionCoverLetter:
		input.CoverLetter = &text
	case ActionNetworkingEmail:
		input.NetworkingEmail = &text
	}

	app, err := s.Applications.Create(ctx, input)
	if err != nil {
		return Result{}, err
	}
	cache.invalidateApplications()

	telemetry.Info("assist.completed", map[string]any{
		"action":         string(action),
		"user_email":     user.Email,
		"application_id": app.ID,
		"company":        app.CompanyName,
	})

	return Result{Action: action, Text: text, Application: app}, nil
}

// History lists the user's applications through the per-request cache.
func (s *Service) History(ctx context.Context, email string, cache *Cache) ([]applications.Application, error) {
	if apps, ok := cache.applications(); ok {
		return apps, nil
	}
	apps, err := s.Applications.ListByUser(ctx, email)
	if err != nil {
		return nil, err
	}
	cache.setApplications(apps)
	return apps, nil
}

// activeResumeText reads the active resume and extracts its text, memoized in
// the per-request cache. A missing resume or failed extraction both come back
// as empty text.
func (s *Service) activeResumeText(ctx context.Context, cache *Cache, email string) (string, error) {
	if text, _, missing, ok := cache.resume(); ok {
		if missing {
			return "", nil
		}
		return text, nil
	}

	resume, err := s.Resumes.Active(ctx, email)
	if err != nil {
		if errors.Is(err, resumes.ErrNotFound) {
			cache.setResume("", "", true)
			return "", nil
		}
		return "", err
	}

	text := ""
	if s.Extract != nil {
		text = s.Extract(ctx, resume.Content)
	}
	cache.setResume(text, resume.FileName, false)
	return text, nil
}

// validateDetails halts before generation, naming the first missing field.
func validateDetails(details JobDetails) error {
	switch {
	case strings.TrimSpace(details.Company) == "":
		return fmt.Errorf("%w: company name is required", applications.ErrInvalidInput)
	case strings.TrimSpace(details.Role) == "":
		return fmt.Errorf("%w: role is required", applications.ErrInvalidInput)
	case strings.TrimSpace(details.JobDescription) == "":
		return fmt.Errorf("%w: job description is required", applications.ErrInvalidInput)
	}
	return nil
}

// promptFor binds an action to its template and placeholder fields.
func promptFor(action Action, resumeText string, details JobDetails) (generate.Template, map[string]string, error) {
	fields := map[string]string{
		"text": resumeText,
		"jd":   details.JobDescription,
	}
	switch action {
	case ActionResumeReview:
		return generate.ResumeMatchTemplate, fields, nil
	case ActionCoverLetter:
		fields["company_name"] = details.Company
		fields["role"] = details.Role
		return generate.CoverLetterTemplate, fields, nil
	case ActionNetworkingEmail:
		fields["company_name"] = details.Company
		fields["role"] = details.Role
		return generate.NetworkingEmailTemplate, fields, nil
	default:
		return generate.Template{}, nil, fmt.Errorf("%w: %s", ErrUnknownAction, action)
	}
}
