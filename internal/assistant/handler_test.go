package assistant

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"jobapp-backend/internal/applications"
	"jobapp-backend/internal/generate"
	"jobapp-backend/internal/resumes"
	"jobapp-backend/internal/shared/server/middleware"
	"jobapp-backend/internal/users"
)

func setupRouter(t *testing.T, client *fakeLLM) (*gin.Engine, *Service) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	pipeline := generate.NewPipeline(client)
	pipeline.Sleep = func(time.Duration) {}

	svc := &Service{
		Users:        users.NewService(users.NewMemoryRepo()),
		Resumes:      resumes.NewService(resumes.NewMemoryRepo()),
		Applications: applications.NewService(applications.NewMemoryRepo()),
		Pipeline:     pipeline,
		Extract:      func(ctx context.Context, content []byte) string { return string(content) },
	}

	r := gin.New()
	r.Use(middleware.Auth("test"))
	api := r.Group("/api/v1")
	NewHandler(svc).RegisterRoutes(api)
	return r, svc
}

func doAssist(t *testing.T, r *gin.Engine, path, email, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if email != "" {
		req.Header.Set("X-User-Email", email)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestAssistRequiresIdentity(t *testing.T) {
	r, _ := setupRouter(t, &fakeLLM{output: "out"})

	w := doAssist(t, r, "/api/v1/assist/cover-letter", "", `{"company":"Acme","role":"Engineer","jobDescription":"jd"}`)
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d: %s", w.Code, w.Body.String())
	}
}

func TestAssistWithoutResumeReturnsConflict(t *testing.T) {
	r, _ := setupRouter(t, &fakeLLM{output: "out"})

	w := doAssist(t, r, "/api/v1/assist/cover-letter", "a@example.com", `{"company":"Acme","role":"Engineer","jobDescription":"jd"}`)
	if w.Code != http.StatusConflict {
		t.Fatalf("expected 409, got %d: %s", w.Code, w.Body.String())
	}
	var resp struct {
		Error struct {
			Code string `json:"code"`
		} `json:"error"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.Error.Code != "resume_required" {
		t.Fatalf("expected resume_required, got %q", resp.Error.Code)
	}
}

func TestAssistSuccessReturnsGeneratedText(t *testing.T) {
	r, svc := setupRouter(t, &fakeLLM{output: "generated email"})

	if _, err := svc.Resumes.Save(context.Background(), "a@example.com", []byte("resume text"), "resume.pdf"); err != nil {
		t.Fatalf("save resume: %v", err)
	}

	w := doAssist(t, r, "/api/v1/assist/networking-email", "a@example.com", `{"company":"Acme","role":"Engineer","jobDescription":"jd"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	var resp struct {
		Action        string `json:"action"`
		Text          string `json:"text"`
		ApplicationID string `json:"applicationId"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.Action != string(ActionNetworkingEmail) {
		t.Fatalf("unexpected action %q", resp.Action)
	}
	if resp.Text != "generated email" {
		t.Fatalf("unexpected text %q", resp.Text)
	}
	if resp.ApplicationID == "" {
		t.Fatalf("expected persisted application id")
	}
}

func TestAssistMissingFieldReturnsBadRequest(t *testing.T) {
	r, svc := setupRouter(t, &fakeLLM{output: "out"})

	if _, err := svc.Resumes.Save(context.Background(), "a@example.com", []byte("resume text"), "resume.pdf"); err != nil {
		t.Fatalf("save resume: %v", err)
	}

	w := doAssist(t, r, "/api/v1/assist/resume-review", "a@example.com", `{"company":"Acme","role":"","jobDescription":"jd"}`)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d: %s", w.Code, w.Body.String())
	}
	if !strings.Contains(w.Body.String(), "role") {
		t.Fatalf("error should name the field: %s", w.Body.String())
	}
}

func TestAssistGenerationFailureReturnsBadGateway(t *testing.T) {
	r, svc := setupRouter(t, &fakeLLM{err: errors.New("remote down")})

	if _, err := svc.Resumes.Save(context.Background(), "a@example.com", []byte("resume text"), "resume.pdf"); err != nil {
		t.Fatalf("save resume: %v", err)
	}

	w := doAssist(t, r, "/api/v1/assist/cover-letter", "a@example.com", `{"company":"Acme","role":"Engineer","jobDescription":"jd"}`)
	if w.Code != http.StatusBadGateway {
		t.Fatalf("expected 502, got %d: %s", w.Code, w.Body.String())
	}
	if !strings.Contains(w.Body.String(), "generation_failed") {
		t.Fatalf("expected generation_failed code: %s", w.Body.String())
	}
}
