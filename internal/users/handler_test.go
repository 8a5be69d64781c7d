package users

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"jobapp-backend/internal/shared/server/middleware"
)

type staticHistory struct {
	summaries []ApplicationSummary
}

func (s staticHistory) Summaries(ctx context.Context, email string) ([]ApplicationSummary, error) {
	_ = ctx
	_ = email
	return s.summaries, nil
}

func newUserRouter(t *testing.T, history HistoryLister) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	r := gin.New()
	r.Use(middleware.Auth("test"))
	api := r.Group("/api/v1")
	NewHandler(NewService(NewMemoryRepo()), history).RegisterRoutes(api)
	return r
}

func TestMeCreatesUserAndReturnsHistory(t *testing.T) {
	history := staticHistory{summaries: []ApplicationSummary{
		{Company: "Acme", Role: "Engineer", Status: "Created", CreatedAt: time.Now().UTC(), HasCoverLetter: true},
	}}
	r := newUserRouter(t, history)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/me", nil)
	req.Header.Set("X-User-Email", "a@example.com")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	var resp struct {
		User         User                 `json:"user"`
		Applications []ApplicationSummary `json:"applications"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.User.Email != "a@example.com" {
		t.Fatalf("unexpected user %+v", resp.User)
	}
	if resp.User.LastLogin == nil {
		t.Fatalf("last login should be set on sign-in")
	}
	if len(resp.Applications) != 1 || !resp.Applications[0].HasCoverLetter {
		t.Fatalf("history not returned: %+v", resp.Applications)
	}
}

func TestMeWithoutHistoryListerReturnsEmptyList(t *testing.T) {
	r := newUserRouter(t, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/me", nil)
	req.Header.Set("X-User-Email", "a@example.com")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var resp struct {
		Applications []ApplicationSummary `json:"applications"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.Applications == nil || len(resp.Applications) != 0 {
		t.Fatalf("expected empty list, got %+v", resp.Applications)
	}
}
