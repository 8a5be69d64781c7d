package users

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"jobapp-backend/internal/shared/server/middleware"
	"jobapp-backend/internal/shared/server/respond"
)

// ApplicationSummary is the dashboard view of one application: which
// generated artifacts exist, not their text.
type ApplicationSummary struct {
	Company            string    `json:"company"`
	Role               string    `json:"role"`
	Status             string    `json:"status"`
	CreatedAt          time.Time `json:"createdAt"`
	HasResumeReview    bool      `json:"hasResumeReview"`
	HasCoverLetter     bool      `json:"hasCoverLetter"`
	HasNetworkingEmail bool      `json:"hasNetworkingEmail"`
}

// HistoryLister supplies application summaries for the dashboard.
type HistoryLister interface {
	Summaries(ctx context.Context, email string) ([]ApplicationSummary, error)
}

// Handler wires HTTP handlers to the service.
type Handler struct {
	Svc     *Service
	History HistoryLister
}

// NewHandler constructs a Handler.
func NewHandler(svc *Service, history HistoryLister) *Handler {
	return &Handler{Svc: svc, History: history}
}

// RegisterRoutes attaches user routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/me", h.me)
}

// me resolves the acting user (creating the row on first sign-in) and returns
// the dashboard payload: identity plus recent application history.
func (h *Handler) me(c *gin.Context) {
	email := middleware.UserEmailFromContext(c)

	user, err := h.Svc.GetOrCreate(c.Request.Context(), email)
	if err != nil {
		switch {
		case errors.Is(err, ErrInvalidEmail):
			respond.Error(c, http.StatusBadRequest, "validation_error", err.Error(), nil)
		default:
			respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to resolve user", nil)
		}
		return
	}

	summaries := []ApplicationSummary{}
	if h.History != nil {
		if list, err := h.History.Summaries(c.Request.Context(), user.Email); err == nil {
			summaries = list
		}
	}

	respond.OK(c, gin.H{
		"user":         user,
		"applications": summaries,
	})
}
