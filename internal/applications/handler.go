package applications

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"jobapp-backend/internal/shared/server/middleware"
	"jobapp-backend/internal/shared/server/respond"
)

// Handler wires HTTP handlers to the service.
type Handler struct {
	Svc *Service
}

// NewHandler constructs a Handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc}
}

// RegisterRoutes attaches application routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/applications", h.list)
}

func (h *Handler) list(c *gin.Context) {
	email := middleware.UserEmailFromContext(c)

	apps, err := h.Svc.ListByUser(c.Request.Context(), email)
	if err != nil {
		switch {
		case errors.Is(err, ErrInvalidInput):
			respond.Error(c, http.StatusBadRequest, "validation_error", err.Error(), nil)
		default:
			respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to list applications", nil)
		}
		return
	}

	resp := make([]gin.H, 0, len(apps))
	for _, app := range apps {
		resp = append(resp, toResponse(app))
	}
	respond.OK(c, resp)
}

func toResponse(app Application) gin.H {
	out := gin.H{
		"applicationId":  app.ID,
		"company":        app.CompanyName,
		"role":           app.Role,
		"jobDescription": app.JobDescription,
		"status":         app.Status,
		"createdAt":      app.CreatedAt,
	}
	if app.ResumeReview != nil {
		out["resumeReview"] = *app.ResumeReview
	}
	if app.CoverLetter != nil {
		out["coverLetter"] = *app.CoverLetter
	}
	if app.NetworkingEmail != nil {
		out["networkingEmail"] = *app.NetworkingEmail
	}
	return out
}
