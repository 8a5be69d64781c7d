package assistant

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"jobapp-backend/internal/applications"
	"jobapp-backend/internal/generate"
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

// RegisterRoutes attaches one route per generation action.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/assist/resume-review", h.action(ActionResumeReview))
	rg.POST("/assist/cover-letter", h.action(ActionCoverLetter))
	rg.POST("/assist/networking-email", h.action(ActionNetworkingEmail))
}

type assistRequest struct {
	Company        string `json:"company"`
	Role           string `json:"role"`
	JobDescription string `json:"jobDescription"`
}

func (h *Handler) action(action Action) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set("assistAction", string(action))
		email := middleware.UserEmailFromContext(c)

		var req assistRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
			return
		}

		details := JobDetails{
			Company:        req.Company,
			Role:           req.Role,
			JobDescription: req.JobDescription,
		}

		result, err := h.Svc.Run(c.Request.Context(), email, action, details, NewCache())
		if err != nil {
			switch {
			case errors.Is(err, ErrNoActiveResume):
				respond.Error(c, http.StatusConflict, "resume_required", err.Error(), nil)
			case errors.Is(err, applications.ErrInvalidInput):
				respond.Error(c, http.StatusBadRequest, "validation_error", err.Error(), nil)
			case errors.Is(err, generate.ErrMissingField):
				respond.Error(c, http.StatusInternalServerError, "configuration_error", "generation template misconfigured", nil)
			case errors.Is(err, generate.ErrExhausted):
				respond.Error(c, http.StatusBadGateway, "generation_failed", "generation failed, please try again later", nil)
			default:
				respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to run action, please retry", nil)
			}
			return
		}

		respond.OK(c, gin.H{
			"action":        string(result.Action),
			"text":          result.Text,
			"applicationId": result.Application.ID,
			"company":       result.Application.CompanyName,
			"role":          result.Application.Role,
			"createdAt":     result.Application.CreatedAt,
		})
	}
}
