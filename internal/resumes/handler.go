package resumes

import (
	"context"
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"jobapp-backend/internal/shared/server/middleware"
	"jobapp-backend/internal/shared/server/respond"
)

const maxUploadSize = 10 << 20 // 10MB

// Extractor turns resume bytes into best-effort plain text.
type Extractor func(ctx context.Context, content []byte) string

// Handler wires HTTP handlers to the service.
type Handler struct {
	Svc     *Service
	Extract Extractor
}

// NewHandler constructs a Handler.
func NewHandler(svc *Service, extract Extractor) *Handler {
	return &Handler{Svc: svc, Extract: extract}
}

// RegisterRoutes attaches resume routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/resumes", h.upload)
	rg.GET("/resumes/current", h.current)
	rg.GET("/resumes/current/text", h.currentText)
}

func (h *Handler) upload(c *gin.Context) {
	email := middleware.UserEmailFromContext(c)
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxUploadSize)

	fileHeader, err := c.FormFile("file")
	if err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "file is required", nil)
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "unable to read file", nil)
		return
	}
	defer file.Close()

	content, err := io.ReadAll(file)
	if err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "unable to read file", nil)
		return
	}

	resume, err := h.Svc.Save(c.Request.Context(), email, content, fileHeader.Filename)
	if err != nil {
		switch {
		case errors.Is(err, ErrEmptyContent), errors.Is(err, ErrInvalidInput):
			respond.Error(c, http.StatusBadRequest, "validation_error", err.Error(), nil)
		default:
			respond.Error(c, http.StatusInternalServerError, "storage_error", "failed to save resume, please retry", nil)
		}
		return
	}

	respond.JSON(c, http.StatusCreated, toResponse(resume))
}

func (h *Handler) current(c *gin.Context) {
	email := middleware.UserEmailFromContext(c)

	resume, err := h.Svc.Active(c.Request.Context(), email)
	if err != nil {
		switch {
		case errors.Is(err, ErrNotFound):
			respond.Error(c, http.StatusNotFound, "not_found", "no active resume, please upload one", nil)
		case errors.Is(err, ErrInvalidInput):
			respond.Error(c, http.StatusBadRequest, "validation_error", err.Error(), nil)
		default:
			respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to fetch resume", nil)
		}
		return
	}

	respond.OK(c, toResponse(resume))
}

func (h *Handler) currentText(c *gin.Context) {
	email := middleware.UserEmailFromContext(c)

	resume, err := h.Svc.Active(c.Request.Context(), email)
	if err != nil {
		switch {
		case errors.Is(err, ErrNotFound):
			respond.Error(c, http.StatusNotFound, "not_found", "no active resume, please upload one", nil)
		default:
			respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to fetch resume", nil)
		}
		return
	}

	text := ""
	if h.Extract != nil {
		text = h.Extract(c.Request.Context(), resume.Content)
	}

	respond.OK(c, gin.H{
		"resumeId": resume.ID,
		"fileName": resume.FileName,
		"text":     text,
	})
}

func toResponse(resume Resume) gin.H {
	return gin.H{
		"resumeId":   resume.ID,
		"fileName":   resume.FileName,
		"sizeBytes":  len(resume.Content),
		"uploadedAt": resume.UploadedAt,
		"isActive":   resume.IsActive,
	}
}
