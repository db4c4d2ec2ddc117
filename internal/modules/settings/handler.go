package settings

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"yogastudio/internal/domain"
	"yogastudio/internal/pkg/response"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	settings := rg.Group("/settings")
	{
		settings.GET("", h.Get)
		settings.PUT("", h.Update)
		settings.POST("/templates/render", h.RenderTemplate)
		settings.GET("/backup", h.ExportBackup)
		settings.POST("/restore", h.RestoreBackup)
	}
}

func (h *Handler) writeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrValidation), errors.Is(err, ErrBadBackup):
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
	case errors.Is(err, ErrTemplateNotFound):
		response.Error(c, http.StatusNotFound, "NOT_FOUND", err.Error())
	case errors.Is(err, ErrSettingsMissing):
		response.Error(c, http.StatusConflict, "SETTINGS_MISSING", err.Error())
	default:
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "failed to process settings request")
	}
}

func (h *Handler) Get(c *gin.Context) {
	cfg, err := h.service.Current(c.Request.Context())
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, cfg)
}

func (h *Handler) Update(c *gin.Context) {
	var req UpdateSettingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	cfg, err := h.service.Update(c.Request.Context(), req)
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, cfg)
}

func (h *Handler) RenderTemplate(c *gin.Context) {
	var req RenderTemplateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	body, err := h.service.RenderTemplate(c.Request.Context(), req.Name, req.Data)
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"body": body})
}

func (h *Handler) ExportBackup(c *gin.Context) {
	b, err := h.service.ExportBackup(c.Request.Context())
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.Header("Content-Disposition", `attachment; filename="yogastudio-backup.json"`)
	c.JSON(http.StatusOK, b)
}

func (h *Handler) RestoreBackup(c *gin.Context) {
	var b domain.Backup
	if err := c.ShouldBindJSON(&b); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid backup payload")
		return
	}

	if err := h.service.RestoreBackup(c.Request.Context(), &b); err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"restored": true})
}
