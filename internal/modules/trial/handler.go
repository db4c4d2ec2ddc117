package trial

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"yogastudio/internal/modules/lead"
	"yogastudio/internal/pkg/dateutil"
	"yogastudio/internal/pkg/response"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	trials := rg.Group("/trials")
	{
		trials.GET("", h.List)
		trials.POST("", h.Create)
		trials.GET("/:id", h.Get)
		trials.POST("/:id/cancel", h.Cancel)
		trials.POST("/:id/mark-executed", h.MarkExecuted)
	}
}

func (h *Handler) writeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrValidation):
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
	case errors.Is(err, ErrTrialNotFound), errors.Is(err, ErrSlotNotFound),
		errors.Is(err, lead.ErrLeadNotFound):
		response.Error(c, http.StatusNotFound, "NOT_FOUND", err.Error())
	case errors.Is(err, ErrSlotInactive), errors.Is(err, ErrNotBooked):
		response.Error(c, http.StatusConflict, "CONFLICT", err.Error())
	default:
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "failed to process trial request")
	}
}

func (h *Handler) Create(c *gin.Context) {
	var req CreateTrialRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	t, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, t)
}

func (h *Handler) Get(c *gin.Context) {
	t, err := h.service.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, t)
}

func (h *Handler) List(c *gin.Context) {
	var date *time.Time
	if v := c.Query("date"); v != "" {
		d, err := dateutil.ParseDate(v)
		if err != nil {
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "date must be YYYY-MM-DD")
			return
		}
		date = &d
	}

	trials, err := h.service.List(c.Request.Context(), c.Query("slotId"), date)
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"trials": trials})
}

func (h *Handler) Cancel(c *gin.Context) {
	t, err := h.service.Cancel(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, t)
}

func (h *Handler) MarkExecuted(c *gin.Context) {
	t, err := h.service.MarkExecuted(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, t)
}
