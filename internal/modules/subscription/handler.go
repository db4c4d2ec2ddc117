package subscription

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

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
	subs := rg.Group("/subscriptions")
	{
		subs.POST("", h.Create)
		subs.GET("/:id", h.Get)
		subs.POST("/:id/extend", h.Extend)
		subs.POST("/:id/extra-days", h.SetExtraDays)
		subs.POST("/:id/transfer", h.Transfer)
		subs.POST("/:id/cancel", h.Cancel)
	}
	rg.GET("/members/:id/subscriptions", h.ListByMember)
	rg.GET("/members/:id/subscriptions/relevant", h.Relevant)
	rg.GET("/members/:id/subscriptions/pending-renewal", h.PendingRenewal)
	rg.GET("/slots/:id/capacity", h.Capacity)
}

func (h *Handler) writeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrValidation), errors.Is(err, ErrInvalidDays),
		errors.Is(err, ErrDiscountTooLarge), errors.Is(err, ErrTransferAfterEnd):
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
	case errors.Is(err, ErrMemberNotFound), errors.Is(err, ErrPlanNotFound),
		errors.Is(err, ErrSlotNotFound), errors.Is(err, ErrSubscriptionNotFound):
		response.Error(c, http.StatusNotFound, "NOT_FOUND", err.Error())
	case errors.Is(err, ErrPlanInactive), errors.Is(err, ErrSlotInactive),
		errors.Is(err, ErrAlreadyCancelled):
		response.Error(c, http.StatusConflict, "INVALID_STATE", err.Error())
	case errors.Is(err, ErrSlotFull):
		response.Error(c, http.StatusConflict, "SLOT_FULL", err.Error())
	default:
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "failed to process subscription request")
	}
}

func (h *Handler) Create(c *gin.Context) {
	var req CreateSubscriptionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	result, err := h.service.CreateWithInvoice(c.Request.Context(), req)
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, result)
}

func (h *Handler) Get(c *gin.Context) {
	sub, err := h.service.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{
		"subscription": sub,
		"badge":        DeriveBadge(sub, dateutil.Today()),
	})
}

func (h *Handler) Extend(c *gin.Context) {
	var req ExtendRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	sub, err := h.service.Extend(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, sub)
}

func (h *Handler) SetExtraDays(c *gin.Context) {
	var req ExtraDaysRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	sub, err := h.service.SetExtraDays(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, sub)
}

func (h *Handler) Transfer(c *gin.Context) {
	var req TransferRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	sub, warning, err := h.service.TransferSlot(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{
		"subscription":     sub,
		"capacity_warning": warning,
	})
}

func (h *Handler) Cancel(c *gin.Context) {
	var req CancelRequest
	if err := c.ShouldBindJSON(&req); err != nil && err.Error() != "EOF" {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	sub, err := h.service.Cancel(c.Request.Context(), c.Param("id"), req.Reason)
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, sub)
}

func (h *Handler) ListByMember(c *gin.Context) {
	subs, err := h.service.ListByMember(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.writeError(c, err)
		return
	}

	today := dateutil.Today()
	out := make([]gin.H, 0, len(subs))
	for _, sub := range subs {
		out = append(out, gin.H{
			"subscription": sub,
			"badge":        DeriveBadge(sub, today),
		})
	}
	response.Success(c, http.StatusOK, out)
}

func (h *Handler) Relevant(c *gin.Context) {
	sub, err := h.service.GetRelevantSubscription(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.writeError(c, err)
		return
	}
	if sub == nil {
		response.Success(c, http.StatusOK, nil)
		return
	}
	response.Success(c, http.StatusOK, gin.H{
		"subscription": sub,
		"badge":        DeriveBadge(sub, dateutil.Today()),
	})
}

func (h *Handler) PendingRenewal(c *gin.Context) {
	pending, err := h.service.HasPendingRenewal(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"pending_renewal": pending})
}

func (h *Handler) Capacity(c *gin.Context) {
	start, err := dateutil.ParseDate(c.Query("startDate"))
	if err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "startDate is required (YYYY-MM-DD)")
		return
	}
	end, err := dateutil.ParseDate(c.Query("endDate"))
	if err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "endDate is required (YYYY-MM-DD)")
		return
	}
	if end.Before(start) {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "endDate precedes startDate")
		return
	}

	report, err := h.service.CheckSlotCapacity(c.Request.Context(), c.Param("id"), start, end)
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, report)
}
