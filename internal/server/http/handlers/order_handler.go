package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/sugarline/cakeshop/internal/server/http/dto"
)

// OrderHandler manages order tracking endpoints.
type OrderHandler struct {
	facade OrderFacade
}

// NewOrderHandler constructs OrderHandler.
func NewOrderHandler(facade OrderFacade) *OrderHandler {
	return &OrderHandler{facade: facade}
}

// List handles GET /api/orders.
func (h *OrderHandler) List(c *gin.Context) {
	orders, err := h.facade.Orders(c.Request.Context(), CurrentToken(c))
	if err != nil {
		respondError(c, err)
		return
	}
	if len(orders) == 0 {
		c.Status(http.StatusNoContent)
		return
	}

	c.JSON(http.StatusOK, orders)
}

// Detail handles GET /api/orders/:id.
func (h *OrderHandler) Detail(c *gin.Context) {
	view, err := h.facade.OrderDetail(c.Request.Context(), CurrentToken(c), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, view)
}

// Cancel handles DELETE /api/orders/:id.
func (h *OrderHandler) Cancel(c *gin.Context) {
	if err := h.facade.CancelOrder(c.Request.Context(), CurrentToken(c), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// Review handles POST /api/orders/:id/review.
func (h *OrderHandler) Review(c *gin.Context) {
	var req dto.ReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Rating < 1 || req.Rating > 5 {
		c.Status(http.StatusBadRequest)
		return
	}

	if err := h.facade.SubmitReview(c.Request.Context(), CurrentToken(c), c.Param("id"), req.Rating, req.Comment); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusCreated)
}

// Report handles POST /api/orders/:id/report.
func (h *OrderHandler) Report(c *gin.Context) {
	var req dto.ReportRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Reason == "" {
		c.Status(http.StatusBadRequest)
		return
	}

	if err := h.facade.SubmitReport(c.Request.Context(), CurrentToken(c), c.Param("id"), req.Reason, req.ImageRefs); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusCreated)
}
