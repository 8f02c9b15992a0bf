package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

// VoucherHandler manages voucher discovery endpoints.
type VoucherHandler struct {
	facade VoucherFacade
}

// NewVoucherHandler constructs VoucherHandler.
func NewVoucherHandler(facade VoucherFacade) *VoucherHandler {
	return &VoucherHandler{facade: facade}
}

// List handles GET /api/vouchers.
func (h *VoucherHandler) List(c *gin.Context) {
	bakeryID := c.Query("bakery_id")
	if bakeryID == "" {
		c.Status(http.StatusBadRequest)
		return
	}

	subtotal := decimal.Zero
	if raw := c.Query("subtotal"); raw != "" {
		parsed, err := decimal.NewFromString(raw)
		if err != nil {
			c.Status(http.StatusBadRequest)
			return
		}
		subtotal = parsed
	}

	offers, err := h.facade.Vouchers(c.Request.Context(), CurrentToken(c), bakeryID, subtotal)
	if err != nil {
		respondError(c, err)
		return
	}
	if len(offers) == 0 {
		c.Status(http.StatusNoContent)
		return
	}

	c.JSON(http.StatusOK, offers)
}
