package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/sugarline/cakeshop/internal/domain/model"
	"github.com/sugarline/cakeshop/internal/server/http/dto"
	"github.com/sugarline/cakeshop/internal/usecase"
)

// CheckoutHandler manages checkout aggregation endpoints.
type CheckoutHandler struct {
	facade CheckoutFacade
}

// NewCheckoutHandler constructs CheckoutHandler.
func NewCheckoutHandler(facade CheckoutFacade) *CheckoutHandler {
	return &CheckoutHandler{facade: facade}
}

// Quote handles POST /api/checkout/quote.
func (h *CheckoutHandler) Quote(c *gin.Context) {
	var req dto.QuoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	shippingType, ok := parseShippingType(req.ShippingType)
	if !ok {
		c.Status(http.StatusBadRequest)
		return
	}

	quote, err := h.facade.QuoteCheckout(c.Request.Context(), CurrentToken(c), req.Voucher, shippingType, req.Destination)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, quote)
}

// ResolveAddress handles POST /api/checkout/address.
func (h *CheckoutHandler) ResolveAddress(c *gin.Context) {
	var req dto.ResolveAddressRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	coords, err := h.facade.ResolveAddress(c.Request.Context(), CurrentToken(c), CurrentCustomerID(c), req.UseCurrentAddress, usecase.AddressForm{
		Address:  req.Address,
		District: req.District,
		Province: req.Province,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.AddressResponse{
		Latitude:  coords.Latitude,
		Longitude: coords.Longitude,
	})
}

// InvalidateAddress handles DELETE /api/checkout/address.
func (h *CheckoutHandler) InvalidateAddress(c *gin.Context) {
	h.facade.InvalidateAddress(CurrentCustomerID(c))
	c.Status(http.StatusNoContent)
}

// Autocomplete handles GET /api/checkout/address/autocomplete.
func (h *CheckoutHandler) Autocomplete(c *gin.Context) {
	query := strings.TrimSpace(c.Query("q"))
	if query == "" {
		c.Status(http.StatusBadRequest)
		return
	}

	suggestions, err := h.facade.AutocompleteAddress(c.Request.Context(), query)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.AutocompleteResponse{Suggestions: suggestions})
}

// Submit handles POST /api/checkout/orders.
func (h *CheckoutHandler) Submit(c *gin.Context) {
	var req dto.SubmitOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	shippingType, ok := parseShippingType(req.ShippingType)
	if !ok {
		c.Status(http.StatusBadRequest)
		return
	}
	paymentType, ok := parsePaymentType(req.PaymentType)
	if !ok {
		c.Status(http.StatusBadRequest)
		return
	}

	result, err := h.facade.SubmitOrder(c.Request.Context(), usecase.SubmitInput{
		Token:             CurrentToken(c),
		CustomerID:        CurrentCustomerID(c),
		ShippingType:      shippingType,
		PaymentType:       paymentType,
		Voucher:           req.Voucher,
		UseCurrentAddress: req.UseCurrentAddress,
		Address: usecase.AddressForm{
			Address:  req.Address,
			District: req.District,
			Province: req.Province,
		},
	})
	if err != nil {
		respondError(c, err)
		return
	}

	response := dto.SubmitOrderResponse{
		OrderID:   result.Order.ID,
		QRPending: result.QRPending,
	}
	if result.QRPending {
		expiresAt := result.ExpiresAt
		response.ExpiresAt = &expiresAt
	}

	c.JSON(http.StatusCreated, response)
}

func parseShippingType(raw string) (model.ShippingType, bool) {
	switch model.ShippingType(raw) {
	case model.ShippingDelivery:
		return model.ShippingDelivery, true
	case model.ShippingPickup:
		return model.ShippingPickup, true
	}
	return "", false
}

func parsePaymentType(raw string) (model.PaymentType, bool) {
	switch model.PaymentType(raw) {
	case model.PaymentQRCode:
		return model.PaymentQRCode, true
	case model.PaymentWallet:
		return model.PaymentWallet, true
	}
	return "", false
}
