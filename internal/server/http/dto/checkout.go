package dto

import (
	"time"

	"github.com/sugarline/cakeshop/internal/domain/model"
)

// QuoteRequest asks for a checkout quote over the current cart.
type QuoteRequest struct {
	ShippingType string             `json:"shipping_type"`
	Voucher      *model.Voucher     `json:"voucher,omitempty"`
	Destination  *model.Coordinates `json:"destination,omitempty"`
}

// ResolveAddressRequest resolves the shipping destination to coordinates.
type ResolveAddressRequest struct {
	UseCurrentAddress bool   `json:"use_current_address"`
	Address           string `json:"address"`
	District          string `json:"district"`
	Province          string `json:"province"`
}

// AddressResponse carries resolved destination coordinates.
type AddressResponse struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// SubmitOrderRequest places the order built from the current cart.
type SubmitOrderRequest struct {
	ShippingType      string         `json:"shipping_type"`
	PaymentType       string         `json:"payment_type"`
	Voucher           *model.Voucher `json:"voucher,omitempty"`
	UseCurrentAddress bool           `json:"use_current_address"`
	Address           string         `json:"address"`
	District          string         `json:"district"`
	Province          string         `json:"province"`
}

// SubmitOrderResponse reports the created order and, for QR payments, the
// deadline before the order is cancelled automatically.
type SubmitOrderResponse struct {
	OrderID   string     `json:"order_id"`
	QRPending bool       `json:"qr_pending"`
	ExpiresAt *time.Time `json:"expires_at,omitempty"`
}
