package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// OrderStatus mirrors the raw status enum owned by the bakery platform.
type OrderStatus string

const (
	OrderStatusWaitingConfirm    OrderStatus = "WAITING_CONFIRM"
	OrderStatusProcessing        OrderStatus = "PROCESSING"
	OrderStatusReadyForPickup    OrderStatus = "READY_FOR_PICKUP"
	OrderStatusShipping          OrderStatus = "SHIPPING"
	OrderStatusShippingCompleted OrderStatus = "SHIPPING_COMPLETED"
	OrderStatusCompleted         OrderStatus = "COMPLETED"
	OrderStatusReportPending     OrderStatus = "REPORT_PENDING"
	OrderStatusFaulty            OrderStatus = "FAULTY"
	OrderStatusCanceled          OrderStatus = "CANCELED"
)

// ShippingType selects between courier delivery and pickup at the store.
type ShippingType string

const (
	ShippingDelivery ShippingType = "DELIVERY"
	ShippingPickup   ShippingType = "PICKUP"
)

// PaymentType selects how the customer pays for an order.
type PaymentType string

const (
	PaymentQRCode PaymentType = "QR_CODE"
	PaymentWallet PaymentType = "WALLET"
)

// Order is a placed order as reported by the bakery platform. The platform owns
// it; this service only reads it and submits creation/transition requests.
type Order struct {
	ID              string          `json:"id"`
	BakeryID        string          `json:"bakery_id"`
	CustomerID      string          `json:"customer_id"`
	Status          OrderStatus     `json:"status"`
	ShippingType    ShippingType    `json:"shipping_type"`
	PaymentType     PaymentType     `json:"payment_type"`
	ShippingAddress string          `json:"shipping_address"`
	Latitude        float64         `json:"latitude"`
	Longitude       float64         `json:"longitude"`
	ShippingFee     decimal.Decimal `json:"shipping_fee"`
	VoucherCode     string          `json:"voucher_code"`
	TotalPrice      decimal.Decimal `json:"total_price"`
	Lines           []OrderLine     `json:"lines"`
	CreatedAt       time.Time       `json:"created_at"`
}

// OrderLine is one priced line inside an order-creation request.
type OrderLine struct {
	CakeID       string          `json:"cake_id,omitempty"`
	CustomCakeID string          `json:"custom_cake_id,omitempty"`
	Quantity     int             `json:"quantity"`
	UnitPrice    decimal.Decimal `json:"unit_price"`
}
