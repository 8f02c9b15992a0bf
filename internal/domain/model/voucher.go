package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Voucher is a bakery-issued discount voucher.
type Voucher struct {
	Code            string          `json:"code"`
	Description     string          `json:"description"`
	DiscountPercent decimal.Decimal `json:"discount_percentage"`
	MaxDiscount     decimal.Decimal `json:"max_discount_amount"`
	MinOrderAmount  decimal.Decimal `json:"min_order_amount"`
	Quantity        int             `json:"quantity"`
	ExpiresAt       time.Time       `json:"expires_at"`
}

// Usable reports whether the voucher still has stock and has not expired.
func (v Voucher) Usable(now time.Time) bool {
	return v.Quantity > 0 && v.ExpiresAt.After(now)
}

// AppliesTo reports whether the subtotal reaches the voucher's minimum order
// amount.
func (v Voucher) AppliesTo(subtotal decimal.Decimal) bool {
	return subtotal.GreaterThanOrEqual(v.MinOrderAmount)
}
