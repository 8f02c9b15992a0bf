package model

import "github.com/shopspring/decimal"

// Cart is the authoritative cart snapshot held by the bakery platform. A cart
// is bound to a single bakery.
type Cart struct {
	BakeryID string     `json:"bakery_id"`
	Lines    []CartLine `json:"lines"`
}

// CartLine references either a catalog cake or a created custom cake.
// SubTotal is the backend-computed line total and is authoritative; unit price
// is derived as SubTotal/Quantity only when assembling an order request.
type CartLine struct {
	ID           string          `json:"id"`
	CakeID       string          `json:"cake_id,omitempty"`
	CustomCakeID string          `json:"custom_cake_id,omitempty"`
	Name         string          `json:"name"`
	Quantity     int             `json:"quantity"`
	SubTotal     decimal.Decimal `json:"sub_total_price"`
}
