package model

import (
	"strconv"
	"time"

	"github.com/shopspring/decimal"
)

// Coordinates is a geographic point.
type Coordinates struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// ParseCoordinates parses the string lat/lng pair stored on customer records.
func ParseCoordinates(lat, lng string) (Coordinates, bool) {
	la, err1 := strconv.ParseFloat(lat, 64)
	lo, err2 := strconv.ParseFloat(lng, 64)
	if err1 != nil || err2 != nil {
		return Coordinates{}, false
	}
	return Coordinates{Latitude: la, Longitude: lo}, true
}

// ShippingQuote is the fee/time/distance answer from the shipping service.
type ShippingQuote struct {
	Fee        decimal.Decimal `json:"fee"`
	DistanceKm float64         `json:"distance_km"`
	Duration   time.Duration   `json:"duration"`
}

// Customer is the profile record held by the bakery platform.
type Customer struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Phone    string `json:"phone"`
	Address  string `json:"address"`
	District string `json:"district"`
	Province string `json:"province"`
	// Latitude/Longitude arrive as strings and may be empty or unparsable.
	Latitude  string `json:"latitude"`
	Longitude string `json:"longitude"`
}
