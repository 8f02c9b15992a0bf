package model

import "github.com/shopspring/decimal"

// OptionCategory tags a catalog slot a cake option can occupy.
type OptionCategory string

const (
	CategorySize       OptionCategory = "SIZE"
	CategorySponge     OptionCategory = "SPONGE"
	CategoryFilling    OptionCategory = "FILLING"
	CategoryIcing      OptionCategory = "ICING"
	CategoryGoo        OptionCategory = "GOO"
	CategoryDecoration OptionCategory = "DECORATION"
	CategoryExtra      OptionCategory = "EXTRA"
	CategoryMessage    OptionCategory = "MESSAGE"
)

// SingleValueCategories are the slots that hold at most one option id directly
// on the configuration.
var SingleValueCategories = []OptionCategory{
	CategorySize, CategorySponge, CategoryFilling, CategoryIcing, CategoryGoo,
}

// Well-known sub-types with dedicated handling in the configuration engine.
const (
	SubTypeCakeBoard = "CakeBoard"
	SubTypeCandles   = "Candles"
)

// Option is one selectable catalog entry for a bakery.
type Option struct {
	ID       string          `json:"id"`
	Name     string          `json:"name"`
	SubType  string          `json:"sub_type,omitempty"`
	Price    decimal.Decimal `json:"price"`
	ImageRef string          `json:"image_ref,omitempty"`
}

// Catalog holds the per-bakery option lists keyed by category.
type Catalog struct {
	BakeryID string                      `json:"bakery_id"`
	Options  map[OptionCategory][]Option `json:"options"`
}

// Lookup returns the option with the given id inside one category.
func (c *Catalog) Lookup(category OptionCategory, id string) (Option, bool) {
	for _, opt := range c.Options[category] {
		if opt.ID == id {
			return opt, true
		}
	}
	return Option{}, false
}

// MessageOption returns the catalog entry backing a message type, if the bakery
// prices that message kind at all.
func (c *Catalog) MessageOption(t MessageType) (Option, bool) {
	for _, opt := range c.Options[CategoryMessage] {
		if opt.SubType == string(t) {
			return opt, true
		}
	}
	return Option{}, false
}
