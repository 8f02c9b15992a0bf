package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// MessageType describes how a message is applied to the cake.
type MessageType string

const (
	MessageNone   MessageType = "NONE"
	MessagePiped  MessageType = "PIPED"
	MessageEdible MessageType = "EDIBLE"
)

// MaxMessageLength caps the free-text cake message.
const MaxMessageLength = 30

// CakeConfig is one custom cake being assembled. Single-value slots hold option
// ids ("" when unselected); Decorations and Extras hold ordered option ids with
// at most one entry per sub-type. Price is maintained incrementally by the
// configuration engine and always equals the sum of all selected option prices.
type CakeConfig struct {
	Size    string `json:"size"`
	Sponge  string `json:"sponge"`
	Filling string `json:"filling"`
	Icing   string `json:"icing"`
	Goo     string `json:"goo"`

	Decorations []string `json:"decorations"`
	Extras      []string `json:"extras"`

	// Convenience mirrors of the matching Extras entries.
	Board   string `json:"board"`
	Candles string `json:"candles"`

	Message       string      `json:"message"`
	MessageType   MessageType `json:"message_type"`
	PlaqueColor   string      `json:"plaque_color"`
	PipingColor   string      `json:"piping_color"`
	UploadedImage string      `json:"uploaded_image"`

	Price decimal.Decimal `json:"price"`
}

// NewCakeConfig returns the default empty configuration.
func NewCakeConfig() CakeConfig {
	return CakeConfig{MessageType: MessageNone, Price: decimal.Zero}
}

// SingleValue returns the option id occupying a single-value category.
func (c *CakeConfig) SingleValue(category OptionCategory) string {
	switch category {
	case CategorySize:
		return c.Size
	case CategorySponge:
		return c.Sponge
	case CategoryFilling:
		return c.Filling
	case CategoryIcing:
		return c.Icing
	case CategoryGoo:
		return c.Goo
	}
	return ""
}

// SetSingleValue stores an option id into a single-value category.
func (c *CakeConfig) SetSingleValue(category OptionCategory, id string) {
	switch category {
	case CategorySize:
		c.Size = id
	case CategorySponge:
		c.Sponge = id
	case CategoryFilling:
		c.Filling = id
	case CategoryIcing:
		c.Icing = id
	case CategoryGoo:
		c.Goo = id
	}
}

// ConfigSession is a persisted configuration-in-progress owned by one customer.
type ConfigSession struct {
	ID         uuid.UUID      `json:"id"`
	CustomerID string         `json:"customer_id"`
	BakeryID   string         `json:"bakery_id"`
	Config     CakeConfig     `json:"config"`
	Progress   WizardProgress `json:"progress"`
	Studio     StudioScene    `json:"studio"`
	CreatedAt  time.Time      `json:"created_at"`
	UpdatedAt  time.Time      `json:"updated_at"`
}

// Submission is the order-line payload materialized from a completed
// configuration.
type Submission struct {
	Name        string                      `json:"name"`
	Description string                      `json:"description"`
	Price       decimal.Decimal             `json:"price"`
	OptionIDs   map[OptionCategory][]string `json:"option_ids"`
}
