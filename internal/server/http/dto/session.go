package dto

import "github.com/sugarline/cakeshop/internal/domain/model"

// StartSessionRequest opens a configuration session against one bakery.
type StartSessionRequest struct {
	BakeryID string `json:"bakery_id"`
}

// SelectOptionRequest replaces a single-value option of the cake.
type SelectOptionRequest struct {
	Category string `json:"category"`
	OptionID string `json:"option_id"`
}

// ToggleOptionRequest toggles a decoration or extra on the cake.
type ToggleOptionRequest struct {
	OptionID string `json:"option_id"`
}

// MessageTypeRequest switches the message kind of the cake.
type MessageTypeRequest struct {
	Type string `json:"type"`
}

// MessageTextRequest sets the message text.
type MessageTextRequest struct {
	Text string `json:"text"`
}

// MessageColorRequest sets the plaque or piping color option.
type MessageColorRequest struct {
	OptionID string `json:"option_id"`
}

// UploadedImageRequest attaches an uploaded image reference to the message.
type UploadedImageRequest struct {
	Ref string `json:"ref"`
}

// AddToCartRequest materializes the session into the customer cart.
type AddToCartRequest struct {
	Quantity int `json:"quantity"`
}

// SessionResponse represents the configuration session state returned to
// the client after every mutation.
type SessionResponse struct {
	ID          string               `json:"id"`
	BakeryID    string               `json:"bakery_id"`
	Config      model.CakeConfig     `json:"config"`
	Progress    model.WizardProgress `json:"progress"`
	ActiveStage string               `json:"active_stage"`
}

// SubmissionResponse is the materialized custom cake preview.
type SubmissionResponse struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Price       string `json:"price"`
}
