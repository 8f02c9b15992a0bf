package handlers

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/sugarline/cakeshop/internal/domain/model"
	"github.com/sugarline/cakeshop/internal/pkg/auth"
	"github.com/sugarline/cakeshop/internal/usecase"
)

// SessionFacade exposes cake configuration sessions to handlers.
type SessionFacade interface {
	StartSession(ctx context.Context, customerID, bakeryID string) (*model.ConfigSession, error)
	Session(ctx context.Context, id uuid.UUID) (*model.ConfigSession, error)
	SelectOption(ctx context.Context, id uuid.UUID, category model.OptionCategory, optionID string) (*model.ConfigSession, error)
	ToggleDecoration(ctx context.Context, id uuid.UUID, optionID string) (*model.ConfigSession, error)
	ToggleExtra(ctx context.Context, id uuid.UUID, optionID string) (*model.ConfigSession, error)
	SetMessageType(ctx context.Context, id uuid.UUID, t model.MessageType) (*model.ConfigSession, error)
	SetMessageText(ctx context.Context, id uuid.UUID, text string) (*model.ConfigSession, error)
	SetPlaqueColor(ctx context.Context, id uuid.UUID, optionID string) (*model.ConfigSession, error)
	SetPipingColor(ctx context.Context, id uuid.UUID, optionID string) (*model.ConfigSession, error)
	SetUploadedImage(ctx context.Context, id uuid.UUID, ref string) (*model.ConfigSession, error)
	ResetConfiguration(ctx context.Context, id uuid.UUID) (*model.ConfigSession, error)
	CompleteStage(ctx context.Context, id uuid.UUID, stage model.WizardStage) (*model.ConfigSession, error)
	Materialize(ctx context.Context, id uuid.UUID) (*model.Submission, error)
	DiscardSession(ctx context.Context, id uuid.UUID) error
	AddSessionToCart(ctx context.Context, token string, id uuid.UUID, quantity int) error
}

// StudioFacade exposes the 3D customization scene to handlers.
type StudioFacade interface {
	StudioScene(ctx context.Context, id uuid.UUID) (*model.StudioScene, error)
	SetStudioColor(ctx context.Context, id uuid.UUID, part, color string) (*model.StudioScene, error)
	SetStudioTexture(ctx context.Context, id uuid.UUID, part, textureRef string) (*model.StudioScene, error)
	AddStudioText(ctx context.Context, id uuid.UUID, text model.StudioText) (*model.StudioScene, error)
	RemoveStudioText(ctx context.Context, id uuid.UUID, textID string) (*model.StudioScene, error)
	AddStudioTopping(ctx context.Context, id uuid.UUID, topping model.StudioTopping) (*model.StudioScene, error)
	RemoveStudioTopping(ctx context.Context, id uuid.UUID, toppingID string) (*model.StudioScene, error)
	ClearStudio(ctx context.Context, id uuid.UUID) (*model.StudioScene, error)
}

// CheckoutFacade exposes checkout aggregation to handlers.
type CheckoutFacade interface {
	QuoteCheckout(ctx context.Context, token string, voucher *model.Voucher, shippingType model.ShippingType, destination *model.Coordinates) (*usecase.Quote, error)
	ResolveAddress(ctx context.Context, token, customerID string, useCurrent bool, form usecase.AddressForm) (model.Coordinates, error)
	InvalidateAddress(customerID string)
	AutocompleteAddress(ctx context.Context, query string) ([]string, error)
	SubmitOrder(ctx context.Context, in usecase.SubmitInput) (*usecase.SubmitResult, error)
}

// VoucherFacade exposes voucher discovery to handlers.
type VoucherFacade interface {
	Vouchers(ctx context.Context, token, bakeryID string, subtotal decimal.Decimal) ([]usecase.VoucherOffer, error)
}

// OrderFacade exposes order tracking operations to handlers.
type OrderFacade interface {
	Orders(ctx context.Context, token string) ([]usecase.OrderView, error)
	OrderDetail(ctx context.Context, token, orderID string) (*usecase.OrderView, error)
	CancelOrder(ctx context.Context, token, orderID string) error
	SubmitReview(ctx context.Context, token, orderID string, rating int, comment string) error
	SubmitReport(ctx context.Context, token, orderID, reason string, imageRefs []string) error
}

// FileFacade exposes file uploads to handlers.
type FileFacade interface {
	UploadFile(ctx context.Context, token, filename string, data []byte) (string, error)
}

// StorefrontFacade aggregates the full set of operations used across handlers.
type StorefrontFacade interface {
	SessionFacade
	StudioFacade
	CheckoutFacade
	VoucherFacade
	OrderFacade
	FileFacade
	DecodeClaims(token string) (*auth.Claims, error)
}
