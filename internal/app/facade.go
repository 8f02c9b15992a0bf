package app

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/sugarline/cakeshop/internal/domain/model"
	"github.com/sugarline/cakeshop/internal/domain/repository"
	"github.com/sugarline/cakeshop/internal/pkg/auth"
	"github.com/sugarline/cakeshop/internal/usecase"
)

// FileUploader stores files on the platform and returns their references.
type FileUploader interface {
	Upload(ctx context.Context, token, filename string, data []byte) (string, error)
}

// StorefrontFacade aggregates the storefront use cases behind one surface for
// the HTTP handlers and the payment watcher.
type StorefrontFacade struct {
	configurator *usecase.ConfiguratorUseCase
	checkout     *usecase.CheckoutUseCase
	vouchers     *usecase.VoucherUseCase
	orders       *usecase.OrderUseCase
	studio       *usecase.StudioUseCase
	geocoder     usecase.Geocoder
	files        FileUploader
	claims       auth.Decoder
	pending      repository.PendingPaymentRepository
}

// NewStorefrontFacade constructs StorefrontFacade.
func NewStorefrontFacade(
	configurator *usecase.ConfiguratorUseCase,
	checkout *usecase.CheckoutUseCase,
	vouchers *usecase.VoucherUseCase,
	orders *usecase.OrderUseCase,
	studio *usecase.StudioUseCase,
	geocoder usecase.Geocoder,
	files FileUploader,
	claims auth.Decoder,
	pending repository.PendingPaymentRepository,
) *StorefrontFacade {
	return &StorefrontFacade{
		configurator: configurator,
		checkout:     checkout,
		vouchers:     vouchers,
		orders:       orders,
		studio:       studio,
		geocoder:     geocoder,
		files:        files,
		claims:       claims,
		pending:      pending,
	}
}

// DecodeClaims extracts display-only claims from a bearer token.
func (f *StorefrontFacade) DecodeClaims(token string) (*auth.Claims, error) {
	return f.claims.Decode(token)
}

// --- configuration sessions ---

func (f *StorefrontFacade) StartSession(ctx context.Context, customerID, bakeryID string) (*model.ConfigSession, error) {
	return f.configurator.StartSession(ctx, customerID, bakeryID)
}

func (f *StorefrontFacade) Session(ctx context.Context, id uuid.UUID) (*model.ConfigSession, error) {
	return f.configurator.Session(ctx, id)
}

func (f *StorefrontFacade) SelectOption(ctx context.Context, id uuid.UUID, category model.OptionCategory, optionID string) (*model.ConfigSession, error) {
	return f.configurator.SelectOption(ctx, id, category, optionID)
}

func (f *StorefrontFacade) ToggleDecoration(ctx context.Context, id uuid.UUID, optionID string) (*model.ConfigSession, error) {
	return f.configurator.ToggleDecoration(ctx, id, optionID)
}

func (f *StorefrontFacade) ToggleExtra(ctx context.Context, id uuid.UUID, optionID string) (*model.ConfigSession, error) {
	return f.configurator.ToggleExtra(ctx, id, optionID)
}

func (f *StorefrontFacade) SetMessageType(ctx context.Context, id uuid.UUID, t model.MessageType) (*model.ConfigSession, error) {
	return f.configurator.SetMessageType(ctx, id, t)
}

func (f *StorefrontFacade) SetMessageText(ctx context.Context, id uuid.UUID, text string) (*model.ConfigSession, error) {
	return f.configurator.SetMessageText(ctx, id, text)
}

func (f *StorefrontFacade) SetPlaqueColor(ctx context.Context, id uuid.UUID, optionID string) (*model.ConfigSession, error) {
	return f.configurator.SetPlaqueColor(ctx, id, optionID)
}

func (f *StorefrontFacade) SetPipingColor(ctx context.Context, id uuid.UUID, optionID string) (*model.ConfigSession, error) {
	return f.configurator.SetPipingColor(ctx, id, optionID)
}

func (f *StorefrontFacade) SetUploadedImage(ctx context.Context, id uuid.UUID, ref string) (*model.ConfigSession, error) {
	return f.configurator.SetUploadedImage(ctx, id, ref)
}

func (f *StorefrontFacade) ResetConfiguration(ctx context.Context, id uuid.UUID) (*model.ConfigSession, error) {
	return f.configurator.Reset(ctx, id)
}

func (f *StorefrontFacade) CompleteStage(ctx context.Context, id uuid.UUID, stage model.WizardStage) (*model.ConfigSession, error) {
	return f.configurator.CompleteStage(ctx, id, stage)
}

func (f *StorefrontFacade) Materialize(ctx context.Context, id uuid.UUID) (*model.Submission, error) {
	return f.configurator.Materialize(ctx, id)
}

func (f *StorefrontFacade) DiscardSession(ctx context.Context, id uuid.UUID) error {
	return f.configurator.Discard(ctx, id)
}

// AddSessionToCart materializes a completed session and appends it to the
// authoritative cart.
func (f *StorefrontFacade) AddSessionToCart(ctx context.Context, token string, id uuid.UUID, quantity int) error {
	session, err := f.configurator.Session(ctx, id)
	if err != nil {
		return err
	}
	submission, err := f.configurator.Materialize(ctx, id)
	if err != nil {
		return err
	}
	return f.checkout.AddCustomCake(ctx, token, session.BakeryID, submission, session.Config, quantity)
}

// --- studio ---

func (f *StorefrontFacade) StudioScene(ctx context.Context, id uuid.UUID) (*model.StudioScene, error) {
	return f.studio.Scene(ctx, id)
}

func (f *StorefrontFacade) SetStudioColor(ctx context.Context, id uuid.UUID, part, color string) (*model.StudioScene, error) {
	return f.studio.SetColor(ctx, id, part, color)
}

func (f *StorefrontFacade) SetStudioTexture(ctx context.Context, id uuid.UUID, part, textureRef string) (*model.StudioScene, error) {
	return f.studio.SetTexture(ctx, id, part, textureRef)
}

func (f *StorefrontFacade) AddStudioText(ctx context.Context, id uuid.UUID, text model.StudioText) (*model.StudioScene, error) {
	return f.studio.AddText(ctx, id, text)
}

func (f *StorefrontFacade) RemoveStudioText(ctx context.Context, id uuid.UUID, textID string) (*model.StudioScene, error) {
	return f.studio.RemoveText(ctx, id, textID)
}

func (f *StorefrontFacade) AddStudioTopping(ctx context.Context, id uuid.UUID, topping model.StudioTopping) (*model.StudioScene, error) {
	return f.studio.AddTopping(ctx, id, topping)
}

func (f *StorefrontFacade) RemoveStudioTopping(ctx context.Context, id uuid.UUID, toppingID string) (*model.StudioScene, error) {
	return f.studio.RemoveTopping(ctx, id, toppingID)
}

func (f *StorefrontFacade) ClearStudio(ctx context.Context, id uuid.UUID) (*model.StudioScene, error) {
	return f.studio.Clear(ctx, id)
}

// --- checkout ---

func (f *StorefrontFacade) QuoteCheckout(ctx context.Context, token string, voucher *model.Voucher, shippingType model.ShippingType, destination *model.Coordinates) (*usecase.Quote, error) {
	return f.checkout.QuoteCart(ctx, token, voucher, shippingType, destination)
}

func (f *StorefrontFacade) ResolveAddress(ctx context.Context, token, customerID string, useCurrent bool, form usecase.AddressForm) (model.Coordinates, error) {
	return f.checkout.ResolveAddress(ctx, token, customerID, useCurrent, form)
}

func (f *StorefrontFacade) InvalidateAddress(customerID string) {
	f.checkout.InvalidateAddress(customerID)
}

func (f *StorefrontFacade) AutocompleteAddress(ctx context.Context, query string) ([]string, error) {
	return f.geocoder.Autocomplete(ctx, query)
}

func (f *StorefrontFacade) SubmitOrder(ctx context.Context, in usecase.SubmitInput) (*usecase.SubmitResult, error) {
	return f.checkout.Submit(ctx, in)
}

// --- vouchers ---

func (f *StorefrontFacade) Vouchers(ctx context.Context, token, bakeryID string, subtotal decimal.Decimal) ([]usecase.VoucherOffer, error) {
	return f.vouchers.Available(ctx, token, bakeryID, subtotal)
}

// --- orders ---

func (f *StorefrontFacade) Orders(ctx context.Context, token string) ([]usecase.OrderView, error) {
	return f.orders.List(ctx, token)
}

func (f *StorefrontFacade) OrderDetail(ctx context.Context, token, orderID string) (*usecase.OrderView, error) {
	return f.orders.Detail(ctx, token, orderID)
}

func (f *StorefrontFacade) CancelOrder(ctx context.Context, token, orderID string) error {
	return f.orders.Cancel(ctx, token, orderID)
}

func (f *StorefrontFacade) SubmitReview(ctx context.Context, token, orderID string, rating int, comment string) error {
	return f.orders.SubmitReview(ctx, token, orderID, rating, comment)
}

func (f *StorefrontFacade) SubmitReport(ctx context.Context, token, orderID, reason string, imageRefs []string) error {
	return f.orders.SubmitReport(ctx, token, orderID, reason, imageRefs)
}

func (f *StorefrontFacade) UploadFile(ctx context.Context, token, filename string, data []byte) (string, error) {
	return f.files.Upload(ctx, token, filename, data)
}

// --- payment watcher support ---

func (f *StorefrontFacade) ExpiredPayments(ctx context.Context, limit int) ([]repository.PendingPayment, error) {
	return f.pending.SelectExpired(ctx, time.Now(), limit)
}

func (f *StorefrontFacade) ClearPendingPayment(ctx context.Context, payment repository.PendingPayment) error {
	return f.pending.Remove(ctx, payment.ID)
}
