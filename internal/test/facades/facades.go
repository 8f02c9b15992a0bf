// Package facades holds stubs for the app facade interfaces consumed by the
// HTTP and worker layers. They live apart from the lower-level stubs so the
// usecase tests can keep using those without importing usecase back.
package facades

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/sugarline/cakeshop/internal/domain/model"
	"github.com/sugarline/cakeshop/internal/domain/repository"
	pkgAuth "github.com/sugarline/cakeshop/internal/pkg/auth"
	"github.com/sugarline/cakeshop/internal/usecase"
)

func defaultSession(id uuid.UUID) *model.ConfigSession {
	return &model.ConfigSession{
		ID:       id,
		BakeryID: "bakery-1",
		Config:   model.NewCakeConfig(),
	}
}

// SessionFacadeStub provides controllable behaviour for session endpoints.
type SessionFacadeStub struct {
	StartSessionFn     func(context.Context, string, string) (*model.ConfigSession, error)
	SessionFn          func(context.Context, uuid.UUID) (*model.ConfigSession, error)
	SelectOptionFn     func(context.Context, uuid.UUID, model.OptionCategory, string) (*model.ConfigSession, error)
	ToggleDecorationFn func(context.Context, uuid.UUID, string) (*model.ConfigSession, error)
	ToggleExtraFn      func(context.Context, uuid.UUID, string) (*model.ConfigSession, error)
	SetMessageTypeFn   func(context.Context, uuid.UUID, model.MessageType) (*model.ConfigSession, error)
	SetMessageTextFn   func(context.Context, uuid.UUID, string) (*model.ConfigSession, error)
	SetPlaqueColorFn   func(context.Context, uuid.UUID, string) (*model.ConfigSession, error)
	SetPipingColorFn   func(context.Context, uuid.UUID, string) (*model.ConfigSession, error)
	SetUploadedImageFn func(context.Context, uuid.UUID, string) (*model.ConfigSession, error)
	ResetFn            func(context.Context, uuid.UUID) (*model.ConfigSession, error)
	CompleteStageFn    func(context.Context, uuid.UUID, model.WizardStage) (*model.ConfigSession, error)
	MaterializeFn      func(context.Context, uuid.UUID) (*model.Submission, error)
	DiscardFn          func(context.Context, uuid.UUID) error
	AddToCartFn        func(context.Context, string, uuid.UUID, int) error
}

func (s SessionFacadeStub) StartSession(ctx context.Context, customerID, bakeryID string) (*model.ConfigSession, error) {
	if s.StartSessionFn != nil {
		return s.StartSessionFn(ctx, customerID, bakeryID)
	}
	session := defaultSession(uuid.New())
	session.BakeryID = bakeryID
	session.CustomerID = customerID
	return session, nil
}

func (s SessionFacadeStub) Session(ctx context.Context, id uuid.UUID) (*model.ConfigSession, error) {
	if s.SessionFn != nil {
		return s.SessionFn(ctx, id)
	}
	return defaultSession(id), nil
}

func (s SessionFacadeStub) SelectOption(ctx context.Context, id uuid.UUID, category model.OptionCategory, optionID string) (*model.ConfigSession, error) {
	if s.SelectOptionFn != nil {
		return s.SelectOptionFn(ctx, id, category, optionID)
	}
	return defaultSession(id), nil
}

func (s SessionFacadeStub) ToggleDecoration(ctx context.Context, id uuid.UUID, optionID string) (*model.ConfigSession, error) {
	if s.ToggleDecorationFn != nil {
		return s.ToggleDecorationFn(ctx, id, optionID)
	}
	return defaultSession(id), nil
}

func (s SessionFacadeStub) ToggleExtra(ctx context.Context, id uuid.UUID, optionID string) (*model.ConfigSession, error) {
	if s.ToggleExtraFn != nil {
		return s.ToggleExtraFn(ctx, id, optionID)
	}
	return defaultSession(id), nil
}

func (s SessionFacadeStub) SetMessageType(ctx context.Context, id uuid.UUID, t model.MessageType) (*model.ConfigSession, error) {
	if s.SetMessageTypeFn != nil {
		return s.SetMessageTypeFn(ctx, id, t)
	}
	return defaultSession(id), nil
}

func (s SessionFacadeStub) SetMessageText(ctx context.Context, id uuid.UUID, text string) (*model.ConfigSession, error) {
	if s.SetMessageTextFn != nil {
		return s.SetMessageTextFn(ctx, id, text)
	}
	return defaultSession(id), nil
}

func (s SessionFacadeStub) SetPlaqueColor(ctx context.Context, id uuid.UUID, optionID string) (*model.ConfigSession, error) {
	if s.SetPlaqueColorFn != nil {
		return s.SetPlaqueColorFn(ctx, id, optionID)
	}
	return defaultSession(id), nil
}

func (s SessionFacadeStub) SetPipingColor(ctx context.Context, id uuid.UUID, optionID string) (*model.ConfigSession, error) {
	if s.SetPipingColorFn != nil {
		return s.SetPipingColorFn(ctx, id, optionID)
	}
	return defaultSession(id), nil
}

func (s SessionFacadeStub) SetUploadedImage(ctx context.Context, id uuid.UUID, ref string) (*model.ConfigSession, error) {
	if s.SetUploadedImageFn != nil {
		return s.SetUploadedImageFn(ctx, id, ref)
	}
	return defaultSession(id), nil
}

func (s SessionFacadeStub) ResetConfiguration(ctx context.Context, id uuid.UUID) (*model.ConfigSession, error) {
	if s.ResetFn != nil {
		return s.ResetFn(ctx, id)
	}
	return defaultSession(id), nil
}

func (s SessionFacadeStub) CompleteStage(ctx context.Context, id uuid.UUID, stage model.WizardStage) (*model.ConfigSession, error) {
	if s.CompleteStageFn != nil {
		return s.CompleteStageFn(ctx, id, stage)
	}
	return defaultSession(id), nil
}

func (s SessionFacadeStub) Materialize(ctx context.Context, id uuid.UUID) (*model.Submission, error) {
	if s.MaterializeFn != nil {
		return s.MaterializeFn(ctx, id)
	}
	return &model.Submission{Name: "Custom cake", Price: decimal.NewFromInt(100)}, nil
}

func (s SessionFacadeStub) DiscardSession(ctx context.Context, id uuid.UUID) error {
	if s.DiscardFn != nil {
		return s.DiscardFn(ctx, id)
	}
	return nil
}

func (s SessionFacadeStub) AddSessionToCart(ctx context.Context, token string, id uuid.UUID, quantity int) error {
	if s.AddToCartFn != nil {
		return s.AddToCartFn(ctx, token, id, quantity)
	}
	return nil
}

// StudioFacadeStub provides controllable behaviour for studio endpoints.
type StudioFacadeStub struct {
	SceneFn         func(context.Context, uuid.UUID) (*model.StudioScene, error)
	SetColorFn      func(context.Context, uuid.UUID, string, string) (*model.StudioScene, error)
	SetTextureFn    func(context.Context, uuid.UUID, string, string) (*model.StudioScene, error)
	AddTextFn       func(context.Context, uuid.UUID, model.StudioText) (*model.StudioScene, error)
	RemoveTextFn    func(context.Context, uuid.UUID, string) (*model.StudioScene, error)
	AddToppingFn    func(context.Context, uuid.UUID, model.StudioTopping) (*model.StudioScene, error)
	RemoveToppingFn func(context.Context, uuid.UUID, string) (*model.StudioScene, error)
	ClearFn         func(context.Context, uuid.UUID) (*model.StudioScene, error)
}

func defaultScene() *model.StudioScene {
	scene := model.NewStudioScene()
	return &scene
}

func (s StudioFacadeStub) StudioScene(ctx context.Context, id uuid.UUID) (*model.StudioScene, error) {
	if s.SceneFn != nil {
		return s.SceneFn(ctx, id)
	}
	return defaultScene(), nil
}

func (s StudioFacadeStub) SetStudioColor(ctx context.Context, id uuid.UUID, part, color string) (*model.StudioScene, error) {
	if s.SetColorFn != nil {
		return s.SetColorFn(ctx, id, part, color)
	}
	return defaultScene(), nil
}

func (s StudioFacadeStub) SetStudioTexture(ctx context.Context, id uuid.UUID, part, textureRef string) (*model.StudioScene, error) {
	if s.SetTextureFn != nil {
		return s.SetTextureFn(ctx, id, part, textureRef)
	}
	return defaultScene(), nil
}

func (s StudioFacadeStub) AddStudioText(ctx context.Context, id uuid.UUID, text model.StudioText) (*model.StudioScene, error) {
	if s.AddTextFn != nil {
		return s.AddTextFn(ctx, id, text)
	}
	return defaultScene(), nil
}

func (s StudioFacadeStub) RemoveStudioText(ctx context.Context, id uuid.UUID, textID string) (*model.StudioScene, error) {
	if s.RemoveTextFn != nil {
		return s.RemoveTextFn(ctx, id, textID)
	}
	return defaultScene(), nil
}

func (s StudioFacadeStub) AddStudioTopping(ctx context.Context, id uuid.UUID, topping model.StudioTopping) (*model.StudioScene, error) {
	if s.AddToppingFn != nil {
		return s.AddToppingFn(ctx, id, topping)
	}
	return defaultScene(), nil
}

func (s StudioFacadeStub) RemoveStudioTopping(ctx context.Context, id uuid.UUID, toppingID string) (*model.StudioScene, error) {
	if s.RemoveToppingFn != nil {
		return s.RemoveToppingFn(ctx, id, toppingID)
	}
	return defaultScene(), nil
}

func (s StudioFacadeStub) ClearStudio(ctx context.Context, id uuid.UUID) (*model.StudioScene, error) {
	if s.ClearFn != nil {
		return s.ClearFn(ctx, id)
	}
	return defaultScene(), nil
}

// CheckoutFacadeStub provides controllable behaviour for checkout endpoints.
type CheckoutFacadeStub struct {
	QuoteFn        func(context.Context, string, *model.Voucher, model.ShippingType, *model.Coordinates) (*usecase.Quote, error)
	ResolveFn      func(context.Context, string, string, bool, usecase.AddressForm) (model.Coordinates, error)
	AutocompleteFn func(context.Context, string) ([]string, error)
	SubmitFn       func(context.Context, usecase.SubmitInput) (*usecase.SubmitResult, error)

	Invalidated []string
}

func (s *CheckoutFacadeStub) QuoteCheckout(ctx context.Context, token string, voucher *model.Voucher, shippingType model.ShippingType, destination *model.Coordinates) (*usecase.Quote, error) {
	if s.QuoteFn != nil {
		return s.QuoteFn(ctx, token, voucher, shippingType, destination)
	}
	return &usecase.Quote{Subtotal: decimal.NewFromInt(100), FeeState: usecase.FeeFree, Total: decimal.NewFromInt(100)}, nil
}

func (s *CheckoutFacadeStub) ResolveAddress(ctx context.Context, token, customerID string, useCurrent bool, form usecase.AddressForm) (model.Coordinates, error) {
	if s.ResolveFn != nil {
		return s.ResolveFn(ctx, token, customerID, useCurrent, form)
	}
	return model.Coordinates{Latitude: 13.75, Longitude: 100.5}, nil
}

func (s *CheckoutFacadeStub) InvalidateAddress(customerID string) {
	s.Invalidated = append(s.Invalidated, customerID)
}

func (s *CheckoutFacadeStub) AutocompleteAddress(ctx context.Context, query string) ([]string, error) {
	if s.AutocompleteFn != nil {
		return s.AutocompleteFn(ctx, query)
	}
	return []string{query + " Street"}, nil
}

func (s *CheckoutFacadeStub) SubmitOrder(ctx context.Context, in usecase.SubmitInput) (*usecase.SubmitResult, error) {
	if s.SubmitFn != nil {
		return s.SubmitFn(ctx, in)
	}
	return &usecase.SubmitResult{Order: &model.Order{ID: "order-1"}}, nil
}

// VoucherFacadeStub provides controllable behaviour for voucher endpoints.
type VoucherFacadeStub struct {
	VouchersFn func(context.Context, string, string, decimal.Decimal) ([]usecase.VoucherOffer, error)
}

func (s VoucherFacadeStub) Vouchers(ctx context.Context, token, bakeryID string, subtotal decimal.Decimal) ([]usecase.VoucherOffer, error) {
	if s.VouchersFn != nil {
		return s.VouchersFn(ctx, token, bakeryID, subtotal)
	}
	return []usecase.VoucherOffer{{Voucher: model.Voucher{Code: "CAKE10"}, Applicable: true}}, nil
}

// OrderFacadeStub provides controllable behaviour for order endpoints.
type OrderFacadeStub struct {
	OrdersFn func(context.Context, string) ([]usecase.OrderView, error)
	DetailFn func(context.Context, string, string) (*usecase.OrderView, error)
	CancelFn func(context.Context, string, string) error
	ReviewFn func(context.Context, string, string, int, string) error
	ReportFn func(context.Context, string, string, string, []string) error
}

func (s OrderFacadeStub) Orders(ctx context.Context, token string) ([]usecase.OrderView, error) {
	if s.OrdersFn != nil {
		return s.OrdersFn(ctx, token)
	}
	return []usecase.OrderView{{Order: model.Order{ID: "order-1"}}}, nil
}

func (s OrderFacadeStub) OrderDetail(ctx context.Context, token, orderID string) (*usecase.OrderView, error) {
	if s.DetailFn != nil {
		return s.DetailFn(ctx, token, orderID)
	}
	return &usecase.OrderView{Order: model.Order{ID: orderID}}, nil
}

func (s OrderFacadeStub) CancelOrder(ctx context.Context, token, orderID string) error {
	if s.CancelFn != nil {
		return s.CancelFn(ctx, token, orderID)
	}
	return nil
}

func (s OrderFacadeStub) SubmitReview(ctx context.Context, token, orderID string, rating int, comment string) error {
	if s.ReviewFn != nil {
		return s.ReviewFn(ctx, token, orderID, rating, comment)
	}
	return nil
}

func (s OrderFacadeStub) SubmitReport(ctx context.Context, token, orderID, reason string, imageRefs []string) error {
	if s.ReportFn != nil {
		return s.ReportFn(ctx, token, orderID, reason, imageRefs)
	}
	return nil
}

// FileFacadeStub provides controllable behaviour for upload endpoints.
type FileFacadeStub struct {
	UploadFn func(context.Context, string, string, []byte) (string, error)
}

func (s FileFacadeStub) UploadFile(ctx context.Context, token, filename string, data []byte) (string, error) {
	if s.UploadFn != nil {
		return s.UploadFn(ctx, token, filename, data)
	}
	return "file-ref-1", nil
}

// StorefrontFacadeStub aggregates facade dependencies for HTTP layer tests.
type StorefrontFacadeStub struct {
	SessionFacadeStub
	StudioFacadeStub
	CheckoutFacadeStub
	VoucherFacadeStub
	OrderFacadeStub
	FileFacadeStub

	DecodeFn func(string) (*pkgAuth.Claims, error)
}

// DecodeClaims delegates to the override or accepts any token as customer-1.
func (s *StorefrontFacadeStub) DecodeClaims(token string) (*pkgAuth.Claims, error) {
	if s.DecodeFn != nil {
		return s.DecodeFn(token)
	}
	return &pkgAuth.Claims{Subject: "customer-1", ExpiresAt: time.Now().Add(time.Hour)}, nil
}

// WatcherFacadeStub mimics payment watcher interactions with the facade.
type WatcherFacadeStub struct {
	ExpiredFn func(context.Context, int) ([]repository.PendingPayment, error)
	CancelFn  func(context.Context, string, string) error
	ClearFn   func(context.Context, repository.PendingPayment) error

	mu        sync.Mutex
	Expired   [][]repository.PendingPayment
	calls     int
	Cancelled []string
	Cleared   []uuid.UUID
}

// ExpiredPayments pops the next configured batch.
func (s *WatcherFacadeStub) ExpiredPayments(ctx context.Context, limit int) ([]repository.PendingPayment, error) {
	if s.ExpiredFn != nil {
		return s.ExpiredFn(ctx, limit)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.calls >= len(s.Expired) {
		return nil, nil
	}
	batch := s.Expired[s.calls]
	s.calls++
	return batch, nil
}

// CancelOrder records cancelled orders.
func (s *WatcherFacadeStub) CancelOrder(ctx context.Context, token, orderID string) error {
	if s.CancelFn != nil {
		return s.CancelFn(ctx, token, orderID)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Cancelled = append(s.Cancelled, orderID)
	return nil
}

// ClearPendingPayment records cleared payments.
func (s *WatcherFacadeStub) ClearPendingPayment(ctx context.Context, payment repository.PendingPayment) error {
	if s.ClearFn != nil {
		return s.ClearFn(ctx, payment)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Cleared = append(s.Cleared, payment.ID)
	return nil
}

// CancelledOrders returns a snapshot of cancelled order ids.
func (s *WatcherFacadeStub) CancelledOrders() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]string, len(s.Cancelled))
	copy(out, s.Cancelled)
	return out
}

// ClearedPayments returns a snapshot of cleared payment ids.
func (s *WatcherFacadeStub) ClearedPayments() []uuid.UUID {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]uuid.UUID, len(s.Cleared))
	copy(out, s.Cleared)
	return out
}
