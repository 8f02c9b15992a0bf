package test

import (
	"context"

	"github.com/shopspring/decimal"

	domainErrors "github.com/sugarline/cakeshop/internal/domain/errors"
	"github.com/sugarline/cakeshop/internal/domain/model"
)

// CatalogProviderStub serves a fixed catalog for configurator tests.
type CatalogProviderStub struct {
	CatalogVal *model.Catalog
	Err        error
}

// Catalog returns the configured catalog.
func (s CatalogProviderStub) Catalog(ctx context.Context, bakeryID string) (*model.Catalog, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	if s.CatalogVal != nil {
		return s.CatalogVal, nil
	}
	return &model.Catalog{BakeryID: bakeryID}, nil
}

// CartServiceStub simulates the remote cart API.
type CartServiceStub struct {
	CartFn         func(context.Context, string) (*model.Cart, error)
	ReplaceLinesFn func(context.Context, string, string, []model.CartLine) error

	CartVal  *model.Cart
	Replaced [][]model.CartLine
}

// Cart returns the configured cart.
func (s *CartServiceStub) Cart(ctx context.Context, token string) (*model.Cart, error) {
	if s.CartFn != nil {
		return s.CartFn(ctx, token)
	}
	if s.CartVal != nil {
		return s.CartVal, nil
	}
	return &model.Cart{}, nil
}

// ReplaceLines records replacement invocations.
func (s *CartServiceStub) ReplaceLines(ctx context.Context, token, bakeryID string, lines []model.CartLine) error {
	if s.ReplaceLinesFn != nil {
		return s.ReplaceLinesFn(ctx, token, bakeryID, lines)
	}
	s.Replaced = append(s.Replaced, lines)
	return nil
}

// OrderServiceStub simulates the remote order API.
type OrderServiceStub struct {
	CreateFn     func(context.Context, string, *model.Order) (*model.Order, error)
	MoveToNextFn func(context.Context, string, string) error
	CancelFn     func(context.Context, string, string) error
	GetFn        func(context.Context, string, string) (*model.Order, error)
	ListFn       func(context.Context, string) ([]model.Order, error)

	Created   []model.Order
	Moved     []string
	Cancelled []string
	Orders    []model.Order
}

// Create records the order and assigns a deterministic identifier.
func (s *OrderServiceStub) Create(ctx context.Context, token string, order *model.Order) (*model.Order, error) {
	if s.CreateFn != nil {
		return s.CreateFn(ctx, token, order)
	}
	created := *order
	created.ID = "order-1"
	s.Created = append(s.Created, created)
	return &created, nil
}

// MoveToNext records advancement invocations.
func (s *OrderServiceStub) MoveToNext(ctx context.Context, token, orderID string) error {
	if s.MoveToNextFn != nil {
		return s.MoveToNextFn(ctx, token, orderID)
	}
	s.Moved = append(s.Moved, orderID)
	return nil
}

// Cancel records cancellation invocations.
func (s *OrderServiceStub) Cancel(ctx context.Context, token, orderID string) error {
	if s.CancelFn != nil {
		return s.CancelFn(ctx, token, orderID)
	}
	s.Cancelled = append(s.Cancelled, orderID)
	return nil
}

// Get returns the matching stored order or not found.
func (s *OrderServiceStub) Get(ctx context.Context, token, orderID string) (*model.Order, error) {
	if s.GetFn != nil {
		return s.GetFn(ctx, token, orderID)
	}
	for _, o := range s.Orders {
		if o.ID == orderID {
			order := o
			return &order, nil
		}
	}
	return nil, domainErrors.ErrNotFound
}

// List returns stored orders.
func (s *OrderServiceStub) List(ctx context.Context, token string) ([]model.Order, error) {
	if s.ListFn != nil {
		return s.ListFn(ctx, token)
	}
	return s.Orders, nil
}

// ShippingServiceStub returns fixed shipping quotes.
type ShippingServiceStub struct {
	QuoteFn  func(context.Context, model.Coordinates, model.Coordinates) (*model.ShippingQuote, error)
	QuoteVal *model.ShippingQuote
	Err      error
}

// Quote returns the configured quote.
func (s ShippingServiceStub) Quote(ctx context.Context, from, to model.Coordinates) (*model.ShippingQuote, error) {
	if s.QuoteFn != nil {
		return s.QuoteFn(ctx, from, to)
	}
	if s.Err != nil {
		return nil, s.Err
	}
	if s.QuoteVal != nil {
		return s.QuoteVal, nil
	}
	return &model.ShippingQuote{Fee: decimal.NewFromInt(30)}, nil
}

// CustomerServiceStub serves fixed customer profiles.
type CustomerServiceStub struct {
	ProfileVal *model.Customer
	Err        error
}

// Profile returns the configured profile.
func (s CustomerServiceStub) Profile(ctx context.Context, token, customerID string) (*model.Customer, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	if s.ProfileVal != nil {
		return s.ProfileVal, nil
	}
	return &model.Customer{ID: customerID}, nil
}

// BakeryServiceStub serves fixed bakery coordinates.
type BakeryServiceStub struct {
	LocationVal model.Coordinates
	Err         error
}

// Location returns the configured coordinates.
func (s BakeryServiceStub) Location(ctx context.Context, bakeryID string) (model.Coordinates, error) {
	if s.Err != nil {
		return model.Coordinates{}, s.Err
	}
	return s.LocationVal, nil
}

// CustomCakeServiceStub records custom cake creations.
type CustomCakeServiceStub struct {
	CreateFn func(context.Context, string, string, *model.Submission, model.CakeConfig) (string, error)
	Created  []model.Submission
	Err      error
}

// CreateCustomCake records the submission and returns a fixed identifier.
func (s *CustomCakeServiceStub) CreateCustomCake(ctx context.Context, token, bakeryID string, submission *model.Submission, config model.CakeConfig) (string, error) {
	if s.CreateFn != nil {
		return s.CreateFn(ctx, token, bakeryID, submission, config)
	}
	if s.Err != nil {
		return "", s.Err
	}
	s.Created = append(s.Created, *submission)
	return "custom-cake-1", nil
}

// VoucherServiceStub serves fixed voucher lists.
type VoucherServiceStub struct {
	BakeryVal   []model.Voucher
	CustomerVal []model.Voucher
	Err         error
}

// BakeryVouchers returns bakery-wide vouchers.
func (s VoucherServiceStub) BakeryVouchers(ctx context.Context, bakeryID string) ([]model.Voucher, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	return s.BakeryVal, nil
}

// CustomerVouchers returns collected customer vouchers.
func (s VoucherServiceStub) CustomerVouchers(ctx context.Context, token string) ([]model.Voucher, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	return s.CustomerVal, nil
}

// ReviewServiceStub records submitted reviews.
type ReviewServiceStub struct {
	Reviews []string
	Err     error
}

// SubmitReview records the reviewed order.
func (s *ReviewServiceStub) SubmitReview(ctx context.Context, token, orderID string, rating int, comment string) error {
	if s.Err != nil {
		return s.Err
	}
	s.Reviews = append(s.Reviews, orderID)
	return nil
}

// ReportServiceStub records submitted reports.
type ReportServiceStub struct {
	Reports []string
	Err     error
}

// SubmitReport records the reported order.
func (s *ReportServiceStub) SubmitReport(ctx context.Context, token, orderID, reason string, imageRefs []string) error {
	if s.Err != nil {
		return s.Err
	}
	s.Reports = append(s.Reports, orderID)
	return nil
}

// GeocoderStub resolves addresses via overrides or fixed values.
type GeocoderStub struct {
	ForwardFn      func(context.Context, string) (model.Coordinates, error)
	AutocompleteFn func(context.Context, string) ([]string, error)
	Coords         model.Coordinates
	Err            error
}

// Forward resolves a textual address.
func (s GeocoderStub) Forward(ctx context.Context, address string) (model.Coordinates, error) {
	if s.ForwardFn != nil {
		return s.ForwardFn(ctx, address)
	}
	if s.Err != nil {
		return model.Coordinates{}, s.Err
	}
	return s.Coords, nil
}

// Autocomplete suggests completions for a partial query.
func (s GeocoderStub) Autocomplete(ctx context.Context, query string) ([]string, error) {
	if s.AutocompleteFn != nil {
		return s.AutocompleteFn(ctx, query)
	}
	if s.Err != nil {
		return nil, s.Err
	}
	return []string{query + " Street"}, nil
}
