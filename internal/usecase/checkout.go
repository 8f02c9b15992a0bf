package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	domainErrors "github.com/sugarline/cakeshop/internal/domain/errors"
	"github.com/sugarline/cakeshop/internal/domain/model"
	"github.com/sugarline/cakeshop/internal/domain/repository"
)

// CartService is the remote cart owned by the bakery platform.
type CartService interface {
	Cart(ctx context.Context, token string) (*model.Cart, error)
	ReplaceLines(ctx context.Context, token, bakeryID string, lines []model.CartLine) error
}

// OrderService is the remote order API.
type OrderService interface {
	Create(ctx context.Context, token string, order *model.Order) (*model.Order, error)
	MoveToNext(ctx context.Context, token, orderID string) error
	Cancel(ctx context.Context, token, orderID string) error
	Get(ctx context.Context, token, orderID string) (*model.Order, error)
	List(ctx context.Context, token string) ([]model.Order, error)
}

// ShippingService quotes fee/time/distance between two coordinates.
type ShippingService interface {
	Quote(ctx context.Context, from, to model.Coordinates) (*model.ShippingQuote, error)
}

// CustomerService reads customer profiles.
type CustomerService interface {
	Profile(ctx context.Context, token, customerID string) (*model.Customer, error)
}

// BakeryService reads bakery records, including store coordinates.
type BakeryService interface {
	Location(ctx context.Context, bakeryID string) (model.Coordinates, error)
}

// CustomCakeService creates a custom cake on the platform from a completed
// configuration and returns its id.
type CustomCakeService interface {
	CreateCustomCake(ctx context.Context, token, bakeryID string, submission *model.Submission, config model.CakeConfig) (string, error)
}

// FeeState distinguishes a confirmed fee (including a genuine zero for pickup)
// from one still being calculated.
type FeeState string

const (
	FeeFree      FeeState = "FREE"
	FeePending   FeeState = "PENDING"
	FeeConfirmed FeeState = "CONFIRMED"
)

// Quote is the aggregated payable breakdown shown at checkout. The total is
// authoritative only once FeeState is no longer pending.
type Quote struct {
	Subtotal    decimal.Decimal `json:"subtotal"`
	Discount    decimal.Decimal `json:"discount"`
	DeliveryFee decimal.Decimal `json:"delivery_fee"`
	FeeState    FeeState        `json:"fee_state"`
	Total       decimal.Decimal `json:"total"`
}

// SubmitInput carries everything needed to place an order.
type SubmitInput struct {
	Token             string
	CustomerID        string
	ShippingType      model.ShippingType
	PaymentType       model.PaymentType
	Voucher           *model.Voucher
	UseCurrentAddress bool
	Address           AddressForm
}

// SubmitResult reports a successful checkout. QRPending is set for QR-code
// payments, which await payment under a countdown before being cancelled.
type SubmitResult struct {
	Order     *model.Order
	QRPending bool
	ExpiresAt time.Time
}

// CheckoutUseCase aggregates cart, address, voucher and shipping state into
// the payable total and drives order creation.
type CheckoutUseCase struct {
	carts       CartService
	orders      OrderService
	shipping    ShippingService
	customers   CustomerService
	bakeries    BakeryService
	customCakes CustomCakeService
	resolver    *AddressResolver
	pending     repository.PendingPaymentRepository
	countdown   time.Duration
}

// NewCheckoutUseCase constructs CheckoutUseCase.
func NewCheckoutUseCase(
	carts CartService,
	orders OrderService,
	shipping ShippingService,
	customers CustomerService,
	bakeries BakeryService,
	customCakes CustomCakeService,
	resolver *AddressResolver,
	pending repository.PendingPaymentRepository,
	countdown time.Duration,
) *CheckoutUseCase {
	return &CheckoutUseCase{
		carts:       carts,
		orders:      orders,
		shipping:    shipping,
		customers:   customers,
		bakeries:    bakeries,
		customCakes: customCakes,
		resolver:    resolver,
		pending:     pending,
		countdown:   countdown,
	}
}

// Subtotal sums the backend-computed line totals. Stored subtotals are
// authoritative; there is no unit-price recomputation here.
func Subtotal(lines []model.CartLine) decimal.Decimal {
	sum := decimal.Zero
	for _, line := range lines {
		sum = sum.Add(line.SubTotal)
	}
	return sum
}

// Discount computes the voucher discount clamped to the voucher maximum.
func Discount(voucher *model.Voucher, subtotal decimal.Decimal) decimal.Decimal {
	if voucher == nil {
		return decimal.Zero
	}
	raw := subtotal.Mul(voucher.DiscountPercent).Div(decimal.NewFromInt(100))
	if raw.GreaterThan(voucher.MaxDiscount) {
		return voucher.MaxDiscount
	}
	return raw
}

// BuildQuote assembles the checkout breakdown. A nil shipping quote for a
// delivery order yields a pending fee of zero that must not be displayed as
// free.
func BuildQuote(lines []model.CartLine, voucher *model.Voucher, shippingType model.ShippingType, shippingQuote *model.ShippingQuote) Quote {
	subtotal := Subtotal(lines)
	discount := Discount(voucher, subtotal)

	fee := decimal.Zero
	state := FeeFree
	if shippingType == model.ShippingDelivery {
		if shippingQuote == nil {
			state = FeePending
		} else {
			fee = shippingQuote.Fee
			state = FeeConfirmed
		}
	}

	return Quote{
		Subtotal:    subtotal,
		Discount:    discount,
		DeliveryFee: fee,
		FeeState:    state,
		Total:       subtotal.Add(fee).Sub(discount),
	}
}

// QuoteCart resolves the current cart into a quote, fetching a shipping quote
// for delivery orders when coordinates are available.
func (u *CheckoutUseCase) QuoteCart(ctx context.Context, token string, voucher *model.Voucher, shippingType model.ShippingType, destination *model.Coordinates) (*Quote, error) {
	cart, err := u.carts.Cart(ctx, token)
	if err != nil {
		return nil, err
	}

	var shippingQuote *model.ShippingQuote
	if shippingType == model.ShippingDelivery && destination != nil {
		store, err := u.bakeries.Location(ctx, cart.BakeryID)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", domainErrors.ErrShippingUnavailable, err)
		}
		shippingQuote, err = u.shipping.Quote(ctx, store, *destination)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", domainErrors.ErrShippingUnavailable, err)
		}
	}

	quote := BuildQuote(cart.Lines, voucher, shippingType, shippingQuote)
	return &quote, nil
}

// ResolveAddress resolves the shipping destination for a customer, either
// from the stored profile coordinates or by geocoding the entered address.
func (u *CheckoutUseCase) ResolveAddress(ctx context.Context, token, customerID string, useCurrent bool, form AddressForm) (model.Coordinates, error) {
	coords, _, err := u.resolveDestination(ctx, token, customerID, useCurrent, form)
	return coords, err
}

// resolveDestination also returns the form actually resolved: in
// use-current-address mode a blank form is backfilled from the customer
// profile, and the order payload needs that address text alongside the
// coordinates.
func (u *CheckoutUseCase) resolveDestination(ctx context.Context, token, customerID string, useCurrent bool, form AddressForm) (model.Coordinates, AddressForm, error) {
	var customer *model.Customer
	if useCurrent {
		var err error
		customer, err = u.customers.Profile(ctx, token, customerID)
		if err != nil {
			return model.Coordinates{}, form, err
		}
		if form.String() == "" && customer != nil {
			form = AddressForm{Address: customer.Address, District: customer.District, Province: customer.Province}
		}
	}
	coords, err := u.resolver.Resolve(ctx, customerID, useCurrent, customer, form)
	return coords, form, err
}

// InvalidateAddress drops in-flight resolution when the address entry mode
// switches.
func (u *CheckoutUseCase) InvalidateAddress(customerID string) {
	u.resolver.Invalidate(customerID)
}

// AddCustomCake creates the custom cake on the platform and appends it to the
// authoritative cart. The cart is re-fetched immediately before the merge so a
// concurrent update from another device is not clobbered.
func (u *CheckoutUseCase) AddCustomCake(ctx context.Context, token, bakeryID string, submission *model.Submission, config model.CakeConfig, quantity int) error {
	if quantity <= 0 {
		quantity = 1
	}

	cakeID, err := u.customCakes.CreateCustomCake(ctx, token, bakeryID, submission, config)
	if err != nil {
		return err
	}

	cart, err := u.carts.Cart(ctx, token)
	if err != nil {
		return err
	}

	lines := append(append([]model.CartLine(nil), cart.Lines...), model.CartLine{
		CustomCakeID: cakeID,
		Name:         submission.Name,
		Quantity:     quantity,
		SubTotal:     submission.Price.Mul(decimal.NewFromInt(int64(quantity))),
	})
	return u.carts.ReplaceLines(ctx, token, bakeryID, lines)
}

// Submit places the order. Wallet payments are advanced to the next state
// immediately; a failed advance is reported as a partial submission since the
// order exists on the platform. QR payments are registered for the countdown
// watcher.
func (u *CheckoutUseCase) Submit(ctx context.Context, in SubmitInput) (*SubmitResult, error) {
	cart, err := u.carts.Cart(ctx, in.Token)
	if err != nil {
		return nil, err
	}
	if len(cart.Lines) == 0 {
		return nil, domainErrors.ErrEmptyCart
	}

	subtotal := Subtotal(cart.Lines)
	if in.Voucher != nil && !in.Voucher.AppliesTo(subtotal) {
		return nil, domainErrors.ErrVoucherNotUsable
	}

	var coords model.Coordinates
	fee := decimal.Zero
	if in.ShippingType == model.ShippingDelivery {
		coords, in.Address, err = u.resolveDestination(ctx, in.Token, in.CustomerID, in.UseCurrentAddress, in.Address)
		if err != nil {
			return nil, err
		}
		store, err := u.bakeries.Location(ctx, cart.BakeryID)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", domainErrors.ErrShippingUnavailable, err)
		}
		quote, err := u.shipping.Quote(ctx, store, coords)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", domainErrors.ErrShippingUnavailable, err)
		}
		fee = quote.Fee
	}

	voucherCode := ""
	if in.Voucher != nil {
		voucherCode = in.Voucher.Code
	}

	lines := make([]model.OrderLine, 0, len(cart.Lines))
	for _, l := range cart.Lines {
		unit := l.SubTotal
		if l.Quantity > 0 {
			unit = l.SubTotal.Div(decimal.NewFromInt(int64(l.Quantity)))
		}
		lines = append(lines, model.OrderLine{
			CakeID:       l.CakeID,
			CustomCakeID: l.CustomCakeID,
			Quantity:     l.Quantity,
			UnitPrice:    unit,
		})
	}

	order, err := u.orders.Create(ctx, in.Token, &model.Order{
		BakeryID:        cart.BakeryID,
		CustomerID:      in.CustomerID,
		ShippingType:    in.ShippingType,
		PaymentType:     in.PaymentType,
		ShippingAddress: in.Address.String(),
		Latitude:        coords.Latitude,
		Longitude:       coords.Longitude,
		ShippingFee:     fee,
		VoucherCode:     voucherCode,
		TotalPrice:      Subtotal(cart.Lines).Add(fee).Sub(Discount(in.Voucher, subtotal)),
		Lines:           lines,
	})
	if err != nil {
		return nil, err
	}

	switch in.PaymentType {
	case model.PaymentWallet:
		if err := u.orders.MoveToNext(ctx, in.Token, order.ID); err != nil {
			return nil, &domainErrors.PartialSubmissionError{OrderID: order.ID, Err: err}
		}
		return &SubmitResult{Order: order}, nil
	case model.PaymentQRCode:
		expires := time.Now().Add(u.countdown)
		payment := &repository.PendingPayment{
			ID:        uuid.New(),
			OrderID:   order.ID,
			Token:     in.Token,
			ExpiresAt: expires,
			CreatedAt: time.Now(),
		}
		if err := u.pending.Add(ctx, payment); err != nil {
			return nil, &domainErrors.PartialSubmissionError{OrderID: order.ID, Err: err}
		}
		return &SubmitResult{Order: order, QRPending: true, ExpiresAt: expires}, nil
	default:
		return &SubmitResult{Order: order}, nil
	}
}
