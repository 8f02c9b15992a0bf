package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	domainErrors "github.com/sugarline/cakeshop/internal/domain/errors"
	"github.com/sugarline/cakeshop/internal/domain/model"
	testhelpers "github.com/sugarline/cakeshop/internal/test"
)

func cartWith(lines ...model.CartLine) *model.Cart {
	return &model.Cart{BakeryID: "bakery-1", Lines: lines}
}

func line(subtotal int64, qty int) model.CartLine {
	return model.CartLine{CakeID: "cake-1", Quantity: qty, SubTotal: decimal.NewFromInt(subtotal)}
}

type checkoutDeps struct {
	carts    *testhelpers.CartServiceStub
	orders   *testhelpers.OrderServiceStub
	shipping testhelpers.ShippingServiceStub
	pending  *testhelpers.PendingPaymentRepositoryStub
	cakes    *testhelpers.CustomCakeServiceStub
	geocoder testhelpers.GeocoderStub
	customer testhelpers.CustomerServiceStub
}

func newCheckout(t *testing.T, deps checkoutDeps) *CheckoutUseCase {
	t.Helper()
	if deps.carts == nil {
		deps.carts = &testhelpers.CartServiceStub{CartVal: cartWith(line(500, 1))}
	}
	if deps.orders == nil {
		deps.orders = &testhelpers.OrderServiceStub{}
	}
	if deps.pending == nil {
		deps.pending = &testhelpers.PendingPaymentRepositoryStub{}
	}
	if deps.cakes == nil {
		deps.cakes = &testhelpers.CustomCakeServiceStub{}
	}
	return NewCheckoutUseCase(
		deps.carts,
		deps.orders,
		deps.shipping,
		deps.customer,
		testhelpers.BakeryServiceStub{LocationVal: model.Coordinates{Latitude: 13, Longitude: 100}},
		deps.cakes,
		NewAddressResolver(deps.geocoder),
		deps.pending,
		15*time.Minute,
	)
}

func TestSubtotalSumsStoredLineTotals(t *testing.T) {
	lines := []model.CartLine{line(100, 1), line(250, 2), line(0, 1)}
	if got := Subtotal(lines); !got.Equal(decimal.NewFromInt(350)) {
		t.Fatalf("expected subtotal 350, got %s", got)
	}
	if got := Subtotal(nil); !got.Equal(decimal.Zero) {
		t.Fatalf("expected zero subtotal for empty cart, got %s", got)
	}
}

func TestDiscountClampsToVoucherMaximum(t *testing.T) {
	voucher := &model.Voucher{
		DiscountPercent: decimal.NewFromInt(20),
		MaxDiscount:     decimal.NewFromInt(50),
	}

	// 20% of 200 = 40, under the cap.
	if got := Discount(voucher, decimal.NewFromInt(200)); !got.Equal(decimal.NewFromInt(40)) {
		t.Fatalf("expected discount 40, got %s", got)
	}

	// 20% of 1000 = 200, clamped to 50.
	if got := Discount(voucher, decimal.NewFromInt(1000)); !got.Equal(decimal.NewFromInt(50)) {
		t.Fatalf("expected clamped discount 50, got %s", got)
	}

	if got := Discount(nil, decimal.NewFromInt(1000)); !got.Equal(decimal.Zero) {
		t.Fatalf("expected zero discount without voucher, got %s", got)
	}
}

func TestBuildQuoteFeeStates(t *testing.T) {
	lines := []model.CartLine{line(500, 1)}

	pickup := BuildQuote(lines, nil, model.ShippingPickup, nil)
	if pickup.FeeState != FeeFree || !pickup.DeliveryFee.Equal(decimal.Zero) {
		t.Fatalf("pickup must be a genuine free fee: %+v", pickup)
	}
	if !pickup.Total.Equal(decimal.NewFromInt(500)) {
		t.Fatalf("expected total 500, got %s", pickup.Total)
	}

	// Delivery without a quote yet: fee zero but PENDING, never FREE.
	waiting := BuildQuote(lines, nil, model.ShippingDelivery, nil)
	if waiting.FeeState != FeePending {
		t.Fatalf("expected PENDING fee state, got %s", waiting.FeeState)
	}

	confirmed := BuildQuote(lines, nil, model.ShippingDelivery, &model.ShippingQuote{Fee: decimal.NewFromInt(40)})
	if confirmed.FeeState != FeeConfirmed || !confirmed.DeliveryFee.Equal(decimal.NewFromInt(40)) {
		t.Fatalf("expected confirmed fee 40: %+v", confirmed)
	}
	if !confirmed.Total.Equal(decimal.NewFromInt(540)) {
		t.Fatalf("expected total 540, got %s", confirmed.Total)
	}
}

func TestBuildQuoteAppliesDiscount(t *testing.T) {
	lines := []model.CartLine{line(400, 1)}
	voucher := &model.Voucher{DiscountPercent: decimal.NewFromInt(10), MaxDiscount: decimal.NewFromInt(100)}

	quote := BuildQuote(lines, voucher, model.ShippingDelivery, &model.ShippingQuote{Fee: decimal.NewFromInt(30)})
	if !quote.Discount.Equal(decimal.NewFromInt(40)) {
		t.Fatalf("expected discount 40, got %s", quote.Discount)
	}
	if !quote.Total.Equal(decimal.NewFromInt(390)) {
		t.Fatalf("expected total 390 (400+30-40), got %s", quote.Total)
	}
}

func TestQuoteCartPickupSkipsShipping(t *testing.T) {
	shippingCalled := false
	uc := newCheckout(t, checkoutDeps{
		shipping: testhelpers.ShippingServiceStub{QuoteFn: func(context.Context, model.Coordinates, model.Coordinates) (*model.ShippingQuote, error) {
			shippingCalled = true
			return nil, nil
		}},
	})

	quote, err := uc.QuoteCart(context.Background(), "token", nil, model.ShippingPickup, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if shippingCalled {
		t.Fatal("shipping service must not be called for pickup")
	}
	if quote.FeeState != FeeFree {
		t.Fatalf("expected FREE fee state, got %s", quote.FeeState)
	}
}

func TestQuoteCartDeliveryWithDestination(t *testing.T) {
	uc := newCheckout(t, checkoutDeps{
		shipping: testhelpers.ShippingServiceStub{QuoteVal: &model.ShippingQuote{Fee: decimal.NewFromInt(45)}},
	})

	dest := &model.Coordinates{Latitude: 13.7, Longitude: 100.5}
	quote, err := uc.QuoteCart(context.Background(), "token", nil, model.ShippingDelivery, dest)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if quote.FeeState != FeeConfirmed || !quote.DeliveryFee.Equal(decimal.NewFromInt(45)) {
		t.Fatalf("expected confirmed fee 45: %+v", quote)
	}
}

func TestQuoteCartShippingFailure(t *testing.T) {
	uc := newCheckout(t, checkoutDeps{
		shipping: testhelpers.ShippingServiceStub{Err: errors.New("shipping down")},
	})

	dest := &model.Coordinates{Latitude: 13.7, Longitude: 100.5}
	if _, err := uc.QuoteCart(context.Background(), "token", nil, model.ShippingDelivery, dest); !errors.Is(err, domainErrors.ErrShippingUnavailable) {
		t.Fatalf("expected ErrShippingUnavailable, got %v", err)
	}
}

func TestSubmitRejectsEmptyCart(t *testing.T) {
	uc := newCheckout(t, checkoutDeps{
		carts: &testhelpers.CartServiceStub{CartVal: cartWith()},
	})

	_, err := uc.Submit(context.Background(), SubmitInput{Token: "token", PaymentType: model.PaymentWallet, ShippingType: model.ShippingPickup})
	if !errors.Is(err, domainErrors.ErrEmptyCart) {
		t.Fatalf("expected ErrEmptyCart, got %v", err)
	}
}

func TestSubmitRejectsInapplicableVoucher(t *testing.T) {
	uc := newCheckout(t, checkoutDeps{
		carts: &testhelpers.CartServiceStub{CartVal: cartWith(line(100, 1))},
	})

	voucher := &model.Voucher{Code: "BIG", MinOrderAmount: decimal.NewFromInt(500)}
	_, err := uc.Submit(context.Background(), SubmitInput{
		Token:        "token",
		PaymentType:  model.PaymentWallet,
		ShippingType: model.ShippingPickup,
		Voucher:      voucher,
	})
	if !errors.Is(err, domainErrors.ErrVoucherNotUsable) {
		t.Fatalf("expected ErrVoucherNotUsable, got %v", err)
	}
}

func TestSubmitWalletAdvancesOrder(t *testing.T) {
	orders := &testhelpers.OrderServiceStub{}
	uc := newCheckout(t, checkoutDeps{orders: orders})

	result, err := uc.Submit(context.Background(), SubmitInput{
		Token:        "token",
		CustomerID:   "customer-1",
		PaymentType:  model.PaymentWallet,
		ShippingType: model.ShippingPickup,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.QRPending {
		t.Fatal("wallet payment must not be QR pending")
	}
	if len(orders.Moved) != 1 || orders.Moved[0] != result.Order.ID {
		t.Fatalf("expected MoveToNext for created order, got %v", orders.Moved)
	}
}

func TestSubmitWalletAdvanceFailureIsPartial(t *testing.T) {
	orders := &testhelpers.OrderServiceStub{
		MoveToNextFn: func(context.Context, string, string) error { return errors.New("wallet charge failed") },
	}
	uc := newCheckout(t, checkoutDeps{orders: orders})

	_, err := uc.Submit(context.Background(), SubmitInput{
		Token:        "token",
		PaymentType:  model.PaymentWallet,
		ShippingType: model.ShippingPickup,
	})

	var partial *domainErrors.PartialSubmissionError
	if !errors.As(err, &partial) {
		t.Fatalf("expected PartialSubmissionError, got %v", err)
	}
	if partial.OrderID != "order-1" {
		t.Fatalf("expected created order id in error, got %q", partial.OrderID)
	}
}

func TestSubmitQRRegistersPendingPayment(t *testing.T) {
	pending := &testhelpers.PendingPaymentRepositoryStub{}
	uc := newCheckout(t, checkoutDeps{pending: pending})

	before := time.Now()
	result, err := uc.Submit(context.Background(), SubmitInput{
		Token:        "token",
		PaymentType:  model.PaymentQRCode,
		ShippingType: model.ShippingPickup,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !result.QRPending {
		t.Fatal("expected QR pending result")
	}
	if len(pending.Added) != 1 {
		t.Fatalf("expected one pending payment, got %d", len(pending.Added))
	}

	payment := pending.Added[0]
	if payment.OrderID != result.Order.ID {
		t.Fatalf("pending payment order mismatch: %s vs %s", payment.OrderID, result.Order.ID)
	}
	wantExpiry := before.Add(15 * time.Minute)
	if payment.ExpiresAt.Before(wantExpiry.Add(-time.Minute)) || payment.ExpiresAt.After(wantExpiry.Add(time.Minute)) {
		t.Fatalf("expected expiry near %v, got %v", wantExpiry, payment.ExpiresAt)
	}
}

func TestSubmitDeliveryResolvesAddressAndFee(t *testing.T) {
	orders := &testhelpers.OrderServiceStub{}
	uc := newCheckout(t, checkoutDeps{
		carts:    &testhelpers.CartServiceStub{CartVal: cartWith(line(500, 2))},
		orders:   orders,
		shipping: testhelpers.ShippingServiceStub{QuoteVal: &model.ShippingQuote{Fee: decimal.NewFromInt(60)}},
		geocoder: testhelpers.GeocoderStub{Coords: model.Coordinates{Latitude: 13.7, Longitude: 100.5}},
	})

	result, err := uc.Submit(context.Background(), SubmitInput{
		Token:        "token",
		CustomerID:   "customer-1",
		PaymentType:  model.PaymentWallet,
		ShippingType: model.ShippingDelivery,
		Address:      AddressForm{Address: "1 Main St", Province: "Bangkok"},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	created := orders.Created[0]
	if created.Latitude != 13.7 || created.Longitude != 100.5 {
		t.Fatalf("expected resolved coordinates on order, got %v %v", created.Latitude, created.Longitude)
	}
	if !created.ShippingFee.Equal(decimal.NewFromInt(60)) {
		t.Fatalf("expected shipping fee 60, got %s", created.ShippingFee)
	}
	if !created.TotalPrice.Equal(decimal.NewFromInt(560)) {
		t.Fatalf("expected total 560, got %s", created.TotalPrice)
	}
	if created.ShippingAddress != "1 Main St, Bangkok" {
		t.Fatalf("unexpected shipping address %q", created.ShippingAddress)
	}
	if len(created.Lines) != 1 || !created.Lines[0].UnitPrice.Equal(decimal.NewFromInt(250)) {
		t.Fatalf("expected unit price 250 from subtotal/quantity, got %+v", created.Lines)
	}
	if result.Order.ID == "" {
		t.Fatal("expected created order id")
	}
}

func TestSubmitCurrentAddressFillsOrderAddress(t *testing.T) {
	orders := &testhelpers.OrderServiceStub{}
	uc := newCheckout(t, checkoutDeps{
		orders:   orders,
		shipping: testhelpers.ShippingServiceStub{QuoteVal: &model.ShippingQuote{Fee: decimal.NewFromInt(40)}},
		customer: testhelpers.CustomerServiceStub{ProfileVal: &model.Customer{
			ID:        "customer-1",
			Address:   "12 Baker St",
			District:  "Center",
			Province:  "Bangkok",
			Latitude:  "10.5",
			Longitude: "106.7",
		}},
	})

	_, err := uc.Submit(context.Background(), SubmitInput{
		Token:             "token",
		CustomerID:        "customer-1",
		PaymentType:       model.PaymentWallet,
		ShippingType:      model.ShippingDelivery,
		UseCurrentAddress: true,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	created := orders.Created[0]
	if created.ShippingAddress != "12 Baker St, Center, Bangkok" {
		t.Fatalf("expected profile address on order, got %q", created.ShippingAddress)
	}
	if created.Latitude != 10.5 || created.Longitude != 106.7 {
		t.Fatalf("expected stored coordinates on order, got %v %v", created.Latitude, created.Longitude)
	}
}

func TestSubmitDeliveryUnresolvedAddressFails(t *testing.T) {
	orders := &testhelpers.OrderServiceStub{}
	uc := newCheckout(t, checkoutDeps{
		orders:   orders,
		geocoder: testhelpers.GeocoderStub{Err: errors.New("no results")},
	})

	_, err := uc.Submit(context.Background(), SubmitInput{
		Token:        "token",
		PaymentType:  model.PaymentWallet,
		ShippingType: model.ShippingDelivery,
		Address:      AddressForm{Address: "nowhere"},
	})
	if !errors.Is(err, domainErrors.ErrAddressUnresolved) {
		t.Fatalf("expected ErrAddressUnresolved, got %v", err)
	}
	if len(orders.Created) != 0 {
		t.Fatal("order must not be created when the address cannot be resolved")
	}
}

func TestAddCustomCakeAppendsToFreshCart(t *testing.T) {
	carts := &testhelpers.CartServiceStub{CartVal: cartWith(line(200, 1))}
	cakes := &testhelpers.CustomCakeServiceStub{}
	uc := newCheckout(t, checkoutDeps{carts: carts, cakes: cakes})

	submission := &model.Submission{Name: "Custom cake Large", Price: decimal.NewFromInt(450)}
	err := uc.AddCustomCake(context.Background(), "token", "bakery-1", submission, model.NewCakeConfig(), 2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(cakes.Created) != 1 {
		t.Fatalf("expected one custom cake creation, got %d", len(cakes.Created))
	}
	if len(carts.Replaced) != 1 {
		t.Fatalf("expected one cart replacement, got %d", len(carts.Replaced))
	}

	lines := carts.Replaced[0]
	if len(lines) != 2 {
		t.Fatalf("expected existing line plus custom cake, got %d lines", len(lines))
	}
	added := lines[1]
	if added.CustomCakeID != "custom-cake-1" || added.Quantity != 2 {
		t.Fatalf("unexpected appended line %+v", added)
	}
	if !added.SubTotal.Equal(decimal.NewFromInt(900)) {
		t.Fatalf("expected line subtotal 900, got %s", added.SubTotal)
	}
}

func TestAddCustomCakeDefaultsQuantity(t *testing.T) {
	carts := &testhelpers.CartServiceStub{CartVal: cartWith()}
	uc := newCheckout(t, checkoutDeps{carts: carts})

	submission := &model.Submission{Name: "Custom cake Small", Price: decimal.NewFromInt(300)}
	if err := uc.AddCustomCake(context.Background(), "token", "bakery-1", submission, model.NewCakeConfig(), 0); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	lines := carts.Replaced[0]
	if lines[0].Quantity != 1 {
		t.Fatalf("expected quantity defaulted to 1, got %d", lines[0].Quantity)
	}
}
