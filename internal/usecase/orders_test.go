package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/sugarline/cakeshop/internal/domain/model"
	testhelpers "github.com/sugarline/cakeshop/internal/test"
)

func newOrderUseCase(orders *testhelpers.OrderServiceStub, pending *testhelpers.PendingPaymentRepositoryStub) (*OrderUseCase, *testhelpers.ReviewServiceStub, *testhelpers.ReportServiceStub) {
	reviews := &testhelpers.ReviewServiceStub{}
	reports := &testhelpers.ReportServiceStub{}
	if pending == nil {
		pending = &testhelpers.PendingPaymentRepositoryStub{}
	}
	return NewOrderUseCase(orders, reviews, reports, pending), reviews, reports
}

func TestListAttachesStatusProjection(t *testing.T) {
	orders := &testhelpers.OrderServiceStub{Orders: []model.Order{
		{ID: "o1", Status: model.OrderStatusShipping, ShippingType: model.ShippingDelivery},
		{ID: "o2", Status: model.OrderStatusReadyForPickup, ShippingType: model.ShippingPickup},
	}}
	uc, _, _ := newOrderUseCase(orders, nil)

	views, err := uc.List(context.Background(), "token")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(views) != 2 {
		t.Fatalf("expected 2 views, got %d", len(views))
	}
	if views[0].Status.CurrentStep != 3 || len(views[0].Status.Steps) != 5 {
		t.Fatalf("unexpected delivery projection %+v", views[0].Status)
	}
	if views[1].Status.CurrentStep != 3 || len(views[1].Status.Steps) != 4 {
		t.Fatalf("unexpected pickup projection %+v", views[1].Status)
	}
}

func TestDetailAttachesStatusProjection(t *testing.T) {
	orders := &testhelpers.OrderServiceStub{Orders: []model.Order{
		{ID: "o1", Status: model.OrderStatusCanceled, ShippingType: model.ShippingDelivery},
	}}
	uc, _, _ := newOrderUseCase(orders, nil)

	view, err := uc.Detail(context.Background(), "token", "o1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if view.Status.Mode != DisplayCancelled {
		t.Fatalf("expected cancelled projection, got %s", view.Status.Mode)
	}
}

func TestCancelClearsPendingPayment(t *testing.T) {
	orders := &testhelpers.OrderServiceStub{}
	pending := &testhelpers.PendingPaymentRepositoryStub{}
	uc, _, _ := newOrderUseCase(orders, pending)

	if err := uc.Cancel(context.Background(), "token", "o1"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(orders.Cancelled) != 1 || orders.Cancelled[0] != "o1" {
		t.Fatalf("expected cancel call, got %v", orders.Cancelled)
	}
	if len(pending.RemovedOrders) != 1 || pending.RemovedOrders[0] != "o1" {
		t.Fatalf("expected pending payment cleared, got %v", pending.RemovedOrders)
	}
}

func TestCancelFailureKeepsPendingPayment(t *testing.T) {
	orders := &testhelpers.OrderServiceStub{
		CancelFn: func(context.Context, string, string) error { return errors.New("cannot cancel") },
	}
	pending := &testhelpers.PendingPaymentRepositoryStub{}
	uc, _, _ := newOrderUseCase(orders, pending)

	if err := uc.Cancel(context.Background(), "token", "o1"); err == nil {
		t.Fatal("expected cancellation error")
	}
	if len(pending.RemovedOrders) != 0 {
		t.Fatal("pending payment must stay when cancellation fails")
	}
}

func TestSubmitReviewAndReportDelegate(t *testing.T) {
	orders := &testhelpers.OrderServiceStub{}
	uc, reviews, reports := newOrderUseCase(orders, nil)

	if err := uc.SubmitReview(context.Background(), "token", "o1", 5, "great"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(reviews.Reviews) != 1 || reviews.Reviews[0] != "o1" {
		t.Fatalf("expected review recorded, got %v", reviews.Reviews)
	}

	if err := uc.SubmitReport(context.Background(), "token", "o2", "crushed box", []string{"ref-1"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(reports.Reports) != 1 || reports.Reports[0] != "o2" {
		t.Fatalf("expected report recorded, got %v", reports.Reports)
	}
}
