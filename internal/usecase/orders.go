package usecase

import (
	"context"

	"github.com/sugarline/cakeshop/internal/domain/model"
	"github.com/sugarline/cakeshop/internal/domain/repository"
)

// ReviewService submits order reviews to the platform.
type ReviewService interface {
	SubmitReview(ctx context.Context, token, orderID string, rating int, comment string) error
}

// ReportService submits store reports to the platform.
type ReportService interface {
	SubmitReport(ctx context.Context, token, orderID, reason string, imageRefs []string) error
}

// OrderView is an order with its derived progress projection attached.
type OrderView struct {
	Order  model.Order `json:"order"`
	Status StatusView  `json:"status"`
}

// OrderUseCase reads platform orders and attaches the status projection.
type OrderUseCase struct {
	orders  OrderService
	reviews ReviewService
	reports ReportService
	pending repository.PendingPaymentRepository
}

// NewOrderUseCase constructs OrderUseCase.
func NewOrderUseCase(orders OrderService, reviews ReviewService, reports ReportService, pending repository.PendingPaymentRepository) *OrderUseCase {
	return &OrderUseCase{orders: orders, reviews: reviews, reports: reports, pending: pending}
}

// List returns the customer's orders, newest first per the platform, each with
// its projection.
func (u *OrderUseCase) List(ctx context.Context, token string) ([]OrderView, error) {
	orders, err := u.orders.List(ctx, token)
	if err != nil {
		return nil, err
	}
	views := make([]OrderView, 0, len(orders))
	for _, o := range orders {
		views = append(views, OrderView{Order: o, Status: ProjectStatus(o.Status, o.ShippingType)})
	}
	return views, nil
}

// Detail returns one order with its projection.
func (u *OrderUseCase) Detail(ctx context.Context, token, orderID string) (*OrderView, error) {
	order, err := u.orders.Get(ctx, token, orderID)
	if err != nil {
		return nil, err
	}
	return &OrderView{Order: *order, Status: ProjectStatus(order.Status, order.ShippingType)}, nil
}

// Cancel cancels the order and clears any pending payment countdown tied to it.
func (u *OrderUseCase) Cancel(ctx context.Context, token, orderID string) error {
	if err := u.orders.Cancel(ctx, token, orderID); err != nil {
		return err
	}
	return u.pending.RemoveByOrder(ctx, orderID)
}

// SubmitReview passes a review through to the platform.
func (u *OrderUseCase) SubmitReview(ctx context.Context, token, orderID string, rating int, comment string) error {
	return u.reviews.SubmitReview(ctx, token, orderID, rating, comment)
}

// SubmitReport passes a store report through to the platform.
func (u *OrderUseCase) SubmitReport(ctx context.Context, token, orderID, reason string, imageRefs []string) error {
	return u.reports.SubmitReport(ctx, token, orderID, reason, imageRefs)
}
