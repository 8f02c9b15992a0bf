package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// PendingPayment is a QR-code order awaiting payment with a countdown deadline.
type PendingPayment struct {
	ID        uuid.UUID
	OrderID   string
	Token     string // bearer token used to cancel on behalf of the customer
	ExpiresAt time.Time
	CreatedAt time.Time
}

// PendingPaymentRepository tracks QR orders whose countdown may lapse.
type PendingPaymentRepository interface {
	Add(ctx context.Context, p *PendingPayment) error
	// SelectExpired claims up to limit payments past their deadline.
	SelectExpired(ctx context.Context, now time.Time, limit int) ([]PendingPayment, error)
	Remove(ctx context.Context, id uuid.UUID) error
	// RemoveByOrder clears the countdown when an order is paid or cancelled.
	RemoveByOrder(ctx context.Context, orderID string) error
}
