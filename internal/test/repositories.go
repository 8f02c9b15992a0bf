package test

import (
	"context"
	"time"

	"github.com/google/uuid"

	domainErrors "github.com/sugarline/cakeshop/internal/domain/errors"
	"github.com/sugarline/cakeshop/internal/domain/model"
	"github.com/sugarline/cakeshop/internal/domain/repository"
)

// SessionRepositoryStub stores configuration sessions in-memory for tests.
type SessionRepositoryStub struct {
	Sessions map[uuid.UUID]*model.ConfigSession
	Err      error
	Saved    int
}

// NewSessionRepositoryStub constructs stub repository with initialized map.
func NewSessionRepositoryStub() *SessionRepositoryStub {
	return &SessionRepositoryStub{Sessions: make(map[uuid.UUID]*model.ConfigSession)}
}

// Create stores the session keyed by its identifier.
func (s *SessionRepositoryStub) Create(ctx context.Context, session *model.ConfigSession) error {
	if s.Err != nil {
		return s.Err
	}
	if s.Sessions == nil {
		s.Sessions = make(map[uuid.UUID]*model.ConfigSession)
	}
	copied := *session
	s.Sessions[session.ID] = &copied
	return nil
}

// Get fetches session by identifier or returns not found.
func (s *SessionRepositoryStub) Get(ctx context.Context, id uuid.UUID) (*model.ConfigSession, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	if session, ok := s.Sessions[id]; ok {
		copied := *session
		return &copied, nil
	}
	return nil, domainErrors.ErrNotFound
}

// Save replaces a stored session and counts invocations.
func (s *SessionRepositoryStub) Save(ctx context.Context, session *model.ConfigSession) error {
	if s.Err != nil {
		return s.Err
	}
	if _, ok := s.Sessions[session.ID]; !ok {
		return domainErrors.ErrNotFound
	}
	copied := *session
	s.Sessions[session.ID] = &copied
	s.Saved++
	return nil
}

// Delete removes a stored session.
func (s *SessionRepositoryStub) Delete(ctx context.Context, id uuid.UUID) error {
	if s.Err != nil {
		return s.Err
	}
	if _, ok := s.Sessions[id]; !ok {
		return domainErrors.ErrNotFound
	}
	delete(s.Sessions, id)
	return nil
}

// PendingPaymentRepositoryStub lets tests control pending payment data.
type PendingPaymentRepositoryStub struct {
	AddFn           func(context.Context, *repository.PendingPayment) error
	SelectExpiredFn func(context.Context, time.Time, int) ([]repository.PendingPayment, error)
	RemoveFn        func(context.Context, uuid.UUID) error
	RemoveByOrderFn func(context.Context, string) error

	Added         []repository.PendingPayment
	Expired       []repository.PendingPayment
	Removed       []uuid.UUID
	RemovedOrders []string
}

// Add records the pending payment.
func (s *PendingPaymentRepositoryStub) Add(ctx context.Context, payment *repository.PendingPayment) error {
	if s.AddFn != nil {
		return s.AddFn(ctx, payment)
	}
	s.Added = append(s.Added, *payment)
	return nil
}

// SelectExpired returns configured expired payments.
func (s *PendingPaymentRepositoryStub) SelectExpired(ctx context.Context, now time.Time, limit int) ([]repository.PendingPayment, error) {
	if s.SelectExpiredFn != nil {
		return s.SelectExpiredFn(ctx, now, limit)
	}
	return s.Expired, nil
}

// Remove records removal by identifier.
func (s *PendingPaymentRepositoryStub) Remove(ctx context.Context, id uuid.UUID) error {
	if s.RemoveFn != nil {
		return s.RemoveFn(ctx, id)
	}
	s.Removed = append(s.Removed, id)
	return nil
}

// RemoveByOrder records removal by order identifier.
func (s *PendingPaymentRepositoryStub) RemoveByOrder(ctx context.Context, orderID string) error {
	if s.RemoveByOrderFn != nil {
		return s.RemoveByOrderFn(ctx, orderID)
	}
	s.RemovedOrders = append(s.RemovedOrders, orderID)
	return nil
}
