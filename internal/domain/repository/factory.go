package repository

// Factory exposes the repository families implemented by a storage backend.
type Factory interface {
	Sessions() SessionRepository
	PendingPayments() PendingPaymentRepository
}
