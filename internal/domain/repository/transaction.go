package repository

import "context"

// RepositoryFactory hands out repository instances bound to one
// transaction.
type RepositoryFactory interface {
	Bookings() BookingRepository
}

// TransactionManager runs a unit of work atomically. The booking service
// wraps the approve read-modify-write in it so two concurrent approvals
// cannot both observe WAITING.
type TransactionManager interface {
	Execute(ctx context.Context, fn func(repos RepositoryFactory) error) error
}
