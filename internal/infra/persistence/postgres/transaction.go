package postgres

import (
	"context"

	"shareit/internal/domain/repository"

	"go.uber.org/fx"
	"gorm.io/gorm"
)

// TransactionManagerParams defines the required parameters
type TransactionManagerParams struct {
	fx.In

	DB *gorm.DB
}

type gormTransactionManager struct {
	db *gorm.DB
}

// NewTransactionManager creates a TransactionManager backed by GORM
// transactions.
func NewTransactionManager(params TransactionManagerParams) repository.TransactionManager {
	return &gormTransactionManager{db: params.DB}
}

func (m *gormTransactionManager) Execute(ctx context.Context, fn func(repos repository.RepositoryFactory) error) error {
	return m.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&gormRepositoryFactory{db: tx})
	})
}

// gormRepositoryFactory hands out repositories bound to one transaction.
type gormRepositoryFactory struct {
	db *gorm.DB
}

func (f *gormRepositoryFactory) Bookings() repository.BookingRepository {
	return &bookingRepository{db: f.db}
}
