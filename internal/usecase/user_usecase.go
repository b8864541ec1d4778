// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"shareit/internal/domain/entity"
)

// CreateUserInput defines the data required to register a new user.
type CreateUserInput struct {
	Name  string
	Email string
}

// UpdateUserInput is a partial patch; nil fields are left untouched.
type UpdateUserInput struct {
	Name  *string
	Email *string
}

// UserUsecase defines the contract the delivery layer depends on for
// user operations.
type UserUsecase interface {
	Create(ctx context.Context, input *CreateUserInput) (*entity.User, error)
	Update(ctx context.Context, id int64, patch *UpdateUserInput) (*entity.User, error)
	FindByID(ctx context.Context, id int64) (*entity.User, error)
	FindAll(ctx context.Context) ([]*entity.User, error)
	Delete(ctx context.Context, id int64) error
}
