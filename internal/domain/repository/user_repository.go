package repository

import (
	"context"
	"errors"

	"shareit/internal/domain/entity"
)

// ErrUserNotFound is the miss sentinel for user lookups.
var ErrUserNotFound = errors.New("user not found")

// UserRepository defines the standard operations for user persistence.
type UserRepository interface {
	// FindByID retrieves a single user; ErrUserNotFound on miss.
	FindByID(ctx context.Context, id int64) (*entity.User, error)

	// FindAll returns every user, ordered by id.
	FindAll(ctx context.Context) ([]*entity.User, error)

	// ExistsByID reports whether a user record exists.
	ExistsByID(ctx context.Context, id int64) (bool, error)

	// ExistsByEmail reports whether any user holds the given email.
	ExistsByEmail(ctx context.Context, email string) (bool, error)

	// Create persists a new user and backfills the assigned id.
	Create(ctx context.Context, user *entity.User) error

	// Update modifies an existing user.
	Update(ctx context.Context, user *entity.User) error

	// Delete removes a user by id; removing a missing user is a no-op.
	Delete(ctx context.Context, id int64) error
}
