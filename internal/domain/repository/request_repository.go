package repository

import (
	"context"
	"errors"

	"shareit/internal/domain/entity"
)

// ErrRequestNotFound is the miss sentinel for item-request lookups.
var ErrRequestNotFound = errors.New("request not found")

// RequestRepository defines the storage operations for item requests.
type RequestRepository interface {
	// FindByID retrieves a single request; ErrRequestNotFound on miss.
	FindByID(ctx context.Context, id int64) (*entity.Request, error)

	// ExistsByID reports whether a request record exists.
	ExistsByID(ctx context.Context, id int64) (bool, error)

	// FindByAuthor returns the author's requests ordered by created descending.
	FindByAuthor(ctx context.Context, authorID int64) ([]*entity.Request, error)

	// FindByOtherAuthors returns requests published by anyone but userID,
	// ordered by created descending.
	FindByOtherAuthors(ctx context.Context, userID int64, page Page) ([]*entity.Request, error)

	// Create persists a new request and backfills the assigned id.
	Create(ctx context.Context, request *entity.Request) error
}
