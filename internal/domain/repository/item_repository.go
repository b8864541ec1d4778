package repository

import (
	"context"
	"errors"

	"shareit/internal/domain/entity"
)

// ErrItemNotFound is the miss sentinel for item lookups.
var ErrItemNotFound = errors.New("item not found")

// ItemRepository defines the storage operations for items.
type ItemRepository interface {
	// FindByID retrieves a single item; ErrItemNotFound on miss.
	FindByID(ctx context.Context, id int64) (*entity.Item, error)

	// FindByOwner returns the owner's items ordered by id ascending.
	FindByOwner(ctx context.Context, ownerID int64, page Page) ([]*entity.Item, error)

	// ExistsByOwner reports whether the user owns at least one item.
	ExistsByOwner(ctx context.Context, ownerID int64) (bool, error)

	// Search matches available items whose name or description contains
	// text, case-insensitively. Blank text yields the empty result.
	Search(ctx context.Context, text string, page Page) ([]*entity.Item, error)

	// FindByRequest returns items offered in response to a request.
	FindByRequest(ctx context.Context, requestID int64) ([]*entity.Item, error)

	// Create persists a new item and backfills the assigned id.
	Create(ctx context.Context, item *entity.Item) error

	// Update modifies an existing item.
	Update(ctx context.Context, item *entity.Item) error
}
