package usecase

import (
	"context"

	"shareit/internal/domain/entity"
	"shareit/internal/domain/repository"
)

// CreateItemInput defines the data required to publish an item.
type CreateItemInput struct {
	Name        string
	Description string
	Available   bool
	RequestID   *int64
}

// UpdateItemInput is a partial patch; nil fields are left untouched.
// Ownership never changes.
type UpdateItemInput struct {
	Name        *string
	Description *string
	Available   *bool
}

// CreateCommentInput defines the data required to post a comment.
type CreateCommentInput struct {
	Text string
}

// ItemWithBookings is the owner-listing projection: the item plus its
// derived last and next bookings, either of which may be nil.
type ItemWithBookings struct {
	Item        *entity.Item
	LastBooking *entity.Booking
	NextBooking *entity.Booking
}

// ItemFull is the single-item read projection. LastBooking and NextBooking
// are populated only when the caller owns the item.
type ItemFull struct {
	Item        *entity.Item
	LastBooking *entity.Booking
	NextBooking *entity.Booking
	Comments    []*entity.Comment
}

// ItemUsecase defines the contract the delivery layer depends on for
// item operations.
type ItemUsecase interface {
	Create(ctx context.Context, userID int64, input *CreateItemInput) (*entity.Item, error)
	Update(ctx context.Context, userID, itemID int64, patch *UpdateItemInput) (*entity.Item, error)
	FindByID(ctx context.Context, userID, itemID int64) (*ItemFull, error)
	ListByOwner(ctx context.Context, userID int64, page repository.Page) ([]*ItemWithBookings, error)
	Search(ctx context.Context, text string, page repository.Page) ([]*entity.Item, error)
	PostComment(ctx context.Context, userID, itemID int64, input *CreateCommentInput) (*entity.Comment, error)
}
