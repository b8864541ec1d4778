package usecase

import (
	"context"
	"time"

	"shareit/internal/domain/entity"
	"shareit/internal/domain/repository"
)

// CreateBookingInput defines the data required to book an item.
type CreateBookingInput struct {
	ItemID int64
	Start  time.Time
	End    time.Time
}

// BookingUsecase defines the contract the delivery layer depends on for
// the booking state machine and its query surface.
type BookingUsecase interface {
	Create(ctx context.Context, userID int64, input *CreateBookingInput) (*entity.Booking, error)
	Approve(ctx context.Context, userID, bookingID int64, approved bool) (*entity.Booking, error)
	GetByID(ctx context.Context, userID, bookingID int64) (*entity.Booking, error)
	ListByBooker(ctx context.Context, userID int64, state entity.BookingState, page repository.Page) ([]*entity.Booking, error)
	ListByOwner(ctx context.Context, userID int64, state entity.BookingState, page repository.Page) ([]*entity.Booking, error)
}
