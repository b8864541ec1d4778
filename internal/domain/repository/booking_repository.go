package repository

import (
	"context"
	"errors"
	"time"

	"shareit/internal/domain/entity"
)

// ErrBookingNotFound is the miss sentinel for booking lookups.
var ErrBookingNotFound = errors.New("booking not found")

// BookingRepository defines the storage operations for bookings. The
// booker/owner listings expose one call per temporal state variant; the
// service dispatches on the parsed state tag. All listings are ordered by
// start descending. The single-booking item projections return (nil, nil)
// when no booking qualifies.
type BookingRepository interface {
	// FindByID retrieves a booking with its item and booker materialized;
	// ErrBookingNotFound on miss.
	FindByID(ctx context.Context, id int64) (*entity.Booking, error)

	// FindByIDForUpdate is FindByID with the row locked for the enclosing
	// transaction, so a concurrent status decision blocks until commit.
	FindByIDForUpdate(ctx context.Context, id int64) (*entity.Booking, error)

	// Create persists a new booking and backfills the assigned id.
	Create(ctx context.Context, booking *entity.Booking) error

	// Update persists a status change.
	Update(ctx context.Context, booking *entity.Booking) error

	// Listings for a booker.
	FindAllByBooker(ctx context.Context, bookerID int64, page Page) ([]*entity.Booking, error)
	FindCurrentByBooker(ctx context.Context, bookerID int64, now time.Time, page Page) ([]*entity.Booking, error)
	FindFutureByBooker(ctx context.Context, bookerID int64, now time.Time, page Page) ([]*entity.Booking, error)
	FindPastByBooker(ctx context.Context, bookerID int64, now time.Time, page Page) ([]*entity.Booking, error)
	FindByBookerAndStatus(ctx context.Context, bookerID int64, status entity.BookingStatus, page Page) ([]*entity.Booking, error)

	// Listings for the owner of the booked items.
	FindAllByOwner(ctx context.Context, ownerID int64, page Page) ([]*entity.Booking, error)
	FindCurrentByOwner(ctx context.Context, ownerID int64, now time.Time, page Page) ([]*entity.Booking, error)
	FindFutureByOwner(ctx context.Context, ownerID int64, now time.Time, page Page) ([]*entity.Booking, error)
	FindPastByOwner(ctx context.Context, ownerID int64, now time.Time, page Page) ([]*entity.Booking, error)
	FindByOwnerAndStatus(ctx context.Context, ownerID int64, status entity.BookingStatus, page Page) ([]*entity.Booking, error)

	// FindLastForItem returns the item's booking with the greatest start
	// among those ended before now.
	FindLastForItem(ctx context.Context, itemID int64, now time.Time) (*entity.Booking, error)

	// FindNextForItem returns the item's booking with the greatest start
	// among those starting after now.
	FindNextForItem(ctx context.Context, itemID int64, now time.Time) (*entity.Booking, error)

	// FindEarliestForItemAndBooker returns the booker's booking of the item
	// with the smallest end, used by the comment gate.
	FindEarliestForItemAndBooker(ctx context.Context, itemID, bookerID int64) (*entity.Booking, error)
}
