package impl

import (
	"context"
	"log/slog"

	deliverycontext "shareit/internal/delivery/context"
	"shareit/internal/domain/entity"
	domainerrors "shareit/internal/domain/errors"
	"shareit/internal/domain/repository"
	"shareit/internal/domain/service"
	"shareit/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// bookingService implements the BookingUsecase interface: the booking
// lifecycle state machine and the state-filtered listings.
type bookingService struct {
	txManager   repository.TransactionManager
	bookingRepo repository.BookingRepository
	itemRepo    repository.ItemRepository
	userRepo    repository.UserRepository
	clock       service.Clock
	logger      *slog.Logger
}

// BookingServiceParams holds dependencies for bookingService, injected by Fx.
type BookingServiceParams struct {
	fx.In

	TxManager   repository.TransactionManager
	BookingRepo repository.BookingRepository
	ItemRepo    repository.ItemRepository
	UserRepo    repository.UserRepository
	Clock       service.Clock
	Logger      *slog.Logger
}

// NewBookingService is the constructor for bookingService.
func NewBookingService(params BookingServiceParams) usecase.BookingUsecase {
	return &bookingService{
		txManager:   params.TxManager,
		bookingRepo: params.BookingRepo,
		itemRepo:    params.ItemRepo,
		userRepo:    params.UserRepo,
		clock:       params.Clock,
		logger:      params.Logger,
	}
}

func (srv *bookingService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Create opens a booking in WAITING. The item must exist and be available,
// the caller must exist and must not own the item, and the window must be
// wholly in the future with start before end.
func (srv *bookingService) Create(ctx context.Context, userID int64, input *usecase.CreateBookingInput) (*entity.Booking, error) {
	item, err := srv.itemRepo.FindByID(ctx, input.ItemID)
	if err != nil {
		if errors.Is(err, repository.ErrItemNotFound) {
			return nil, domainerrors.NewItemNotFound(input.ItemID)
		}

		return nil, errors.Wrap(err, "failed to find booked item")
	}

	booker, err := srv.userRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.NewUserNotFound(userID)
		}

		return nil, errors.Wrap(err, "failed to find booker")
	}

	// Owners never book their own items; a 404 hides the item from them
	// in the booking flow.
	if item.OwnerID == userID {
		return nil, domainerrors.ErrOwnItemBooking
	}

	now := srv.clock.Now()
	if !item.Available || input.Start.Before(now) || !input.Start.Before(input.End) {
		return nil, domainerrors.ErrInvalidBookingData
	}

	booking := &entity.Booking{
		Item:   *item,
		Booker: *booker,
		Start:  input.Start,
		End:    input.End,
		Status: entity.StatusWaiting,
	}
	if err := srv.bookingRepo.Create(ctx, booking); err != nil {
		return nil, errors.Wrap(err, "failed to create booking")
	}

	srv.log(ctx).Info("booking created",
		slog.Int64("bookingID", booking.ID),
		slog.Int64("itemID", item.ID),
		slog.Int64("bookerID", userID))

	return booking, nil
}

// Approve moves a WAITING booking to APPROVED or REJECTED. Only the item's
// owner may decide, and only once: the row is read under a FOR UPDATE lock
// inside a transaction, so of two concurrent decisions the second observes
// the first one's committed status and fails the WAITING check.
func (srv *bookingService) Approve(ctx context.Context, userID, bookingID int64, approved bool) (*entity.Booking, error) {
	var booking *entity.Booking
	err := srv.txManager.Execute(ctx, func(repos repository.RepositoryFactory) error {
		bookings := repos.Bookings()

		found, err := bookings.FindByIDForUpdate(ctx, bookingID)
		if err != nil {
			if errors.Is(err, repository.ErrBookingNotFound) {
				return domainerrors.NewBookingNotFound(bookingID)
			}

			return errors.Wrap(err, "failed to find booking for approval")
		}

		if !found.IsOwner(userID) {
			return domainerrors.NewBookingAccessDenied(bookingID, userID)
		}
		if found.Status != entity.StatusWaiting {
			return domainerrors.ErrBookingNotModifiable
		}

		if approved {
			found.Status = entity.StatusApproved
		} else {
			found.Status = entity.StatusRejected
		}

		if err := bookings.Update(ctx, found); err != nil {
			return errors.Wrap(err, "failed to persist booking status")
		}

		booking = found

		return nil
	})
	if err != nil {
		return nil, err
	}

	srv.log(ctx).Info("booking decided",
		slog.Int64("bookingID", bookingID),
		slog.String("status", string(booking.Status)))

	return booking, nil
}

// GetByID returns a booking to its booker or the item's owner. Anyone else
// gets a 404: non-participants must not learn the booking exists.
func (srv *bookingService) GetByID(ctx context.Context, userID, bookingID int64) (*entity.Booking, error) {
	booking, err := srv.bookingRepo.FindByID(ctx, bookingID)
	if err != nil {
		if errors.Is(err, repository.ErrBookingNotFound) {
			return nil, domainerrors.NewBookingNotFound(bookingID)
		}

		return nil, errors.Wrap(err, "failed to find booking by id")
	}

	if !booking.IsParticipant(userID) {
		return nil, domainerrors.NewBookingAccessDenied(bookingID, userID)
	}

	return booking, nil
}

// ListByBooker returns the caller's bookings filtered by the state tag,
// ordered by start descending.
func (srv *bookingService) ListByBooker(ctx context.Context, userID int64, state entity.BookingState, page repository.Page) ([]*entity.Booking, error) {
	exists, err := srv.userRepo.ExistsByID(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to check booker existence")
	}
	if !exists {
		return nil, domainerrors.NewUserNotFound(userID)
	}

	now := srv.clock.Now()
	var bookings []*entity.Booking
	switch state {
	case entity.StateCurrent:
		bookings, err = srv.bookingRepo.FindCurrentByBooker(ctx, userID, now, page)
	case entity.StateFuture:
		bookings, err = srv.bookingRepo.FindFutureByBooker(ctx, userID, now, page)
	case entity.StatePast:
		bookings, err = srv.bookingRepo.FindPastByBooker(ctx, userID, now, page)
	case entity.StateWaiting, entity.StateRejected, entity.StateApproved:
		bookings, err = srv.bookingRepo.FindByBookerAndStatus(ctx, userID, state.Status(), page)
	default:
		bookings, err = srv.bookingRepo.FindAllByBooker(ctx, userID, page)
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to list bookings by booker")
	}

	return bookings, nil
}

// ListByOwner returns bookings of the caller's items filtered by the state
// tag. A user who owns nothing has no owner listing: that is a 404.
func (srv *bookingService) ListByOwner(ctx context.Context, userID int64, state entity.BookingState, page repository.Page) ([]*entity.Booking, error) {
	owns, err := srv.itemRepo.ExistsByOwner(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to check item ownership")
	}
	if !owns {
		return nil, domainerrors.ErrNoBookingsForOwner
	}

	now := srv.clock.Now()
	var bookings []*entity.Booking
	switch state {
	case entity.StateCurrent:
		bookings, err = srv.bookingRepo.FindCurrentByOwner(ctx, userID, now, page)
	case entity.StateFuture:
		bookings, err = srv.bookingRepo.FindFutureByOwner(ctx, userID, now, page)
	case entity.StatePast:
		bookings, err = srv.bookingRepo.FindPastByOwner(ctx, userID, now, page)
	case entity.StateWaiting, entity.StateRejected, entity.StateApproved:
		bookings, err = srv.bookingRepo.FindByOwnerAndStatus(ctx, userID, state.Status(), page)
	default:
		bookings, err = srv.bookingRepo.FindAllByOwner(ctx, userID, page)
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to list bookings by owner")
	}

	return bookings, nil
}
