package impl

import (
	"context"
	"log/slog"
	"strings"

	deliverycontext "shareit/internal/delivery/context"
	"shareit/internal/domain/entity"
	domainerrors "shareit/internal/domain/errors"
	"shareit/internal/domain/repository"
	"shareit/internal/domain/service"
	"shareit/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// itemService implements the ItemUsecase interface.
type itemService struct {
	itemRepo    repository.ItemRepository
	userRepo    repository.UserRepository
	bookingRepo repository.BookingRepository
	commentRepo repository.CommentRepository
	requestRepo repository.RequestRepository
	clock       service.Clock
	logger      *slog.Logger
}

// ItemServiceParams holds dependencies for itemService, injected by Fx.
type ItemServiceParams struct {
	fx.In

	ItemRepo    repository.ItemRepository
	UserRepo    repository.UserRepository
	BookingRepo repository.BookingRepository
	CommentRepo repository.CommentRepository
	RequestRepo repository.RequestRepository
	Clock       service.Clock
	Logger      *slog.Logger
}

// NewItemService is the constructor for itemService.
func NewItemService(params ItemServiceParams) usecase.ItemUsecase {
	return &itemService{
		itemRepo:    params.ItemRepo,
		userRepo:    params.UserRepo,
		bookingRepo: params.BookingRepo,
		commentRepo: params.CommentRepo,
		requestRepo: params.RequestRepo,
		clock:       params.Clock,
		logger:      params.Logger,
	}
}

func (srv *itemService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Create publishes an item owned by the caller. When the item answers a
// request, that request must exist.
func (srv *itemService) Create(ctx context.Context, userID int64, input *usecase.CreateItemInput) (*entity.Item, error) {
	if err := srv.checkUser(ctx, userID); err != nil {
		return nil, err
	}

	if input.RequestID != nil {
		exists, err := srv.requestRepo.ExistsByID(ctx, *input.RequestID)
		if err != nil {
			return nil, errors.Wrap(err, "failed to check request existence")
		}
		if !exists {
			return nil, domainerrors.NewRequestNotFound(*input.RequestID)
		}
	}

	item := &entity.Item{
		OwnerID:     userID,
		Name:        input.Name,
		Description: input.Description,
		Available:   input.Available,
		RequestID:   input.RequestID,
	}
	if err := srv.itemRepo.Create(ctx, item); err != nil {
		return nil, errors.Wrap(err, "failed to create item")
	}

	srv.log(ctx).Info("item created", slog.Int64("itemID", item.ID), slog.Int64("ownerID", userID))

	return item, nil
}

// Update applies a partial patch to an item the caller owns.
func (srv *itemService) Update(ctx context.Context, userID, itemID int64, patch *usecase.UpdateItemInput) (*entity.Item, error) {
	if err := srv.checkUser(ctx, userID); err != nil {
		return nil, err
	}

	item, err := srv.findItem(ctx, itemID)
	if err != nil {
		return nil, err
	}
	if item.OwnerID != userID {
		return nil, domainerrors.NewItemUpdateForbidden(userID, itemID)
	}

	if patch.Name != nil {
		item.Name = *patch.Name
	}
	if patch.Description != nil {
		item.Description = *patch.Description
	}
	if patch.Available != nil {
		item.Available = *patch.Available
	}

	if err := srv.itemRepo.Update(ctx, item); err != nil {
		return nil, errors.Wrap(err, "failed to update item")
	}

	srv.log(ctx).Info("item updated", slog.Int64("itemID", itemID), slog.Int64("ownerID", userID))

	return item, nil
}

// FindByID returns the full projection. The derived last/next bookings are
// visible to the owner only.
func (srv *itemService) FindByID(ctx context.Context, userID, itemID int64) (*usecase.ItemFull, error) {
	item, err := srv.findItem(ctx, itemID)
	if err != nil {
		return nil, err
	}

	comments, err := srv.commentRepo.FindByItem(ctx, itemID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load item comments")
	}

	full := &usecase.ItemFull{Item: item, Comments: comments}
	if item.OwnerID == userID {
		if full.LastBooking, full.NextBooking, err = srv.derivedBookings(ctx, itemID); err != nil {
			return nil, err
		}
	}

	return full, nil
}

// ListByOwner returns the caller's items with their derived bookings,
// ordered by item id ascending.
func (srv *itemService) ListByOwner(ctx context.Context, userID int64, page repository.Page) ([]*usecase.ItemWithBookings, error) {
	items, err := srv.itemRepo.FindByOwner(ctx, userID, page)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list items by owner")
	}

	result := make([]*usecase.ItemWithBookings, 0, len(items))
	for _, item := range items {
		last, next, err := srv.derivedBookings(ctx, item.ID)
		if err != nil {
			return nil, err
		}
		result = append(result, &usecase.ItemWithBookings{
			Item:        item,
			LastBooking: last,
			NextBooking: next,
		})
	}

	return result, nil
}

// Search returns available items matching the text. Blank text yields the
// empty list without touching the store.
func (srv *itemService) Search(ctx context.Context, text string, page repository.Page) ([]*entity.Item, error) {
	if strings.TrimSpace(text) == "" {
		return []*entity.Item{}, nil
	}

	items, err := srv.itemRepo.Search(ctx, text, page)
	if err != nil {
		return nil, errors.Wrap(err, "failed to search items")
	}

	return items, nil
}

// PostComment records feedback on an item. The author must have a booking
// of this item that ended in the past.
func (srv *itemService) PostComment(ctx context.Context, userID, itemID int64, input *usecase.CreateCommentInput) (*entity.Comment, error) {
	if strings.TrimSpace(input.Text) == "" {
		return nil, domainerrors.ErrBlankComment
	}

	author, err := srv.userRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.NewUserNotFound(userID)
		}

		return nil, errors.Wrap(err, "failed to load comment author")
	}

	if _, err := srv.findItem(ctx, itemID); err != nil {
		return nil, err
	}

	earliest, err := srv.bookingRepo.FindEarliestForItemAndBooker(ctx, itemID, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to check completed bookings")
	}
	if earliest == nil || earliest.End.After(srv.clock.Now()) {
		return nil, domainerrors.ErrCommentWithoutBooking
	}

	comment := &entity.Comment{
		ItemID:  itemID,
		Author:  *author,
		Text:    input.Text,
		Created: srv.clock.Now(),
	}
	if err := srv.commentRepo.Create(ctx, comment); err != nil {
		return nil, errors.Wrap(err, "failed to create comment")
	}

	srv.log(ctx).Info("comment posted", slog.Int64("itemID", itemID), slog.Int64("authorID", userID))

	return comment, nil
}

func (srv *itemService) checkUser(ctx context.Context, userID int64) error {
	exists, err := srv.userRepo.ExistsByID(ctx, userID)
	if err != nil {
		return errors.Wrap(err, "failed to check user existence")
	}
	if !exists {
		return domainerrors.NewUserNotFound(userID)
	}

	return nil
}

func (srv *itemService) findItem(ctx context.Context, itemID int64) (*entity.Item, error) {
	item, err := srv.itemRepo.FindByID(ctx, itemID)
	if err != nil {
		if errors.Is(err, repository.ErrItemNotFound) {
			return nil, domainerrors.NewItemNotFound(itemID)
		}

		return nil, errors.Wrap(err, "failed to find item by id")
	}

	return item, nil
}

// derivedBookings computes the last/next projection at read time. Either
// side may be nil when no booking qualifies.
func (srv *itemService) derivedBookings(ctx context.Context, itemID int64) (last, next *entity.Booking, err error) {
	now := srv.clock.Now()

	last, err = srv.bookingRepo.FindLastForItem(ctx, itemID, now)
	if err != nil {
		return nil, nil, errors.Wrap(err, "failed to derive last booking")
	}

	next, err = srv.bookingRepo.FindNextForItem(ctx, itemID, now)
	if err != nil {
		return nil, nil, errors.Wrap(err, "failed to derive next booking")
	}

	return last, next, nil
}
