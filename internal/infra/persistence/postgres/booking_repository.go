package postgres

import (
	"context"
	"time"

	"shareit/internal/domain/entity"
	"shareit/internal/domain/repository"
	"shareit/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"go.uber.org/fx"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// BookingRepositoryParams defines the required parameters
type BookingRepositoryParams struct {
	fx.In

	DB *gorm.DB
}

type bookingRepository struct {
	db *gorm.DB
}

// NewBookingRepository creates the PostgreSQL-backed BookingRepository.
func NewBookingRepository(params BookingRepositoryParams) repository.BookingRepository {
	return &bookingRepository{db: params.DB}
}

// loaded attaches the Item and Booker preloads every read path needs.
func (r *bookingRepository) loaded(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).
		Preload("Item").
		Preload("Booker")
}

func (r *bookingRepository) FindByID(ctx context.Context, id int64) (*entity.Booking, error) {
	var m model.BookingModel
	if err := r.loaded(ctx).First(&m, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrBookingNotFound
		}

		return nil, errors.Wrap(err, "failed to find booking")
	}

	return toBookingEntity(&m), nil
}

// FindByIDForUpdate takes a FOR UPDATE lock on the booking row. Only useful
// inside a transaction; the preloads stay unlocked reads.
func (r *bookingRepository) FindByIDForUpdate(ctx context.Context, id int64) (*entity.Booking, error) {
	var m model.BookingModel
	if err := r.loaded(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&m, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrBookingNotFound
		}

		return nil, errors.Wrap(err, "failed to lock booking")
	}

	return toBookingEntity(&m), nil
}

func (r *bookingRepository) Create(ctx context.Context, booking *entity.Booking) error {
	m := toBookingModel(booking)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return errors.Wrap(err, "failed to create booking")
	}
	booking.ID = m.ID

	return nil
}

func (r *bookingRepository) Update(ctx context.Context, booking *entity.Booking) error {
	if err := r.db.WithContext(ctx).Save(toBookingModel(booking)).Error; err != nil {
		return errors.Wrap(err, "failed to update booking")
	}

	return nil
}

func (r *bookingRepository) FindAllByBooker(ctx context.Context, bookerID int64, page repository.Page) ([]*entity.Booking, error) {
	return r.listBookings(r.loaded(ctx).
		Where("booker_id = ?", bookerID), page)
}

func (r *bookingRepository) FindCurrentByBooker(ctx context.Context, bookerID int64, now time.Time, page repository.Page) ([]*entity.Booking, error) {
	return r.listBookings(r.loaded(ctx).
		Where("booker_id = ?", bookerID).
		Where("start_time <= ? AND end_time > ?", now, now), page)
}

func (r *bookingRepository) FindFutureByBooker(ctx context.Context, bookerID int64, now time.Time, page repository.Page) ([]*entity.Booking, error) {
	return r.listBookings(r.loaded(ctx).
		Where("booker_id = ?", bookerID).
		Where("start_time > ?", now), page)
}

func (r *bookingRepository) FindPastByBooker(ctx context.Context, bookerID int64, now time.Time, page repository.Page) ([]*entity.Booking, error) {
	return r.listBookings(r.loaded(ctx).
		Where("booker_id = ?", bookerID).
		Where("end_time < ?", now), page)
}

func (r *bookingRepository) FindByBookerAndStatus(ctx context.Context, bookerID int64, status entity.BookingStatus, page repository.Page) ([]*entity.Booking, error) {
	return r.listBookings(r.loaded(ctx).
		Where("booker_id = ?", bookerID).
		Where("status = ?", string(status)), page)
}

// ownerScope restricts bookings to items belonging to ownerID.
func (r *bookingRepository) ownerScope(ctx context.Context, ownerID int64) *gorm.DB {
	return r.loaded(ctx).
		Joins("JOIN items ON items.id = bookings.item_id").
		Where("items.owner_id = ?", ownerID)
}

func (r *bookingRepository) FindAllByOwner(ctx context.Context, ownerID int64, page repository.Page) ([]*entity.Booking, error) {
	return r.listBookings(r.ownerScope(ctx, ownerID), page)
}

func (r *bookingRepository) FindCurrentByOwner(ctx context.Context, ownerID int64, now time.Time, page repository.Page) ([]*entity.Booking, error) {
	return r.listBookings(r.ownerScope(ctx, ownerID).
		Where("bookings.start_time <= ? AND bookings.end_time > ?", now, now), page)
}

func (r *bookingRepository) FindFutureByOwner(ctx context.Context, ownerID int64, now time.Time, page repository.Page) ([]*entity.Booking, error) {
	return r.listBookings(r.ownerScope(ctx, ownerID).
		Where("bookings.start_time > ?", now), page)
}

func (r *bookingRepository) FindPastByOwner(ctx context.Context, ownerID int64, now time.Time, page repository.Page) ([]*entity.Booking, error) {
	return r.listBookings(r.ownerScope(ctx, ownerID).
		Where("bookings.end_time < ?", now), page)
}

func (r *bookingRepository) FindByOwnerAndStatus(ctx context.Context, ownerID int64, status entity.BookingStatus, page repository.Page) ([]*entity.Booking, error) {
	return r.listBookings(r.ownerScope(ctx, ownerID).
		Where("bookings.status = ?", string(status)), page)
}

func (r *bookingRepository) listBookings(query *gorm.DB, page repository.Page) ([]*entity.Booking, error) {
	var models []*model.BookingModel
	if err := query.
		Order("start_time DESC").
		Offset(page.Offset).
		Limit(page.Limit).
		Find(&models).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list bookings")
	}

	return toBookingEntities(models), nil
}

func (r *bookingRepository) FindLastForItem(ctx context.Context, itemID int64, now time.Time) (*entity.Booking, error) {
	return r.firstBooking(r.loaded(ctx).
		Where("item_id = ?", itemID).
		Where("end_time < ?", now).
		Order("start_time DESC"))
}

func (r *bookingRepository) FindNextForItem(ctx context.Context, itemID int64, now time.Time) (*entity.Booking, error) {
	return r.firstBooking(r.loaded(ctx).
		Where("item_id = ?", itemID).
		Where("start_time > ?", now).
		Order("start_time DESC"))
}

func (r *bookingRepository) FindEarliestForItemAndBooker(ctx context.Context, itemID, bookerID int64) (*entity.Booking, error) {
	return r.firstBooking(r.loaded(ctx).
		Where("item_id = ?", itemID).
		Where("booker_id = ?", bookerID).
		Order("end_time ASC"))
}

// firstBooking runs a top-1 projection; a miss yields (nil, nil).
func (r *bookingRepository) firstBooking(query *gorm.DB) (*entity.Booking, error) {
	var m model.BookingModel
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}

		return nil, errors.Wrap(err, "failed to find booking for item")
	}

	return toBookingEntity(&m), nil
}
