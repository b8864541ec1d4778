package impl

import (
	"context"
	"testing"
	"time"

	"shareit/internal/domain/entity"
	domainerrors "shareit/internal/domain/errors"
	"shareit/internal/domain/repository"
	mockRepo "shareit/internal/mocks/repository"
	"shareit/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// bookingServiceFixtures holds all test dependencies for booking service tests.
type bookingServiceFixtures struct {
	service     usecase.BookingUsecase
	txManager   *mockRepo.MockTransactionManager
	bookingRepo *mockRepo.MockBookingRepository
	itemRepo    *mockRepo.MockItemRepository
	userRepo    *mockRepo.MockUserRepository
}

func createTestBookingService(t *testing.T) bookingServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	bookingRepo := mockRepo.NewMockBookingRepository(t)
	itemRepo := mockRepo.NewMockItemRepository(t)
	userRepo := mockRepo.NewMockUserRepository(t)
	service := NewBookingService(BookingServiceParams{
		TxManager:   txManager,
		BookingRepo: bookingRepo,
		ItemRepo:    itemRepo,
		UserRepo:    userRepo,
		Clock:       newTestClock(),
		Logger:      newTestLogger(),
	})

	return bookingServiceFixtures{
		service:     service,
		txManager:   txManager,
		bookingRepo: bookingRepo,
		itemRepo:    itemRepo,
		userRepo:    userRepo,
	}
}

// inTransaction routes the service's unit of work straight to the booking
// repository mock.
func (fx bookingServiceFixtures) inTransaction(t *testing.T, ctx context.Context) {
	t.Helper()

	factory := mockRepo.NewMockRepositoryFactory(t)
	factory.EXPECT().Bookings().Return(fx.bookingRepo)

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(factory)
		})
}

func availableItem() *entity.Item {
	return &entity.Item{ID: 10, OwnerID: 1, Name: "Drill", Description: "Cordless", Available: true}
}

func waitingBooking() *entity.Booking {
	return &entity.Booking{
		ID:     5,
		Item:   *availableItem(),
		Booker: entity.User{ID: 2, Name: "Petr"},
		Start:  testNow.Add(24 * time.Hour),
		End:    testNow.Add(48 * time.Hour),
		Status: entity.StatusWaiting,
	}
}

func TestBookingService_Create_Success(t *testing.T) {
	fx := createTestBookingService(t)
	ctx := context.Background()

	fx.itemRepo.EXPECT().
		FindByID(ctx, int64(10)).
		Return(availableItem(), nil)

	fx.userRepo.EXPECT().
		FindByID(ctx, int64(2)).
		Return(&entity.User{ID: 2, Name: "Petr"}, nil)

	fx.bookingRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Booking")).
		RunAndReturn(func(_ context.Context, booking *entity.Booking) error {
			booking.ID = 5
			return nil
		})

	booking, err := fx.service.Create(ctx, 2, &usecase.CreateBookingInput{
		ItemID: 10,
		Start:  testNow.Add(24 * time.Hour),
		End:    testNow.Add(48 * time.Hour),
	})
	require.NoError(t, err)
	assert.Equal(t, int64(5), booking.ID)
	assert.Equal(t, entity.StatusWaiting, booking.Status)
	assert.Equal(t, int64(10), booking.Item.ID)
	assert.Equal(t, int64(2), booking.Booker.ID)
}

func TestBookingService_Create_OwnItemHiddenAs404(t *testing.T) {
	fx := createTestBookingService(t)
	ctx := context.Background()

	fx.itemRepo.EXPECT().
		FindByID(ctx, int64(10)).
		Return(availableItem(), nil)

	fx.userRepo.EXPECT().
		FindByID(ctx, int64(1)).
		Return(&entity.User{ID: 1, Name: "Ivan"}, nil)

	_, err := fx.service.Create(ctx, 1, &usecase.CreateBookingInput{
		ItemID: 10,
		Start:  testNow.Add(24 * time.Hour),
		End:    testNow.Add(48 * time.Hour),
	})
	require.Error(t, err)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, 404, appErr.HTTPCode())
	assert.Equal(t, "пользователь пытается забронировать свой собственный товар", appErr.Message())
}

func TestBookingService_Create_UnavailableItem(t *testing.T) {
	fx := createTestBookingService(t)
	ctx := context.Background()

	item := availableItem()
	item.Available = false
	fx.itemRepo.EXPECT().
		FindByID(ctx, int64(10)).
		Return(item, nil)

	fx.userRepo.EXPECT().
		FindByID(ctx, int64(2)).
		Return(&entity.User{ID: 2}, nil)

	_, err := fx.service.Create(ctx, 2, &usecase.CreateBookingInput{
		ItemID: 10,
		Start:  testNow.Add(24 * time.Hour),
		End:    testNow.Add(48 * time.Hour),
	})
	require.ErrorIs(t, err, domainerrors.ErrInvalidBookingData)
}

func TestBookingService_Create_BadTimeWindow(t *testing.T) {
	fx := createTestBookingService(t)
	ctx := context.Background()

	cases := map[string]usecase.CreateBookingInput{
		"start in the past": {
			ItemID: 10,
			Start:  testNow.Add(-time.Hour),
			End:    testNow.Add(time.Hour),
		},
		"start equals end": {
			ItemID: 10,
			Start:  testNow.Add(24 * time.Hour),
			End:    testNow.Add(24 * time.Hour),
		},
		"end before start": {
			ItemID: 10,
			Start:  testNow.Add(48 * time.Hour),
			End:    testNow.Add(24 * time.Hour),
		},
	}

	for name, input := range cases {
		t.Run(name, func(t *testing.T) {
			fx.itemRepo.EXPECT().
				FindByID(ctx, int64(10)).
				Return(availableItem(), nil).
				Once()
			fx.userRepo.EXPECT().
				FindByID(ctx, int64(2)).
				Return(&entity.User{ID: 2}, nil).
				Once()

			_, err := fx.service.Create(ctx, 2, &input)
			require.ErrorIs(t, err, domainerrors.ErrInvalidBookingData)
		})
	}
}

func TestBookingService_Create_MissingItem(t *testing.T) {
	fx := createTestBookingService(t)
	ctx := context.Background()

	fx.itemRepo.EXPECT().
		FindByID(ctx, int64(10)).
		Return(nil, repository.ErrItemNotFound)

	_, err := fx.service.Create(ctx, 2, &usecase.CreateBookingInput{ItemID: 10})
	require.Error(t, err)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "Предмет с id=10 не найден", appErr.Message())
}

func TestBookingService_Approve_Success(t *testing.T) {
	fx := createTestBookingService(t)
	ctx := context.Background()
	fx.inTransaction(t, ctx)

	fx.bookingRepo.EXPECT().
		FindByIDForUpdate(ctx, int64(5)).
		Return(waitingBooking(), nil)

	fx.bookingRepo.EXPECT().
		Update(ctx, mock.AnythingOfType("*entity.Booking")).
		Return(nil)

	booking, err := fx.service.Approve(ctx, 1, 5, true)
	require.NoError(t, err)
	assert.Equal(t, entity.StatusApproved, booking.Status)
}

func TestBookingService_Approve_Reject(t *testing.T) {
	fx := createTestBookingService(t)
	ctx := context.Background()
	fx.inTransaction(t, ctx)

	fx.bookingRepo.EXPECT().
		FindByIDForUpdate(ctx, int64(5)).
		Return(waitingBooking(), nil)

	fx.bookingRepo.EXPECT().
		Update(ctx, mock.AnythingOfType("*entity.Booking")).
		Return(nil)

	booking, err := fx.service.Approve(ctx, 1, 5, false)
	require.NoError(t, err)
	assert.Equal(t, entity.StatusRejected, booking.Status)
}

func TestBookingService_Approve_SecondDecisionRejected(t *testing.T) {
	fx := createTestBookingService(t)
	ctx := context.Background()
	fx.inTransaction(t, ctx)

	decided := waitingBooking()
	decided.Status = entity.StatusApproved
	fx.bookingRepo.EXPECT().
		FindByIDForUpdate(ctx, int64(5)).
		Return(decided, nil)

	_, err := fx.service.Approve(ctx, 1, 5, true)
	require.ErrorIs(t, err, domainerrors.ErrBookingNotModifiable)
}

func TestBookingService_Approve_NonOwnerGets404(t *testing.T) {
	fx := createTestBookingService(t)
	ctx := context.Background()
	fx.inTransaction(t, ctx)

	fx.bookingRepo.EXPECT().
		FindByIDForUpdate(ctx, int64(5)).
		Return(waitingBooking(), nil)

	_, err := fx.service.Approve(ctx, 2, 5, true)
	require.Error(t, err)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, 404, appErr.HTTPCode())
	assert.Equal(t, "бронирование с помощью id=5 для пользователя с id=2 не может быть", appErr.Message())
}

func TestBookingService_GetByID_ParticipantsOnly(t *testing.T) {
	fx := createTestBookingService(t)
	ctx := context.Background()

	fx.bookingRepo.EXPECT().
		FindByID(ctx, int64(5)).
		Return(waitingBooking(), nil).
		Times(3)

	booking, err := fx.service.GetByID(ctx, 1, 5)
	require.NoError(t, err)
	assert.Equal(t, int64(5), booking.ID)

	booking, err = fx.service.GetByID(ctx, 2, 5)
	require.NoError(t, err)
	assert.Equal(t, int64(5), booking.ID)

	_, err = fx.service.GetByID(ctx, 3, 5)
	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, 404, appErr.HTTPCode())
}

func TestBookingService_ListByBooker_DispatchesOnState(t *testing.T) {
	fx := createTestBookingService(t)
	ctx := context.Background()
	page := repository.Page{Offset: 0, Limit: 10}

	fx.userRepo.EXPECT().
		ExistsByID(ctx, int64(2)).
		Return(true, nil).
		Times(4)

	fx.bookingRepo.EXPECT().
		FindAllByBooker(ctx, int64(2), page).
		Return([]*entity.Booking{waitingBooking()}, nil)
	fx.bookingRepo.EXPECT().
		FindCurrentByBooker(ctx, int64(2), testNow, page).
		Return(nil, nil)
	fx.bookingRepo.EXPECT().
		FindPastByBooker(ctx, int64(2), testNow, page).
		Return(nil, nil)
	fx.bookingRepo.EXPECT().
		FindByBookerAndStatus(ctx, int64(2), entity.StatusRejected, page).
		Return(nil, nil)

	bookings, err := fx.service.ListByBooker(ctx, 2, entity.StateAll, page)
	require.NoError(t, err)
	assert.Len(t, bookings, 1)

	_, err = fx.service.ListByBooker(ctx, 2, entity.StateCurrent, page)
	require.NoError(t, err)
	_, err = fx.service.ListByBooker(ctx, 2, entity.StatePast, page)
	require.NoError(t, err)
	_, err = fx.service.ListByBooker(ctx, 2, entity.StateRejected, page)
	require.NoError(t, err)
}

func TestBookingService_ListByBooker_UnknownUser(t *testing.T) {
	fx := createTestBookingService(t)
	ctx := context.Background()

	fx.userRepo.EXPECT().
		ExistsByID(ctx, int64(99)).
		Return(false, nil)

	_, err := fx.service.ListByBooker(ctx, 99, entity.StateAll, repository.Page{Limit: 10})
	require.Error(t, err)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, 404, appErr.HTTPCode())
}

func TestBookingService_ListByOwner_NoItemsIs404(t *testing.T) {
	fx := createTestBookingService(t)
	ctx := context.Background()

	fx.itemRepo.EXPECT().
		ExistsByOwner(ctx, int64(3)).
		Return(false, nil)

	_, err := fx.service.ListByOwner(ctx, 3, entity.StateAll, repository.Page{Limit: 10})
	require.Error(t, err)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, 404, appErr.HTTPCode())
	assert.Equal(t, "В этом нет никакого смысла", appErr.Message())
}

func TestBookingService_ListByOwner_FutureVariant(t *testing.T) {
	fx := createTestBookingService(t)
	ctx := context.Background()
	page := repository.Page{Offset: 0, Limit: 10}

	fx.itemRepo.EXPECT().
		ExistsByOwner(ctx, int64(1)).
		Return(true, nil)

	fx.bookingRepo.EXPECT().
		FindFutureByOwner(ctx, int64(1), testNow, page).
		Return([]*entity.Booking{waitingBooking()}, nil)

	bookings, err := fx.service.ListByOwner(ctx, 1, entity.StateFuture, page)
	require.NoError(t, err)
	assert.Len(t, bookings, 1)
}
