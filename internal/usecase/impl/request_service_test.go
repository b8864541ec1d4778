package impl

import (
	"context"
	"testing"

	"shareit/internal/domain/entity"
	domainerrors "shareit/internal/domain/errors"
	"shareit/internal/domain/repository"
	mockRepo "shareit/internal/mocks/repository"
	"shareit/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// requestServiceFixtures holds all test dependencies for request service tests.
type requestServiceFixtures struct {
	service     usecase.RequestUsecase
	requestRepo *mockRepo.MockRequestRepository
	itemRepo    *mockRepo.MockItemRepository
	userRepo    *mockRepo.MockUserRepository
}

func createTestRequestService(t *testing.T) requestServiceFixtures {
	requestRepo := mockRepo.NewMockRequestRepository(t)
	itemRepo := mockRepo.NewMockItemRepository(t)
	userRepo := mockRepo.NewMockUserRepository(t)
	service := NewRequestService(RequestServiceParams{
		RequestRepo: requestRepo,
		ItemRepo:    itemRepo,
		UserRepo:    userRepo,
		Clock:       newTestClock(),
		Logger:      newTestLogger(),
	})

	return requestServiceFixtures{
		service:     service,
		requestRepo: requestRepo,
		itemRepo:    itemRepo,
		userRepo:    userRepo,
	}
}

func TestRequestService_Create_StampsCreationInstant(t *testing.T) {
	fx := createTestRequestService(t)
	ctx := context.Background()

	fx.userRepo.EXPECT().
		ExistsByID(ctx, int64(1)).
		Return(true, nil)

	fx.requestRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Request")).
		RunAndReturn(func(_ context.Context, request *entity.Request) error {
			request.ID = 7
			return nil
		})

	request, err := fx.service.Create(ctx, 1, &usecase.CreateRequestInput{Description: "Нужна дрель"})
	require.NoError(t, err)
	assert.Equal(t, int64(7), request.ID)
	assert.Equal(t, int64(1), request.AuthorID)
	assert.Equal(t, testNow, request.Created)
}

func TestRequestService_Create_BlankDescription(t *testing.T) {
	fx := createTestRequestService(t)
	ctx := context.Background()

	fx.userRepo.EXPECT().
		ExistsByID(ctx, int64(1)).
		Return(true, nil)

	_, err := fx.service.Create(ctx, 1, &usecase.CreateRequestInput{Description: "   "})
	require.Error(t, err)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, 400, appErr.HTTPCode())
	assert.Equal(t, "Описание не может быть пустым", appErr.Message())
}

func TestRequestService_Create_UnknownUser(t *testing.T) {
	fx := createTestRequestService(t)
	ctx := context.Background()

	fx.userRepo.EXPECT().
		ExistsByID(ctx, int64(99)).
		Return(false, nil)

	_, err := fx.service.Create(ctx, 99, &usecase.CreateRequestInput{Description: "text"})
	require.Error(t, err)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, 404, appErr.HTTPCode())
}

func TestRequestService_ListByAuthor_EnrichesWithOfferedItems(t *testing.T) {
	fx := createTestRequestService(t)
	ctx := context.Background()

	fx.userRepo.EXPECT().
		ExistsByID(ctx, int64(1)).
		Return(true, nil)

	fx.requestRepo.EXPECT().
		FindByAuthor(ctx, int64(1)).
		Return([]*entity.Request{{ID: 7, AuthorID: 1}, {ID: 8, AuthorID: 1}}, nil)

	fx.itemRepo.EXPECT().
		FindByRequest(ctx, int64(7)).
		Return([]*entity.Item{{ID: 10, Name: "Drill"}}, nil)
	fx.itemRepo.EXPECT().
		FindByRequest(ctx, int64(8)).
		Return([]*entity.Item{}, nil)

	result, err := fx.service.ListByAuthor(ctx, 1)
	require.NoError(t, err)
	require.Len(t, result, 2)
	require.Len(t, result[0].Items, 1)
	assert.Equal(t, "Drill", result[0].Items[0].Name)
	assert.Empty(t, result[1].Items)
}

func TestRequestService_ListOthers_PassesPageThrough(t *testing.T) {
	fx := createTestRequestService(t)
	ctx := context.Background()
	page := repository.Page{Offset: 5, Limit: 5}

	fx.userRepo.EXPECT().
		ExistsByID(ctx, int64(1)).
		Return(true, nil)

	fx.requestRepo.EXPECT().
		FindByOtherAuthors(ctx, int64(1), page).
		Return([]*entity.Request{{ID: 9, AuthorID: 2}}, nil)

	fx.itemRepo.EXPECT().
		FindByRequest(ctx, int64(9)).
		Return([]*entity.Item{}, nil)

	result, err := fx.service.ListOthers(ctx, 1, page)
	require.NoError(t, err)
	require.Len(t, result, 1)
	assert.Equal(t, int64(9), result[0].Request.ID)
}

func TestRequestService_GetByID_NotFound(t *testing.T) {
	fx := createTestRequestService(t)
	ctx := context.Background()

	fx.userRepo.EXPECT().
		ExistsByID(ctx, int64(1)).
		Return(true, nil)

	fx.requestRepo.EXPECT().
		FindByID(ctx, int64(77)).
		Return(nil, repository.ErrRequestNotFound)

	_, err := fx.service.GetByID(ctx, 1, 77)
	require.Error(t, err)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "Запрос с id=77 не найден", appErr.Message())
}

func TestRequestService_GetByID_Success(t *testing.T) {
	fx := createTestRequestService(t)
	ctx := context.Background()

	fx.userRepo.EXPECT().
		ExistsByID(ctx, int64(1)).
		Return(true, nil)

	fx.requestRepo.EXPECT().
		FindByID(ctx, int64(7)).
		Return(&entity.Request{ID: 7, AuthorID: 2, Description: "Нужна дрель"}, nil)

	fx.itemRepo.EXPECT().
		FindByRequest(ctx, int64(7)).
		Return([]*entity.Item{{ID: 10}}, nil)

	result, err := fx.service.GetByID(ctx, 1, 7)
	require.NoError(t, err)
	assert.Equal(t, int64(7), result.Request.ID)
	require.Len(t, result.Items, 1)
}
