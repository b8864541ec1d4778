package impl

import (
	"context"
	"testing"

	"shareit/internal/domain/entity"
	domainerrors "shareit/internal/domain/errors"
	"shareit/internal/domain/repository"
	mockRepo "shareit/internal/mocks/repository"
	"shareit/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// userServiceFixtures holds all test dependencies for user service tests.
type userServiceFixtures struct {
	service  usecase.UserUsecase
	userRepo *mockRepo.MockUserRepository
}

func createTestUserService(t *testing.T) userServiceFixtures {
	userRepo := mockRepo.NewMockUserRepository(t)
	service := NewUserService(UserServiceParams{
		UserRepo: userRepo,
		Logger:   newTestLogger(),
	})

	return userServiceFixtures{
		service:  service,
		userRepo: userRepo,
	}
}

func TestUserService_Create_Success(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()

	fx.userRepo.EXPECT().
		ExistsByEmail(ctx, "ivan@example.com").
		Return(false, nil)

	fx.userRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.User")).
		RunAndReturn(func(_ context.Context, user *entity.User) error {
			user.ID = 1
			return nil
		})

	user, err := fx.service.Create(ctx, &usecase.CreateUserInput{
		Name:  "Ivan",
		Email: "ivan@example.com",
	})
	require.NoError(t, err)
	assert.Equal(t, int64(1), user.ID)
	assert.Equal(t, "Ivan", user.Name)
	assert.Equal(t, "ivan@example.com", user.Email)
}

func TestUserService_Create_DuplicateEmail(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()

	fx.userRepo.EXPECT().
		ExistsByEmail(ctx, "taken@example.com").
		Return(true, nil)

	_, err := fx.service.Create(ctx, &usecase.CreateUserInput{
		Name:  "Ivan",
		Email: "taken@example.com",
	})
	require.Error(t, err)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, 409, appErr.HTTPCode())
	assert.Equal(t, "Пользователь с электронной почтой=taken@example.com уже существует", appErr.Message())
}

func TestUserService_Update_PatchesOnlyProvidedFields(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()

	existing := &entity.User{ID: 7, Name: "Ivan", Email: "ivan@example.com"}
	fx.userRepo.EXPECT().
		FindByID(ctx, int64(7)).
		Return(existing, nil)

	newName := "Petr"
	fx.userRepo.EXPECT().
		Update(ctx, mock.AnythingOfType("*entity.User")).
		Return(nil)

	user, err := fx.service.Update(ctx, 7, &usecase.UpdateUserInput{Name: &newName})
	require.NoError(t, err)
	assert.Equal(t, "Petr", user.Name)
	assert.Equal(t, "ivan@example.com", user.Email)
}

func TestUserService_Update_SameEmailSkipsUniquenessCheck(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()

	existing := &entity.User{ID: 7, Name: "Ivan", Email: "ivan@example.com"}
	fx.userRepo.EXPECT().
		FindByID(ctx, int64(7)).
		Return(existing, nil)

	sameEmail := "ivan@example.com"
	fx.userRepo.EXPECT().
		Update(ctx, existing).
		Return(nil)

	user, err := fx.service.Update(ctx, 7, &usecase.UpdateUserInput{Email: &sameEmail})
	require.NoError(t, err)
	assert.Equal(t, "ivan@example.com", user.Email)
}

func TestUserService_Update_NewEmailConflict(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()

	existing := &entity.User{ID: 7, Name: "Ivan", Email: "ivan@example.com"}
	fx.userRepo.EXPECT().
		FindByID(ctx, int64(7)).
		Return(existing, nil)

	taken := "taken@example.com"
	fx.userRepo.EXPECT().
		ExistsByEmail(ctx, taken).
		Return(true, nil)

	_, err := fx.service.Update(ctx, 7, &usecase.UpdateUserInput{Email: &taken})
	require.Error(t, err)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, 409, appErr.HTTPCode())
}

func TestUserService_FindByID_NotFound(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()

	fx.userRepo.EXPECT().
		FindByID(ctx, int64(99)).
		Return(nil, repository.ErrUserNotFound)

	_, err := fx.service.FindByID(ctx, 99)
	require.Error(t, err)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, 404, appErr.HTTPCode())
	assert.Equal(t, "Пользователь с id=99 не найден", appErr.Message())
}

func TestUserService_Delete_MissingUserIsNoop(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()

	fx.userRepo.EXPECT().
		Delete(ctx, int64(42)).
		Return(nil)

	require.NoError(t, fx.service.Delete(ctx, 42))
}

func TestUserService_FindAll_PropagatesRepositoryError(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()

	fx.userRepo.EXPECT().
		FindAll(ctx).
		Return(nil, errors.New("connection reset"))

	_, err := fx.service.FindAll(ctx)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "connection reset")
}
