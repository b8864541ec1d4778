// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"

	deliverycontext "shareit/internal/delivery/context"
	domainerrors "shareit/internal/domain/errors"
	"shareit/internal/domain/repository"
	"shareit/internal/usecase"

	"shareit/internal/domain/entity"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// userService implements the UserUsecase interface.
type userService struct {
	userRepo repository.UserRepository
	logger   *slog.Logger
}

// UserServiceParams holds dependencies for userService, injected by Fx.
type UserServiceParams struct {
	fx.In

	UserRepo repository.UserRepository
	Logger   *slog.Logger
}

// NewUserService is the constructor for userService.
func NewUserService(params UserServiceParams) usecase.UserUsecase {
	return &userService{
		userRepo: params.UserRepo,
		logger:   params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *userService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Create registers a new user. The email must not be taken.
func (srv *userService) Create(ctx context.Context, input *usecase.CreateUserInput) (*entity.User, error) {
	if err := srv.checkEmailFree(ctx, input.Email); err != nil {
		return nil, err
	}

	user := &entity.User{
		Name:  input.Name,
		Email: input.Email,
	}
	if err := srv.userRepo.Create(ctx, user); err != nil {
		return nil, errors.Wrap(err, "failed to create user")
	}

	srv.log(ctx).Info("user created", slog.Int64("userID", user.ID))

	return user, nil
}

// Update applies a partial patch. A changed email is re-checked for
// uniqueness; patching to the user's own current email is a no-op.
func (srv *userService) Update(ctx context.Context, id int64, patch *usecase.UpdateUserInput) (*entity.User, error) {
	user, err := srv.userRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.NewUserNotFound(id)
		}

		return nil, errors.Wrap(err, "failed to load user for update")
	}

	if patch.Email != nil && *patch.Email != user.Email {
		if err := srv.checkEmailFree(ctx, *patch.Email); err != nil {
			return nil, err
		}
		user.Email = *patch.Email
	}
	if patch.Name != nil {
		user.Name = *patch.Name
	}

	if err := srv.userRepo.Update(ctx, user); err != nil {
		return nil, errors.Wrap(err, "failed to update user")
	}

	srv.log(ctx).Info("user updated", slog.Int64("userID", id))

	return user, nil
}

func (srv *userService) FindByID(ctx context.Context, id int64) (*entity.User, error) {
	user, err := srv.userRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.NewUserNotFound(id)
		}

		return nil, errors.Wrap(err, "failed to find user by id")
	}

	return user, nil
}

func (srv *userService) FindAll(ctx context.Context) ([]*entity.User, error) {
	users, err := srv.userRepo.FindAll(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list users")
	}

	return users, nil
}

// Delete removes a user. Deleting a missing user is not an error.
func (srv *userService) Delete(ctx context.Context, id int64) error {
	if err := srv.userRepo.Delete(ctx, id); err != nil {
		return errors.Wrap(err, "failed to delete user")
	}

	srv.log(ctx).Info("user deleted", slog.Int64("userID", id))

	return nil
}

func (srv *userService) checkEmailFree(ctx context.Context, email string) error {
	taken, err := srv.userRepo.ExistsByEmail(ctx, email)
	if err != nil {
		return errors.Wrap(err, "failed to check email uniqueness")
	}
	if taken {
		return domainerrors.NewDuplicateEmail(email)
	}

	return nil
}
