package postgres

import (
	"context"

	"shareit/internal/domain/entity"
	domainerrors "shareit/internal/domain/errors"
	"shareit/internal/domain/repository"
	"shareit/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

// UserRepositoryParams defines the required parameters
type UserRepositoryParams struct {
	fx.In

	DB *gorm.DB
}

type userRepository struct {
	db *gorm.DB
}

// NewUserRepository creates the PostgreSQL-backed UserRepository.
func NewUserRepository(params UserRepositoryParams) repository.UserRepository {
	return &userRepository{db: params.DB}
}

func (r *userRepository) FindByID(ctx context.Context, id int64) (*entity.User, error) {
	var m model.UserModel
	if err := r.db.WithContext(ctx).First(&m, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find user")
	}

	return toUserEntity(&m), nil
}

func (r *userRepository) FindAll(ctx context.Context) ([]*entity.User, error) {
	var models []*model.UserModel
	if err := r.db.WithContext(ctx).Order("id ASC").Find(&models).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list users")
	}

	users := make([]*entity.User, 0, len(models))
	for _, m := range models {
		users = append(users, toUserEntity(m))
	}

	return users, nil
}

func (r *userRepository) ExistsByID(ctx context.Context, id int64) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&model.UserModel{}).
		Where("id = ?", id).
		Count(&count).Error; err != nil {
		return false, errors.Wrap(err, "failed to count users by id")
	}

	return count > 0, nil
}

func (r *userRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&model.UserModel{}).
		Where("email = ?", email).
		Count(&count).Error; err != nil {
		return false, errors.Wrap(err, "failed to count users by email")
	}

	return count > 0, nil
}

func (r *userRepository) Create(ctx context.Context, user *entity.User) error {
	m := toUserModel(user)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		// The unique index on email backs up the service-level check
		// against concurrent inserts of the same address.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return domainerrors.NewDuplicateEmail(user.Email)
		}

		return errors.Wrap(err, "failed to create user")
	}
	user.ID = m.ID

	return nil
}

func (r *userRepository) Update(ctx context.Context, user *entity.User) error {
	m := toUserModel(user)
	if err := r.db.WithContext(ctx).Save(m).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return domainerrors.NewDuplicateEmail(user.Email)
		}

		return errors.Wrap(err, "failed to update user")
	}

	return nil
}

func (r *userRepository) Delete(ctx context.Context, id int64) error {
	if err := r.db.WithContext(ctx).Delete(&model.UserModel{}, id).Error; err != nil {
		return errors.Wrap(err, "failed to delete user")
	}

	return nil
}
