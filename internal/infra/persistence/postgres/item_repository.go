package postgres

import (
	"context"

	"shareit/internal/domain/entity"
	"shareit/internal/domain/repository"
	"shareit/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

// ItemRepositoryParams defines the required parameters
type ItemRepositoryParams struct {
	fx.In

	DB *gorm.DB
}

type itemRepository struct {
	db *gorm.DB
}

// NewItemRepository creates the PostgreSQL-backed ItemRepository.
func NewItemRepository(params ItemRepositoryParams) repository.ItemRepository {
	return &itemRepository{db: params.DB}
}

func (r *itemRepository) FindByID(ctx context.Context, id int64) (*entity.Item, error) {
	var m model.ItemModel
	if err := r.db.WithContext(ctx).First(&m, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrItemNotFound
		}

		return nil, errors.Wrap(err, "failed to find item")
	}

	return toItemEntity(&m), nil
}

func (r *itemRepository) FindByOwner(ctx context.Context, ownerID int64, page repository.Page) ([]*entity.Item, error) {
	var models []*model.ItemModel
	if err := r.db.WithContext(ctx).
		Where("owner_id = ?", ownerID).
		Order("id ASC").
		Offset(page.Offset).
		Limit(page.Limit).
		Find(&models).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list items by owner")
	}

	return toItemEntities(models), nil
}

func (r *itemRepository) ExistsByOwner(ctx context.Context, ownerID int64) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&model.ItemModel{}).
		Where("owner_id = ?", ownerID).
		Count(&count).Error; err != nil {
		return false, errors.Wrap(err, "failed to count items by owner")
	}

	return count > 0, nil
}

func (r *itemRepository) Search(ctx context.Context, text string, page repository.Page) ([]*entity.Item, error) {
	pattern := "%" + text + "%"

	var models []*model.ItemModel
	if err := r.db.WithContext(ctx).
		Where("available = ?", true).
		Where("name ILIKE ? OR description ILIKE ?", pattern, pattern).
		Order("id ASC").
		Offset(page.Offset).
		Limit(page.Limit).
		Find(&models).Error; err != nil {
		return nil, errors.Wrap(err, "failed to search items")
	}

	return toItemEntities(models), nil
}

func (r *itemRepository) FindByRequest(ctx context.Context, requestID int64) ([]*entity.Item, error) {
	var models []*model.ItemModel
	if err := r.db.WithContext(ctx).
		Where("request_id = ?", requestID).
		Order("id ASC").
		Find(&models).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list items by request")
	}

	return toItemEntities(models), nil
}

func (r *itemRepository) Create(ctx context.Context, item *entity.Item) error {
	m := toItemModel(item)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return errors.Wrap(err, "failed to create item")
	}
	item.ID = m.ID

	return nil
}

func (r *itemRepository) Update(ctx context.Context, item *entity.Item) error {
	if err := r.db.WithContext(ctx).Save(toItemModel(item)).Error; err != nil {
		return errors.Wrap(err, "failed to update item")
	}

	return nil
}
