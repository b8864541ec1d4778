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

// RequestRepositoryParams defines the required parameters
type RequestRepositoryParams struct {
	fx.In

	DB *gorm.DB
}

type requestRepository struct {
	db *gorm.DB
}

// NewRequestRepository creates the PostgreSQL-backed RequestRepository.
func NewRequestRepository(params RequestRepositoryParams) repository.RequestRepository {
	return &requestRepository{db: params.DB}
}

func (r *requestRepository) FindByID(ctx context.Context, id int64) (*entity.Request, error) {
	var m model.RequestModel
	if err := r.db.WithContext(ctx).First(&m, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrRequestNotFound
		}

		return nil, errors.Wrap(err, "failed to find request")
	}

	return toRequestEntity(&m), nil
}

func (r *requestRepository) ExistsByID(ctx context.Context, id int64) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&model.RequestModel{}).
		Where("id = ?", id).
		Count(&count).Error; err != nil {
		return false, errors.Wrap(err, "failed to count requests by id")
	}

	return count > 0, nil
}

func (r *requestRepository) FindByAuthor(ctx context.Context, authorID int64) ([]*entity.Request, error) {
	var models []*model.RequestModel
	if err := r.db.WithContext(ctx).
		Where("author_id = ?", authorID).
		Order("created DESC").
		Find(&models).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list requests by author")
	}

	return toRequestEntities(models), nil
}

func (r *requestRepository) FindByOtherAuthors(ctx context.Context, userID int64, page repository.Page) ([]*entity.Request, error) {
	var models []*model.RequestModel
	if err := r.db.WithContext(ctx).
		Where("author_id <> ?", userID).
		Order("created DESC").
		Offset(page.Offset).
		Limit(page.Limit).
		Find(&models).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list requests by other authors")
	}

	return toRequestEntities(models), nil
}

func (r *requestRepository) Create(ctx context.Context, request *entity.Request) error {
	m := toRequestModel(request)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return errors.Wrap(err, "failed to create request")
	}
	request.ID = m.ID

	return nil
}
