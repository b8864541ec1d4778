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

// CommentRepositoryParams defines the required parameters
type CommentRepositoryParams struct {
	fx.In

	DB *gorm.DB
}

type commentRepository struct {
	db *gorm.DB
}

// NewCommentRepository creates the PostgreSQL-backed CommentRepository.
func NewCommentRepository(params CommentRepositoryParams) repository.CommentRepository {
	return &commentRepository{db: params.DB}
}

func (r *commentRepository) FindByItem(ctx context.Context, itemID int64) ([]*entity.Comment, error) {
	var models []*model.CommentModel
	if err := r.db.WithContext(ctx).
		Preload("Author").
		Where("item_id = ?", itemID).
		Order("id ASC").
		Find(&models).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list comments by item")
	}

	return toCommentEntities(models), nil
}

func (r *commentRepository) Create(ctx context.Context, comment *entity.Comment) error {
	m := toCommentModel(comment)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return errors.Wrap(err, "failed to create comment")
	}
	comment.ID = m.ID

	return nil
}
