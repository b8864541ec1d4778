package repository

import (
	"context"

	"shareit/internal/domain/entity"
)

// CommentRepository defines the storage operations for item comments.
type CommentRepository interface {
	// FindByItem returns all comments on an item with their authors
	// materialized.
	FindByItem(ctx context.Context, itemID int64) ([]*entity.Comment, error)

	// Create persists a new comment and backfills the assigned id.
	Create(ctx context.Context, comment *entity.Comment) error
}
