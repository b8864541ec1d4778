package usecase

import (
	"context"

	"shareit/internal/domain/entity"
	"shareit/internal/domain/repository"
)

// CreateRequestInput defines the data required to publish an item request.
type CreateRequestInput struct {
	Description string
}

// RequestWithItems is the read projection of a request enriched with the
// items offered in response to it.
type RequestWithItems struct {
	Request *entity.Request
	Items   []*entity.Item
}

// RequestUsecase defines the contract the delivery layer depends on for
// item-request operations.
type RequestUsecase interface {
	Create(ctx context.Context, userID int64, input *CreateRequestInput) (*entity.Request, error)
	ListByAuthor(ctx context.Context, userID int64) ([]*RequestWithItems, error)
	ListOthers(ctx context.Context, userID int64, page repository.Page) ([]*RequestWithItems, error)
	GetByID(ctx context.Context, userID, requestID int64) (*RequestWithItems, error)
}
