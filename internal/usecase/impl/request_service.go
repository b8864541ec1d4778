package impl

import (
	"context"
	"log/slog"
	"strings"

	deliverycontext "shareit/internal/delivery/context"
	"shareit/internal/domain/entity"
	domainerrors "shareit/internal/domain/errors"
	"shareit/internal/domain/repository"
	"shareit/internal/domain/service"
	"shareit/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// requestService implements the RequestUsecase interface.
type requestService struct {
	requestRepo repository.RequestRepository
	itemRepo    repository.ItemRepository
	userRepo    repository.UserRepository
	clock       service.Clock
	logger      *slog.Logger
}

// RequestServiceParams holds dependencies for requestService, injected by Fx.
type RequestServiceParams struct {
	fx.In

	RequestRepo repository.RequestRepository
	ItemRepo    repository.ItemRepository
	UserRepo    repository.UserRepository
	Clock       service.Clock
	Logger      *slog.Logger
}

// NewRequestService is the constructor for requestService.
func NewRequestService(params RequestServiceParams) usecase.RequestUsecase {
	return &requestService{
		requestRepo: params.RequestRepo,
		itemRepo:    params.ItemRepo,
		userRepo:    params.UserRepo,
		clock:       params.Clock,
		logger:      params.Logger,
	}
}

func (srv *requestService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Create publishes an item request stamped with the current instant.
func (srv *requestService) Create(ctx context.Context, userID int64, input *usecase.CreateRequestInput) (*entity.Request, error) {
	if err := srv.checkUser(ctx, userID); err != nil {
		return nil, err
	}
	if strings.TrimSpace(input.Description) == "" {
		return nil, domainerrors.NewInvalidRequest("Описание не может быть пустым")
	}

	request := &entity.Request{
		AuthorID:    userID,
		Description: input.Description,
		Created:     srv.clock.Now(),
	}
	if err := srv.requestRepo.Create(ctx, request); err != nil {
		return nil, errors.Wrap(err, "failed to create request")
	}

	srv.log(ctx).Info("request created", slog.Int64("requestID", request.ID), slog.Int64("authorID", userID))

	return request, nil
}

// ListByAuthor returns the caller's own requests, newest first, each with
// the items offered in response.
func (srv *requestService) ListByAuthor(ctx context.Context, userID int64) ([]*usecase.RequestWithItems, error) {
	if err := srv.checkUser(ctx, userID); err != nil {
		return nil, err
	}

	requests, err := srv.requestRepo.FindByAuthor(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list requests by author")
	}

	return srv.enrich(ctx, requests)
}

// ListOthers returns other users' requests, newest first, paginated.
func (srv *requestService) ListOthers(ctx context.Context, userID int64, page repository.Page) ([]*usecase.RequestWithItems, error) {
	if err := srv.checkUser(ctx, userID); err != nil {
		return nil, err
	}

	requests, err := srv.requestRepo.FindByOtherAuthors(ctx, userID, page)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list other users' requests")
	}

	return srv.enrich(ctx, requests)
}

func (srv *requestService) GetByID(ctx context.Context, userID, requestID int64) (*usecase.RequestWithItems, error) {
	if err := srv.checkUser(ctx, userID); err != nil {
		return nil, err
	}

	request, err := srv.requestRepo.FindByID(ctx, requestID)
	if err != nil {
		if errors.Is(err, repository.ErrRequestNotFound) {
			return nil, domainerrors.NewRequestNotFound(requestID)
		}

		return nil, errors.Wrap(err, "failed to find request by id")
	}

	enriched, err := srv.enrich(ctx, []*entity.Request{request})
	if err != nil {
		return nil, err
	}

	return enriched[0], nil
}

func (srv *requestService) checkUser(ctx context.Context, userID int64) error {
	exists, err := srv.userRepo.ExistsByID(ctx, userID)
	if err != nil {
		return errors.Wrap(err, "failed to check user existence")
	}
	if !exists {
		return domainerrors.NewUserNotFound(userID)
	}

	return nil
}

// enrich attaches the offered items to each request.
func (srv *requestService) enrich(ctx context.Context, requests []*entity.Request) ([]*usecase.RequestWithItems, error) {
	result := make([]*usecase.RequestWithItems, 0, len(requests))
	for _, request := range requests {
		items, err := srv.itemRepo.FindByRequest(ctx, request.ID)
		if err != nil {
			return nil, errors.Wrap(err, "failed to load offered items")
		}
		result = append(result, &usecase.RequestWithItems{
			Request: request,
			Items:   items,
		})
	}

	return result, nil
}
