package handler

import (
	"net/http"

	"shareit/internal/delivery/http/dto"
	domainerrors "shareit/internal/domain/errors"
	"shareit/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// RequestHandler holds dependencies for item-request handlers.
type RequestHandler struct {
	uc usecase.RequestUsecase
}

// NewRequestHandler is the constructor for RequestHandler, injected by Fx.
func NewRequestHandler(uc usecase.RequestUsecase) *RequestHandler {
	return &RequestHandler{uc: uc}
}

// Create handles POST /requests.
func (h *RequestHandler) Create(c echo.Context) error {
	userID, err := principal(c)
	if err != nil {
		return err
	}

	var body dto.RequestInDto
	if err := c.Bind(&body); err != nil {
		return domainerrors.NewInvalidRequest("некорректное тело запроса")
	}

	request, err := h.uc.Create(c.Request().Context(), userID, &usecase.CreateRequestInput{
		Description: body.Description,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return c.JSON(http.StatusOK, dto.ToRequestDto(request))
}

// ListOwn handles GET /requests.
func (h *RequestHandler) ListOwn(c echo.Context) error {
	userID, err := principal(c)
	if err != nil {
		return err
	}

	requests, err := h.uc.ListByAuthor(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return c.JSON(http.StatusOK, dto.ToRequestDtosWithItems(requests))
}

// ListAll handles GET /requests/all.
func (h *RequestHandler) ListAll(c echo.Context) error {
	userID, err := principal(c)
	if err != nil {
		return err
	}
	page, err := pagination(c)
	if err != nil {
		return err
	}

	requests, err := h.uc.ListOthers(c.Request().Context(), userID, page)
	if err != nil {
		return errors.WithStack(err)
	}

	return c.JSON(http.StatusOK, dto.ToRequestDtosWithItems(requests))
}

// GetByID handles GET /requests/{id}.
func (h *RequestHandler) GetByID(c echo.Context) error {
	userID, err := principal(c)
	if err != nil {
		return err
	}
	requestID, err := pathID(c, "id")
	if err != nil {
		return err
	}

	request, err := h.uc.GetByID(c.Request().Context(), userID, requestID)
	if err != nil {
		return errors.WithStack(err)
	}

	return c.JSON(http.StatusOK, dto.ToRequestDtoWithItems(request))
}
