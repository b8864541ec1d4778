package handler

import (
	"net/http"

	"shareit/internal/delivery/http/dto"
	domainerrors "shareit/internal/domain/errors"
	"shareit/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// ItemHandler holds dependencies for item-related handlers.
type ItemHandler struct {
	uc usecase.ItemUsecase
}

// NewItemHandler is the constructor for ItemHandler, injected by Fx.
func NewItemHandler(uc usecase.ItemUsecase) *ItemHandler {
	return &ItemHandler{uc: uc}
}

// Create handles POST /items.
func (h *ItemHandler) Create(c echo.Context) error {
	userID, err := principal(c)
	if err != nil {
		return err
	}

	var body dto.ItemCreateDto
	if err := c.Bind(&body); err != nil {
		return domainerrors.NewInvalidRequest("некорректное тело запроса")
	}

	item, err := h.uc.Create(c.Request().Context(), userID, &usecase.CreateItemInput{
		Name:        body.Name,
		Description: body.Description,
		Available:   body.Available,
		RequestID:   body.RequestID,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return c.JSON(http.StatusOK, dto.ToItemDto(item))
}

// Update handles PATCH /items/{id}.
func (h *ItemHandler) Update(c echo.Context) error {
	userID, err := principal(c)
	if err != nil {
		return err
	}
	itemID, err := pathID(c, "id")
	if err != nil {
		return err
	}

	var body dto.ItemPatchDto
	if err := c.Bind(&body); err != nil {
		return domainerrors.NewInvalidRequest("некорректное тело запроса")
	}

	item, err := h.uc.Update(c.Request().Context(), userID, itemID, &usecase.UpdateItemInput{
		Name:        body.Name,
		Description: body.Description,
		Available:   body.Available,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return c.JSON(http.StatusOK, dto.ToItemDto(item))
}

// GetByID handles GET /items/{id}. The derived bookings are visible only
// to the item's owner; the usecase decides based on the caller.
func (h *ItemHandler) GetByID(c echo.Context) error {
	userID, err := principal(c)
	if err != nil {
		return err
	}
	itemID, err := pathID(c, "id")
	if err != nil {
		return err
	}

	full, err := h.uc.FindByID(c.Request().Context(), userID, itemID)
	if err != nil {
		return errors.WithStack(err)
	}

	return c.JSON(http.StatusOK, dto.ToItemDtoFull(full))
}

// ListByOwner handles GET /items.
func (h *ItemHandler) ListByOwner(c echo.Context) error {
	userID, err := principal(c)
	if err != nil {
		return err
	}
	page, err := pagination(c)
	if err != nil {
		return err
	}

	items, err := h.uc.ListByOwner(c.Request().Context(), userID, page)
	if err != nil {
		return errors.WithStack(err)
	}

	return c.JSON(http.StatusOK, dto.ToItemDtosWithBookings(items))
}

// Search handles GET /items/search. No identity header is required.
func (h *ItemHandler) Search(c echo.Context) error {
	page, err := pagination(c)
	if err != nil {
		return err
	}

	items, err := h.uc.Search(c.Request().Context(), c.QueryParam("text"), page)
	if err != nil {
		return errors.WithStack(err)
	}

	return c.JSON(http.StatusOK, dto.ToItemDtos(items))
}

// PostComment handles POST /items/{id}/comment.
func (h *ItemHandler) PostComment(c echo.Context) error {
	userID, err := principal(c)
	if err != nil {
		return err
	}
	itemID, err := pathID(c, "id")
	if err != nil {
		return err
	}

	var body dto.CommentDto
	if err := c.Bind(&body); err != nil {
		return domainerrors.NewInvalidRequest("некорректное тело запроса")
	}

	comment, err := h.uc.PostComment(c.Request().Context(), userID, itemID, &usecase.CreateCommentInput{
		Text: body.Text,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return c.JSON(http.StatusOK, dto.ToCommentDto(comment))
}
