package handler

import (
	"context"
	"net/http"
	"strconv"

	"shareit/internal/delivery/http/dto"
	"shareit/internal/domain/entity"
	domainerrors "shareit/internal/domain/errors"
	"shareit/internal/domain/repository"
	"shareit/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// BookingHandler holds dependencies for booking-related handlers.
type BookingHandler struct {
	uc usecase.BookingUsecase
}

// NewBookingHandler is the constructor for BookingHandler, injected by Fx.
func NewBookingHandler(uc usecase.BookingUsecase) *BookingHandler {
	return &BookingHandler{uc: uc}
}

// Create handles POST /bookings.
func (h *BookingHandler) Create(c echo.Context) error {
	userID, err := principal(c)
	if err != nil {
		return err
	}

	var body dto.BookingInDto
	if err := c.Bind(&body); err != nil {
		return domainerrors.ErrInvalidBookingData
	}

	booking, err := h.uc.Create(c.Request().Context(), userID, &usecase.CreateBookingInput{
		ItemID: body.ItemID,
		Start:  body.Start.Time(),
		End:    body.End.Time(),
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return c.JSON(http.StatusOK, dto.ToBookingOutDto(booking))
}

// Approve handles PATCH /bookings/{id}?approved=bool.
func (h *BookingHandler) Approve(c echo.Context) error {
	userID, err := principal(c)
	if err != nil {
		return err
	}
	bookingID, err := pathID(c, "id")
	if err != nil {
		return err
	}

	approved, err := strconv.ParseBool(c.QueryParam("approved"))
	if err != nil {
		return domainerrors.NewInvalidRequest("некорректный параметр approved=%s", c.QueryParam("approved"))
	}

	booking, err := h.uc.Approve(c.Request().Context(), userID, bookingID, approved)
	if err != nil {
		return errors.WithStack(err)
	}

	return c.JSON(http.StatusOK, dto.ToBookingOutDto(booking))
}

// GetByID handles GET /bookings/{id}.
func (h *BookingHandler) GetByID(c echo.Context) error {
	userID, err := principal(c)
	if err != nil {
		return err
	}
	bookingID, err := pathID(c, "id")
	if err != nil {
		return err
	}

	booking, err := h.uc.GetByID(c.Request().Context(), userID, bookingID)
	if err != nil {
		return errors.WithStack(err)
	}

	return c.JSON(http.StatusOK, dto.ToBookingOutDto(booking))
}

// ListByBooker handles GET /bookings.
func (h *BookingHandler) ListByBooker(c echo.Context) error {
	return h.list(c, h.uc.ListByBooker)
}

// ListByOwner handles GET /bookings/owner.
func (h *BookingHandler) ListByOwner(c echo.Context) error {
	return h.list(c, h.uc.ListByOwner)
}

func (h *BookingHandler) list(
	c echo.Context,
	listFn func(ctx context.Context, userID int64, state entity.BookingState, page repository.Page) ([]*entity.Booking, error),
) error {
	userID, err := principal(c)
	if err != nil {
		return err
	}
	page, err := pagination(c)
	if err != nil {
		return err
	}

	state, err := entity.ParseBookingState(c.QueryParam("state"))
	if err != nil {
		return domainerrors.ErrUnknownState
	}

	bookings, err := listFn(c.Request().Context(), userID, state, page)
	if err != nil {
		return errors.WithStack(err)
	}

	return c.JSON(http.StatusOK, dto.ToBookingOutDtos(bookings))
}
