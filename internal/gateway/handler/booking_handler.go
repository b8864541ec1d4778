package handler

import (
	"shareit/internal/delivery/http/dto"
	"shareit/internal/gateway/client"

	"github.com/labstack/echo/v4"
)

// bookingBody checks presence; the start/end ISO-8601 shape is enforced by
// the DateTime binding itself.
type bookingBody struct {
	ItemID int64         `json:"itemId" validate:"required,gt=0"`
	Start  *dto.DateTime `json:"start" validate:"required"`
	End    *dto.DateTime `json:"end" validate:"required"`
}

// BookingHandler validates booking endpoint input and forwards it.
type BookingHandler struct {
	forwarder *client.Forwarder
}

// NewBookingHandler is the constructor for BookingHandler, injected by Fx.
func NewBookingHandler(forwarder *client.Forwarder) *BookingHandler {
	return &BookingHandler{forwarder: forwarder}
}

// Create handles POST /bookings.
func (h *BookingHandler) Create(c echo.Context) error {
	body, err := readBody(c)
	if err != nil {
		return err
	}

	var input bookingBody
	if err := bindAndValidate(c, body, &input); err != nil {
		return err
	}

	return h.forwarder.Forward(c, body)
}

// Approve handles PATCH /bookings/{id}.
func (h *BookingHandler) Approve(c echo.Context) error {
	if err := checkPathID(c, "id"); err != nil {
		return err
	}

	return h.forwarder.Forward(c, nil)
}

// GetByID handles GET /bookings/{id}.
func (h *BookingHandler) GetByID(c echo.Context) error {
	if err := checkPathID(c, "id"); err != nil {
		return err
	}

	return h.forwarder.Forward(c, nil)
}

// ListByBooker handles GET /bookings.
func (h *BookingHandler) ListByBooker(c echo.Context) error {
	if err := checkPagination(c); err != nil {
		return err
	}

	return h.forwarder.Forward(c, nil)
}

// ListByOwner handles GET /bookings/owner.
func (h *BookingHandler) ListByOwner(c echo.Context) error {
	if err := checkPagination(c); err != nil {
		return err
	}

	return h.forwarder.Forward(c, nil)
}
