package handler

import (
	"shareit/internal/gateway/client"

	"github.com/labstack/echo/v4"
)

type requestBody struct {
	Description string `json:"description" validate:"required,notblank"`
}

// RequestHandler validates item-request endpoint input and forwards it.
type RequestHandler struct {
	forwarder *client.Forwarder
}

// NewRequestHandler is the constructor for RequestHandler, injected by Fx.
func NewRequestHandler(forwarder *client.Forwarder) *RequestHandler {
	return &RequestHandler{forwarder: forwarder}
}

// Create handles POST /requests.
func (h *RequestHandler) Create(c echo.Context) error {
	body, err := readBody(c)
	if err != nil {
		return err
	}

	var input requestBody
	if err := bindAndValidate(c, body, &input); err != nil {
		return err
	}

	return h.forwarder.Forward(c, body)
}

// ListOwn handles GET /requests.
func (h *RequestHandler) ListOwn(c echo.Context) error {
	return h.forwarder.Forward(c, nil)
}

// ListAll handles GET /requests/all.
func (h *RequestHandler) ListAll(c echo.Context) error {
	if err := checkPagination(c); err != nil {
		return err
	}

	return h.forwarder.Forward(c, nil)
}

// GetByID handles GET /requests/{id}.
func (h *RequestHandler) GetByID(c echo.Context) error {
	if err := checkPathID(c, "id"); err != nil {
		return err
	}

	return h.forwarder.Forward(c, nil)
}
