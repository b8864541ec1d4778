package handler

import (
	"shareit/internal/gateway/client"

	"github.com/labstack/echo/v4"
)

type itemCreateBody struct {
	Name        string `json:"name" validate:"required,notblank"`
	Description string `json:"description" validate:"required,notblank"`
	Available   *bool  `json:"available" validate:"required"`
	RequestID   *int64 `json:"requestId" validate:"omitempty,gt=0"`
}

type itemPatchBody struct {
	Name        *string `json:"name" validate:"omitempty,notblank"`
	Description *string `json:"description" validate:"omitempty,notblank"`
	Available   *bool   `json:"available"`
}

type commentBody struct {
	Text string `json:"text" validate:"required,notblank"`
}

// ItemHandler validates item endpoint input and forwards it.
type ItemHandler struct {
	forwarder *client.Forwarder
}

// NewItemHandler is the constructor for ItemHandler, injected by Fx.
func NewItemHandler(forwarder *client.Forwarder) *ItemHandler {
	return &ItemHandler{forwarder: forwarder}
}

// Create handles POST /items.
func (h *ItemHandler) Create(c echo.Context) error {
	body, err := readBody(c)
	if err != nil {
		return err
	}

	var input itemCreateBody
	if err := bindAndValidate(c, body, &input); err != nil {
		return err
	}

	return h.forwarder.Forward(c, body)
}

// Update handles PATCH /items/{id}.
func (h *ItemHandler) Update(c echo.Context) error {
	if err := checkPathID(c, "id"); err != nil {
		return err
	}

	body, err := readBody(c)
	if err != nil {
		return err
	}

	var input itemPatchBody
	if err := bindAndValidate(c, body, &input); err != nil {
		return err
	}

	return h.forwarder.Forward(c, body)
}

// GetByID handles GET /items/{id}.
func (h *ItemHandler) GetByID(c echo.Context) error {
	if err := checkPathID(c, "id"); err != nil {
		return err
	}

	return h.forwarder.Forward(c, nil)
}

// ListByOwner handles GET /items.
func (h *ItemHandler) ListByOwner(c echo.Context) error {
	if err := checkPagination(c); err != nil {
		return err
	}

	return h.forwarder.Forward(c, nil)
}

// Search handles GET /items/search.
func (h *ItemHandler) Search(c echo.Context) error {
	if err := checkPagination(c); err != nil {
		return err
	}

	return h.forwarder.Forward(c, nil)
}

// PostComment handles POST /items/{id}/comment.
func (h *ItemHandler) PostComment(c echo.Context) error {
	if err := checkPathID(c, "id"); err != nil {
		return err
	}

	body, err := readBody(c)
	if err != nil {
		return err
	}

	var input commentBody
	if err := bindAndValidate(c, body, &input); err != nil {
		return err
	}

	return h.forwarder.Forward(c, body)
}
