package handler

import (
	"shareit/internal/gateway/client"

	"github.com/labstack/echo/v4"
)

type userCreateBody struct {
	Name  string `json:"name" validate:"required,notblank"`
	Email string `json:"email" validate:"required,email"`
}

type userPatchBody struct {
	Name  *string `json:"name" validate:"omitempty,notblank"`
	Email *string `json:"email" validate:"omitempty,email"`
}

// UserHandler validates user endpoint input and forwards it.
type UserHandler struct {
	forwarder *client.Forwarder
}

// NewUserHandler is the constructor for UserHandler, injected by Fx.
func NewUserHandler(forwarder *client.Forwarder) *UserHandler {
	return &UserHandler{forwarder: forwarder}
}

// Create handles POST /users.
func (h *UserHandler) Create(c echo.Context) error {
	body, err := readBody(c)
	if err != nil {
		return err
	}

	var input userCreateBody
	if err := bindAndValidate(c, body, &input); err != nil {
		return err
	}

	return h.forwarder.Forward(c, body)
}

// Update handles PATCH /users/{id}.
func (h *UserHandler) Update(c echo.Context) error {
	if err := checkPathID(c, "id"); err != nil {
		return err
	}

	body, err := readBody(c)
	if err != nil {
		return err
	}

	var input userPatchBody
	if err := bindAndValidate(c, body, &input); err != nil {
		return err
	}

	return h.forwarder.Forward(c, body)
}

// GetByID handles GET /users/{id}.
func (h *UserHandler) GetByID(c echo.Context) error {
	if err := checkPathID(c, "id"); err != nil {
		return err
	}

	return h.forwarder.Forward(c, nil)
}

// List handles GET /users.
func (h *UserHandler) List(c echo.Context) error {
	return h.forwarder.Forward(c, nil)
}

// Delete handles DELETE /users/{id}.
func (h *UserHandler) Delete(c echo.Context) error {
	if err := checkPathID(c, "id"); err != nil {
		return err
	}

	return h.forwarder.Forward(c, nil)
}
