package handler

import (
	"net/http"

	"shareit/internal/delivery/http/dto"
	domainerrors "shareit/internal/domain/errors"
	"shareit/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// UserHandler holds dependencies for user-related handlers.
type UserHandler struct {
	uc usecase.UserUsecase
}

// NewUserHandler is the constructor for UserHandler, injected by Fx.
func NewUserHandler(uc usecase.UserUsecase) *UserHandler {
	return &UserHandler{uc: uc}
}

// Create handles POST /users.
func (h *UserHandler) Create(c echo.Context) error {
	var body dto.UserDto
	if err := c.Bind(&body); err != nil {
		return domainerrors.NewInvalidRequest("некорректное тело запроса")
	}

	user, err := h.uc.Create(c.Request().Context(), &usecase.CreateUserInput{
		Name:  body.Name,
		Email: body.Email,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return c.JSON(http.StatusOK, dto.ToUserDto(user))
}

// Update handles PATCH /users/{id}.
func (h *UserHandler) Update(c echo.Context) error {
	userID, err := pathID(c, "id")
	if err != nil {
		return err
	}

	var body dto.UserPatchDto
	if err := c.Bind(&body); err != nil {
		return domainerrors.NewInvalidRequest("некорректное тело запроса")
	}

	user, err := h.uc.Update(c.Request().Context(), userID, &usecase.UpdateUserInput{
		Name:  body.Name,
		Email: body.Email,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return c.JSON(http.StatusOK, dto.ToUserDto(user))
}

// GetByID handles GET /users/{id}.
func (h *UserHandler) GetByID(c echo.Context) error {
	userID, err := pathID(c, "id")
	if err != nil {
		return err
	}

	user, err := h.uc.FindByID(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return c.JSON(http.StatusOK, dto.ToUserDto(user))
}

// List handles GET /users.
func (h *UserHandler) List(c echo.Context) error {
	users, err := h.uc.FindAll(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return c.JSON(http.StatusOK, dto.ToUserDtos(users))
}

// Delete handles DELETE /users/{id}.
func (h *UserHandler) Delete(c echo.Context) error {
	userID, err := pathID(c, "id")
	if err != nil {
		return err
	}

	if err := h.uc.Delete(c.Request().Context(), userID); err != nil {
		return errors.WithStack(err)
	}

	return c.NoContent(http.StatusOK)
}
