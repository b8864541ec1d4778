// Package handler contains the HTTP handlers for the server.
package handler

import (
	"strconv"

	deliverycontext "shareit/internal/delivery/context"
	domainerrors "shareit/internal/domain/errors"
	"shareit/internal/domain/repository"

	"github.com/labstack/echo/v4"
)

// Pagination defaults shared by every listing endpoint.
const (
	defaultFrom = 0
	defaultSize = 10
)

// principal returns the caller id placed on the context by the principal
// middleware.
func principal(c echo.Context) (int64, error) {
	userID, ok := deliverycontext.GetPrincipal(c.Request().Context())
	if !ok {
		return 0, domainerrors.NewInvalidRequest("не указан идентификатор пользователя")
	}

	return userID, nil
}

// pathID parses a numeric path parameter.
func pathID(c echo.Context, name string) (int64, error) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil {
		return 0, domainerrors.NewInvalidRequest("некорректный идентификатор %s", c.Param(name))
	}

	return id, nil
}

// pagination reads the from/size query window, applying the defaults.
func pagination(c echo.Context) (repository.Page, error) {
	from := defaultFrom
	if raw := c.QueryParam("from"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 0 {
			return repository.Page{}, domainerrors.NewInvalidRequest("некорректный параметр from=%s", raw)
		}
		from = parsed
	}

	size := defaultSize
	if raw := c.QueryParam("size"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 {
			return repository.Page{}, domainerrors.NewInvalidRequest("некорректный параметр size=%s", raw)
		}
		size = parsed
	}

	return repository.Page{Offset: from, Limit: size}, nil
}
