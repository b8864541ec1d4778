// Package middleware holds the gateway's echo middleware.
package middleware

import (
	"strconv"

	domainerrors "shareit/internal/domain/errors"

	"github.com/labstack/echo/v4"
)

// HeaderSharerUserID carries the caller's identity on authenticated routes.
const HeaderSharerUserID = "X-Sharer-User-Id"

// IdentityMiddleware rejects requests whose identity header is missing or
// not a positive integer, before anything reaches the server.
type IdentityMiddleware struct{}

// NewIdentityMiddleware creates a new identity header middleware
func NewIdentityMiddleware() *IdentityMiddleware {
	return &IdentityMiddleware{}
}

// Require validates the identity header.
func (m *IdentityMiddleware) Require(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		raw := c.Request().Header.Get(HeaderSharerUserID)
		if raw == "" {
			return domainerrors.NewInvalidRequest("отсутствует заголовок %s", HeaderSharerUserID)
		}

		userID, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || userID <= 0 {
			return domainerrors.NewInvalidRequest("некорректный заголовок %s", HeaderSharerUserID)
		}

		return next(c)
	}
}
