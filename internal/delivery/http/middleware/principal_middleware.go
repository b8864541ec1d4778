package middleware

import (
	"strconv"

	deliverycontext "shareit/internal/delivery/context"
	domainerrors "shareit/internal/domain/errors"

	"github.com/labstack/echo/v4"
)

// HeaderSharerUserID carries the caller's identity on authenticated routes.
const HeaderSharerUserID = "X-Sharer-User-Id"

// PrincipalMiddleware reads the identity header into the request context.
// The gateway guarantees presence and shape for valid traffic; a request
// reaching the server without it is rejected here.
type PrincipalMiddleware struct{}

// NewPrincipalMiddleware creates a new principal extraction middleware
func NewPrincipalMiddleware() *PrincipalMiddleware {
	return &PrincipalMiddleware{}
}

// Require extracts the caller id and rejects requests without a usable one.
func (m *PrincipalMiddleware) Require(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		raw := c.Request().Header.Get(HeaderSharerUserID)
		userID, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || userID <= 0 {
			return domainerrors.NewInvalidRequest("некорректный заголовок %s", HeaderSharerUserID)
		}

		ctx := deliverycontext.WithPrincipal(c.Request().Context(), userID)
		c.SetRequest(c.Request().WithContext(ctx))

		return next(c)
	}
}
