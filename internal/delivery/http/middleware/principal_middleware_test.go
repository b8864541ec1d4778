package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	deliverycontext "shareit/internal/delivery/context"
	domainerrors "shareit/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrincipalMiddleware_Require(t *testing.T) {
	e := echo.New()
	m := NewPrincipalMiddleware()

	next := func(c echo.Context) error {
		userID, ok := deliverycontext.GetPrincipal(c.Request().Context())
		require.True(t, ok)
		assert.Equal(t, int64(42), userID)

		return c.NoContent(http.StatusOK)
	}

	req := httptest.NewRequest(http.MethodGet, "/items", nil)
	req.Header.Set(HeaderSharerUserID, "42")
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, m.Require(next)(c))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestPrincipalMiddleware_RejectsBadHeader(t *testing.T) {
	e := echo.New()
	m := NewPrincipalMiddleware()

	next := func(c echo.Context) error {
		t.Error("next handler should not run")

		return nil
	}

	for _, raw := range []string{"", "abc", "0", "-5"} {
		req := httptest.NewRequest(http.MethodGet, "/items", nil)
		if raw != "" {
			req.Header.Set(HeaderSharerUserID, raw)
		}
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)

		err := m.Require(next)(c)
		require.Error(t, err, "header %q", raw)

		var appErr domainerrors.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, http.StatusBadRequest, appErr.HTTPCode())
	}
}
