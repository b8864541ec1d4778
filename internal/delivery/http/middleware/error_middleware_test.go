package middleware

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	domainerrors "shareit/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
)

func newErrorContext(t *testing.T) (echo.Context, *httptest.ResponseRecorder, *ErrorMiddleware) {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/items/99", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	return c, rec, NewErrorMiddleware(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func TestHandleHTTPError_DefaultEnvelope(t *testing.T) {
	c, rec, m := newErrorContext(t)

	m.HandleHTTPError(domainerrors.NewItemNotFound(99), c)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"Сообщение об ошибке":"Предмет с id=99 не найден"}`, rec.Body.String())
}

func TestHandleHTTPError_BadRequestEnvelope(t *testing.T) {
	c, rec, m := newErrorContext(t)

	m.HandleHTTPError(domainerrors.ErrUnknownState, c)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t, `{"error":"Unknown state: UNSUPPORTED_STATUS"}`, rec.Body.String())
}

func TestHandleHTTPError_WrappedAppError(t *testing.T) {
	c, rec, m := newErrorContext(t)

	m.HandleHTTPError(errors.Wrap(domainerrors.NewUserNotFound(7), "load user"), c)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"Сообщение об ошибке":"Пользователь с id=7 не найден"}`, rec.Body.String())
}

func TestHandleHTTPError_EchoError(t *testing.T) {
	c, rec, m := newErrorContext(t)

	m.HandleHTTPError(echo.NewHTTPError(http.StatusMethodNotAllowed, "Method Not Allowed"), c)

	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
	assert.JSONEq(t, `{"Сообщение об ошибке":"Method Not Allowed"}`, rec.Body.String())
}

func TestHandleHTTPError_NotAcceptableBecomesNotFound(t *testing.T) {
	c, rec, m := newErrorContext(t)

	m.HandleHTTPError(echo.NewHTTPError(http.StatusNotAcceptable, "Not Acceptable"), c)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"Сообщение об ошибке":"Not Acceptable"}`, rec.Body.String())
}

func TestHandleHTTPError_UnknownErrorIs500(t *testing.T) {
	c, rec, m := newErrorContext(t)

	m.HandleHTTPError(errors.New("boom"), c)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.JSONEq(t, `{"Сообщение об ошибке":"Internal server error"}`, rec.Body.String())
}

func TestHandleHTTPError_CommittedResponseUntouched(t *testing.T) {
	c, rec, m := newErrorContext(t)
	_ = c.NoContent(http.StatusOK)

	m.HandleHTTPError(errors.New("late failure"), c)

	assert.Equal(t, http.StatusOK, rec.Code)
}
