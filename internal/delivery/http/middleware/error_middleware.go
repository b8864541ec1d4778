// Package middleware contains the echo middleware for the server: error
// rendering, request ids with request-scoped loggers and principal
// extraction from the identity header.
package middleware

import (
	"fmt"
	"log/slog"
	"net/http"

	domainerrors "shareit/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// Wire envelope keys. The Russian key is part of the API contract.
const (
	defaultEnvelopeKey    = "Сообщение об ошибке"
	badRequestEnvelopeKey = "error"
)

// ErrorMiddleware error handling middleware
type ErrorMiddleware struct {
	logger *slog.Logger
}

// NewErrorMiddleware creates a new error handling middleware
func NewErrorMiddleware(logger *slog.Logger) *ErrorMiddleware {
	return &ErrorMiddleware{
		logger: logger,
	}
}

// HandleHTTPError handles errors as Echo's HTTPErrorHandler
func (m *ErrorMiddleware) HandleHTTPError(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		// Validation-style 400s use the bare envelope; every other
		// application error uses the default one.
		key := defaultEnvelopeKey
		if appErr.ErrorCode() == domainerrors.CodeInvalidRequest {
			key = badRequestEnvelopeKey
		}

		_ = c.JSON(appErr.HTTPCode(), map[string]string{key: appErr.Message()})

		return
	}

	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		code := httpErr.Code
		// Not-acceptable responses ride the not-found path on the wire.
		if code == http.StatusNotAcceptable {
			code = http.StatusNotFound
		}

		_ = c.JSON(code, map[string]string{defaultEnvelopeKey: fmt.Sprintf("%v", httpErr.Message)})

		return
	}

	m.logger.Error("Unhandled error",
		"error", err.Error(),
		"path", c.Request().URL.Path,
		"method", c.Request().Method,
	)

	_ = c.JSON(http.StatusInternalServerError, map[string]string{defaultEnvelopeKey: "Internal server error"})
}
