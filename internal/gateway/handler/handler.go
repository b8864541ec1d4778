// Package handler contains the gateway handlers: syntactic validation of
// each endpoint's input, then pass-through to the server.
package handler

import (
	"encoding/json"
	"io"
	"strconv"

	domainerrors "shareit/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// readBody drains the request body so it can be both validated and
// forwarded verbatim.
func readBody(c echo.Context) ([]byte, error) {
	body, err := io.ReadAll(c.Request().Body)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read request body")
	}

	return body, nil
}

// bindAndValidate unmarshals the raw body into target and runs the schema
// checks. Malformed JSON and schema violations are both bad requests.
func bindAndValidate(c echo.Context, body []byte, target any) error {
	if err := json.Unmarshal(body, target); err != nil {
		return domainerrors.NewInvalidRequest("некорректное тело запроса")
	}

	return c.Validate(target)
}

// checkPathID requires a positive numeric path parameter.
func checkPathID(c echo.Context, name string) error {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		return domainerrors.NewInvalidRequest("некорректный идентификатор %s", c.Param(name))
	}

	return nil
}

// checkPagination requires from >= 0 and size >= 1 when present; defaults
// are applied by the server.
func checkPagination(c echo.Context) error {
	if raw := c.QueryParam("from"); raw != "" {
		from, err := strconv.Atoi(raw)
		if err != nil || from < 0 {
			return domainerrors.NewInvalidRequest("некорректный параметр from=%s", raw)
		}
	}
	if raw := c.QueryParam("size"); raw != "" {
		size, err := strconv.Atoi(raw)
		if err != nil || size < 1 {
			return domainerrors.NewInvalidRequest("некорректный параметр size=%s", raw)
		}
	}

	return nil
}
