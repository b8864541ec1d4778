package validator

import (
	"testing"

	domainerrors "shareit/internal/domain/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type userBody struct {
	Name  string `json:"name" validate:"required,notblank"`
	Email string `json:"email" validate:"required,email"`
}

func TestBodyValidator_Valid(t *testing.T) {
	v := New()

	err := v.Validate(&userBody{Name: "Ivan", Email: "ivan@example.com"})
	require.NoError(t, err)
}

func TestBodyValidator_NotBlank(t *testing.T) {
	v := New()

	err := v.Validate(&userBody{Name: "   ", Email: "ivan@example.com"})
	require.Error(t, err)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, 400, appErr.HTTPCode())
	assert.Equal(t, domainerrors.CodeInvalidRequest, appErr.ErrorCode())
	assert.Equal(t, "некорректное поле name", appErr.Message())
}

func TestBodyValidator_Email(t *testing.T) {
	v := New()

	err := v.Validate(&userBody{Name: "Ivan", Email: "not-an-email"})
	require.Error(t, err)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "некорректное поле email", appErr.Message())
}

func TestBodyValidator_ReportsFirstViolation(t *testing.T) {
	v := New()

	err := v.Validate(&userBody{})
	require.Error(t, err)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "некорректное поле name", appErr.Message())
}
