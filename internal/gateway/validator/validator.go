// Package validator adapts go-playground/validator to echo for the
// gateway's body schema checks.
package validator

import (
	"strings"

	domainerrors "shareit/internal/domain/errors"

	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
)

// BodyValidator implements echo.Validator over a shared validate instance.
type BodyValidator struct {
	validate *validator.Validate
}

// New creates the gateway body validator with the notblank rule
// registered.
func New() *BodyValidator {
	validate := validator.New(validator.WithRequiredStructEnabled())
	// Bound to succeed: the tag name is static and the func is non-nil.
	_ = validate.RegisterValidation("notblank", notBlank)

	return &BodyValidator{validate: validate}
}

// Validate implements echo.Validator. Schema violations surface as
// bad-request application errors.
func (v *BodyValidator) Validate(i any) error {
	err := v.validate.Struct(i)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
		first := fieldErrs[0]

		return domainerrors.NewInvalidRequest("некорректное поле %s", strings.ToLower(first.Field()))
	}

	return errors.Wrap(err, "failed to validate request body")
}

// notBlank rejects strings that are empty or whitespace only.
func notBlank(fl validator.FieldLevel) bool {
	return strings.TrimSpace(fl.Field().String()) != ""
}
