// Package validator adapts go-playground/validator to echo's Validator interface.
package validator

import (
	"reflect"
	"strings"

	domainerrors "allserve/internal/domain/errors"
	"allserve/internal/errors"

	"github.com/go-playground/validator/v10"
)

// CustomValidator validates bound request bodies
type CustomValidator struct {
	validate *validator.Validate
}

// New creates a validator that reports fields by their json name
func New() *CustomValidator {
	validate := validator.New(validator.WithRequiredStructEnabled())
	validate.RegisterTagNameFunc(func(field reflect.StructField) string {
		name, _, _ := strings.Cut(field.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}

		return name
	})

	return &CustomValidator{validate: validate}
}

// Validate returns an invalid-argument error naming every failing field
func (cv *CustomValidator) Validate(i any) error {
	err := cv.validate.Struct(i)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) || len(fieldErrs) == 0 {
		return domainerrors.NewInvalidArgument("Invalid request")
	}

	fields := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		fields = append(fields, fe.Field())
	}

	return domainerrors.NewInvalidArgument("Invalid or missing fields: " + strings.Join(fields, ", "))
}
