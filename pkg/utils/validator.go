package utils

import (
	"strings"

	"github.com/go-playground/validator/v10"

	apperrors "inventory-system/pkg/errors"
)

// CustomValidator adapts go-playground/validator to the echo.Validator
// interface.
type CustomValidator struct {
	validator *validator.Validate
}

func NewValidator(v *validator.Validate) *CustomValidator {
	return &CustomValidator{validator: v}
}

func (cv *CustomValidator) Validate(i interface{}) error {
	if err := cv.validator.Struct(i); err != nil {
		var fields []string
		if verrs, ok := err.(validator.ValidationErrors); ok {
			for _, fe := range verrs {
				fields = append(fields, fe.Field()+" ("+fe.Tag()+")")
			}
			return apperrors.NewInvalidInputError("validation failed: %s", strings.Join(fields, ", "))
		}
		return err
	}
	return nil
}
