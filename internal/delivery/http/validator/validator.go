// Package validator adapts go-playground/validator to echo's Validator
// interface.
package validator

import (
	domainerrors "marketplace/internal/domain/errors"

	"github.com/go-playground/validator/v10"
)

type echoValidator struct {
	validate *validator.Validate
}

// New builds the validator used by the echo server.
func New() *echoValidator {
	return &echoValidator{validate: validator.New()}
}

// Validate checks the struct's validate tags. Failures surface as a
// VALIDATION_FAILED application error carrying the validator's detail text.
func (v *echoValidator) Validate(i any) error {
	if err := v.validate.Struct(i); err != nil {
		return domainerrors.ErrValidationFailed.WithDetails(err.Error())
	}

	return nil
}
