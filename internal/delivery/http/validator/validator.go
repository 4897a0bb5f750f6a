// Package validator adapts go-playground/validator to echo's Validator
// interface, so malformed payloads are rejected before they reach a usecase.
package validator

import (
	domainerrors "evently/internal/domain/errors"

	"github.com/go-playground/validator/v10"
)

type echoValidator struct {
	validate *validator.Validate
}

// New builds the validator used by the echo server.
func New() *echoValidator {
	return &echoValidator{validate: validator.New()}
}

// Validate checks the struct tags on a bound request and translates any
// failure into the validation AppError, keeping field details server-side.
func (v *echoValidator) Validate(i any) error {
	if err := v.validate.Struct(i); err != nil {
		return domainerrors.ErrValidationFailed.WithDetails(err.Error())
	}

	return nil
}
