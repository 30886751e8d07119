// Package validator adapts go-playground/validator to Echo's Validator interface.
package validator

import (
	"strconv"

	domainerrors "chirp/internal/domain/errors"

	"github.com/go-playground/validator/v10"
)

// echoValidator wraps a validator instance so Echo's c.Validate works on
// request structs tagged with `validate`.
type echoValidator struct {
	validate *validator.Validate
}

// New creates the validator used by the HTTP server.
func New() *echoValidator {
	v := validator.New(validator.WithRequiredStructEnabled())
	// The tag name is non-empty and the function non-nil, so registration
	// cannot fail.
	_ = v.RegisterValidation("maxbytes", maxBytes)

	return &echoValidator{validate: v}
}

// maxBytes bounds a string field by its encoded byte length. The builtin
// max counts runes, which undercounts multi-byte UTF-8 against storage
// limits expressed in bytes.
func maxBytes(fl validator.FieldLevel) bool {
	limit, err := strconv.Atoi(fl.Param())
	if err != nil {
		return false
	}

	return len(fl.Field().String()) <= limit
}

// Validate checks the struct's `validate` tags and maps failures onto the
// shared validation error so the error handler renders a 400.
func (v *echoValidator) Validate(i any) error {
	if err := v.validate.Struct(i); err != nil {
		return domainerrors.ErrValidationFailed.WrapMessage(err.Error())
	}

	return nil
}
