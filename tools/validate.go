package tools

import (
	"github.com/cockroachdb/errors"
	"github.com/go-playground/validator/v10"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// Validate checks the `validate` tags of the input struct.
// The returned error is marked as ErrInvalidInput.
func Validate(input any) error {
	if err := validate.Struct(input); err != nil {
		return errors.Mark(errors.Wrap(err, ErrInvalidInput.Error()), ErrInvalidInput)
	}
	return nil
}
