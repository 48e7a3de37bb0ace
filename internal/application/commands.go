package application

import (
	"errors"

	"github.com/go-playground/validator/v10"
)

type LoginCommand struct {
	Email    string `validate:"required,email"`
	Password string `validate:"required"`
}

type RegisterCommand struct {
	Email    string `validate:"required,email"`
	Password string `validate:"required"`
}

type EmailCommand struct {
	To string `validate:"required,email"`
	// ContentAvailable reports whether a generated content set exists; the
	// caller that owns generation state supplies it.
	ContentAvailable bool
}

type AccessRequestCommand struct {
	Name    string `validate:"required"`
	Email   string `validate:"required,email"`
	Message string
}

var validate = validator.New(validator.WithRequiredStructEnabled())

func validateInput(input any) error {
	err := validate.Struct(input)
	if err == nil {
		return nil
	}

	var fieldErrors validator.ValidationErrors
	if errors.As(err, &fieldErrors) && len(fieldErrors) > 0 {
		first := fieldErrors[0]
		if first.Tag() == "email" {
			return errors.New("invalid email address")
		}
		return errors.New(first.Field() + " is required")
	}

	return err
}
