package main

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/buildflow/client/internal/core/domain"
)

var formValidator = validator.New()

// validateInput checks a form input struct before it leaves the rendering
// layer; violations become a ValidationError and no request is issued.
func validateInput(in any) error {
	err := formValidator.Struct(in)
	if err == nil {
		return nil
	}

	var ve validator.ValidationErrors
	if errors.As(err, &ve) {
		msgs := make([]string, 0, len(ve))
		for _, fe := range ve {
			msgs = append(msgs, strings.ToLower(fe.Field())+" failed "+fe.Tag())
		}
		return &domain.ValidationError{Message: strings.Join(msgs, "; ")}
	}
	return err
}
