// Package validator wraps go-playground struct validation behind one
// helper that handlers attach as error details.
package validator

import (
	"errors"

	validatorlib "github.com/go-playground/validator/v10"
)

var v = validatorlib.New()

// Validate checks the struct's `validate` tags and returns a field→tag
// map of the failures, or nil when the value passes.
func Validate(s any) map[string]string {
	err := v.Struct(s)
	if err == nil {
		return nil
	}

	out := make(map[string]string)
	var fieldErrs validatorlib.ValidationErrors
	if errors.As(err, &fieldErrs) {
		for _, fe := range fieldErrs {
			out[fe.Field()] = fe.Tag()
		}
	}
	return out
}
