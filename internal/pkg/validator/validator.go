// Package validator wraps go-playground struct validation behind a
// single call that reports failures as a field-to-tag map, ready for
// the error envelope's details payload.
package validator

import (
	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// Validate checks v against its `validate` tags. It returns nil when
// everything passes, otherwise a map of field name to the tag that
// rejected it.
func Validate(v interface{}) map[string]string {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}

	errors := make(map[string]string)
	for _, err := range err.(validator.ValidationErrors) {
		errors[err.Field()] = err.Tag()
	}
	return errors
}
