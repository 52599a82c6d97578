package invoice

import "errors"

var (
	ErrValidation = errors.New("validation error")
	ErrNotFound   = errors.New("invoice not found")
)
