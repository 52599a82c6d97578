package workorder

import "errors"

var (
	ErrNoEmployee = errors.New("missing employee identity")
	ErrValidation = errors.New("validation error")
	ErrNotFound   = errors.New("work order not found")
)
