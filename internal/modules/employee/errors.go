package employee

import "errors"

var (
	ErrValidation   = errors.New("validation error")
	ErrDuplicateDNI = errors.New("an employee with that DNI already exists")
	ErrNotFound     = errors.New("employee not found")
)
