package expense

import "errors"

var ErrValidation = errors.New("validation error")
