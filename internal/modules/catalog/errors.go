package catalog

import "errors"

var ErrValidation = errors.New("invalid room input")
