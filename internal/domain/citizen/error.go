package citizen

import "errors"

var (
	ErrNotFound     = errors.New("citizen not found")
	ErrInvalidInput = errors.New("invalid input")
	ErrEmailTaken   = errors.New("email already registered")
)
