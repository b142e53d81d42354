package demand

import "errors"

var (
	ErrNotFound      = errors.New("demand not found")
	ErrDuplicateID   = errors.New("demand id already exists")
	ErrInvalidStatus = errors.New("invalid demand status")
	ErrInvalidInput  = errors.New("invalid demand")
)
