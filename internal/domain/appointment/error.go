package appointment

import "errors"

var (
	ErrNotFound      = errors.New("appointment not found")
	ErrDuplicateID   = errors.New("appointment id already exists")
	ErrInvalidStatus = errors.New("invalid appointment status")
	ErrInvalidInput  = errors.New("invalid appointment")
	ErrInvalidSlot   = errors.New("appointment slot is not available")
)
