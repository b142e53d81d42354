package payment

import "errors"

var (
	ErrNotFound      = errors.New("payment not found")
	ErrDuplicateID   = errors.New("payment id already exists")
	ErrInvalidStatus = errors.New("invalid payment status")
	ErrInvalidInput  = errors.New("invalid payment")
	ErrInvalidAmount = errors.New("invalid payment amount")
)
