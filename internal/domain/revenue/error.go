package revenue

import "errors"

var (
	ErrNotFound       = errors.New("payment not found")
	ErrInvalidInput   = errors.New("invalid input")
	ErrUnknownCitizen = errors.New("citizen does not exist")
	ErrUnknownStatus  = errors.New("unknown payment status")
)
