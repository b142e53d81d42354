package notification

import "errors"

var (
	ErrInvalidType     = errors.New("invalid notification type")
	ErrInvalidCategory = errors.New("invalid notification category")
	ErrEmptyTitle      = errors.New("notification title is required")
	ErrInvalidFilter   = errors.New("invalid notification filter")
)
