package reservation

import "errors"

var (
	ErrMissingName   = errors.New("customer name is required")
	ErrMissingPhone  = errors.New("customer phone is required")
	ErrMissingDate   = errors.New("reservation date is required")
	ErrMissingTime   = errors.New("reservation time is required")
	ErrInvalidGuests = errors.New("guest count must be positive")
)
