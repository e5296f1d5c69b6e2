package order

import "errors"

var (
	ErrEmptyCart            = errors.New("cart is empty")
	ErrMissingName          = errors.New("customer name is required")
	ErrMissingPhone         = errors.New("customer phone is required")
	ErrMissingAddress       = errors.New("delivery address is required")
	ErrInvalidPaymentMethod = errors.New("invalid payment method")
)
