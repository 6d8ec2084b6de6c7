package services

import "errors"

// Domain failure modes. Controllers map these to HTTP responses; raw
// gorm errors never cross the service boundary.
var (
	ErrEmptyCart        = errors.New("cart is empty")
	ErrProductNotFound  = errors.New("product not found")
	ErrCategoryNotFound = errors.New("category not found")
	ErrOrderNotFound    = errors.New("order not found")
	ErrInvalidAction    = errors.New("action must be add or remove")
	ErrInvalidDiscount  = errors.New("discount percent must be between 0 and 100")
	ErrInvalidSignature = errors.New("payment signature verification failed")
	ErrPaymentGateway   = errors.New("payment gateway request failed")
	ErrTableNotFound    = errors.New("table not found")
	ErrBookingNotFound  = errors.New("booking not found")
	ErrInvalidStatus    = errors.New("invalid booking status")
)
