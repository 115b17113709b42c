package services

import "errors"

// Common service errors
var (
	ErrNotFound           = errors.New("record not found")
	ErrProductNotFound    = errors.New("product not found")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrValidation         = errors.New("validation failed")
	ErrVendorHasPurchases = errors.New("cannot delete vendor: purchase history exists, remove all purchases first")
	ErrVendorHasProducts  = errors.New("cannot delete vendor: products are assigned, reassign or remove products first")
)

// ValidationError wraps a field-level message so handlers can map it to 400.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}

// NewValidationError builds a ValidationError with the given message.
func NewValidationError(msg string) error {
	return &ValidationError{Message: msg}
}
