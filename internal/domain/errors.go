package domain

import (
	"errors"
	"fmt"
)

// Error kinds surfaced by services. The HTTP layer maps these to response
// statuses with errors.Is; wrapped messages carry the human-readable detail.
var (
	ErrValidation        = errors.New("validation failed")
	ErrNotFound          = errors.New("not found")
	ErrInsufficientStock = errors.New("insufficient stock")
	ErrAlreadyReturned   = errors.New("booking already returned")
	ErrInternal          = errors.New("internal error")
)

// ValidationErrorf wraps ErrValidation with a formatted message.
func ValidationErrorf(format string, args ...any) error {
	return fmt.Errorf(format+": %w", append(args, ErrValidation)...)
}

// NotFoundErrorf wraps ErrNotFound with a formatted message.
func NotFoundErrorf(format string, args ...any) error {
	return fmt.Errorf(format+": %w", append(args, ErrNotFound)...)
}

// InsufficientStockErrorf wraps ErrInsufficientStock with a formatted message.
func InsufficientStockErrorf(format string, args ...any) error {
	return fmt.Errorf(format+": %w", append(args, ErrInsufficientStock)...)
}

// InternalErrorf wraps ErrInternal with a formatted message.
func InternalErrorf(format string, args ...any) error {
	return fmt.Errorf(format+": %w", append(args, ErrInternal)...)
}
