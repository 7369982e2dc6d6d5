package entity

import (
	"errors"
	"fmt"
)

// ErrDuplicate indicates a uniqueness constraint violation (username or email).
// The postgres adapter maps SQLSTATE 23505 onto it.
var ErrDuplicate = errors.New("duplicate entity")

// ValidationError represents a validation error with detailed field information.
// It implements the error interface and provides context about which field failed validation.
type ValidationError struct {
	Field   string
	Message string
}

// Error returns a formatted error message for the validation error.
func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation error on field '%s': %s", e.Field, e.Message)
}
