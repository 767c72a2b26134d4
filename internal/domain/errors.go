package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors used across all layers.
var (
	ErrNotFound      = errors.New("not found")
	ErrAlreadyExists = errors.New("already exists")
	ErrValidation    = errors.New("validation error")
	ErrUnauthorized  = errors.New("unauthorized")
	ErrForbidden     = errors.New("forbidden")
	ErrConflict      = errors.New("conflict")
)

// FieldError describes a validation error for a specific field.
type FieldError struct {
	Field   string
	Message string
}

// ValidationError contains a list of field-level validation errors.
type ValidationError struct {
	Errors []FieldError
}

func (e *ValidationError) Error() string {
	if len(e.Errors) == 1 {
		return fmt.Sprintf("validation: %s: %s", e.Errors[0].Field, e.Errors[0].Message)
	}
	return fmt.Sprintf("validation: %d errors", len(e.Errors))
}

func (e *ValidationError) Unwrap() error { return ErrValidation }

// NewValidationError creates a ValidationError for a single field.
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{
		Errors: []FieldError{{Field: field, Message: message}},
	}
}

// NewValidationErrors creates a ValidationError from multiple field errors.
func NewValidationErrors(errs []FieldError) *ValidationError {
	return &ValidationError{Errors: errs}
}

// ReasonOutletAccess is the denial reason when a principal acts on an outlet
// other than its own.
const ReasonOutletAccess = "No access to this outlet"

// PermissionError is a structured denial. Reason is human readable and is
// returned to the caller as-is.
type PermissionError struct {
	Reason string
}

func (e *PermissionError) Error() string {
	return "permission denied: " + e.Reason
}

func (e *PermissionError) Unwrap() error { return ErrForbidden }

// NewPermissionError creates a PermissionError with the given reason.
func NewPermissionError(reason string) *PermissionError {
	return &PermissionError{Reason: reason}
}

// DenialReason extracts the reason of a PermissionError anywhere in the
// chain. Returns "" if err is not a denial.
func DenialReason(err error) string {
	var pe *PermissionError
	if errors.As(err, &pe) {
		return pe.Reason
	}
	return ""
}
