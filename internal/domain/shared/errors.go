// Package shared contains common domain types, errors and value objects
// that are used across the person and student domain packages.
package shared

import (
	"errors"
	"fmt"
)

// Base domain errors that can be used for error checking with errors.Is().
var (
	// Validation errors
	ErrValidation      = errors.New("validation error")
	ErrEmptyValue      = fmt.Errorf("%w: empty field", ErrValidation)
	ErrValueOutOfRange = fmt.Errorf("%w: out of range", ErrValidation)

	// Cross-field validation errors
	ErrAdmissionBeforeBirth = fmt.Errorf("%w: admission before birth", ErrValidation)
	ErrFutureAdmission      = fmt.Errorf("%w: future admission", ErrValidation)

	// Builder errors
	ErrIncompleteBuilder = errors.New("incomplete builder")
	ErrBuilderConsumed   = errors.New("builder already used")

	// Repository errors
	ErrPrecondition = errors.New("precondition failed")
)

// DomainError represents a domain-specific error with context.
type DomainError struct {
	Domain  string // e.g., "person", "student"
	Op      string // Operation that failed, e.g., "Create", "Build", "Add"
	Field   string // Field the error refers to (optional)
	Kind    error  // Base error type for errors.Is() checking
	Message string // Human-readable message
	Err     error  // Underlying error (optional)
}

// Error implements the error interface.
func (e *DomainError) Error() string {
	prefix := fmt.Sprintf("%s.%s", e.Domain, e.Op)
	if e.Field != "" {
		prefix += "(" + e.Field + ")"
	}
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", prefix, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", prefix, e.Message)
}

// Unwrap returns the underlying error for errors.Unwrap().
func (e *DomainError) Unwrap() error {
	if e.Err != nil {
		return e.Err
	}
	return e.Kind
}

// Is implements errors.Is() matching.
func (e *DomainError) Is(target error) bool {
	if e.Kind != nil && errors.Is(e.Kind, target) {
		return true
	}
	if e.Err != nil && errors.Is(e.Err, target) {
		return true
	}
	return false
}

// NewDomainError creates a new domain error.
func NewDomainError(domain, op string, kind error, message string) *DomainError {
	return &DomainError{
		Domain:  domain,
		Op:      op,
		Kind:    kind,
		Message: message,
	}
}

// NewFieldError creates a domain error bound to a single field.
func NewFieldError(domain, op, field string, kind error, message string) *DomainError {
	return &DomainError{
		Domain:  domain,
		Op:      op,
		Field:   field,
		Kind:    kind,
		Message: message,
	}
}

// IsValidation checks if the error is a validation error.
func IsValidation(err error) bool {
	return errors.Is(err, ErrValidation)
}

// IsIncompleteBuilder checks if a required builder field was never set.
func IsIncompleteBuilder(err error) bool {
	return errors.Is(err, ErrIncompleteBuilder)
}

// IsPrecondition checks if the error is a precondition violation.
func IsPrecondition(err error) bool {
	return errors.Is(err, ErrPrecondition)
}

// FieldOf returns the field name attached to a domain error, if any.
func FieldOf(err error) string {
	var de *DomainError
	if errors.As(err, &de) {
		return de.Field
	}
	return ""
}
