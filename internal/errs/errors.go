// Package errs defines the error taxonomy shared by the storage, service,
// and handler layers: validation failures with field-level detail, uniqueness
// conflicts, missing references, and storage connectivity failures.
package errs

import (
	"fmt"
	"strings"
)

// FieldError is a single per-field rejection message.
type FieldError struct {
	Field   string
	Message string
}

// ValidationError reports malformed or out-of-range input. It carries one
// entry per rejected field so callers can surface field-level detail.
type ValidationError struct {
	Fields []FieldError
}

func (e *ValidationError) Error() string {
	if len(e.Fields) == 0 {
		return "validation failed"
	}
	parts := make([]string, len(e.Fields))
	for i, f := range e.Fields {
		parts[i] = f.Field + ": " + f.Message
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// Add appends a field rejection and returns the error for chaining.
func (e *ValidationError) Add(field, message string) *ValidationError {
	e.Fields = append(e.Fields, FieldError{Field: field, Message: message})
	return e
}

// HasErrors reports whether any field was rejected.
func (e *ValidationError) HasErrors() bool {
	return len(e.Fields) > 0
}

// NewValidation builds a ValidationError for a single field.
func NewValidation(field, message string) *ValidationError {
	return (&ValidationError{}).Add(field, message)
}

// ConflictError reports a uniqueness violation, e.g. a duplicate email or
// currency code. The unique constraint in the database is the authoritative
// guarantee; pre-checks only improve the message.
type ConflictError struct {
	Resource string
	Detail   string
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("%s already exists: %s", e.Resource, e.Detail)
}

// NewConflict builds a ConflictError.
func NewConflict(resource, detail string) *ConflictError {
	return &ConflictError{Resource: resource, Detail: detail}
}

// NotFoundError reports a reference to a nonexistent related entity, or an
// entity that exists but is not owned by the acting user. Ownership failures
// deliberately look identical to missing rows so the surface does not leak
// other users' ids.
type NotFoundError struct {
	Resource string
	ID       int64
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %d not found", e.Resource, e.ID)
}

// NewNotFound builds a NotFoundError.
func NewNotFound(resource string, id int64) *NotFoundError {
	return &NotFoundError{Resource: resource, ID: id}
}

// ConnectivityError reports that the storage engine was unreachable after the
// bounded retry budget was exhausted. Fatal at startup.
type ConnectivityError struct {
	Attempts int
	Err      error
}

func (e *ConnectivityError) Error() string {
	return fmt.Sprintf("database unreachable after %d attempts: %v", e.Attempts, e.Err)
}

func (e *ConnectivityError) Unwrap() error {
	return e.Err
}
