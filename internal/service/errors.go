package service

import (
	"errors"
	"strings"
)

var (
	// ErrNotFound is returned when a requested record does not exist
	ErrNotFound = errors.New("not found")
	// ErrSlotTaken is returned when a doctor already has an active appointment at the requested date and time
	ErrSlotTaken = errors.New("appointment slot already taken")
)

// FieldError describes one invalid input field
type FieldError struct {
	Field   string
	Message string
}

// ValidationError is returned when caller input is invalid
type ValidationError struct {
	Errors []FieldError
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Errors))
	for _, f := range e.Errors {
		parts = append(parts, f.Field+": "+f.Message)
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// invalid builds a ValidationError for a single field
func invalid(field, message string) *ValidationError {
	return &ValidationError{Errors: []FieldError{{Field: field, Message: message}}}
}

// validation collects field errors and yields nil when there are none
type validation []FieldError

func (v *validation) add(field, message string) {
	*v = append(*v, FieldError{Field: field, Message: message})
}

func (v validation) err() error {
	if len(v) == 0 {
		return nil
	}
	return &ValidationError{Errors: v}
}
