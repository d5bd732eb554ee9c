// Package errors provides sentinel errors for the scaffolding CLI.
package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for known conditions.
var (
	// ErrInvalidName indicates an empty or unsafe project name.
	ErrInvalidName = errors.New("invalid project name")

	// ErrFileSystem indicates a filesystem failure (permissions, disk full, path collision).
	ErrFileSystem = errors.New("filesystem error")

	// ErrNotFound indicates a template or file was not found.
	ErrNotFound = errors.New("not found")
)

// DetailError captures structured error information for user-facing failures.
type DetailError struct {
	// Type is the error category (required).
	Type string

	// Message is the specific description (required).
	Message string

	// Location is the offending path (optional).
	Location string

	// Hint provides actionable guidance (optional).
	Hint string

	// Cause is the underlying error (optional).
	Cause error
}

// Error implements the error interface.
func (e *DetailError) Error() string {
	var b strings.Builder

	b.WriteString("Error: ")
	b.WriteString(e.Type)
	b.WriteString("\n")

	if e.Location != "" {
		b.WriteString("  Location: ")
		b.WriteString(e.Location)
		b.WriteString("\n")
	}

	b.WriteString("\n  ")
	b.WriteString(e.Message)
	b.WriteString("\n")

	if e.Hint != "" {
		b.WriteString("\nHint: ")
		b.WriteString(e.Hint)
		b.WriteString("\n")
	}

	return b.String()
}

// Unwrap returns the underlying error.
func (e *DetailError) Unwrap() error {
	return e.Cause
}

// NewInvalidNameError creates an invalid-name error with details.
func NewInvalidNameError(message, hint string) error {
	return &DetailError{
		Type:    "invalid project name",
		Message: message,
		Hint:    hint,
		Cause:   ErrInvalidName,
	}
}

// NewFileSystemError creates a filesystem error with details.
func NewFileSystemError(message, location string, cause error) error {
	wrapped := error(ErrFileSystem)
	if cause != nil {
		wrapped = fmt.Errorf("%w: %w", ErrFileSystem, cause)
	}
	return &DetailError{
		Type:     "filesystem failure",
		Message:  message,
		Location: location,
		Cause:    wrapped,
	}
}

// Wrap wraps an error with a sentinel error type.
func Wrap(sentinel error, message string) error {
	return fmt.Errorf("%s: %w", message, sentinel)
}
