package cmd

import (
	"errors"

	oerrors "github.com/scaffoldkit/cli/internal/errors"
)

// Exit codes for the generator binaries.
const (
	// ExitSuccess indicates the command completed successfully.
	ExitSuccess = 0

	// ExitGeneralError indicates an unspecified error occurred.
	ExitGeneralError = 1

	// ExitInvalidName indicates the project name was rejected.
	ExitInvalidName = 2

	// ExitFileSystemError indicates a filesystem failure during generation.
	ExitFileSystemError = 3
)

// ExitError wraps an error with an exit code.
type ExitError struct {
	Err  error
	Code int
}

// Error implements the error interface.
func (e *ExitError) Error() string {
	return e.Err.Error()
}

// Unwrap returns the wrapped error.
func (e *ExitError) Unwrap() error {
	return e.Err
}

// NewExitError creates a new ExitError with the given error and exit code.
func NewExitError(err error, code int) *ExitError {
	return &ExitError{Err: err, Code: code}
}

// ExitCodeFromError determines the appropriate exit code for an error.
func ExitCodeFromError(err error) int {
	if err == nil {
		return ExitSuccess
	}

	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}

	switch {
	case errors.Is(err, oerrors.ErrInvalidName):
		return ExitInvalidName
	case errors.Is(err, oerrors.ErrFileSystem):
		return ExitFileSystemError
	default:
		return ExitGeneralError
	}
}
