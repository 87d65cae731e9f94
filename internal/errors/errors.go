// Package errors provides sentinel errors and structured error types for extmake.
package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for known conditions.
var (
	// ErrInvalidIdentifier indicates a package name that is not of the form vendor/name.
	ErrInvalidIdentifier = errors.New("invalid package name")

	// ErrAlreadyExists indicates the target extension directory is already present.
	ErrAlreadyExists = errors.New("already exists")

	// ErrStubMissing indicates a required stub file could not be read.
	ErrStubMissing = errors.New("stub missing")

	// ErrFilesystem indicates a directory, copy or write operation failed.
	ErrFilesystem = errors.New("filesystem error")

	// ErrValidation indicates invalid configuration or plan input.
	ErrValidation = errors.New("validation error")
)

// Exit codes returned by the extmake binary.
const (
	// ExitSuccess indicates the command completed successfully.
	ExitSuccess = 0

	// ExitGeneralError indicates an unspecified error occurred.
	ExitGeneralError = 1

	// ExitValidationError indicates invalid input or configuration.
	ExitValidationError = 2

	// ExitAlreadyExists indicates the extension directory already exists.
	ExitAlreadyExists = 3

	// ExitStubMissing indicates a stub file could not be found.
	ExitStubMissing = 4
)

// DetailError captures structured error information for user-facing output.
type DetailError struct {
	// Type is the error category (required).
	Type string

	// Message is the specific description (required).
	Message string

	// Location is the file or directory involved (optional).
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

// ExitError wraps an error with the process exit code.
type ExitError struct {
	// Code is the process exit code.
	Code int

	// Err is the underlying error.
	Err error

	// Printed is set when the command already reported the error to the user.
	Printed bool
}

// Error implements the error interface.
func (e *ExitError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("exit code %d", e.Code)
	}
	return e.Err.Error()
}

// Unwrap returns the wrapped error.
func (e *ExitError) Unwrap() error {
	return e.Err
}

// NewInvalidIdentifierError creates an invalid package name error with details.
func NewInvalidIdentifierError(name string) error {
	return &DetailError{
		Type:    "invalid package name",
		Message: fmt.Sprintf("[%s] is not a valid package name", name),
		Hint:    "Use a name like <vendor>/<name>, e.g. acme/blog",
		Cause:   ErrInvalidIdentifier,
	}
}

// NewAlreadyExistsError creates an already-exists error for an extension package.
func NewAlreadyExistsError(pkg, location string) error {
	return &DetailError{
		Type:     "extension exists",
		Message:  fmt.Sprintf("The extension [%s] already exists!", pkg),
		Location: location,
		Hint:     "Remove the directory or choose another package name.",
		Cause:    ErrAlreadyExists,
	}
}

// NewStubMissingError creates a stub-missing error.
func NewStubMissingError(name string, cause error) error {
	return &DetailError{
		Type:     "stub missing",
		Message:  fmt.Sprintf("cannot read stub %s: %v", name, cause),
		Location: name,
		Hint:     "Check the stubs directory configured in extension.stubs.",
		Cause:    ErrStubMissing,
	}
}

// Wrap wraps an error with a sentinel error type.
func Wrap(sentinel error, message string) error {
	return fmt.Errorf("%s: %w", message, sentinel)
}

// WrapFilesystem wraps a filesystem failure with ErrFilesystem.
func WrapFilesystem(err error, msg string) error {
	return fmt.Errorf("%s: %w: %w", msg, ErrFilesystem, err)
}

// ExitCodeFromError determines the exit code for an error.
func ExitCodeFromError(err error) int {
	if err == nil {
		return ExitSuccess
	}

	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}

	switch {
	case errors.Is(err, ErrInvalidIdentifier), errors.Is(err, ErrValidation):
		return ExitValidationError
	case errors.Is(err, ErrAlreadyExists):
		return ExitAlreadyExists
	case errors.Is(err, ErrStubMissing):
		return ExitStubMissing
	default:
		return ExitGeneralError
	}
}
