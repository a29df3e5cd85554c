// Package errors provides structured error types and exit codes for numdelta.
package errors

import (
	"fmt"
)

// Exit codes returned by the numdelta CLI.
const (
	ExitSuccess      = 0 // Success
	ExitRuntimeError = 1 // Runtime error (assertion failures, unreadable case file, etc.)
	ExitConfigError  = 2 // Configuration error (invalid tolerance options, bad epsilon, etc.)
)

// ErrorKind represents the type of error.
type ErrorKind int

const (
	KindRuntime ErrorKind = iota
	KindConfig
	KindNotFound
	KindValidation
)

// DeltaError is the base error type for numdelta.
type DeltaError struct {
	Kind    ErrorKind
	Message string
	File    string // Case file path if applicable
	Cause   error  // Underlying error
}

func (e *DeltaError) Error() string {
	if e.File != "" {
		return fmt.Sprintf("[%s] %s", e.File, e.Message)
	}
	return e.Message
}

func (e *DeltaError) Unwrap() error {
	return e.Cause
}

// ExitCode returns the appropriate exit code for this error.
func (e *DeltaError) ExitCode() int {
	switch e.Kind {
	case KindConfig, KindValidation:
		return ExitConfigError
	default:
		return ExitRuntimeError
	}
}

// New creates a new runtime error.
func New(message string) *DeltaError {
	return &DeltaError{
		Kind:    KindRuntime,
		Message: message,
	}
}

// Newf creates a new runtime error with formatting.
func Newf(format string, args ...interface{}) *DeltaError {
	return New(fmt.Sprintf(format, args...))
}

// Config creates a new configuration error.
func Config(message string) *DeltaError {
	return &DeltaError{
		Kind:    KindConfig,
		Message: message,
	}
}

// Configf creates a new configuration error with formatting.
func Configf(format string, args ...interface{}) *DeltaError {
	return Config(fmt.Sprintf(format, args...))
}

// Wrap wraps an error with additional context.
func Wrap(err error, message string) *DeltaError {
	return &DeltaError{
		Kind:    KindRuntime,
		Message: message,
		Cause:   err,
	}
}

// WrapConfig wraps an error as a configuration error.
func WrapConfig(err error, message string) *DeltaError {
	return &DeltaError{
		Kind:    KindConfig,
		Message: message,
		Cause:   err,
	}
}

// FileError creates an error for a specific case file.
func FileError(file, message string) *DeltaError {
	return &DeltaError{
		Kind:    KindRuntime,
		File:    file,
		Message: message,
	}
}

// NotFound creates a not found error.
func NotFound(what, name string) *DeltaError {
	return &DeltaError{
		Kind:    KindNotFound,
		Message: fmt.Sprintf("%s not found: %s", what, name),
	}
}

// GetExitCode returns the exit code for an error.
func GetExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}
	if de, ok := err.(*DeltaError); ok {
		return de.ExitCode()
	}
	return ExitRuntimeError
}
