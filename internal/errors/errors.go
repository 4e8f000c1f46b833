// Package errors provides structured error types and exit codes for shellbuild.
package errors

import (
	"fmt"
)

// Exit codes reported by the CLI.
const (
	ExitSuccess      = 0 // Success
	ExitRuntimeError = 1 // Runtime error
	ExitConfigError  = 2 // Configuration error (invalid declaration, etc.)
	ExitUsageError   = 3 // Usage error (unknown command, bad flags)
)

// ErrorKind represents the type of error.
type ErrorKind int

const (
	KindRuntime ErrorKind = iota
	KindConfig
	KindNotFound
	KindValidation
	KindUsage
)

// BuildError is the base error type for shellbuild.
type BuildError struct {
	Kind    ErrorKind
	Message string
	Target  string // Target address if applicable
	Cause   error  // Underlying error
}

func (e *BuildError) Error() string {
	if e.Target != "" {
		return fmt.Sprintf("[%s] %s", e.Target, e.Message)
	}
	return e.Message
}

func (e *BuildError) Unwrap() error {
	return e.Cause
}

// ExitCode returns the appropriate exit code for this error.
func (e *BuildError) ExitCode() int {
	switch e.Kind {
	case KindConfig, KindValidation:
		return ExitConfigError
	case KindUsage:
		return ExitUsageError
	default:
		return ExitRuntimeError
	}
}

// New creates a new runtime error.
func New(message string) *BuildError {
	return &BuildError{
		Kind:    KindRuntime,
		Message: message,
	}
}

// Newf creates a new runtime error with formatting.
func Newf(format string, args ...interface{}) *BuildError {
	return New(fmt.Sprintf(format, args...))
}

// Config creates a new configuration error.
func Config(message string) *BuildError {
	return &BuildError{
		Kind:    KindConfig,
		Message: message,
	}
}

// Configf creates a new configuration error with formatting.
func Configf(format string, args ...interface{}) *BuildError {
	return Config(fmt.Sprintf(format, args...))
}

// Usage creates a new usage error.
func Usage(message string) *BuildError {
	return &BuildError{
		Kind:    KindUsage,
		Message: message,
	}
}

// Usagef creates a new usage error with formatting.
func Usagef(format string, args ...interface{}) *BuildError {
	return Usage(fmt.Sprintf(format, args...))
}

// Wrap wraps an error with additional context.
func Wrap(err error, message string) *BuildError {
	return &BuildError{
		Kind:    KindRuntime,
		Message: message,
		Cause:   err,
	}
}

// WrapConfig wraps an error as a configuration error, preserving the cause.
func WrapConfig(err error) *BuildError {
	return &BuildError{
		Kind:    KindConfig,
		Message: err.Error(),
		Cause:   err,
	}
}

// TargetError creates a validation error attributed to a specific target.
func TargetError(target, message string) *BuildError {
	return &BuildError{
		Kind:    KindValidation,
		Target:  target,
		Message: message,
	}
}

// NotFound creates a not found error.
func NotFound(what, name string) *BuildError {
	return &BuildError{
		Kind:    KindNotFound,
		Message: fmt.Sprintf("%s not found: %s", what, name),
	}
}

// GetExitCode returns the exit code for an error.
func GetExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}
	if be, ok := err.(*BuildError); ok {
		return be.ExitCode()
	}
	return ExitRuntimeError
}
