package errors

import (
	"errors"
	"fmt"
)

// Exit codes for sandman
const (
	ExitSuccess         = 0
	ExitGeneralError    = 1
	ExitSandboxNotFound = 2
	ExitSandboxExists   = 3
	ExitConfigNotFound  = 4
	ExitPackageDb       = 5
	ExitToolFailed      = 6
	ExitCopyFailed      = 7
	ExitDeleteFailed    = 8
)

// SandmanError is the base error type for sandman
type SandmanError struct {
	Code    int
	Message string
	Cause   error
}

func (e *SandmanError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

func (e *SandmanError) Unwrap() error {
	return e.Cause
}

// ExitCode returns the exit code for this error
func (e *SandmanError) ExitCode() int {
	return e.Code
}

// New creates a new SandmanError
func New(code int, message string) *SandmanError {
	return &SandmanError{
		Code:    code,
		Message: message,
	}
}

// Wrap wraps an existing error with a SandmanError
func Wrap(code int, message string, cause error) *SandmanError {
	return &SandmanError{
		Code:    code,
		Message: message,
		Cause:   cause,
	}
}

// Common error constructors

// SandboxNotFound returns an error for a missing sandbox
func SandboxNotFound(name string) *SandmanError {
	return New(ExitSandboxNotFound, fmt.Sprintf("sandbox not found: %s", name))
}

// SandboxAlreadyExists returns an error for a sandbox name already in use
func SandboxAlreadyExists(name string) *SandmanError {
	return New(ExitSandboxExists, fmt.Sprintf("sandbox already exists: %s", name))
}

// ConfigNotFound returns an error for a missing cabal.sandbox.config
func ConfigNotFound(path string, cause error) *SandmanError {
	return Wrap(ExitConfigNotFound, fmt.Sprintf("sandbox config not found: %s", path), cause)
}

// PackageDbUndetermined returns an error when a sandbox config carries no
// package-db entry
func PackageDbUndetermined(path string) *SandmanError {
	return New(ExitPackageDb, fmt.Sprintf("no package-db entry in %s", path))
}

// ToolFailure returns an error for external tool invocations
func ToolFailure(op string, cause error) *SandmanError {
	return Wrap(ExitToolFailed, fmt.Sprintf("%s failed", op), cause)
}

// CopyFailed returns an error for a package registration copy failure
func CopyFailed(id string, cause error) *SandmanError {
	return Wrap(ExitCopyFailed, fmt.Sprintf("copying %s failed", id), cause)
}

// DeleteFailed returns an error for a package registration delete failure
func DeleteFailed(id string, cause error) *SandmanError {
	return Wrap(ExitDeleteFailed, fmt.Sprintf("removing %s failed", id), cause)
}

// SettingsError returns an error for sandman's own configuration file
func SettingsError(message string, cause error) *SandmanError {
	return Wrap(ExitGeneralError, message, cause)
}

// ValidationError returns an error for input validation failures
func ValidationError(message string) *SandmanError {
	return New(ExitGeneralError, message)
}

// GetExitCode extracts the exit code from an error
func GetExitCode(err error) int {
	var sandmanErr *SandmanError
	if errors.As(err, &sandmanErr) {
		return sandmanErr.ExitCode()
	}
	return ExitGeneralError
}

// Is checks if an error is of a specific type
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As finds the first error in err's chain that matches target
func As(err error, target any) bool {
	return errors.As(err, target)
}
