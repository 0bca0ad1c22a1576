// Package errors provides centralized error definitions and error handling
// utilities for the Switchboard codebase. It defines domain-specific errors,
// semantic error types, error constructors with context wrapping, and error
// classification helpers.
//
// # Error Types
//
// Domain-specific errors represent errors from specific subsystems:
//   - SnapshotError: errors related to loading or watching pipeline snapshots
//   - ConfigError: errors related to configuration loading and validation
//
// Semantic errors represent common error conditions:
//   - NotFoundError: resource not found
//   - ValidationError: invalid input or state
//
// # Usage
//
// Creating errors:
//
//	// Domain-specific error
//	err := errors.NewSnapshotError("decode failed", errors.ErrSnapshotInvalid).WithPath(path)
//
//	// Semantic error
//	err := errors.NewNotFoundError("snapshot", path)
//
// Checking errors:
//
//	if errors.Is(err, errors.ErrSnapshotNotFound) { ... }
//
//	var snapErr *errors.SnapshotError
//	if errors.As(err, &snapErr) { ... }
//
//	if errors.IsUserFacing(err) { ... }
package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Re-export standard library functions for convenience.
// This allows callers to import only this package for all error handling.
var (
	Is     = errors.Is
	As     = errors.As
	Unwrap = errors.Unwrap
	New    = errors.New
	Join   = errors.Join
)

// Severity represents the severity level of an error.
type Severity int

const (
	// SeverityDebug is for errors that are useful for debugging but not critical.
	SeverityDebug Severity = iota
	// SeverityInfo is for informational errors that don't indicate a problem.
	SeverityInfo
	// SeverityWarning is for errors that might indicate a problem but aren't critical.
	SeverityWarning
	// SeverityError is for errors that indicate a real problem.
	SeverityError
)

// String returns the string representation of the severity level.
func (s Severity) String() string {
	switch s {
	case SeverityDebug:
		return "debug"
	case SeverityInfo:
		return "info"
	case SeverityWarning:
		return "warning"
	case SeverityError:
		return "error"
	default:
		return "unknown"
	}
}

// Snapshot-related sentinel errors
var (
	// ErrSnapshotNotFound indicates that a snapshot file could not be found.
	ErrSnapshotNotFound = New("snapshot not found")
	// ErrSnapshotInvalid indicates that snapshot contents failed validation.
	ErrSnapshotInvalid = New("snapshot is invalid")
)

// Configuration-related sentinel errors
var (
	// ErrConfigInvalid indicates that configuration failed validation.
	ErrConfigInvalid = New("configuration is invalid")
)

// General sentinel errors
var (
	// ErrInvalidInput indicates that input validation failed.
	ErrInvalidInput = New("invalid input")
)

// SwitchboardError is the base interface for all Switchboard errors.
// It extends the standard error interface with classification methods.
type SwitchboardError interface {
	error

	// Unwrap returns the underlying error, if any.
	Unwrap() error

	// Severity returns the severity level of this error.
	Severity() Severity

	// IsUserFacing returns true if the error message is safe to display
	// to end users.
	IsUserFacing() bool
}

// baseError provides common functionality for all error types.
type baseError struct {
	message    string
	cause      error
	severity   Severity
	userFacing bool
}

// Error returns the error message.
func (e *baseError) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s: %v", e.message, e.cause)
	}
	return e.message
}

// Unwrap returns the underlying error.
func (e *baseError) Unwrap() error {
	return e.cause
}

// Is checks if this error matches the target.
func (e *baseError) Is(target error) bool {
	if e.cause != nil {
		return errors.Is(e.cause, target)
	}
	return false
}

// Severity returns the error severity.
func (e *baseError) Severity() Severity {
	return e.severity
}

// IsUserFacing returns whether the error is safe to show users.
func (e *baseError) IsUserFacing() bool {
	return e.userFacing
}

// SnapshotError represents errors related to pipeline snapshot handling.
//
// Example:
//
//	err := errors.NewSnapshotError("decode failed", cause).WithPath("run.yaml").WithField("records[1].role")
//	fmt.Println(err) // "snapshot error [path=run.yaml, field=records[1].role]: decode failed: ..."
type SnapshotError struct {
	baseError
	Path  string
	Field string
}

// NewSnapshotError creates a new SnapshotError.
func NewSnapshotError(message string, cause error) *SnapshotError {
	return &SnapshotError{
		baseError: baseError{
			message:    message,
			cause:      cause,
			severity:   SeverityError,
			userFacing: true,
		},
	}
}

// WithPath adds the snapshot file path to the error context.
func (e *SnapshotError) WithPath(path string) *SnapshotError {
	e.Path = path
	return e
}

// WithField adds the offending field to the error context.
func (e *SnapshotError) WithField(field string) *SnapshotError {
	e.Field = field
	return e
}

// Error returns the formatted error message.
func (e *SnapshotError) Error() string {
	var parts []string
	if e.Path != "" {
		parts = append(parts, fmt.Sprintf("path=%s", e.Path))
	}
	if e.Field != "" {
		parts = append(parts, fmt.Sprintf("field=%s", e.Field))
	}

	prefix := "snapshot error"
	if len(parts) > 0 {
		prefix = fmt.Sprintf("snapshot error [%s]", strings.Join(parts, ", "))
	}

	if e.cause != nil {
		return fmt.Sprintf("%s: %s: %v", prefix, e.message, e.cause)
	}
	return fmt.Sprintf("%s: %s", prefix, e.message)
}

// Is checks if this error matches the target.
func (e *SnapshotError) Is(target error) bool {
	if _, ok := target.(*SnapshotError); ok {
		return true
	}
	return e.baseError.Is(target)
}

// ConfigError represents errors related to configuration handling.
type ConfigError struct {
	baseError
	Key string
}

// NewConfigError creates a new ConfigError.
func NewConfigError(message string, cause error) *ConfigError {
	return &ConfigError{
		baseError: baseError{
			message:    message,
			cause:      cause,
			severity:   SeverityError,
			userFacing: true,
		},
	}
}

// WithKey adds the configuration key to the error context.
func (e *ConfigError) WithKey(key string) *ConfigError {
	e.Key = key
	return e
}

// Error returns the formatted error message.
func (e *ConfigError) Error() string {
	prefix := "config error"
	if e.Key != "" {
		prefix = fmt.Sprintf("config error [key=%s]", e.Key)
	}

	if e.cause != nil {
		return fmt.Sprintf("%s: %s: %v", prefix, e.message, e.cause)
	}
	return fmt.Sprintf("%s: %s", prefix, e.message)
}

// Is checks if this error matches the target.
func (e *ConfigError) Is(target error) bool {
	if _, ok := target.(*ConfigError); ok {
		return true
	}
	if errors.Is(target, ErrConfigInvalid) {
		return true
	}
	return e.baseError.Is(target)
}

// NotFoundError represents a resource that could not be found.
//
// Example:
//
//	err := errors.NewNotFoundError("snapshot", "runs/demo.yaml")
//	fmt.Println(err) // "snapshot 'runs/demo.yaml' not found"
type NotFoundError struct {
	baseError
	ResourceType string
	ResourceID   string
}

// NewNotFoundError creates a new NotFoundError.
func NewNotFoundError(resourceType, resourceID string) *NotFoundError {
	return &NotFoundError{
		baseError: baseError{
			message:    fmt.Sprintf("%s '%s' not found", resourceType, resourceID),
			severity:   SeverityWarning,
			userFacing: true,
		},
		ResourceType: resourceType,
		ResourceID:   resourceID,
	}
}

// WithCause adds a cause to the error.
func (e *NotFoundError) WithCause(cause error) *NotFoundError {
	e.cause = cause
	return e
}

// Error returns the formatted error message.
func (e *NotFoundError) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s '%s' not found: %v", e.ResourceType, e.ResourceID, e.cause)
	}
	return fmt.Sprintf("%s '%s' not found", e.ResourceType, e.ResourceID)
}

// Is checks if this error matches the target.
func (e *NotFoundError) Is(target error) bool {
	if _, ok := target.(*NotFoundError); ok {
		return true
	}
	return e.baseError.Is(target)
}

// ValidationError represents invalid input or state.
//
// Example:
//
//	err := errors.NewValidationError("confidence must be within [0,1]")
//	err = err.WithField("records[0].decision.confidence").WithValue(4.2)
type ValidationError struct {
	baseError
	Field string
	Value any
}

// NewValidationError creates a new ValidationError.
func NewValidationError(message string) *ValidationError {
	return &ValidationError{
		baseError: baseError{
			message:    message,
			severity:   SeverityWarning,
			userFacing: true,
		},
	}
}

// WithField adds a field name to the error context.
func (e *ValidationError) WithField(field string) *ValidationError {
	e.Field = field
	return e
}

// WithValue adds the invalid value to the error context.
func (e *ValidationError) WithValue(value any) *ValidationError {
	e.Value = value
	return e
}

// WithCause adds a cause to the error.
func (e *ValidationError) WithCause(cause error) *ValidationError {
	e.cause = cause
	return e
}

// Error returns the formatted error message.
func (e *ValidationError) Error() string {
	var parts []string
	if e.Field != "" {
		parts = append(parts, fmt.Sprintf("field=%s", e.Field))
	}
	if e.Value != nil {
		parts = append(parts, fmt.Sprintf("value=%v", e.Value))
	}

	prefix := "validation error"
	if len(parts) > 0 {
		prefix = fmt.Sprintf("validation error [%s]", strings.Join(parts, ", "))
	}

	if e.cause != nil {
		return fmt.Sprintf("%s: %s: %v", prefix, e.message, e.cause)
	}
	return fmt.Sprintf("%s: %s", prefix, e.message)
}

// Is checks if this error matches the target.
func (e *ValidationError) Is(target error) bool {
	if _, ok := target.(*ValidationError); ok {
		return true
	}
	if errors.Is(target, ErrInvalidInput) {
		return true
	}
	return e.baseError.Is(target)
}

// IsUserFacing returns true if the error message is safe to display to end
// users. Semantic errors are always user-facing; everything else must opt in
// through the SwitchboardError interface.
//
// Example:
//
//	if errors.IsUserFacing(err) {
//	    setStatusMessage(err.Error())
//	} else {
//	    setStatusMessage("internal error, see log")
//	    log.Error("internal error", "err", err)
//	}
func IsUserFacing(err error) bool {
	if err == nil {
		return false
	}

	var swErr SwitchboardError
	if As(err, &swErr) {
		return swErr.IsUserFacing()
	}

	var notFound *NotFoundError
	var validation *ValidationError
	if As(err, &notFound) || As(err, &validation) {
		return true
	}

	return false
}

// GetSeverity returns the severity level of the error.
// Returns SeverityError for errors that don't implement SwitchboardError.
func GetSeverity(err error) Severity {
	if err == nil {
		return SeverityDebug
	}

	var swErr SwitchboardError
	if As(err, &swErr) {
		return swErr.Severity()
	}

	return SeverityError
}

// Wrap wraps an error with additional context message.
//
// Example:
//
//	err := errors.Wrap(baseErr, "failed to load snapshot")
func Wrap(err error, message string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", message, err)
}

// Wrapf wraps an error with a formatted context message.
//
// Example:
//
//	err := errors.Wrapf(baseErr, "failed to load snapshot %s", path)
func Wrapf(err error, format string, args ...any) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", fmt.Sprintf(format, args...), err)
}
