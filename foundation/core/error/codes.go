// File: codes.go
// Title: Error Code Definitions
// Description: Defines the error codes raised by sptext. Codes classify a
//              failure independently of its message so that callers and
//              the CLI can react to the kind of failure.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-18
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with core error codes
// - 2026-10-18 v0.2.0: Dispatcher codes, dropped service and database codes

package error

// Code represents a structured error code for categorizing errors
type Code string

const (
	// Generic codes
	CodeUnknown  Code = "UNKNOWN"
	CodeInternal Code = "INTERNAL"
	CodeNotFound Code = "NOT_FOUND"

	// Dispatcher
	CodeUnknownMethod   Code = "UNKNOWN_METHOD"
	CodeInvalidArgument Code = "INVALID_ARGUMENT"
	CodeInvalidPattern  Code = "INVALID_PATTERN"

	// Configuration
	CodeConfigError   Code = "CONFIG_ERROR"
	CodeMissingConfig Code = "MISSING_CONFIG"
	CodeInvalidConfig Code = "INVALID_CONFIG"

	// Validation
	CodeValidationFailed Code = "VALIDATION_FAILED"
)

// String returns the string representation of the error code
func (c Code) String() string {
	return string(c)
}

// IsValid checks if the error code is a known valid code
func (c Code) IsValid() bool {
	switch c {
	case CodeUnknown, CodeInternal, CodeNotFound,
		CodeUnknownMethod, CodeInvalidArgument, CodeInvalidPattern,
		CodeConfigError, CodeMissingConfig, CodeInvalidConfig,
		CodeValidationFailed:
		return true
	default:
		return false
	}
}

// Category returns the high-level category of the error code
func (c Code) Category() string {
	switch c {
	case CodeUnknownMethod, CodeInvalidArgument, CodeInvalidPattern:
		return "dispatch"
	case CodeConfigError, CodeMissingConfig, CodeInvalidConfig:
		return "configuration"
	case CodeValidationFailed:
		return "validation"
	default:
		return "generic"
	}
}

// ExitCode maps the code to a process exit status for command line tools.
// Usage errors (bad method, bad argument) exit with 2, everything else with 1.
func (c Code) ExitCode() int {
	switch c {
	case CodeUnknownMethod, CodeInvalidArgument:
		return 2
	default:
		return 1
	}
}
