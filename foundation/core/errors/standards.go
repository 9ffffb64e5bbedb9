// File: standards.go
// Title: Module Error Standards
// Description: Module identifiers and the convenience constructors for the
//              failures the text dispatcher and its supporting layers raise.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-18
//
// Change History:
// - 2025-01-25 v0.1.0: Initial implementation for error standardization
// - 2026-10-18 v0.2.0: Replaced per-module code tables with dispatcher errors

package errors

import (
	"fmt"

	mdwerror "github.com/msto63/sptext/foundation/core/error"
)

// Module identifiers for error categorization
const (
	ModuleSptext  = "sptext"
	ModuleStringx = "stringx"
	ModuleConfig  = "config"
	ModuleCLI     = "cli"
)

// UnknownMethod reports a method name that is not in the registry. The
// message matches the wording users see from the command line.
func UnknownMethod(module, name string) *mdwerror.Error {
	return NewErrorBuilder(module).
		Operation("dispatch").
		Messagef("Method not found: %s", name).
		Code(mdwerror.CodeUnknownMethod).
		Detail("method", name).
		Build()
}

// InvalidArgument reports an argument that does not fit the parameter at
// the given zero-based position.
func InvalidArgument(module, operation string, position int, value interface{}, expected string) *mdwerror.Error {
	return NewErrorBuilder(module).
		Operation(operation).
		Messagef("%s: argument %d must be %s, got %s", operation, position, expected, describe(value)).
		Code(mdwerror.CodeInvalidArgument).
		Detail("position", position).
		Detail("value", value).
		Detail("expected", expected).
		Build()
}

// TooManyArguments reports surplus positional arguments for a fixed arity method
func TooManyArguments(module, operation string, got, max int) *mdwerror.Error {
	return NewErrorBuilder(module).
		Operation(operation).
		Messagef("%s: takes at most %d arguments, got %d", operation, max, got).
		Code(mdwerror.CodeInvalidArgument).
		Detail("got", got).
		Detail("max", max).
		Build()
}

// InvalidPattern reports a delimiter that could not be compiled into a pattern
func InvalidPattern(module, operation, pattern string, cause error) *mdwerror.Error {
	return NewErrorBuilder(module).
		Operation(operation).
		Messagef("%s: cannot compile pattern %q", operation, pattern).
		Cause(cause).
		Code(mdwerror.CodeInvalidPattern).
		Detail("pattern", pattern).
		Build()
}

// ConfigInvalid reports a configuration value that failed validation
func ConfigInvalid(key string, value interface{}, reason string) *mdwerror.Error {
	return NewErrorBuilder(ModuleConfig).
		Operation("validate").
		Messagef("invalid config value for %s: %s", key, reason).
		Code(mdwerror.CodeInvalidConfig).
		Detail("key", key).
		Detail("value", value).
		Build()
}

// IsUnknownMethod reports whether err is an unknown method failure
func IsUnknownMethod(err error) bool {
	return mdwerror.HasCode(err, mdwerror.CodeUnknownMethod)
}

// IsInvalidArgument reports whether err is an invalid argument failure
func IsInvalidArgument(err error) bool {
	return mdwerror.HasCode(err, mdwerror.CodeInvalidArgument)
}

// describe renders a value for messages: nil is "absent", everything else
// is shown with its dynamic type.
func describe(value interface{}) string {
	if value == nil {
		return "absent value"
	}
	return fmt.Sprintf("%T(%v)", value, value)
}
