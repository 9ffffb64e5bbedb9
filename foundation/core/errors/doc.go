// Package errors is the error construction API used by sptext modules.
//
// Package: errors
// Title: Standard Error Construction for sptext
// Description: Builds *error.Error values with a consistent shape: every
//              error carries the module and operation that raised it as
//              details, a code from the core error package and a severity.
//              Modules call the convenience constructors here instead of
//              fmt.Errorf or errors.New.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-18
//
// Change History:
// - 2025-01-25 v0.1.0: Initial implementation for cross-module error standardization
// - 2026-10-18 v0.2.0: Dispatcher constructors (UnknownMethod, InvalidArgument)
//
// Usage:
//
//	err := errors.UnknownMethod(errors.ModuleSptext, "upper")
//	if errors.IsUnknownMethod(err) {
//		fmt.Println(errors.ExtractModule(err)) // sptext
//	}
package errors
