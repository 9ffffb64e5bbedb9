// Package error provides the structured error type used across sptext.
//
// Package: error
// Title: sptext Error Handling Framework
// Description: Implements a structured error with a machine readable code,
//              a severity, free-form details and a captured stack trace.
//              Every failure surfaced by the dispatcher and the supporting
//              layers (config, CLI) is an *Error so callers can branch on
//              the code instead of parsing messages.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-18
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with contextual errors and codes
// - 2026-10-18 v0.2.0: Reduced code set to the text dispatcher domain
//
// Usage:
//
//	err := error.New("Method not found: upper").
//		WithCode(error.CodeUnknownMethod).
//		WithDetail("method", "upper")
//
//	if error.HasCode(err, error.CodeUnknownMethod) {
//		// list the registered methods
//	}
package error
