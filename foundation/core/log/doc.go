// Package log provides structured, leveled logging for sptext.
//
// Package: log
// Title: sptext Structured Logging
// Description: Leveled logger with persistent context fields, a correlation
//              id and pluggable formatters (JSON, text, console, logfmt).
//              Errors from the core error package are logged with their
//              code and details, at a level derived from their severity.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-18
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with structured logging and error integration
// - 2026-10-18 v0.2.0: Stderr by default, sorted fields, dropped async mode and timers
//
// Usage:
//
//	logger := log.New().
//		WithLevel(log.LevelDebug).
//		WithFormat(log.FormatText).
//		WithCorrelationID(uuid.NewString())
//
//	logger.Debug("dispatch", log.Fields{"method": "trim", "args": 2})
//	logger.LogError(err)
package log
