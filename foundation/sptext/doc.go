// File: doc.go
// Title: sptext Package Documentation
// Description: Name based dispatch onto the stringx text utilities.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-18
//
// Change History:
// - 2025-01-25 v0.1.0: Initial registry implementation
// - 2026-10-18 v0.2.0: Text method dispatcher

/*
Package sptext dispatches text utility calls by method name.

A fixed registry maps six names onto the functions in package stringx:

  • isEmpty(value) bool
  • ifEmpty(value, fallback) any
  • trim(text, delimiter?) string
  • ltrim(text, delimiter?) string
  • rtrim(text, delimiter?) string
  • concat(glue, values...) string

Dispatch takes the name and a loose argument list:

	v, err := sptext.Dispatch("concat", ", ", "John", "", "Maria", nil, "Peter")
	// v == "John, Maria, Peter"

	_, err = sptext.Dispatch("Trim", "x")
	// err: Method not found: Trim (code UNKNOWN_METHOD)

Missing trailing arguments are absent. An absent delimiter trims
whitespace. Text arguments of the trim family must be strings, and so must
delimiters and glue when present; anything else fails with code
INVALID_ARGUMENT, as do surplus arguments for fixed arity methods.

Go callers that know the method at compile time can skip the lookup and
build a Call directly:

	v := sptext.Invoke(sptext.TrimCall{Text: "/a/", Delimiter: stringx.Delim("/")})

The registry is read-only, so Dispatch is safe for concurrent use.
*/
package sptext
