// File: doc.go
// Title: Package Documentation for stringx
// Description: Package stringx provides the text utilities behind the sptext
//              dispatcher: emptiness tests, delimiter-aware trimming and
//              null-skipping concatenation.
// Author: msto63
// Version: v0.3.0
// Created: 2025-01-24
// Modified: 2026-10-18
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with core string utilities
// - 2025-01-26 v0.2.0: Enhanced documentation with comprehensive structure and examples
// - 2026-10-18 v0.3.0: Reduced to the dispatcher utilities

// Package stringx provides the text utilities behind the sptext dispatcher.
//
// Package: stringx
// Title: Text Utilities for sptext
// Description: Pure, typed string functions. The dispatcher in package
//              sptext binds loosely typed arguments to these functions.
// Author: msto63
// Version: v0.3.0
// Created: 2025-01-24
// Modified: 2026-10-18
//
// Overview
//
// The functions fall into three groups:
//
//   - Emptiness: IsEmpty, IfEmpty and IsBlank
//   - Trimming: LTrim, RTrim and Trim with a Delimiter
//   - Joining: Concat
//
// Emptiness
//
// IsEmpty is deliberately narrow. Only nil, nil pointers and zero-length
// strings are empty; 0, false and empty collections are values:
//
//	stringx.IsEmpty(nil)        // true
//	stringx.IsEmpty("")         // true
//	stringx.IsEmpty(0)          // false
//	stringx.IsEmpty([]string{}) // false
//
//	name := stringx.IfEmpty(input, "anonymous")
//
// Trimming
//
// A Delimiter is either the whitespace default (the zero value, also
// exported as Whitespace) or a literal string built with Delim. Trimming
// removes the longest run of whole repetitions of the delimiter:
//
//	stringx.Trim("   hello there!   ", stringx.Whitespace) // "hello there!"
//	stringx.Trim("/dir1/dir2/", stringx.Delim("/"))       // "dir1/dir2"
//	stringx.LTrim("ababx", stringx.Delim("ab"))           // "x"
//
// Whitespace means the ASCII class space, \t, \n, \v, \f and \r. Literal
// delimiters are escaped with EscapeDelimiter, so "." or "*" match
// themselves. Trim is always RTrim applied to the result of LTrim.
//
// Joining
//
//	stringx.Concat(", ", "John", "", "Maria", nil, "Peter") // "John, Maria, Peter"
//
// Thread Safety
//
// All exported functions are pure and can be called concurrently. Whitespace
// patterns are compiled once at package initialisation; literal patterns
// are compiled per call.
//
// See Also
//
//   - Package sptext: name based dispatch onto these functions
//   - regexp: pattern syntax used for trimming
package stringx
